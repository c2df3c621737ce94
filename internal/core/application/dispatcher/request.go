// Package dispatcher routes classified conversation turns to the order use
// cases. It owns the business hours gate, intent lookup and per-session
// serialization; transports only translate their payload into a Request and
// the returned Fulfillment back onto the wire.
package dispatcher

import (
	"fmt"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/errs"
)

// Parameter names the NLU agent fills for the order intents.
const (
	ParamFoodItems    = "food-items"
	ParamNumber       = "number"
	ParamConfirmation = "confirmation"
)

// Request is one classified turn of a conversation.
type Request struct {
	Action     string
	Intent     string
	Parameters Parameters
	SessionID  kernel.SessionID
}

// Parameters is the loosely typed parameter bag of a turn, as decoded from
// JSON: strings, float64 numbers, []any lists and nested maps.
type Parameters map[string]any

// Value returns the raw parameter.
func (p Parameters) Value(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// String returns a string parameter, or "" when it is absent or not a string.
func (p Parameters) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns a list of strings. A single string counts as a one-element
// list. A missing parameter is a ValueIsRequired error; any element that is
// not a string is a ValueIsInvalid error.
func (p Parameters) Strings(key string) ([]string, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil, errs.NewValueIsRequiredError(key)
	}

	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, isString := item.(string)
			if !isString {
				return nil, errs.NewValueIsInvalidErrorWithCause(key,
					fmt.Errorf("element %d is %T, not a string", i, item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("unsupported type %T", raw))
	}
}

// Numbers returns a list of numbers. A single number counts as a one-element
// list. Error rules match Strings.
func (p Parameters) Numbers(key string) ([]float64, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil, errs.NewValueIsRequiredError(key)
	}

	switch v := raw.(type) {
	case float64:
		return []float64{v}, nil
	case []float64:
		return v, nil
	case []any:
		out := make([]float64, 0, len(v))
		for i, item := range v {
			n, isNumber := item.(float64)
			if !isNumber {
				return nil, errs.NewValueIsInvalidErrorWithCause(key,
					fmt.Errorf("element %d is %T, not a number", i, item))
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("unsupported type %T", raw))
	}
}
