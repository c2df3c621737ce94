// Package intent enumerates the conversational intents the webhook fulfils.
//
// The NLU platform identifies intents by display name. Parse maps a display
// name to an Intent; names outside the table yield Unrecognized together with
// an *UnrecognizedIntentError so callers can answer with an explicit error
// instead of silently doing nothing.
package intent

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedIntent is the sentinel behind every UnrecognizedIntentError.
var ErrUnrecognizedIntent = errors.New("unrecognized intent")

// Intent is a recognized conversational intent.
type Intent int

const (
	// Unrecognized is returned by Parse for display names outside the table.
	Unrecognized Intent = iota
	// Welcome greets the user. It has no side effects.
	Welcome
	// AddToOrder adds items to the in-progress order.
	AddToOrder
	// RemoveFromOrder removes items from the in-progress order.
	RemoveFromOrder
	// CompleteOrder persists the in-progress order.
	CompleteOrder
	// TrackOrder reports the status of a placed order.
	TrackOrder
)

// Display names configured on the NLU agent.
const (
	WelcomeName         = "Default Welcome Intent"
	AddToOrderName      = "order.add-context: ongoing-order"
	RemoveFromOrderName = "order.remove-context: ongoing-order"
	CompleteOrderName   = "order.complete - context: ongoing-order"
	TrackOrderName      = "track.order - context: ongoing-tracking"
)

func getDisplayNames() map[string]Intent {
	return map[string]Intent{
		WelcomeName:         Welcome,
		AddToOrderName:      AddToOrder,
		RemoveFromOrderName: RemoveFromOrder,
		CompleteOrderName:   CompleteOrder,
		TrackOrderName:      TrackOrder,
	}
}

// UnrecognizedIntentError carries the display name that had no handler.
type UnrecognizedIntentError struct {
	DisplayName string
}

func (e *UnrecognizedIntentError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedIntent, e.DisplayName)
}

func (e *UnrecognizedIntentError) Unwrap() error {
	return ErrUnrecognizedIntent
}

// Parse maps a display name to its Intent.
func Parse(displayName string) (Intent, error) {
	if in, ok := getDisplayNames()[displayName]; ok {
		return in, nil
	}
	return Unrecognized, &UnrecognizedIntentError{DisplayName: displayName}
}

// String returns the display name of the intent.
func (i Intent) String() string {
	for name, in := range getDisplayNames() {
		if in == i {
			return name
		}
	}
	return "Unrecognized"
}
