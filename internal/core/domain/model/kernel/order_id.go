package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"foodbot/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be created via NewOrderID or ParseOrderID")

// OrderID is the numeric identifier of an order. Allocated ids are positive;
// ids parsed from user input may be any integer and simply match no order.
type OrderID int64

// int64Bound is 2^63, the first float64 past the int64 range.
const int64Bound = -math.MinInt64

// NewOrderID validates a raw order number.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", value))
	}
	return OrderID(value), nil
}

// ParseOrderID converts a loosely typed parameter into an OrderID.
//
// Accepted inputs are JSON numbers with an integral value in the int64
// range (float64, as decoded by encoding/json), Go integers, and strings
// holding a decimal integer. Any other input is a ValueIsInvalid error.
//
// The sign is not checked: zero and negative ids are well formed, they just
// never belong to an order. Use Validate to tell them apart.
func ParseOrderID(raw any) (OrderID, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%v is not an integer", v))
		}
		if v < -int64Bound || v >= int64Bound {
			return 0, errs.NewValueIsOutOfRangeError("orderId", v, int64(math.MinInt64), int64(math.MaxInt64))
		}
		return OrderID(int64(v)), nil
	case int:
		return OrderID(v), nil
	case int64:
		return OrderID(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
		return OrderID(n), nil
	case nil:
		return 0, errs.NewValueIsRequiredError("orderId")
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("unsupported type %T", raw))
	}
}

// Validate reports whether the id is positive, i.e. could have been allocated.
func (id OrderID) Validate() error {
	if id <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// Int64 returns the raw value for persistence.
func (id OrderID) Int64() int64 {
	return int64(id)
}

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
