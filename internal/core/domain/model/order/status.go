package order

import (
	"strings"

	"foodbot/internal/pkg/errs"
)

// Status is the tracking status of a placed order. The webhook only writes
// InProgress; other values are set by whoever fulfils the order and are
// reported verbatim.
type Status string

// InProgress is the status every placed order starts with.
const InProgress Status = "in progress"

// NewStatus validates a status read from storage.
func NewStatus(s string) (Status, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredError("order status")
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}
