package commands

import (
	"errors"
	"strings"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/guard"
)

var ErrAddToOrderCommandIsNotConstructed = errors.New(
	"AddToOrderCommand must be created via NewAddToOrderCommand constructor",
)

// AddToOrderCommand asks to add items to the session's in-progress order.
//
// Names and quantities are parallel sequences as the NLU platform sends
// them. Their shape is checked by the handler, which answers with a
// clarification instead of failing, so the constructor only validates the
// session.
//
// Example:
//
//	sessionID, _ := kernel.NewSessionID("7a1f-22")
//	cmd, err := NewAddToOrderCommand(sessionID, []string{"Samosa"}, []float64{2}, "")
//	if err != nil {
//	    return err
//	}
//	reply, err := handler.Handle(ctx, cmd)
type AddToOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID    kernel.SessionID
	names        []string
	quantities   []float64
	confirmation string

	guard guard.ConstructorGuard
}

// NewAddToOrderCommand creates a command to add items to an order.
// confirmation is the optional "confirmation" parameter; pass "" when absent.
func NewAddToOrderCommand(
	sessionID kernel.SessionID,
	names []string,
	quantities []float64,
	confirmation string,
) (AddToOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AddToOrderCommand{}, err
	}

	return AddToOrderCommand{
		sessionID:    sessionID,
		names:        append([]string(nil), names...),
		quantities:   append([]float64(nil), quantities...),
		confirmation: confirmation,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddToOrderCommandIsNotConstructed)
}

// SessionID returns the conversation the order belongs to.
func (c AddToOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Names returns the requested item names.
func (c AddToOrderCommand) Names() []string {
	return c.names
}

// Quantities returns the requested quantities as received.
func (c AddToOrderCommand) Quantities() []float64 {
	return c.quantities
}

// Confirmed reports whether the user answered "yes" to starting over.
func (c AddToOrderCommand) Confirmed() bool {
	return strings.EqualFold(c.confirmation, "yes")
}
