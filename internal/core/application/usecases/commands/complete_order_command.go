package commands

import (
	"errors"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand asks to place the session's in-progress order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to place the session's order.
func NewCompleteOrderCommand(sessionID kernel.SessionID) (CompleteOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionID returns the conversation whose order is placed.
func (c CompleteOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}
