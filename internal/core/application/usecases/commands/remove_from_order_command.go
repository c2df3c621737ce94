package commands

import (
	"errors"

	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/pkg/guard"
)

var ErrRemoveFromOrderCommandIsNotConstructed = errors.New(
	"RemoveFromOrderCommand must be created via NewRemoveFromOrderCommand constructor",
)

// RemoveFromOrderCommand asks to remove items from the session's
// in-progress order.
type RemoveFromOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	names     []string

	guard guard.ConstructorGuard
}

// NewRemoveFromOrderCommand creates a command to remove the named items.
func NewRemoveFromOrderCommand(sessionID kernel.SessionID, names []string) (RemoveFromOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RemoveFromOrderCommand{}, err
	}

	return RemoveFromOrderCommand{
		sessionID: sessionID,
		names:     append([]string(nil), names...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromOrderCommandIsNotConstructed)
}

// SessionID returns the conversation the order belongs to.
func (c RemoveFromOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Names returns the item names to remove.
func (c RemoveFromOrderCommand) Names() []string {
	return c.names
}
