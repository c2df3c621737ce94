package commands

import (
	"errors"
	"time"

	"foodbot/internal/pkg/guard"
)

var (
	ErrExpireIdleCartsCommandIsNotConstructed = errors.New(
		"ExpireIdleCartsCommand must be created via NewExpireIdleCartsCommand constructor",
	)
	ErrIdleTTLIsInvalid = errors.New("idle ttl must be greater than 0")
)

// ExpireIdleCartsCommand asks to drop in-progress orders nobody touched for
// longer than ttl.
type ExpireIdleCartsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireIdleCartsCommand creates an expiry command for the given idle ttl.
func NewExpireIdleCartsCommand(ttl time.Duration) (ExpireIdleCartsCommand, error) {
	if ttl <= 0 {
		return ExpireIdleCartsCommand{}, ErrIdleTTLIsInvalid
	}
	return ExpireIdleCartsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireIdleCartsCommand) Validate() error {
	return c.guard.Validate(ErrExpireIdleCartsCommandIsNotConstructed)
}

// TTL returns how long a cart may stay untouched.
func (c ExpireIdleCartsCommand) TTL() time.Duration {
	return c.ttl
}
