package kernel

import (
	"strings"

	"foodbot/internal/pkg/errs"
	"foodbot/internal/pkg/guard"
)

// sessionsMarker precedes the session segment of a Dialogflow context name:
// projects/<project>/agent/sessions/<session>/contexts/<context>.
const sessionsMarker = "/sessions/"

// ErrSessionIDIsNotConstructed is returned when validating a zero-value SessionID.
var ErrSessionIDIsNotConstructed = errs.NewValueIsRequiredError(
	"session id must be created via NewSessionID or SessionIDFromContextName")

// SessionID identifies one ongoing conversation. At most one in-progress
// order exists per SessionID.
type SessionID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewSessionID wraps an already extracted session identifier.
// Returns a ValueIsRequired error for blank input.
func NewSessionID(value string) (SessionID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SessionID{}, errs.NewValueIsRequiredError("sessionId")
	}
	return SessionID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// SessionIDFromContextName extracts the session identifier from an output
// context name.
//
// The identifier is the path segment following "/sessions/". When the name
// has no such segment, the suffix after the last "/" is used instead.
//
// Example:
//
//	id, _ := kernel.SessionIDFromContextName(
//	    "projects/pizza-bot/agent/sessions/7a1f-22/contexts/ongoing-order")
//	fmt.Println(id) // 7a1f-22
func SessionIDFromContextName(name string) (SessionID, error) {
	if i := strings.Index(name, sessionsMarker); i >= 0 {
		rest := name[i+len(sessionsMarker):]
		if j := strings.Index(rest, "/"); j >= 0 {
			rest = rest[:j]
		}
		return NewSessionID(rest)
	}

	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return NewSessionID(name)
}

// Validate reports whether the SessionID was built through a constructor.
func (s SessionID) Validate() error {
	return s.guard.Validate(ErrSessionIDIsNotConstructed)
}

// String returns the raw identifier.
func (s SessionID) String() string {
	return s.value
}

// IsEqual compares two session identifiers by value.
func (s SessionID) IsEqual(other SessionID) bool {
	return s.value == other.value
}
