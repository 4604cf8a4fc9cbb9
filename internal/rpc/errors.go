package rpc

import (
	"errors"
	"fmt"
)

// Code used when the failure happened before the backend could answer
// (DNS, refused connection, timeout). Backend-reported errors carry the
// backend's own code instead.
const CodeTransport = "transport_error"

// Error is the single error shape every remote operation fails with.
// Backend errors map code/message/details/hint straight from the response
// body; transport failures are normalized into the same shape so callers
// never see a raw *url.Error.
type Error struct {
	Proc    string `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`

	transient bool
	cause     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("rpc %s: %s (%s)", e.Proc, e.Message, e.Code)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Transient reports whether retrying the same call could succeed.
// Only the caching layer acts on this, and only for queries.
func (e *Error) Transient() bool { return e.transient }

// IsTransient classifies any error for the retry policy: true only for
// normalized RPC errors marked transient.
func IsTransient(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Transient()
}
