package protocol

import "fmt"

// ErrorKind classifies an Error.
type ErrorKind uint8

// Error kinds. Server errors carry the server name, connection errors the address.
const (
	KindServerLimitReached ErrorKind = iota + 1
	KindUnexpectedHandshake
	KindConnectionExists
	KindConnectionClosed
	KindConnectionNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindServerLimitReached:
		return "server limit reached"
	case KindUnexpectedHandshake:
		return "unexpected handshake"
	case KindConnectionExists:
		return "connection exists"
	case KindConnectionClosed:
		return "connection closed"
	case KindConnectionNotFound:
		return "connection not found"
	}
	return "unknown error"
}

// Error is the error value returned by servers and clients.
type Error struct {
	Kind ErrorKind
	ID   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.ID)
}

// Is reports whether target is an *Error of the same kind.
// A target without an ID matches any ID, which is how the sentinels below work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.ID == "" || e.ID == t.ID)
}

// Sentinels for use with errors.Is.
var (
	ErrServerLimitReached  = &Error{Kind: KindServerLimitReached}
	ErrUnexpectedHandshake = &Error{Kind: KindUnexpectedHandshake}
	ErrConnectionExists    = &Error{Kind: KindConnectionExists}
	ErrConnectionClosed    = &Error{Kind: KindConnectionClosed}
	ErrConnectionNotFound  = &Error{Kind: KindConnectionNotFound}
)

// ServerLimitReached indicates that the named server rejected a post because its limit is exhausted.
func ServerLimitReached(name string) error {
	return &Error{Kind: KindServerLimitReached, ID: name}
}

// UnexpectedHandshake indicates that the named server already completed its handshake.
func UnexpectedHandshake(name string) error {
	return &Error{Kind: KindUnexpectedHandshake, ID: name}
}

// ConnectionExists indicates that a connection to addr was already opened.
func ConnectionExists(addr string) error {
	return &Error{Kind: KindConnectionExists, ID: addr}
}

// ConnectionClosed indicates that the connection to addr has been closed.
func ConnectionClosed(addr string) error {
	return &Error{Kind: KindConnectionClosed, ID: addr}
}

// ConnectionNotFound indicates that no connection to addr was ever opened.
func ConnectionNotFound(addr string) error {
	return &Error{Kind: KindConnectionNotFound, ID: addr}
}
