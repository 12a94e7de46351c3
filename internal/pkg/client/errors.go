package client

import "github.com/pkg/errors"

// ErrNilReceiver indicates that a connection was opened without a server.
var ErrNilReceiver = errors.New("nil receiver")
