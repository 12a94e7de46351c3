// Package connection models the client side record of a server address.
package connection

import "comms/internal/pkg/protocol"

// Receiver is the server end of a connection.
type Receiver interface {
	Receive(msg protocol.Message) (protocol.Response, error)
}

// Connection is either Open or Closed. No other implementations exist.
type Connection interface {
	isConnection()
}

// Open is a usable connection holding the server it delivers messages to.
type Open struct {
	Receiver Receiver
}

// Closed is a connection that can no longer be used. It is terminal.
type Closed struct{}

func (Open) isConnection()   {}
func (Closed) isConnection() {}

// State names the state of conn for logging.
func State(conn Connection) string {
	switch conn.(type) {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return "unknown"
}
