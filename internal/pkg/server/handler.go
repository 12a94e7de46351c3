package server

import (
	"comms/internal/pkg/protocol"

	"github.com/pkg/errors"
)

// ErrUnhandledMessageType is returned for a message type the server does not know.
var ErrUnhandledMessageType = errors.New("unhandled message type")

// handleMessage dispatches on the message type. The caller must hold s.mu.
func (s *Server) handleMessage(msg protocol.Message) (protocol.Response, error) {
	switch msg.Type {
	case protocol.Handshake:
		if s.connectedClient != nil {
			return protocol.Response{}, protocol.UnexpectedHandshake(s.name)
		}
		ip := msg.Load
		s.connectedClient = &ip
		return protocol.HandshakeReceived(), nil
	case protocol.Post:
		if s.postCount >= s.limit {
			return protocol.Response{}, protocol.ServerLimitReached(s.name)
		}
		s.postCount++
		return protocol.PostReceived(), nil
	case protocol.GetCountRequest:
		return protocol.GetCount(s.postCount), nil
	}
	return protocol.Response{}, errors.Wrapf(ErrUnhandledMessageType, "message type %d", msg.Type)
}
