package server

import (
	"sync"

	"comms/internal/pkg/protocol"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Server accepts messages from a single client and counts its posts.
type Server struct {
	name            string
	postCount       uint32
	limit           uint32
	connectedClient *string

	logger logrus.FieldLogger
	mu     sync.Mutex
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithLogger sets the logger the server writes its diagnostics to.
func WithLogger(l logrus.FieldLogger) Cfg {
	return func(s *Server) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		s.logger = l
		return nil
	}
}

// NewServer creates a new Server accepting at most limit posts.
// A limit of zero is valid and means no post is ever accepted.
func NewServer(name string, limit uint32, cfgs ...Cfg) (*Server, error) {
	server := &Server{
		name:   name,
		limit:  limit,
		logger: logger,
	}
	for _, cfg := range cfgs {
		if err := cfg(server); err != nil {
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	return server, nil
}

// Receive consumes the message and answers it.
func (s *Server) Receive(msg protocol.Message) (protocol.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Infof("%s received:\n%s", s.name, msg.Content())
	return s.handleMessage(msg)
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Limit returns the maximum number of posts the server accepts.
func (s *Server) Limit() uint32 {
	return s.limit
}

// PostCount returns the number of accepted posts.
func (s *Server) PostCount() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postCount
}

// ConnectedClient returns the ip of the client that completed the handshake, if any.
func (s *Server) ConnectedClient() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectedClient == nil {
		return "", false
	}
	return *s.connectedClient, true
}
