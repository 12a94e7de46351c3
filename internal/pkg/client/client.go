package client

import (
	"sync"

	"comms/internal/pkg/connection"
	"comms/internal/pkg/log"
	"comms/internal/pkg/protocol"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Client manages the connections to a set of server addresses.
type Client struct {
	ip          string
	uuid        uuid.UUID
	connections *connection.Table

	logger logrus.FieldLogger
	mu     sync.Mutex
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithLogger sets the client logger.
func WithLogger(l logrus.FieldLogger) Cfg {
	return func(c *Client) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		c.logger = l
		return nil
	}
}

// NewClient creates a new Client identified by ip.
func NewClient(ip string, cfgs ...Cfg) (*Client, error) {
	client := &Client{
		ip:          ip,
		connections: connection.NewTable(),
		logger:      logger,
	}
	for _, cfg := range cfgs {
		if err := cfg(client); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	client.uuid = uuid.New()
	return client, nil
}

// IP returns the client ip sent in handshakes.
func (c *Client) IP() string {
	return c.ip
}

func (c *Client) fields(addr string) logrus.Fields {
	return logrus.Fields{
		"client": c.uuid.String(),
		"ip":     c.ip,
		"addr":   addr,
	}
}

// Open opens a connection to addr served by srv.
// The client takes ownership of srv, which must not be used by the caller afterwards.
func (c *Client) Open(addr string, srv connection.Receiver) error {
	if srv == nil {
		return ErrNilReceiver
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connections.Has(addr) {
		return protocol.ConnectionExists(addr)
	}
	resp, err := srv.Receive(protocol.NewHandshake(c.ip))
	if err != nil {
		return err
	}
	if err := c.connections.Insert(addr, connection.Open{Receiver: srv}); err != nil {
		return err
	}
	c.logger.WithFields(c.fields(addr)).WithFields(log.ResponseToFields(resp)).Info("connection opened")
	return nil
}

// Send sends msg through the connection to addr and returns the server response.
// A ServerLimitReached error closes the connection before it is returned.
func (c *Client) Send(addr string, msg protocol.Message) (protocol.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	conn, err := c.connections.Get(addr)
	if err != nil {
		return protocol.Response{}, err
	}
	open, ok := conn.(connection.Open)
	if !ok {
		c.logger.WithFields(c.fields(addr)).WithField("state", connection.State(conn)).Debug("message dropped")
		return protocol.Response{}, protocol.ConnectionClosed(addr)
	}
	resp, err := open.Receiver.Receive(msg)
	if err != nil {
		if errors.Is(err, protocol.ErrServerLimitReached) {
			if cerr := c.connections.Close(addr); cerr != nil {
				return protocol.Response{}, errors.Wrap(cerr, "close connection failed")
			}
			c.logger.WithFields(c.fields(addr)).WithError(err).Warn("connection closed")
		}
		return protocol.Response{}, err
	}
	c.logger.WithFields(c.fields(addr)).WithFields(log.MessageToFields(msg)).Debug("message delivered")
	return resp, nil
}

// IsOpen reports whether a connection to addr exists and is open.
func (c *Client) IsOpen(addr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connections.IsOpen(addr)
}

// CountClosed returns the number of closed connections.
func (c *Client) CountClosed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connections.CountClosed()
}
