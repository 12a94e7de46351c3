package server

import (
	"sync"
	"testing"

	"comms/internal/pkg/protocol"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, name string, limit uint32) (*Server, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	s, err := NewServer(name, limit, WithLogger(l))
	require.NoError(t, err)
	return s, hook
}

func TestNewServer(t *testing.T) {
	s, _ := newTestServer(t, "TestServer", 3)
	require.Equal(t, "TestServer", s.Name())
	require.Equal(t, uint32(3), s.Limit())
	require.Equal(t, uint32(0), s.PostCount())
	_, ok := s.ConnectedClient()
	require.False(t, ok)

	_, err := NewServer("TestServer", 1, WithLogger(nil))
	require.Error(t, err)
}

func TestReceive(t *testing.T) {
	s, _ := newTestServer(t, "TestServer", 1)

	// handshake
	resp, err := s.Receive(protocol.NewHandshake("localhost"))
	require.NoError(t, err)
	require.Equal(t, protocol.HandshakeReceived(), resp)
	require.Equal(t, uint32(0), s.PostCount())
	ip, ok := s.ConnectedClient()
	require.True(t, ok)
	require.Equal(t, "localhost", ip)

	// another handshake should be rejected, even from the same client
	_, err = s.Receive(protocol.NewHandshake("localhost"))
	require.Equal(t, protocol.UnexpectedHandshake("TestServer"), err)
	_, err = s.Receive(protocol.NewHandshake("10.0.0.2"))
	require.Equal(t, protocol.UnexpectedHandshake("TestServer"), err)
	ip, _ = s.ConnectedClient()
	require.Equal(t, "localhost", ip)

	resp, err = s.Receive(protocol.NewGetCount())
	require.NoError(t, err)
	require.Equal(t, protocol.GetCount(0), resp)

	resp, err = s.Receive(protocol.NewPost("The tale begins..."))
	require.NoError(t, err)
	require.Equal(t, protocol.PostReceived(), resp)
	require.Equal(t, uint32(1), s.PostCount())

	// another post should exceed the limit and must not be counted
	_, err = s.Receive(protocol.NewPost("...and quickly ends."))
	require.Equal(t, protocol.ServerLimitReached("TestServer"), err)
	require.Equal(t, uint32(1), s.PostCount())
}

func TestGetCountWithoutHandshake(t *testing.T) {
	s, _ := newTestServer(t, "TestServer", 5)
	for i := uint32(1); i <= 5; i++ {
		_, err := s.Receive(protocol.NewPost("x"))
		require.NoError(t, err)
		resp, err := s.Receive(protocol.NewGetCount())
		require.NoError(t, err)
		require.Equal(t, protocol.GetCount(i), resp)
	}
	_, err := s.Receive(protocol.NewPost("x"))
	require.True(t, errors.Is(err, protocol.ErrServerLimitReached))
	require.Equal(t, uint32(5), s.PostCount())
}

func TestZeroLimit(t *testing.T) {
	s, _ := newTestServer(t, "Closed", 0)
	_, err := s.Receive(protocol.NewPost("first"))
	require.Equal(t, protocol.ServerLimitReached("Closed"), err)
	require.Equal(t, uint32(0), s.PostCount())
}

func TestUnhandledMessageType(t *testing.T) {
	s, _ := newTestServer(t, "TestServer", 1)
	_, err := s.Receive(protocol.Message{Type: protocol.MessageType(9)})
	require.True(t, errors.Is(err, ErrUnhandledMessageType))
}

func TestReceiveLogsEveryMessage(t *testing.T) {
	s, hook := newTestServer(t, "TestServer", 0)
	_, err := s.Receive(protocol.NewPost("rejected"))
	require.Error(t, err)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "TestServer received:\n[POST]\nrejected", entry.Message)
}

func TestConcurrentPosts(t *testing.T) {
	s, _ := newTestServer(t, "TestServer", 10)
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted, rejected := 0, 0
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Receive(protocol.NewPost("x"))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected++
				return
			}
			accepted++
		}()
	}
	wg.Wait()
	require.Equal(t, 10, accepted)
	require.Equal(t, 15, rejected)
	require.Equal(t, uint32(10), s.PostCount())
}
