package connection

import "comms/internal/pkg/protocol"

// Table maps server addresses to connections. Entries are never removed.
// A Table is not safe for concurrent use.
type Table struct {
	conns map[string]Connection
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		conns: make(map[string]Connection),
	}
}

// Insert adds conn at addr. It fails if addr is already present, whatever its state.
func (t *Table) Insert(addr string, conn Connection) error {
	if _, ok := t.conns[addr]; ok {
		return protocol.ConnectionExists(addr)
	}
	t.conns[addr] = conn
	return nil
}

// Has reports whether addr was ever inserted.
func (t *Table) Has(addr string) bool {
	_, ok := t.conns[addr]
	return ok
}

// Get returns the connection at addr.
func (t *Table) Get(addr string) (Connection, error) {
	if conn, ok := t.conns[addr]; ok {
		return conn, nil
	}
	return nil, protocol.ConnectionNotFound(addr)
}

// Close transitions the connection at addr to Closed.
// Closing an already closed connection is a no-op.
func (t *Table) Close(addr string) error {
	if _, ok := t.conns[addr]; !ok {
		return protocol.ConnectionNotFound(addr)
	}
	t.conns[addr] = Closed{}
	return nil
}

// IsOpen reports whether addr is present and Open.
func (t *Table) IsOpen(addr string) bool {
	_, ok := t.conns[addr].(Open)
	return ok
}

// CountClosed returns the number of Closed entries.
func (t *Table) CountClosed() int {
	n := 0
	for _, conn := range t.conns {
		if _, ok := conn.(Closed); ok {
			n++
		}
	}
	return n
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.conns)
}
