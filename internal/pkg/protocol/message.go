package protocol

// MessageType identifies the kind of a Message.
type MessageType uint8

// Supported message types.
const (
	Handshake MessageType = iota
	Post
	GetCountRequest
)

// Header returns the fixed textual tag for the message type.
func (t MessageType) Header() string {
	switch t {
	case Handshake:
		return "[HANDSHAKE]"
	case Post:
		return "[POST]"
	case GetCountRequest:
		return "[GET COUNT]"
	}
	return "[UNKNOWN]"
}

func (t MessageType) String() string {
	return t.Header()
}

// Message is a single protocol unit sent by a client to a server.
type Message struct {
	Type MessageType
	Load string
}

// NewHandshake creates a Handshake message announcing the given client ip.
func NewHandshake(ip string) Message {
	return Message{Type: Handshake, Load: ip}
}

// NewPost creates a Post message with the given load.
func NewPost(load string) Message {
	return Message{Type: Post, Load: load}
}

// NewGetCount creates a GetCount message. Its load is always empty.
func NewGetCount() Message {
	return Message{Type: GetCountRequest}
}

// Content renders the message as its header followed by the load on a new line.
func (m Message) Content() string {
	return m.Type.Header() + "\n" + m.Load
}
