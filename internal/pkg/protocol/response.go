package protocol

import "fmt"

// ResponseKind identifies the kind of a Response.
type ResponseKind uint8

// Supported response kinds.
const (
	KindHandshakeReceived ResponseKind = iota
	KindPostReceived
	KindGetCount
)

// Response is the successful answer of a server to a Message.
// Count is only meaningful for KindGetCount.
type Response struct {
	Kind  ResponseKind
	Count uint32
}

// HandshakeReceived acknowledges a Handshake.
func HandshakeReceived() Response {
	return Response{Kind: KindHandshakeReceived}
}

// PostReceived acknowledges a Post.
func PostReceived() Response {
	return Response{Kind: KindPostReceived}
}

// GetCount answers a GetCount request with the number of accepted posts.
func GetCount(count uint32) Response {
	return Response{Kind: KindGetCount, Count: count}
}

func (r Response) String() string {
	switch r.Kind {
	case KindHandshakeReceived:
		return "HandshakeReceived"
	case KindPostReceived:
		return "PostReceived"
	case KindGetCount:
		return fmt.Sprintf("GetCount(%d)", r.Count)
	}
	return "Unknown"
}
