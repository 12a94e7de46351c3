// Package protocol defines the units exchanged between a client and a server.
//
// There are three kinds of message:
//	1. Handshake greets a new server and binds it to a client. The load carries the client ip.
//	2. Post carries an opaque load and counts against the server's post limit.
//	3. GetCount asks the server how many posts it has accepted so far.
//
// Every message is answered with either a Response or an *Error.
// The textual header of a message is only used for diagnostics and is never parsed.
package protocol
