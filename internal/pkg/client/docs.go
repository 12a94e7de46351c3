// Package client implements the client side of the comms protocol.
//
// The client performs the following steps:
//	1. Open a connection to an address by handing over a freshly created server.
//	2. Send the Handshake message carrying the client ip. If the server rejects it, nothing is stored.
//	3. Store the connection as Open under the address.
//	4. Route every later message sent to the address to its server and return the server response.
//	5. When the server reports ServerLimitReached, close the connection and return the error.
//	   Any other error is returned as is and leaves the connection open.
//
// A closed connection is never reopened and its address can not be opened again.
// Sending through it yields ConnectionClosed, and sending to an address that was never
// opened yields ConnectionNotFound.
//
// The client does not retry. Callers retrying after ServerLimitReached must account for the
// connection having been closed already.
package client
