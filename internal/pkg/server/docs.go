// Package server implements the server side of the comms protocol.
//
// A Server handles messages as follows:
// 	1. Every message is logged as "<name> received:" followed by its content, whatever the outcome.
// 	2. A Handshake binds the server to the client ip carried in its load. Only the first
// 	   handshake of a server's lifetime is accepted, any later one is rejected with UnexpectedHandshake.
// 	3. A Post is counted against the server's limit. Once the limit is reached further posts are
// 	   rejected with ServerLimitReached and are not counted.
// 	4. A GetCount is always answered with the number of accepted posts. It does not require a handshake.
//
// A Server keeps its state in memory only. It is guarded by a mutex so that the limit check
// and the increment of the post counter happen atomically.
package server
