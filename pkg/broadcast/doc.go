// Package broadcast fans messages out to in-process subscribers.
//
// MemoryBroadcaster never blocks the publisher: every subscriber owns a
// buffered channel and a message that does not fit is dropped for that
// subscriber, which is then unsubscribed. A subscriber is also removed when
// the context passed to Subscribe is cancelled, which is how SSE handlers
// detach when the client goes away.
package broadcast
