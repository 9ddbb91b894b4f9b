// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

// Transport is the asynchronous byte source/sink the camera runs on. An
// implementation queues tagged requests, serves them in order against the
// underlying bus, and reports each result through the registered
// CompletionHandler. Completions for one transport must be delivered one at
// a time, with the tag preserved exactly as issued.
type Transport interface {
	// AsyncRead queues a read of exactly length bytes, identified by tag.
	AsyncRead(tag RequestTag, length int)

	// AsyncWrite queues a write of the given bytes, identified by tag.
	AsyncWrite(tag RequestTag, data []byte)

	// SetCompletionHandler registers the handler that receives completion
	// notifications. Must be called before the first request is issued.
	SetCompletionHandler(h CompletionHandler)
}

// CompletionHandler receives the transport's completion notifications. The
// transport guarantees serialized delivery, so handler implementations need
// no locking for state touched only from the callback context.
type CompletionHandler interface {
	// ReadCompletion is invoked when a queued read finishes. On failure err
	// is non-nil and data must be ignored.
	ReadCompletion(tag RequestTag, data []byte, err error)

	// WriteCompletion is invoked when a queued write finishes.
	WriteCompletion(tag RequestTag, n int, err error)
}
