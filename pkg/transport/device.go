// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

// Package transport provides the bus bindings for the pixycam protocol core:
// serial, I2C and a WebSocket byte bridge. Each binding wraps a blocking
// byte stream in a Device, which serializes tagged asynchronous requests and
// delivers their completions one at a time.
package transport

import (
	"errors"
	"io"
	"sync"

	"github.com/sightline-robotics/pixyscope/pkg/pixycam"
)

// ErrDeviceClosed is the completion error for requests the device could not
// serve because it was closed.
var ErrDeviceClosed = errors.New("device closed")

// request is one queued transport operation.
type request struct {
	tag    pixycam.RequestTag
	write  bool
	data   []byte
	length int
}

// Device turns a blocking io.ReadWriteCloser into the asynchronous transport
// the camera core consumes. A single worker goroutine serves queued requests
// in order and invokes the completion handler from its own context, which
// gives the core the serialized delivery it relies on. Reads complete with
// exactly the requested length or an error.
type Device struct {
	conn    io.ReadWriteCloser
	handler pixycam.CompletionHandler

	requests chan request
	done     chan struct{}
	wg       sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	startOnce sync.Once
}

// NewDevice wraps the given connection. The completion handler must be
// registered before the first request is issued; pixycam.New does this.
func NewDevice(conn io.ReadWriteCloser) *Device {
	// The decoder keeps at most one read in flight; the buffer only has to
	// absorb command writes queued alongside it.
	return &Device{
		conn:     conn,
		requests: make(chan request, 32),
		done:     make(chan struct{}),
	}
}

// SetCompletionHandler implements pixycam.Transport.
func (d *Device) SetCompletionHandler(h pixycam.CompletionHandler) {
	d.handler = h
}

// AsyncRead implements pixycam.Transport.
func (d *Device) AsyncRead(tag pixycam.RequestTag, length int) {
	d.submit(request{tag: tag, length: length})
}

// AsyncWrite implements pixycam.Transport.
func (d *Device) AsyncWrite(tag pixycam.RequestTag, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	d.submit(request{tag: tag, write: true, data: buf})
}

// submit counts the request and enqueues it, all under the lock, so that by
// the time Close returns from taking the same lock every counted request is
// already in the queue and the worker's shutdown sweep will reach it. A
// request arriving after Close fails immediately and is never counted.
func (d *Device) submit(req request) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.fail(req, ErrDeviceClosed)
		return
	}
	d.startOnce.Do(func() { go d.worker() })
	d.wg.Add(1)
	d.requests <- req
	d.mu.Unlock()
}

// Drain blocks until every queued request has been served. Only meaningful
// for one-shot command senders; a running read chain never goes idle.
func (d *Device) Drain() {
	d.wg.Wait()
}

// Close shuts the device down. A read blocked on the bus is unblocked by
// closing the underlying connection; its completion is still delivered, with
// the connection error. Requests still queued are failed with
// ErrDeviceClosed, so Drain never waits on a request nobody will serve.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	close(d.done)
	return d.conn.Close()
}

func (d *Device) worker() {
	for {
		select {
		case <-d.done:
			d.discard()
			return
		case req := <-d.requests:
			d.serve(req)
			d.wg.Done()
		}
	}
}

// discard fails every request left in the queue at shutdown. Close marks the
// device closed before closing done, and submit enqueues under the same
// lock, so no counted request can arrive after this sweep.
func (d *Device) discard() {
	for {
		select {
		case req := <-d.requests:
			d.fail(req, ErrDeviceClosed)
			d.wg.Done()
		default:
			return
		}
	}
}

func (d *Device) fail(req request, err error) {
	if req.write {
		d.handler.WriteCompletion(req.tag, 0, err)
		return
	}
	d.handler.ReadCompletion(req.tag, nil, err)
}

func (d *Device) serve(req request) {
	if req.write {
		n, err := d.conn.Write(req.data)
		d.handler.WriteCompletion(req.tag, n, err)
		return
	}

	buf := make([]byte, req.length)
	if _, err := io.ReadFull(d.conn, buf); err != nil {
		d.handler.ReadCompletion(req.tag, nil, err)
		return
	}
	d.handler.ReadCompletion(req.tag, buf, nil)
}

var _ pixycam.Transport = (*Device)(nil)
