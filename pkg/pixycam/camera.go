// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"sync"

	"github.com/rs/zerolog"
)

// strategy is one of the two framing granularities. The word strategy reads
// two bytes per request, the byte strategy one; both walk the same protocol
// and publish identical batches for identical input bytes.
type strategy interface {
	// start issues the first read of the chain.
	start()
	// resync issues a fresh hunt for the next sync after a failed read.
	resync()
	// process interprets one successful completion and issues exactly one
	// follow-up read. A non-nil error is a protocol violation.
	process(tag RequestTag, data []byte) error
}

// Camera drives a Pixy camera over the given transport. It decodes the
// continuous object block stream into per-frame batches for DetectedObjects
// and encodes the device commands. All decoding happens on the transport's
// completion callback; the camera never starts goroutines of its own.
type Camera struct {
	transport Transport
	log       zerolog.Logger
	stats     *Statistics
	asm       *assembler
	strat     strategy
	slot      batchSlot

	byteMode bool

	startMu sync.Mutex
	started bool

	errMu sync.Mutex
	err   error
}

// Option configures a Camera at construction.
type Option func(*Camera)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Camera) { c.log = log }
}

// WithByteTransactions selects the byte-granularity strategy for transports
// that cannot deliver paired reads atomically. Commands are likewise written
// one byte at a time.
func WithByteTransactions() Option {
	return func(c *Camera) { c.byteMode = true }
}

// New creates a camera on the given transport and registers itself as the
// transport's completion handler. The read chain does not begin until Start
// is called.
func New(t Transport, opts ...Option) *Camera {
	c := &Camera{
		transport: t,
		log:       zerolog.Nop(),
		stats:     NewStatistics(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.asm = &assembler{log: c.log, stats: c.stats}
	if c.byteMode {
		c.strat = &byteDecoder{cam: c}
	} else {
		c.strat = &wordDecoder{cam: c}
	}

	t.SetCompletionHandler(c)
	return c
}

// Start queues the initial read request if not already started. Idempotent.
func (c *Camera) Start() {
	c.startMu.Lock()
	defer c.startMu.Unlock()
	if c.started {
		return
	}
	c.started = true
	c.strat.start()
}

// DetectedObjects returns and clears the most recently published batch, or
// nil if no new batch has been published since the last poll. Safe to call
// from any goroutine; never blocks.
func (c *Camera) DetectedObjects() []ObjectBlock {
	return c.slot.take()
}

// Err returns the protocol violation that halted this camera, or nil while
// it is healthy.
func (c *Camera) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.err
}

// Stats returns a snapshot of the decode counters.
func (c *Camera) Stats() StatsSnapshot {
	return c.stats.Snapshot()
}

// SetLED sets the RGB LED to the specified color.
func (c *Camera) SetLED(red, green, blue byte) {
	c.writeCommand(LEDCommand(red, green, blue))
}

// SetBrightness sets the camera brightness.
func (c *Camera) SetBrightness(brightness byte) {
	c.writeCommand(BrightnessCommand(brightness))
}

// SetPanTilt sets the pan and tilt servo positions, each in
// [PanTiltMin, PanTiltMax]. Out-of-range values are rejected before any I/O.
func (c *Camera) SetPanTilt(pan, tilt int) error {
	data, err := PanTiltCommand(pan, tilt)
	if err != nil {
		return err
	}
	c.writeCommand(data)
	return nil
}

// writeCommand issues a fire-and-forget command write. In byte-transaction
// mode the buffer is written one byte at a time; the device accepts both
// forms identically.
func (c *Camera) writeCommand(data []byte) {
	if c.byteMode {
		for _, b := range data {
			c.transport.AsyncWrite(TagNone, []byte{b})
		}
		return
	}
	c.transport.AsyncWrite(TagNone, data)
}

// read issues the next tagged read of the chain.
func (c *Camera) read(tag RequestTag, length int) {
	c.transport.AsyncRead(tag, length)
}

// publishFrame hands the assembled blocks to the consumer slot. A frame that
// yielded no valid blocks is not published, so the consumer never observes a
// batch of zero objects.
func (c *Camera) publishFrame() {
	blocks := c.asm.takeFrame()
	if len(blocks) == 0 {
		return
	}
	c.slot.publish(blocks)
	c.stats.add(&c.stats.framesPublished)
	c.log.Debug().Int("blocks", len(blocks)).Msg("batch published")
}

// fail records a protocol violation and halts the read chain for this
// instance. Violations signal a logic defect, not transient device noise, so
// no recovery is attempted.
func (c *Camera) fail(err error) {
	c.errMu.Lock()
	c.err = err
	c.errMu.Unlock()
	c.log.Error().Err(err).Msg("decoder halted")
}

// ReadCompletion implements CompletionHandler. A failed read is device
// noise: it is counted, logged and recovered by hunting for the next sync.
func (c *Camera) ReadCompletion(tag RequestTag, data []byte, err error) {
	if c.Err() != nil {
		return
	}
	if err != nil {
		c.stats.add(&c.stats.failedReads)
		c.log.Warn().Err(err).Stringer("tag", tag).Msg("read failed, resynchronizing")
		c.strat.resync()
		return
	}
	if perr := c.strat.process(tag, data); perr != nil {
		c.fail(perr)
	}
}

// WriteCompletion implements CompletionHandler. Command writes are
// fire-and-forget; failures are logged and otherwise ignored.
func (c *Camera) WriteCompletion(tag RequestTag, n int, err error) {
	if err != nil {
		c.log.Warn().Err(err).Int("written", n).Msg("command write failed")
	}
}
