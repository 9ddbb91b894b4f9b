// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import "github.com/rs/zerolog"

// word16 combines a little-endian byte pair into a 16-bit field value.
func word16(low, high byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// assembler accumulates the in-progress object block, its running checksum,
// and the blocks decoded so far for the current frame. Exactly one assembler
// exists per camera and it is touched only from the serialized completion
// callback, so it needs no locking. Both decoding strategies share it.
type assembler struct {
	log   zerolog.Logger
	stats *Statistics

	blocks  []ObjectBlock
	pending ObjectBlock
	inBlock bool
	running uint16
}

// begin starts a new block for the given sync word. If a candidate block is
// already in progress (a previous one was dropped, or end-of-frame handed
// its sync over) the pending slot is reused in place, matching the device
// reference behavior. Fields the next body does not carry keep their old
// value: a plain block accepted right after a dropped color-coded one
// inherits that candidate's angle.
func (a *assembler) begin(sync uint16) {
	if !a.inBlock {
		a.pending = ObjectBlock{}
		a.inBlock = true
	}
	a.pending.Sync = sync
}

// resetChecksum clears the running checksum before the first body field.
func (a *assembler) resetChecksum() {
	a.running = 0
}

// accumulate folds one body field into the running checksum.
func (a *assembler) accumulate(word uint16) {
	a.running += word
}

// bodyWord decodes the little-endian field at offset i, folds it into the
// running checksum and returns it.
func (a *assembler) bodyWord(data []byte, i int) uint16 {
	w := word16(data[i], data[i+1])
	a.running += w
	return w
}

// finalize validates the running checksum against the declared one. On a
// match the pending block is appended to the frame; on a mismatch it is
// dropped with a warning and decoding continues from the next sync.
func (a *assembler) finalize() bool {
	if a.running != a.pending.Checksum {
		a.stats.add(&a.stats.checksumErrors)
		a.log.Warn().
			Uint16("computed", a.running).
			Uint16("declared", a.pending.Checksum).
			Msg("incorrect checksum, dropping block")
		return false
	}

	a.blocks = append(a.blocks, a.pending)
	a.stats.add(&a.stats.blocksAccepted)
	a.inBlock = false
	return true
}

// takeFrame returns the blocks assembled since the last frame boundary and
// starts a fresh frame.
func (a *assembler) takeFrame() []ObjectBlock {
	blocks := a.blocks
	a.blocks = nil
	return blocks
}
