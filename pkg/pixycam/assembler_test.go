// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestAssembler() *assembler {
	return &assembler{log: zerolog.Nop(), stats: NewStatistics()}
}

func TestWord16(t *testing.T) {
	tests := []struct {
		low, high byte
		want      uint16
	}{
		{0x55, 0xaa, 0xaa55},
		{0xaa, 0x55, 0x55aa},
		{0x00, 0x00, 0x0000},
		{0xff, 0x01, 0x01ff},
	}
	for _, tt := range tests {
		if got := word16(tt.low, tt.high); got != tt.want {
			t.Errorf("word16(%#02x, %#02x) = %#04x, want %#04x", tt.low, tt.high, got, tt.want)
		}
	}
}

func TestAssembler_AcceptAndTake(t *testing.T) {
	a := newTestAssembler()

	a.begin(StartWord)
	a.pending.Checksum = 1 + 2 + 3 + 4 + 5
	a.resetChecksum()
	a.pending.Signature = a.bodyWord([]byte{1, 0}, 0)
	a.pending.CenterX = a.bodyWord([]byte{2, 0}, 0)
	a.pending.CenterY = a.bodyWord([]byte{3, 0}, 0)
	a.pending.Width = a.bodyWord([]byte{4, 0}, 0)
	a.pending.Height = a.bodyWord([]byte{5, 0}, 0)

	if !a.finalize() {
		t.Fatal("valid block rejected")
	}
	if a.inBlock {
		t.Error("inBlock still set after an accepted block")
	}

	frame := a.takeFrame()
	if len(frame) != 1 {
		t.Fatalf("frame holds %d block(s), want 1", len(frame))
	}
	if frame[0].Signature != 1 || frame[0].Height != 5 {
		t.Errorf("assembled block = %v", frame[0])
	}
	if again := a.takeFrame(); again != nil {
		t.Error("takeFrame did not start a fresh frame")
	}
}

func TestAssembler_ChecksumMismatchKeepsCandidate(t *testing.T) {
	a := newTestAssembler()

	a.begin(StartWord)
	a.pending.Checksum = 99
	a.resetChecksum()
	a.accumulate(1)
	if a.finalize() {
		t.Fatal("corrupt block accepted")
	}
	if !a.inBlock {
		t.Error("candidate released after a dropped block")
	}

	// The next begin reuses the candidate in place; the sync is replaced and
	// the stale checksum must not survive a full field rewrite.
	a.begin(StartWordCC)
	if a.pending.Sync != StartWordCC {
		t.Errorf("sync = %#04x, want %#04x", a.pending.Sync, uint16(StartWordCC))
	}

	if frame := a.takeFrame(); frame != nil {
		t.Errorf("dropped block leaked into the frame: %v", frame)
	}
}

func TestBatchSlot_LatestWins(t *testing.T) {
	var slot batchSlot

	if got := slot.take(); got != nil {
		t.Fatal("empty slot returned a batch")
	}

	slot.publish([]ObjectBlock{{Signature: 1}})
	slot.publish([]ObjectBlock{{Signature: 2}, {Signature: 3}})

	got := slot.take()
	if len(got) != 2 || got[0].Signature != 2 {
		t.Errorf("take = %v, want the latest batch", got)
	}
	if again := slot.take(); again != nil {
		t.Error("slot not cleared by take")
	}
}
