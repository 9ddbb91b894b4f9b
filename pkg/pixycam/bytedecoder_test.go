// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"errors"
	"testing"
)

// ============================================================
// Byte Strategy Tests
// ============================================================

func TestByteDecoder_SingleBlock(t *testing.T) {
	blk := testBlock{signature: 1, centerX: 100, centerY: 50, width: 10, height: 20}

	got, _ := decodeStream(t, frameStream(blk), WithByteTransactions())
	checkBlocks(t, got, []testBlock{blk})
}

func TestByteDecoder_ColorCodeBlock(t *testing.T) {
	// The angle word is part of the color-coded payload and must be
	// covered by the checksum.
	blk := testBlock{colorCoded: true, signature: 0o321, centerX: 80, centerY: 120, width: 16, height: 24, angle: 135}

	got, _ := decodeStream(t, frameStream(blk), WithByteTransactions())
	checkBlocks(t, got, []testBlock{blk})
}

func TestByteDecoder_ChecksumMismatchDropsBlock(t *testing.T) {
	good := testBlock{signature: 3, centerX: 30, centerY: 40, width: 12, height: 14}
	bad := testBlock{signature: 1, centerX: 7, centerY: 7, width: 7, height: 7, corruptChecksum: true}

	got, cam := decodeStream(t, frameStream(bad, good), WithByteTransactions())
	checkBlocks(t, got, []testBlock{good})

	if stats := cam.Stats(); stats.ChecksumErrors != 1 {
		t.Errorf("ChecksumErrors = %d, want 1", stats.ChecksumErrors)
	}
}

func TestByteDecoder_SignatureOutOfRange(t *testing.T) {
	// Plain signatures live in [1,7]; anything else is noise even when
	// the checksum would come out right, and the hunt starts over.
	good := testBlock{signature: 2, centerX: 11, centerY: 12, width: 13, height: 14}

	tests := []struct {
		name      string
		signature uint16
	}{
		{"zero", 0},
		{"eight", 8},
		{"large", 0x1f0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := testBlock{signature: tt.signature, centerX: 1, centerY: 2, width: 3, height: 4}

			var stream []byte
			stream = append(stream, bad.bytes()...)
			stream = append(stream, frameStream(good)...)

			got, cam := decodeStream(t, stream, WithByteTransactions())
			checkBlocks(t, got, []testBlock{good})

			if stats := cam.Stats(); stats.BadSignatures != 1 {
				t.Errorf("BadSignatures = %d, want 1", stats.BadSignatures)
			}
		})
	}
}

func TestByteDecoder_SpuriousLeadingByte(t *testing.T) {
	blk := testBlock{signature: 6, centerX: 90, centerY: 91, width: 92, height: 93}

	stream := []byte{0x5a}
	stream = appendWord(stream, StartWord)
	stream = append(stream, frameStream(blk)...)

	got, _ := decodeStream(t, stream, WithByteTransactions())
	checkBlocks(t, got, []testBlock{blk})
}

func TestByteDecoder_ShortReadIsNoise(t *testing.T) {
	cam, tr := newTestCamera(nil, WithByteTransactions())
	cam.Start()
	tr.pending = nil

	cam.ReadCompletion(TagSyncLow, []byte{0x55, 0xaa}, nil)

	if cam.Err() != nil {
		t.Fatalf("oversized completion must not halt the decoder: %v", cam.Err())
	}
	if len(tr.pending) != 1 || tr.pending[0].tag != TagSyncLow {
		t.Error("expected a fresh sync hunt after a bad-length completion")
	}
}

func TestByteDecoder_UnknownTagIsViolation(t *testing.T) {
	cam, _ := newTestCamera(nil, WithByteTransactions())
	cam.Start()

	cam.ReadCompletion(TagNormalBlock, []byte{0x01}, nil)

	var pv *ProtocolViolationError
	if !errors.As(cam.Err(), &pv) {
		t.Fatalf("expected a protocol violation, got %v", cam.Err())
	}
}

// ============================================================
// Strategy Equivalence
// ============================================================

// Both transaction granularities must publish identical batches for the
// same byte stream.
func TestStrategies_PublishIdenticalBatches(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		want   []testBlock
	}{
		{
			name: "plain blocks",
			stream: frameStream(
				testBlock{signature: 1, centerX: 10, centerY: 20, width: 5, height: 5},
				testBlock{signature: 7, centerX: 300, centerY: 180, width: 22, height: 33},
			),
			want: []testBlock{
				{signature: 1, centerX: 10, centerY: 20, width: 5, height: 5},
				{signature: 7, centerX: 300, centerY: 180, width: 22, height: 33},
			},
		},
		{
			name: "mixed with color code",
			stream: frameStream(
				testBlock{signature: 4, centerX: 1, centerY: 2, width: 3, height: 4},
				testBlock{colorCoded: true, signature: 0o12, centerX: 5, centerY: 6, width: 7, height: 8, angle: 270},
			),
			want: []testBlock{
				{signature: 4, centerX: 1, centerY: 2, width: 3, height: 4},
				{colorCoded: true, signature: 0o12, centerX: 5, centerY: 6, width: 7, height: 8, angle: 270},
			},
		},
		{
			name: "corrupt block skipped",
			stream: frameStream(
				testBlock{signature: 2, centerX: 9, centerY: 9, width: 9, height: 9, corruptChecksum: true},
				testBlock{signature: 3, centerX: 8, centerY: 8, width: 8, height: 8},
			),
			want: []testBlock{
				{signature: 3, centerX: 8, centerY: 8, width: 8, height: 8},
			},
		},
		{
			name: "leading garbage",
			stream: append(append([]byte{0x5a}, appendWord(nil, StartWord)...),
				frameStream(testBlock{signature: 5, centerX: 4, centerY: 3, width: 2, height: 1})...),
			want: []testBlock{
				{signature: 5, centerX: 4, centerY: 3, width: 2, height: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byWord, _ := decodeStream(t, tt.stream)
			byByte, _ := decodeStream(t, tt.stream, WithByteTransactions())

			checkBlocks(t, byWord, tt.want)
			checkBlocks(t, byByte, tt.want)
		})
	}
}
