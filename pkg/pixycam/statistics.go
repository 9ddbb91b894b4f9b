// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"fmt"
	"sync"
	"time"
)

// Statistics tracks decode counters and error rates for one camera instance.
// The counters are updated from the transport's completion callback and may
// be snapshotted from any goroutine.
type Statistics struct {
	mu sync.Mutex

	startTime time.Time

	framesPublished uint64
	blocksAccepted  uint64
	checksumErrors  uint64
	syncLosses      uint64
	realignments    uint64
	badSignatures   uint64
	failedReads     uint64
}

// StatsSnapshot is a point-in-time copy of the decode counters.
type StatsSnapshot struct {
	StartTime time.Time

	FramesPublished uint64
	BlocksAccepted  uint64
	ChecksumErrors  uint64
	SyncLosses      uint64
	Realignments    uint64
	BadSignatures   uint64
	FailedReads     uint64

	FrameRate float64 // frames/sec
	BlockRate float64 // blocks/sec
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

func (s *Statistics) add(field *uint64) {
	s.mu.Lock()
	*field++
	s.mu.Unlock()
}

// Snapshot returns a copy of the counters with rates calculated.
func (s *Statistics) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := StatsSnapshot{
		StartTime:       s.startTime,
		FramesPublished: s.framesPublished,
		BlocksAccepted:  s.blocksAccepted,
		ChecksumErrors:  s.checksumErrors,
		SyncLosses:      s.syncLosses,
		Realignments:    s.realignments,
		BadSignatures:   s.badSignatures,
		FailedReads:     s.failedReads,
	}

	elapsed := time.Since(s.startTime).Seconds()
	if elapsed > 0 {
		out.FrameRate = float64(out.FramesPublished) / elapsed
		out.BlockRate = float64(out.BlocksAccepted) / elapsed
	}

	return out
}

// Reset resets all counters.
func (s *Statistics) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startTime = time.Now()
	s.framesPublished = 0
	s.blocksAccepted = 0
	s.checksumErrors = 0
	s.syncLosses = 0
	s.realignments = 0
	s.badSignatures = 0
	s.failedReads = 0
}

// String returns a formatted statistics summary.
func (s *Statistics) String() string {
	return s.Snapshot().String()
}

// String returns a formatted statistics summary.
func (s StatsSnapshot) String() string {
	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Frames Published:%8d\n", s.FramesPublished)
	result += fmt.Sprintf("Blocks Accepted: %8d\n", s.BlocksAccepted)

	if s.ChecksumErrors > 0 {
		result += fmt.Sprintf("Checksum Errors: %8d\n", s.ChecksumErrors)
	}
	if s.SyncLosses > 0 {
		result += fmt.Sprintf("Sync Losses:     %8d\n", s.SyncLosses)
	}
	if s.Realignments > 0 {
		result += fmt.Sprintf("Realignments:    %8d\n", s.Realignments)
	}
	if s.BadSignatures > 0 {
		result += fmt.Sprintf("Bad Signatures:  %8d\n", s.BadSignatures)
	}
	if s.FailedReads > 0 {
		result += fmt.Sprintf("Failed Reads:    %8d\n", s.FailedReads)
	}

	result += fmt.Sprintf("Frame Rate:      %8.1f frames/sec\n", s.FrameRate)
	result += fmt.Sprintf("Block Rate:      %8.1f blocks/sec\n", s.BlockRate)
	result += "================================\n"

	return result
}
