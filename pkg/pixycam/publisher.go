// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import "sync"

// batchSlot is the single guarded hand-off point between the decoder and the
// polling consumer. Each publish fully replaces any unconsumed prior batch
// (latest-wins); a poll takes and clears the slot. A nil return is the "no
// new batch" sentinel. An empty frame is never published, so a non-nil batch
// always holds at least one block.
type batchSlot struct {
	mu     sync.Mutex
	blocks []ObjectBlock
}

func (s *batchSlot) publish(blocks []ObjectBlock) {
	s.mu.Lock()
	s.blocks = blocks
	s.mu.Unlock()
}

func (s *batchSlot) take() []ObjectBlock {
	s.mu.Lock()
	blocks := s.blocks
	s.blocks = nil
	s.mu.Unlock()
	return blocks
}
