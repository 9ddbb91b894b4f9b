// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

// wordDecoder walks the stream two bytes at a time. Its states are the tags
// it issues reads with: AWAIT_SYNC -> AWAIT_CHECKSUM -> AWAIT_BODY and back,
// with a one-byte AWAIT_ALIGN detour when the sync word arrives byte-swapped
// (the stream is one byte out of phase; the half already read is kept).
type wordDecoder struct {
	cam *Camera
}

func (d *wordDecoder) start() {
	d.cam.read(TagSync, 2)
}

func (d *wordDecoder) resync() {
	d.cam.read(TagSync, 2)
}

func (d *wordDecoder) process(tag RequestTag, data []byte) error {
	c := d.cam
	a := c.asm

	switch tag {
	case TagSync:
		if len(data) != 2 {
			// Probably a truncated device read. Hunt for sync again.
			c.read(TagSync, 2)
			c.log.Warn().Int("len", len(data)).Stringer("tag", tag).Msg("unexpected read length")
			return nil
		}
		word := word16(data[0], data[1])
		switch {
		case word == StartWord || word == StartWordCC:
			a.begin(word)
			c.read(TagChecksum, 2)
		case word == StartWordSwapped:
			// One byte out of phase. Keep the half already read and recover
			// the other with a single-byte read.
			a.begin(StartWord)
			c.stats.add(&c.stats.realignments)
			c.log.Debug().Msg("word misaligned, realigning")
			c.read(TagAlign, 1)
		default:
			// Not a sync word, throw it away. A zero word is idle bus
			// filler and not worth a warning.
			c.read(TagSync, 2)
			if word != 0 {
				c.stats.add(&c.stats.syncLosses)
				c.log.Warn().Uint16("word", word).Stringer("tag", tag).Msg("unexpected word while hunting sync")
			}
		}

	case TagAlign:
		if len(data) != 1 {
			return violationf(tag, "unexpected read length %d", len(data))
		}
		if data[0] == SyncHighByte {
			c.read(TagChecksum, 2)
		} else {
			// Not the upper sync byte after all. Assume we are word aligned
			// again and hunt for sync.
			c.read(TagSync, 2)
			c.log.Warn().Uint8("byte", data[0]).Stringer("tag", tag).Msg("unexpected byte while realigning")
		}

	case TagChecksum:
		if len(data) != 2 {
			return violationf(tag, "unexpected read length %d", len(data))
		}
		word := word16(data[0], data[1])
		if word == StartWord || word == StartWordCC {
			// A sync word where the checksum belongs is the end-of-frame
			// marker. It is already the next frame's sync, so keep it and
			// read the next checksum directly.
			a.begin(word)
			c.read(TagChecksum, 2)
			c.publishFrame()
			return nil
		}

		a.pending.Checksum = word
		switch a.pending.Sync {
		case StartWord:
			c.read(TagNormalBlock, normalBlockSize)
		case StartWordCC:
			c.read(TagColorCodeBlock, colorCodeBlockSize)
		default:
			return violationf(tag, "unexpected sync word 0x%04x", a.pending.Sync)
		}

	case TagNormalBlock, TagColorCodeBlock:
		want := normalBlockSize
		if tag == TagColorCodeBlock {
			want = colorCodeBlockSize
		}
		if len(data) != want {
			return violationf(tag, "unexpected read length %d", len(data))
		}

		a.resetChecksum()
		a.pending.Signature = a.bodyWord(data, 0)
		a.pending.CenterX = a.bodyWord(data, 2)
		a.pending.CenterY = a.bodyWord(data, 4)
		a.pending.Width = a.bodyWord(data, 6)
		a.pending.Height = a.bodyWord(data, 8)
		if tag == TagColorCodeBlock {
			a.pending.Angle = a.bodyWord(data, 10)
		}
		a.finalize()

		// On to the next block's sync word.
		c.read(TagSync, 2)

	default:
		return violationf(tag, "unexpected request tag")
	}

	return nil
}
