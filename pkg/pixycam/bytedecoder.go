// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

// byteDecoder walks the stream one byte at a time, for transports that
// cannot deliver paired reads atomically. Each 16-bit field is assembled
// from a LOW/HIGH tag pair; the walk is otherwise the same protocol as the
// word decoder and publishes identical batches for identical bytes.
//
// Unlike the word strategy, this one validates the signature range before
// committing to the rest of the block; an out-of-range signature aborts the
// candidate and forces resynchronization.
type byteDecoder struct {
	cam *Camera
}

func (d *byteDecoder) start() {
	d.cam.read(TagSyncLow, 1)
}

func (d *byteDecoder) resync() {
	d.cam.read(TagSyncLow, 1)
}

func (d *byteDecoder) process(tag RequestTag, data []byte) error {
	c := d.cam
	a := c.asm

	if len(data) != 1 {
		// Probably a truncated device read. Hunt for sync again.
		c.read(TagSyncLow, 1)
		c.log.Warn().Int("len", len(data)).Stringer("tag", tag).Msg("unexpected read length")
		return nil
	}
	b := data[0]

	switch tag {
	case TagSyncLow:
		if b == SyncLowByte || b == SyncLowCCByte {
			a.begin(uint16(b))
			c.read(TagSyncHigh, 1)
		} else {
			c.read(TagSyncLow, 1)
			if b != 0 {
				c.stats.add(&c.stats.syncLosses)
				c.log.Warn().Uint8("byte", b).Stringer("tag", tag).Msg("unexpected byte while hunting sync")
			}
		}

	case TagSyncHigh:
		if b == SyncHighByte {
			a.pending.Sync = word16(byte(a.pending.Sync), b)
			c.read(TagChecksumLow, 1)
		} else {
			// Not a sync word after all, discard it.
			c.read(TagSyncLow, 1)
			c.log.Warn().Uint8("byte", b).Stringer("tag", tag).Msg("unexpected sync high byte")
		}

	case TagChecksumLow:
		a.pending.Checksum = uint16(b)
		c.read(TagChecksumHigh, 1)

	case TagChecksumHigh:
		a.pending.Checksum = word16(byte(a.pending.Checksum), b)
		if a.pending.Checksum == StartWord || a.pending.Checksum == StartWordCC {
			// Not a checksum but the end-of-frame marker. It is already the
			// next frame's sync word, so keep it and read the next checksum.
			a.pending.Sync = a.pending.Checksum
			c.read(TagChecksumLow, 1)
			c.publishFrame()
			return nil
		}
		c.read(TagSignatureLow, 1)

	case TagSignatureLow:
		a.resetChecksum()
		a.pending.Signature = uint16(b)
		c.read(TagSignatureHigh, 1)

	case TagSignatureHigh:
		a.pending.Signature = word16(byte(a.pending.Signature), b)
		a.accumulate(a.pending.Signature)
		if a.pending.Signature < minSignature || a.pending.Signature > maxSignature {
			// Not a plausible signature; abort the candidate block.
			c.read(TagSyncLow, 1)
			c.stats.add(&c.stats.badSignatures)
			c.log.Warn().Uint16("signature", a.pending.Signature).Stringer("tag", tag).Msg("signature out of range")
		} else {
			c.read(TagCenterXLow, 1)
		}

	case TagCenterXLow:
		a.pending.CenterX = uint16(b)
		c.read(TagCenterXHigh, 1)

	case TagCenterXHigh:
		a.pending.CenterX = word16(byte(a.pending.CenterX), b)
		a.accumulate(a.pending.CenterX)
		c.read(TagCenterYLow, 1)

	case TagCenterYLow:
		a.pending.CenterY = uint16(b)
		c.read(TagCenterYHigh, 1)

	case TagCenterYHigh:
		a.pending.CenterY = word16(byte(a.pending.CenterY), b)
		a.accumulate(a.pending.CenterY)
		c.read(TagWidthLow, 1)

	case TagWidthLow:
		a.pending.Width = uint16(b)
		c.read(TagWidthHigh, 1)

	case TagWidthHigh:
		a.pending.Width = word16(byte(a.pending.Width), b)
		a.accumulate(a.pending.Width)
		c.read(TagHeightLow, 1)

	case TagHeightLow:
		a.pending.Height = uint16(b)
		c.read(TagHeightHigh, 1)

	case TagHeightHigh:
		a.pending.Height = word16(byte(a.pending.Height), b)
		a.accumulate(a.pending.Height)
		if a.pending.Sync == StartWordCC {
			c.read(TagAngleLow, 1)
		} else {
			a.finalize()
			c.read(TagSyncLow, 1)
		}

	case TagAngleLow:
		a.pending.Angle = uint16(b)
		c.read(TagAngleHigh, 1)

	case TagAngleHigh:
		a.pending.Angle = word16(byte(a.pending.Angle), b)
		a.accumulate(a.pending.Angle)
		a.finalize()
		c.read(TagSyncLow, 1)

	default:
		return violationf(tag, "unexpected request tag")
	}

	return nil
}
