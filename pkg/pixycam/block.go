// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import "fmt"

// ObjectBlock is one decoded detection record. Angle is only meaningful for
// color-coded blocks (Sync == StartWordCC); on a plain block it is normally
// zero, but can hold a stale value when the decoder reused a dropped
// color-coded candidate. Blocks are immutable once published; they are owned
// by the batch that contains them.
type ObjectBlock struct {
	Sync      uint16
	Checksum  uint16
	Signature uint16
	CenterX   uint16
	CenterY   uint16
	Width     uint16
	Height    uint16
	Angle     uint16
}

// IsColorCoded reports whether the block carries a color code signature and
// an angle field.
func (b ObjectBlock) IsColorCoded() bool {
	return b.Sync == StartWordCC
}

func (b ObjectBlock) String() string {
	return fmt.Sprintf(
		"sync=0x%04x, chksum=0x%04x, sig=%d, centerX=%3d, centerY=%3d, width=%3d, height=%3d, angle=%3d",
		b.Sync, b.Checksum, b.Signature, b.CenterX, b.CenterY, b.Width, b.Height, b.Angle)
}
