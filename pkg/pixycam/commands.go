// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import "fmt"

// Command builder functions create wire-ready command buffers. They are pure
// encoders with no shared state; the Camera's Set* methods wrap them with
// the actual transport write.

// LEDCommand builds a set-LED command buffer.
// Wire format: [0x00 0xFD red green blue].
func LEDCommand(red, green, blue byte) []byte {
	return []byte{0x00, cmdSetLED, red, green, blue}
}

// BrightnessCommand builds a set-brightness command buffer.
// Wire format: [0x00 0xFE brightness].
func BrightnessCommand(brightness byte) []byte {
	return []byte{0x00, cmdSetBrightness, brightness}
}

// PanTiltCommand builds a set-pan/tilt command buffer. Both servo positions
// must be in [PanTiltMin, PanTiltMax]; out-of-range values are rejected with
// ErrInvalidArgument before any buffer is built.
// Wire format: [0x00 0xFF panLow panHigh tiltLow tiltHigh].
func PanTiltCommand(pan, tilt int) ([]byte, error) {
	if pan < PanTiltMin || pan > PanTiltMax || tilt < PanTiltMin || tilt > PanTiltMax {
		return nil, fmt.Errorf("%w: pan/tilt %d/%d out of range [%d,%d]",
			ErrInvalidArgument, pan, tilt, PanTiltMin, PanTiltMax)
	}
	return []byte{
		0x00, cmdSetPanTilt,
		byte(pan & 0xff), byte(pan >> 8),
		byte(tilt & 0xff), byte(tilt >> 8),
	}, nil
}
