// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

// Package pixycam implements the Pixy (CMUcam5) object block stream protocol.
//
// The Pixy reports detected objects as checksum-protected binary blocks,
// streamed continuously over I2C or serial. This package provides the frame
// decoder, batch hand-off to a polling consumer, and the device command
// encoders (LED, brightness, pan/tilt). Transports are pluggable via the
// Transport interface; see the transport package for the bus bindings.
package pixycam

// Sync words. Fields are 16-bit little-endian on the wire, so a plain block
// start reads as the bytes 0x55 0xAA.
const (
	StartWord        = 0xaa55 // plain block, 10-byte body
	StartWordCC      = 0xaa56 // color-coded block, 12-byte body (extra angle field)
	StartWordSwapped = 0x55aa // sync seen one byte out of phase
)

// Sync bytes for the byte-granularity strategy.
const (
	SyncLowByte   byte = 0x55
	SyncLowCCByte byte = 0x56
	SyncHighByte  byte = 0xaa
)

// Block body sizes in bytes, excluding sync and checksum.
const (
	normalBlockSize    = 10
	colorCodeBlockSize = 12
)

// Device command opcodes. Every command buffer starts with a zero byte
// followed by the opcode.
const (
	cmdSetLED        byte = 0xfd
	cmdSetBrightness byte = 0xfe
	cmdSetPanTilt    byte = 0xff
)

// Valid range for SetPanTilt servo positions.
const (
	PanTiltMin = 0
	PanTiltMax = 1000
)

// Signature range accepted by the byte-granularity strategy.
const (
	minSignature = 1
	maxSignature = 7
)

// Bus defaults for the CMUcam5.
const (
	DefaultI2CAddress = 0x54
	DefaultBaudRate   = 19200
)

// RequestTag identifies what a pending transport request represents. The
// decoder issues every read with a tag and interprets the completion
// according to it, so the tag vocabulary doubles as the decoder's state
// space. The first group belongs to the word-granularity strategy, the
// second to the byte-granularity strategy; a camera instance uses exactly
// one group for its lifetime.
type RequestTag int

const (
	TagNone RequestTag = iota

	// Word-granularity tags.
	TagSync
	TagAlign
	TagChecksum
	TagNormalBlock
	TagColorCodeBlock

	// Byte-granularity tags.
	TagSyncLow
	TagSyncHigh
	TagChecksumLow
	TagChecksumHigh
	TagSignatureLow
	TagSignatureHigh
	TagCenterXLow
	TagCenterXHigh
	TagCenterYLow
	TagCenterYHigh
	TagWidthLow
	TagWidthHigh
	TagHeightLow
	TagHeightHigh
	TagAngleLow
	TagAngleHigh
)

// String returns the tag name for logs and errors.
func (t RequestTag) String() string {
	switch t {
	case TagNone:
		return "NONE"
	case TagSync:
		return "SYNC"
	case TagAlign:
		return "ALIGN"
	case TagChecksum:
		return "CHECKSUM"
	case TagNormalBlock:
		return "NORMAL_BLOCK"
	case TagColorCodeBlock:
		return "COLOR_CODE_BLOCK"
	case TagSyncLow:
		return "SYNC_LOW"
	case TagSyncHigh:
		return "SYNC_HIGH"
	case TagChecksumLow:
		return "CHECKSUM_LOW"
	case TagChecksumHigh:
		return "CHECKSUM_HIGH"
	case TagSignatureLow:
		return "SIGNATURE_LOW"
	case TagSignatureHigh:
		return "SIGNATURE_HIGH"
	case TagCenterXLow:
		return "CENTERX_LOW"
	case TagCenterXHigh:
		return "CENTERX_HIGH"
	case TagCenterYLow:
		return "CENTERY_LOW"
	case TagCenterYHigh:
		return "CENTERY_HIGH"
	case TagWidthLow:
		return "WIDTH_LOW"
	case TagWidthHigh:
		return "WIDTH_HIGH"
	case TagHeightLow:
		return "HEIGHT_LOW"
	case TagHeightHigh:
		return "HEIGHT_HIGH"
	case TagAngleLow:
		return "ANGLE_LOW"
	case TagAngleHigh:
		return "ANGLE_HIGH"
	default:
		return "UNKNOWN"
	}
}
