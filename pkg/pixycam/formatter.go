// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"fmt"
	"strconv"
	"time"
)

// FormatSignature renders a block's signature for display. Color code
// signatures are conventionally shown in octal, one digit per color.
func FormatSignature(b ObjectBlock) string {
	if b.IsColorCoded() {
		return "CC " + strconv.FormatUint(uint64(b.Signature), 8)
	}
	return strconv.FormatUint(uint64(b.Signature), 10)
}

// FormatBlock renders one object block as a single human-readable line.
func FormatBlock(b ObjectBlock) string {
	line := fmt.Sprintf("  sig=%-6s pos=(%3d,%3d) size=%3dx%-3d",
		FormatSignature(b), b.CenterX, b.CenterY, b.Width, b.Height)
	if b.IsColorCoded() {
		line += fmt.Sprintf(" angle=%d", b.Angle)
	}
	return line + "\n"
}

// FormatBatch renders a published batch with a timestamp header, one line
// per block in arrival order.
func FormatBatch(ts time.Time, blocks []ObjectBlock) string {
	result := fmt.Sprintf("[%s] %d object(s)\n", ts.Format("15:04:05.000"), len(blocks))
	for _, b := range blocks {
		result += FormatBlock(b)
	}
	return result
}
