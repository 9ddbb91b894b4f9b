// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a command parameter is out of range.
// The command is rejected before any I/O is issued.
var ErrInvalidArgument = errors.New("invalid argument")

// ProtocolViolationError reports a tag/length combination the decoder's own
// request chain should never produce. Unlike device noise (bad sync words,
// checksum mismatches), a violation signals a logic defect in the decoder or
// the transport, so the camera stops issuing reads and surfaces the error
// through Camera.Err.
type ProtocolViolationError struct {
	Tag    RequestTag
	Detail string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation in %s: %s", e.Tag, e.Detail)
}

func violationf(tag RequestTag, format string, args ...interface{}) error {
	return &ProtocolViolationError{Tag: tag, Detail: fmt.Sprintf(format, args...)}
}
