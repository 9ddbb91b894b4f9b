// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package pixycam

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Capture files hold a decoded session for offline replay: one CBOR-encoded
// CaptureHeader followed by a CaptureRecord per published batch. CBOR keeps
// the files compact and self-describing without a schema compiler.

// CaptureHeader identifies one capture session.
type CaptureHeader struct {
	Session    string    `cbor:"1,keyasint"`
	Started    time.Time `cbor:"2,keyasint"`
	Connection string    `cbor:"3,keyasint"`
}

// CaptureRecord is one published batch with its capture timestamp.
type CaptureRecord struct {
	Timestamp time.Time     `cbor:"1,keyasint"`
	Blocks    []ObjectBlock `cbor:"2,keyasint"`
}

// CaptureWriter streams capture records to w.
type CaptureWriter struct {
	enc    *cbor.Encoder
	header CaptureHeader
}

// NewCaptureWriter writes a session header for the given connection
// description and returns a writer for the batch records. Each session gets
// a fresh random identifier.
func NewCaptureWriter(w io.Writer, connection string) (*CaptureWriter, error) {
	cw := &CaptureWriter{
		enc: cbor.NewEncoder(w),
		header: CaptureHeader{
			Session:    uuid.NewString(),
			Started:    time.Now(),
			Connection: connection,
		},
	}
	if err := cw.enc.Encode(cw.header); err != nil {
		return nil, fmt.Errorf("write capture header: %w", err)
	}
	return cw, nil
}

// Header returns the session header that was written.
func (w *CaptureWriter) Header() CaptureHeader {
	return w.header
}

// WriteBatch appends one published batch to the capture.
func (w *CaptureWriter) WriteBatch(blocks []ObjectBlock) error {
	rec := CaptureRecord{Timestamp: time.Now(), Blocks: blocks}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("write capture record: %w", err)
	}
	return nil
}

// CaptureReader reads a capture file back.
type CaptureReader struct {
	dec    *cbor.Decoder
	header CaptureHeader
}

// NewCaptureReader reads the session header and positions the reader at the
// first record.
func NewCaptureReader(r io.Reader) (*CaptureReader, error) {
	cr := &CaptureReader{dec: cbor.NewDecoder(r)}
	if err := cr.dec.Decode(&cr.header); err != nil {
		return nil, fmt.Errorf("read capture header: %w", err)
	}
	return cr, nil
}

// Header returns the capture's session header.
func (r *CaptureReader) Header() CaptureHeader {
	return r.header
}

// Next returns the next record, or io.EOF after the last one.
func (r *CaptureReader) Next() (CaptureRecord, error) {
	var rec CaptureRecord
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return CaptureRecord{}, io.EOF
		}
		return CaptureRecord{}, fmt.Errorf("read capture record: %w", err)
	}
	return rec, nil
}
