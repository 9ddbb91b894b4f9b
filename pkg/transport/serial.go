// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// OpenSerial opens a serial port at 8N1 and wraps it in a Device. The Pixy
// talks 19200 baud by default (pixycam.DefaultBaudRate).
func OpenSerial(portName string, baudRate int) (*Device, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}

	return NewDevice(port), nil
}
