// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/sightline-robotics/pixyscope/pkg/pixycam"
	"github.com/sightline-robotics/pixyscope/pkg/transport"
)

// openTransport opens the device selected by the connection flags.
func openTransport() (*transport.Device, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = getPassword()
			if err != nil {
				return nil, "", err
			}
		}

		dev, err := transport.OpenWebSocket(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}
		return dev, fmt.Sprintf("WebSocket: %s", wsURL), nil
	}

	if portName != "" {
		dev, err := transport.OpenSerial(portName, baudRate)
		if err != nil {
			return nil, "", err
		}
		return dev, fmt.Sprintf("Serial: %s @ %d baud", portName, baudRate), nil
	}

	if useI2C {
		dev, err := transport.OpenI2C(i2cBus, i2cAddr)
		if err != nil {
			return nil, "", err
		}
		bus := i2cBus
		if bus == "" {
			bus = "default"
		}
		return dev, fmt.Sprintf("I2C: bus %s addr 0x%02X", bus, i2cAddr), nil
	}

	return nil, "", fmt.Errorf("one of --port, --i2c or --url must be specified")
}

// newCamera constructs a camera on the device with the decoder flags applied.
func newCamera(dev *transport.Device) *pixycam.Camera {
	opts := []pixycam.Option{pixycam.WithLogger(logger)}
	if byteMode {
		opts = append(opts, pixycam.WithByteTransactions())
	}
	return pixycam.New(dev, opts...)
}

// getPassword retrieves the WebSocket password from the environment or
// prompts for it without echo.
func getPassword() (string, error) {
	if pw := os.Getenv("PIXYSCOPE_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}
