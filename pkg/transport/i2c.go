// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package transport

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// i2cConn adapts a periph.io I2C device to the byte stream the Device worker
// expects. Each Read is one bus transaction for exactly len(p) bytes, which
// matches the decoder's exact-length tagged reads.
type i2cConn struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

func (c *i2cConn) Read(p []byte) (int, error) {
	if err := c.dev.Tx(nil, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *i2cConn) Write(p []byte) (int, error) {
	if err := c.dev.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *i2cConn) Close() error {
	return c.bus.Close()
}

// OpenI2C opens the named I2C bus (empty string selects the first available
// one) and wraps the device at addr in a Device. The Pixy answers at 0x54 by
// default (pixycam.DefaultI2CAddress).
func OpenI2C(busName string, addr uint16) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host drivers: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	return NewDevice(&i2cConn{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: addr},
	}), nil
}
