// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics
//
// Pixyscope - Pixy (CMUcam5) object stream monitor
//
// A CLI tool for decoding the Pixy camera's object block stream and driving
// its LED, brightness and pan/tilt commands over serial, I2C or a WebSocket
// byte bridge.

package main

import (
	"os"

	"github.com/sightline-robotics/pixyscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
