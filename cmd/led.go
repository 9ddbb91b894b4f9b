// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var ledCmd = &cobra.Command{
	Use:   "led <red> <green> <blue>",
	Short: "Set the camera's RGB LED color",
	Long: `Set the camera's RGB LED to the given color, each channel 0-255.

Example: pixyscope --port /dev/ttyUSB0 led 255 0 64`,
	Args: cobra.ExactArgs(3),
	RunE: runLED,
}

func init() {
	rootCmd.AddCommand(ledCmd)
}

func parseChannel(arg, name string) (byte, error) {
	v, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: must be 0-255", name, arg)
	}
	return byte(v), nil
}

func runLED(cmd *cobra.Command, args []string) error {
	red, err := parseChannel(args[0], "red")
	if err != nil {
		return err
	}
	green, err := parseChannel(args[1], "green")
	if err != nil {
		return err
	}
	blue, err := parseChannel(args[2], "blue")
	if err != nil {
		return err
	}

	dev, connInfo, err := openTransport()
	if err != nil {
		return err
	}
	defer dev.Close()

	cam := newCamera(dev)
	cam.SetLED(red, green, blue)
	dev.Drain()

	logger.Info().Str("connection", connInfo).
		Uint8("red", red).Uint8("green", green).Uint8("blue", blue).
		Msg("LED color set")
	return nil
}
