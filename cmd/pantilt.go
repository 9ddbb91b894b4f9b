// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var panTiltCmd = &cobra.Command{
	Use:   "pantilt <pan> <tilt>",
	Short: "Set the pan and tilt servo positions",
	Long: `Set the pan and tilt servo positions, each 0-1000.

Example: pixyscope --port /dev/ttyUSB0 pantilt 500 250`,
	Args: cobra.ExactArgs(2),
	RunE: runPanTilt,
}

func init() {
	rootCmd.AddCommand(panTiltCmd)
}

func runPanTilt(cmd *cobra.Command, args []string) error {
	pan, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pan value %q", args[0])
	}
	tilt, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid tilt value %q", args[1])
	}

	dev, connInfo, err := openTransport()
	if err != nil {
		return err
	}
	defer dev.Close()

	cam := newCamera(dev)
	if err := cam.SetPanTilt(pan, tilt); err != nil {
		return err
	}
	dev.Drain()

	logger.Info().Str("connection", connInfo).Int("pan", pan).Int("tilt", tilt).Msg("pan/tilt set")
	return nil
}
