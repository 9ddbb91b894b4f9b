// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"github.com/spf13/cobra"
)

var brightnessCmd = &cobra.Command{
	Use:   "brightness <value>",
	Short: "Set the camera brightness",
	Long: `Set the camera (exposure) brightness, 0-255.

Example: pixyscope --port /dev/ttyUSB0 brightness 128`,
	Args: cobra.ExactArgs(1),
	RunE: runBrightness,
}

func init() {
	rootCmd.AddCommand(brightnessCmd)
}

func runBrightness(cmd *cobra.Command, args []string) error {
	value, err := parseChannel(args[0], "brightness")
	if err != nil {
		return err
	}

	dev, connInfo, err := openTransport()
	if err != nil {
		return err
	}
	defer dev.Close()

	cam := newCamera(dev)
	cam.SetBrightness(value)
	dev.Drain()

	logger.Info().Str("connection", connInfo).Uint8("brightness", value).Msg("brightness set")
	return nil
}
