// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// I2C connection flags
	useI2C  bool
	i2cBus  string
	i2cAddr uint16

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Decoder flags
	byteMode bool

	configPath string
	logLevel   string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pixyscope",
	Short: "Pixy object stream monitor",
	Long: `Pixyscope - A CLI tool for the Pixy (CMUcam5) object tracking camera.

Decodes the camera's continuous object block stream into per-frame batches
and provides one-shot commands for the LED, brightness and pan/tilt servos.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 19200]
  I2C:       --i2c [--i2c-bus /dev/i2c-1] [--i2c-addr 0x54]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the PIXYSCOPE_PASSWORD
environment variable, or prompted interactively if not set.`,
	Version:           "1.2.0",
	PersistentPreRunE: setup,
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 19200, "Baud rate (serial only)")

	// I2C connection flags
	rootCmd.PersistentFlags().BoolVar(&useI2C, "i2c", false, "Connect over I2C")
	rootCmd.PersistentFlags().StringVar(&i2cBus, "i2c-bus", "", "I2C bus name (default: first available)")
	rootCmd.PersistentFlags().Uint16Var(&i2cAddr, "i2c-addr", 0x54, "I2C device address")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().BoolVar(&byteMode, "byte-mode", false, "Issue single-byte bus transactions")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
}

// setup overlays the config file onto unset flags and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := applyConfig(cmd, path, configPath != ""); err != nil {
			return err
		}
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger = zerolog.New(output).Level(level).With().Timestamp().Str("app", "pixyscope").Logger()

	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
