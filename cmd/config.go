// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig maps pixyscope config.toml keys to connection settings. Every
// key is optional; flags given on the command line win over the file.
type fileConfig struct {
	Port       string `toml:"port"`
	Baud       int    `toml:"baud"`
	I2C        bool   `toml:"i2c"`
	I2CBus     string `toml:"i2c_bus"`
	I2CAddress uint16 `toml:"i2c_address"`
	URL        string `toml:"url"`
	Username   string `toml:"username"`
	ByteMode   bool   `toml:"byte_mode"`
	LogLevel   string `toml:"log_level"`
}

// defaultConfigPath returns the conventional config location if a file
// exists there, or "".
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "pixyscope", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// applyConfig overlays the file's values onto every flag the user did not
// set explicitly. A missing file is only an error when it was requested via
// --config.
func applyConfig(cmd *cobra.Command, path string, explicit bool) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}

	flags := cmd.Root().PersistentFlags()

	if meta.IsDefined("port") && !flags.Changed("port") {
		portName = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") && !flags.Changed("baud") {
		baudRate = raw.Baud
	}
	if meta.IsDefined("i2c") && !flags.Changed("i2c") {
		useI2C = raw.I2C
	}
	if meta.IsDefined("i2c_bus") && !flags.Changed("i2c-bus") {
		i2cBus = strings.TrimSpace(raw.I2CBus)
	}
	if meta.IsDefined("i2c_address") && !flags.Changed("i2c-addr") {
		i2cAddr = raw.I2CAddress
	}
	if meta.IsDefined("url") && !flags.Changed("url") {
		wsURL = strings.TrimSpace(raw.URL)
	}
	if meta.IsDefined("username") && !flags.Changed("username") {
		wsUsername = strings.TrimSpace(raw.Username)
	}
	if meta.IsDefined("byte_mode") && !flags.Changed("byte-mode") {
		byteMode = raw.ByteMode
	}
	if meta.IsDefined("log_level") && !flags.Changed("log-level") {
		logLevel = strings.TrimSpace(raw.LogLevel)
	}

	return nil
}
