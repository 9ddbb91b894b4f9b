// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sightline-robotics/pixyscope/pkg/pixycam"
)

var recordPath string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Stream detected objects in human-readable format",
	Long: `Continuously decode and display detected object batches as they arrive.

Each published frame is shown with a timestamp and one line per object.
Decode statistics are printed on exit. With --record, every published batch
is also appended to a CBOR capture file for later inspection with replay.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().StringVar(&recordPath, "record", "", "Write published batches to a capture file")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	dev, connInfo, err := openTransport()
	if err != nil {
		return err
	}
	defer dev.Close()

	cam := newCamera(dev)

	var capture *pixycam.CaptureWriter
	if recordPath != "" {
		f, err := os.Create(recordPath)
		if err != nil {
			return fmt.Errorf("create capture file: %w", err)
		}
		defer f.Close()

		capture, err = pixycam.NewCaptureWriter(f, connInfo)
		if err != nil {
			return err
		}
		logger.Info().Str("session", capture.Header().Session).Str("path", recordPath).Msg("recording capture")
	}

	fmt.Printf("Pixyscope - Object Stream Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	cam.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	// The Pixy publishes frames at 50 Hz; poll at the same cadence.
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			fmt.Print("\n" + cam.Stats().String())
			return nil

		case <-ticker.C:
			if err := cam.Err(); err != nil {
				return err
			}

			blocks := cam.DetectedObjects()
			if blocks == nil {
				continue
			}

			fmt.Print(pixycam.FormatBatch(time.Now(), blocks))
			if capture != nil {
				if err := capture.WriteBatch(blocks); err != nil {
					return err
				}
			}
		}
	}
}
