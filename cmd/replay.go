// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sightline-robotics/pixyscope/pkg/pixycam"
)

var replayCmd = &cobra.Command{
	Use:   "replay <capture-file>",
	Short: "Print a recorded capture file",
	Long: `Decode a capture file written by 'monitor --record' and print every
batch it contains, using the capture timestamps.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open capture file: %w", err)
	}
	defer f.Close()

	reader, err := pixycam.NewCaptureReader(f)
	if err != nil {
		return err
	}

	header := reader.Header()
	fmt.Printf("Capture session %s\n", header.Session)
	fmt.Printf("Recorded %s via %s\n\n", header.Started.Format("2006-01-02 15:04:05"), header.Connection)

	batches, objects := 0, 0
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		fmt.Print(pixycam.FormatBatch(rec.Timestamp, rec.Blocks))
		batches++
		objects += len(rec.Blocks)
	}

	fmt.Printf("\n%d batch(es), %d object(s)\n", batches, objects)
	return nil
}
