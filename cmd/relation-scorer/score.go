// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/relation-scorer/internal/scorer"
	"github.com/pdiddy/relation-scorer/internal/validate"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one relationship from an input bundle",
	Long: `Score reads a JSON input bundle (relationship mentions plus entity
metadata for both sides), computes the evidence strength, sentiment, and
trend scores, and writes the combined result as JSON to stdout.

The bundle is validated strictly: unknown fields and out-of-contract
values are rejected with every violation listed.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	pretty, _ := cmd.Flags().GetBool("pretty")

	var reader io.Reader = cmd.InOrStdin()
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input bundle: %w", err)
		}
		defer f.Close()
		reader = f
	}

	input, err := validate.DecodeInput(reader)
	if err != nil {
		return err
	}

	s, err := scorer.New(input)
	if err != nil {
		return err
	}

	result, err := s.AllScores()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func init() {
	scoreCmd.Flags().String("input", "", "path to the JSON input bundle (default: stdin)")
	scoreCmd.Flags().Bool("pretty", false, "indent the JSON output")

	rootCmd.AddCommand(scoreCmd)
}
