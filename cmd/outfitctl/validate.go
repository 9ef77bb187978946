package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"boutique-backend/internal/outfits"
)

func newValidateCmd() *cobra.Command {
	var (
		candidates []string
		input      string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a saved generation output against candidate ids",
		Long: `Parses a stored generation output (JSON, optionally fenced) and runs the
recommendation validator offline. Use --input - to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), outfits.ValidateOutput(candidates, raw))
		},
	}
	cmd.Flags().StringSliceVar(&candidates, "candidates", nil, "candidate item ids (comma separated)")
	cmd.Flags().StringVar(&input, "input", "-", "path to the generation output, or - for stdin")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
