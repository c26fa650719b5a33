package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/frm/casemock/internal/generator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed        int64
		count       int
		outputDir   string
		writeStdout bool
	)

	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate case management fixtures as JSON",
		Long: `Generate the same records the mock API serves and write them as fixtures.

Examples:
  # Write cases.json, comments.json, ... into ./data
  datagen --count 50

  # Reproducible dataset on stdout
  datagen --seed 42 --stdout`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			gen := generator.New(rand.NewSource(seed), nil)
			dataset, err := gen.Dataset(ctx, count)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if writeStdout {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(dataset); err != nil {
					return fmt.Errorf("write dataset to stdout: %w", err)
				}
				return nil
			}

			if err := generator.WriteDataset(ctx, dataset, outputDir); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d records of each entity into %s\n", count, outputDir)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for deterministic generation (0 uses the clock)")
	cmd.Flags().IntVar(&count, "count", 100, "number of records to generate per entity")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "data", "directory to write the JSON fixtures into")
	cmd.Flags().BoolVar(&writeStdout, "stdout", false, "write the combined dataset to stdout instead of files")
	return cmd
}
