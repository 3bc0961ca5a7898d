package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
	"github.com/LelouchOTR/genie-test-cases/pkg/generator"
)

var (
	outDir          string
	selectedIDs     []string
	referenceSet    string
	skipUnsupported bool
	configPath      string
	verbose         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the test data catalog",
	Long: `Generate writes the catalog of test fixtures, one directory per case.

A failing case does not stop the run: the remaining cases are still
generated and the command reports every failure at the end. Formats the
serialization library cannot produce (CRAM) count as failures unless
--skip-unsupported downgrades them to skips.

Examples:
  # Everything, into ./test_data
  gentests generate

  # A subset, somewhere else
  gentests generate --out /tmp/fixtures --ids SAM_06,SAM_09

  # Tolerate formats without a writer
  gentests generate --skip-unsupported`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := generator.LoadConfig(configPath)
		if err != nil {
			return err
		}

		// Flags override file values.
		if outDir != "" {
			cfg.OutputDir = outDir
		}
		if len(selectedIDs) > 0 {
			cfg.SelectedIDs = selectedIDs
		}
		if referenceSet != "" {
			cfg.ReferenceSet = referenceSet
		}
		if skipUnsupported {
			cfg.SkipUnsupported = true
		}

		logger := log.New(os.Stderr)
		if verbose {
			logger.SetLevel(log.InfoLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		sum, err := generator.GenerateAll(cat, cfg, logger)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d of %d cases (%d skipped, %d failed) in %s\n",
			sum.Generated, len(sum.Results), sum.Skipped, sum.Failed, cfg.OutputDir)
		if sum.Failed > 0 {
			return fmt.Errorf("%d of %d cases failed", sum.Failed, len(sum.Results))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&outDir, "out", "",
		"Output directory (default \"test_data\")")
	generateCmd.Flags().StringSliceVar(&selectedIDs, "ids", nil,
		"Generate only these case identifiers (default: all)")
	generateCmd.Flags().StringVar(&referenceSet, "reference-set", "",
		"Reference sequence set to align against (default \"default\")")
	generateCmd.Flags().BoolVar(&skipUnsupported, "skip-unsupported", false,
		"Skip formats without a writer instead of failing")
	generateCmd.Flags().StringVar(&configPath, "config", "",
		"JSON config file; flags override its values")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every generated case")
}
