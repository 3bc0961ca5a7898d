package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the test cases in the catalog",
	Long: `List every test case the generator knows, in the order they are
generated.

Example:
  gentests list
  gentests list --format bam`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		fmt.Printf("%-10s %-6s %s\n", "ID", "FORMAT", "TITLE")
		count := 0
		for _, spec := range cat.All() {
			if listFormat != "" && string(spec.Format) != listFormat {
				continue
			}
			fmt.Printf("%-10s %-6s %s\n", spec.ID, spec.Format, spec.Title)
			count++
		}
		fmt.Printf("\n%d cases\n", count)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "",
		"Show only cases of this format: fastq, sam, bam, cram")
}
