package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LelouchOTR/genie-test-cases/pkg/generator"
)

var rootCmd = &cobra.Command{
	Use:   "gentests",
	Short: "Deterministic test data generator for sequencing formats",
	Long: `gentests produces a fixed catalog of small FASTQ, SAM, and BAM files
covering the edge cases of the formats: CIGAR operator coverage, flag
combinations, mate orientation, compression, empty reads, and circular
references.

Every case lands in its own directory together with a README describing
it, and repeated runs with the same inputs write identical bytes.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gentests version %s\n", generator.Version)
	},
}
