package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LelouchOTR/genie-test-cases/pkg/refseq"
)

var (
	refsOut string
	refsSet string
)

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Write the reference FASTA files on their own",
	Long: `Write the reference sequences of a set as indexed FASTA, without
generating any test cases. Useful when fixtures were produced without
shipped references and a tool under test needs them later.

Example:
  gentests refs --out ./refs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := refseq.Lookup(refsSet)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(refsOut, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", refsOut, err)
		}

		paths, err := refseq.WriteSet(refsOut, set)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	refsCmd.Flags().StringVar(&refsOut, "out", ".",
		"Directory to write the FASTA files into")
	refsCmd.Flags().StringVar(&refsSet, "reference-set", "",
		"Reference sequence set to write (default \"default\")")
}
