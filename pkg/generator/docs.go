package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
)

// writeCaseReadme drops a README.md beside the generated files describing
// what the case contains.
func writeCaseReadme(dir string, spec catalog.Spec, files []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## Test Case: %s\n\n", spec.ID)
	fmt.Fprintf(&b, "**Title:** %s\n\n", spec.Title)
	fmt.Fprintf(&b, "**Description:** %s\n\n", spec.Description)
	fmt.Fprintf(&b, "**Format:** %s\n\n", spec.Format)
	b.WriteString("**Generated Files:**\n")
	for _, name := range files {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}

	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeCatalogDoc writes the top-level CATALOG.md summarising every case of
// the run, including the ones that failed or were skipped.
func writeCatalogDoc(root string, sum *Summary) error {
	var b strings.Builder
	b.WriteString("# Test Data Catalog\n\n")
	fmt.Fprintf(&b, "Generated by gentests %s. Each case lives in its own directory\n", Version)
	b.WriteString("with a README.md describing its contents.\n\n")
	b.WriteString("| ID | Format | Status | Title | Description |\n")
	b.WriteString("|----|--------|--------|-------|-------------|\n")
	for _, res := range sum.Results {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			res.Spec.ID, res.Spec.Format, res.Status, res.Spec.Title, res.Spec.Description)
	}

	path := filepath.Join(root, "CATALOG.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
