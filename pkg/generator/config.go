package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
	"github.com/LelouchOTR/genie-test-cases/pkg/refseq"
)

// DefaultOutputDir is where fixtures land when no destination is configured.
const DefaultOutputDir = "test_data"

// Config controls a generation run. The zero value selects every case, the
// default reference set, and the default output directory.
type Config struct {
	OutputDir       string   `json:"output_dir"`
	SelectedIDs     []string `json:"selected_ids"`
	ReferenceSet    string   `json:"reference_set"`
	SkipUnsupported bool     `json:"skip_unsupported"`
}

// LoadConfig loads a JSON config from the given path. An empty path yields
// the zero config; flags layered on top by the caller override file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &c, nil
}

// Validate resolves defaults and rejects unknown identifiers and reference
// sets before any generation starts.
func (c *Config) Validate(cat *catalog.Catalog) error {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.ReferenceSet == "" {
		c.ReferenceSet = refseq.DefaultSetName
	}
	if _, err := refseq.Lookup(c.ReferenceSet); err != nil {
		return err
	}

	var unknown []string
	for _, id := range c.SelectedIDs {
		if _, ok := cat.Get(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown case identifiers: %v", unknown)
	}
	return nil
}

// selected reports whether the case is part of this run.
func (c *Config) selected(id string) bool {
	if len(c.SelectedIDs) == 0 {
		return true
	}
	for _, want := range c.SelectedIDs {
		if want == id {
			return true
		}
	}
	return false
}
