package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the machine-readable record of a run, written to
// manifest.json in the output root. It carries no timestamps so that two
// runs with the same inputs produce identical bytes.
type Manifest struct {
	Tool         string         `json:"tool"`
	Version      string         `json:"version"`
	ReferenceSet string         `json:"reference_set"`
	Cases        []ManifestCase `json:"cases"`
}

type ManifestCase struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Format string         `json:"format"`
	Status Status         `json:"status"`
	Error  string         `json:"error,omitempty"`
	Files  []ManifestFile `json:"files,omitempty"`
}

type ManifestFile struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// writeManifest digests every generated file and writes manifest.json.
func writeManifest(root, referenceSet string, sum *Summary) error {
	m := Manifest{
		Tool:         "gentests",
		Version:      Version,
		ReferenceSet: referenceSet,
		Cases:        make([]ManifestCase, 0, len(sum.Results)),
	}
	for _, res := range sum.Results {
		c := ManifestCase{
			ID:     res.Spec.ID,
			Title:  res.Spec.Title,
			Format: string(res.Spec.Format),
			Status: res.Status,
		}
		if res.Err != nil {
			c.Error = res.Err.Error()
		}
		for _, rel := range res.Files {
			mf, err := digestFile(root, rel)
			if err != nil {
				return err
			}
			c.Files = append(c.Files, mf)
		}
		m.Cases = append(m.Cases, c)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(root, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func digestFile(root, rel string) (ManifestFile, error) {
	path := filepath.Join(root, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return ManifestFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return ManifestFile{
		Name:   filepath.ToSlash(rel),
		Size:   int64(len(data)),
		SHA256: hex.EncodeToString(sum[:]),
	}, nil
}
