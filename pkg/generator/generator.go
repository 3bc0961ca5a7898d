package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
	"github.com/LelouchOTR/genie-test-cases/pkg/fastq"
	"github.com/LelouchOTR/genie-test-cases/pkg/refseq"
)

// Version is the fixture generator release.
const Version = "0.1.0"

// Status records how a case ended up in a run.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Result is the outcome of one case in a run. Files holds paths relative
// to the output root for cases that generated.
type Result struct {
	Spec   catalog.Spec
	Status Status
	Files  []string
	Err    error
}

// Summary collects the results of a full run in catalog order.
type Summary struct {
	Results   []Result
	Generated int
	Failed    int
	Skipped   int
}

// Failures returns the results that ended in failure.
func (s *Summary) Failures() []Result {
	var out []Result
	for _, res := range s.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Generate writes the files for a single case into root/<ID>/ and returns
// their names relative to that directory, data files first and README.md
// last. Nothing is created for formats without a writer.
func Generate(spec catalog.Spec, root string, set *refseq.Set) ([]string, error) {
	if spec.Format == catalog.FormatCRAM {
		return nil, &UnsupportedFormatError{ID: spec.ID, Format: spec.Format}
	}

	dir := filepath.Join(root, spec.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{ID: spec.ID, Path: dir, Err: err}
	}

	var (
		files []string
		err   error
	)
	switch spec.Format {
	case catalog.FormatFASTQ:
		files, err = generateFASTQ(spec, dir)
	case catalog.FormatSAM, catalog.FormatBAM:
		files, err = generateAlignment(spec, dir, set)
	default:
		return nil, &UnsupportedFormatError{ID: spec.ID, Format: spec.Format}
	}
	if err != nil {
		return nil, err
	}

	if err := writeCaseReadme(dir, spec, files); err != nil {
		return nil, &WriteError{ID: spec.ID, Path: filepath.Join(dir, "README.md"), Err: err}
	}
	return append(files, "README.md"), nil
}

// generateFASTQ writes the read tables of a FASTQ case, one file per side
// for paired cases.
func generateFASTQ(spec catalog.Spec, dir string) ([]string, error) {
	p := spec.FASTQ
	names := spec.Outputs()

	tables := [][]catalog.Read{p.Reads}
	if p.Paired() {
		tables = append(tables, p.Mates)
	}
	for i, table := range tables {
		path := filepath.Join(dir, names[i])
		if err := fastq.WriteFile(path, toFastqRecords(table)); err != nil {
			return nil, &WriteError{ID: spec.ID, Path: path, Err: err}
		}
	}
	return names, nil
}

func toFastqRecords(reads []catalog.Read) []fastq.Record {
	recs := make([]fastq.Record, len(reads))
	for i, r := range reads {
		recs[i] = fastq.Record{Name: r.Name, Seq: r.Seq, Qual: r.Qual}
	}
	return recs
}

// generateAlignment builds the records of a SAM or BAM case, writes the
// alignment file, and ships the reference FASTA alongside when asked to.
func generateAlignment(spec catalog.Spec, dir string, set *refseq.Set) ([]string, error) {
	h, recs, err := buildAlignment(spec.ID, spec.Align, set)
	if err != nil {
		return nil, err
	}

	dataName := spec.ID + "." + string(spec.Format)
	path := filepath.Join(dir, dataName)
	switch spec.Format {
	case catalog.FormatSAM:
		err = writeSAM(path, h, recs)
	case catalog.FormatBAM:
		err = writeBAM(path, h, recs)
	}
	if err != nil {
		return nil, &WriteError{ID: spec.ID, Path: path, Err: err}
	}

	files := []string{dataName}
	if spec.Align.ShipRef {
		file, ok := set.File(spec.Align.RefFile)
		if !ok {
			return nil, validationErrorf(spec.ID, "reference file %q is not part of set %q", spec.Align.RefFile, set.Name)
		}
		written, err := refseq.WriteFile(dir, file)
		if err != nil {
			return nil, &WriteError{ID: spec.ID, Path: dir, Err: err}
		}
		for _, p := range written {
			files = append(files, filepath.Base(p))
		}
	}
	return files, nil
}

// GenerateAll runs every selected case, continuing past per-case failures,
// and finishes the output directory with CATALOG.md and manifest.json. The
// returned summary carries one result per selected case in catalog order;
// the error is non-nil only when the run cannot proceed at all.
func GenerateAll(cat *catalog.Catalog, cfg *Config, logger *log.Logger) (*Summary, error) {
	if err := cfg.Validate(cat); err != nil {
		return nil, err
	}
	set, err := refseq.Lookup(cfg.ReferenceSet)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", cfg.OutputDir, err)
	}

	sum := &Summary{}
	for _, spec := range cat.All() {
		if !cfg.selected(spec.ID) {
			continue
		}

		res := Result{Spec: spec}
		files, err := Generate(spec, cfg.OutputDir, set)
		switch {
		case err == nil:
			res.Status = StatusGenerated
			for _, name := range files {
				res.Files = append(res.Files, filepath.Join(spec.ID, name))
			}
			sum.Generated++
			logger.Info("generated", "id", spec.ID, "format", spec.Format, "files", len(files))
		case cfg.SkipUnsupported && isUnsupported(err):
			res.Status = StatusSkipped
			res.Err = err
			sum.Skipped++
			logger.Warn("skipped", "id", spec.ID, "format", spec.Format)
		default:
			res.Status = StatusFailed
			res.Err = err
			sum.Failed++
			logger.Error("failed", "id", spec.ID, "err", err)
		}
		sum.Results = append(sum.Results, res)
	}

	if err := writeCatalogDoc(cfg.OutputDir, sum); err != nil {
		return sum, err
	}
	if err := writeManifest(cfg.OutputDir, cfg.ReferenceSet, sum); err != nil {
		return sum, err
	}
	return sum, nil
}

func isUnsupported(err error) bool {
	var unsupported *UnsupportedFormatError
	return errors.As(err, &unsupported)
}
