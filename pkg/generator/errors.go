// Package generator builds the records for each catalog entry and writes
// them out as FASTQ, SAM, or BAM files, one self-contained directory per
// test case.
package generator

import (
	"fmt"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
)

// ValidationError reports a catalog entry whose parameters contradict
// themselves or the active reference set.
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("case %s: invalid parameters: %s", e.ID, e.Reason)
}

// WriteError reports a filesystem failure while emitting a case.
type WriteError struct {
	ID   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("case %s: failed to write %s: %v", e.ID, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a format the serialization library cannot
// produce.
type UnsupportedFormatError struct {
	ID     string
	Format catalog.Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("case %s: no writer available for %s output", e.ID, e.Format)
}

func validationErrorf(id, format string, args ...interface{}) *ValidationError {
	return &ValidationError{ID: id, Reason: fmt.Sprintf(format, args...)}
}
