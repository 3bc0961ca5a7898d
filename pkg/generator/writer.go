package generator

import (
	"fmt"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// writeSAM writes the header and records as SAM text with decimal flags.
func writeSAM(path string, h *sam.Header, recs []*sam.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w, err := sam.NewWriter(f, h, sam.FlagDecimal)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create SAM writer: %w", err)
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record %s: %w", rec.Name, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// writeBAM writes the header and records as BGZF-compressed BAM.
func writeBAM(path string, h *sam.Header, recs []*sam.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w, err := bam.NewWriter(f, h, 1)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create BAM writer: %w", err)
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			w.Close()
			f.Close()
			return fmt.Errorf("failed to write record %s: %w", rec.Name, err)
		}
	}
	// Close flushes the BGZF blocks and the EOF marker.
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close BAM writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
