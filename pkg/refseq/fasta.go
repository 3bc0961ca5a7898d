package refseq

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// FASTA bodies are wrapped at lineBases columns; lineWidth includes the
// newline, matching the last two columns of the .fai index.
const (
	lineBases = 80
	lineWidth = lineBases + 1
)

// WriteFile writes the FASTA file and its .fai index under dir and returns
// the paths written, FASTA first.
func WriteFile(dir string, f *File) ([]string, error) {
	fastaPath := filepath.Join(dir, f.Name)
	out, err := os.Create(fastaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", fastaPath, err)
	}

	type indexEntry struct {
		name   string
		length int
		offset int64
	}

	w := bufio.NewWriter(out)
	var (
		entries []indexEntry
		offset  int64
	)
	for _, seq := range f.Seqs {
		n, err := fmt.Fprintf(w, ">%s\n", seq.Name)
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("failed to write %s: %w", fastaPath, err)
		}
		offset += int64(n)
		entries = append(entries, indexEntry{name: seq.Name, length: len(seq.Seq), offset: offset})

		for i := 0; i < len(seq.Seq); i += lineBases {
			end := i + lineBases
			if end > len(seq.Seq) {
				end = len(seq.Seq)
			}
			if _, err := w.Write(seq.Seq[i:end]); err != nil {
				out.Close()
				return nil, fmt.Errorf("failed to write %s: %w", fastaPath, err)
			}
			if err := w.WriteByte('\n'); err != nil {
				out.Close()
				return nil, fmt.Errorf("failed to write %s: %w", fastaPath, err)
			}
			offset += int64(end-i) + 1
		}
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return nil, fmt.Errorf("failed to write %s: %w", fastaPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", fastaPath, err)
	}

	// Five tab-separated columns per sequence: name, length, offset of the
	// first base, bases per line, bytes per line.
	var idx bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&idx, "%s\t%d\t%d\t%d\t%d\n", e.name, e.length, e.offset, lineBases, lineWidth)
	}
	faiPath := fastaPath + ".fai"
	if err := os.WriteFile(faiPath, idx.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", faiPath, err)
	}

	return []string{fastaPath, faiPath}, nil
}

// WriteSet writes every FASTA file of the set (with indexes) under dir.
func WriteSet(dir string, set *Set) ([]string, error) {
	var paths []string
	for _, f := range set.Files {
		p, err := WriteFile(dir, f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p...)
	}
	return paths, nil
}
