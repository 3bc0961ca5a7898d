// Package refseq provides the named reference sequence sets that alignment
// test cases are generated against, and writes them out as FASTA plus a
// samtools-style .fai index.
package refseq

import (
	"fmt"
	"sort"
)

// DefaultSetName is the reference set used when configuration names none.
const DefaultSetName = "default"

// Sequence is a single reference sequence within a FASTA file.
type Sequence struct {
	Name     string
	Circular bool // circular topology, advertised as TP:circular in @SQ lines
	Seq      []byte
}

// Len returns the sequence length in bases.
func (s *Sequence) Len() int { return len(s.Seq) }

// Bases returns span bases starting at the 1-based position start.
// Windows on circular sequences wrap past the end back to the origin;
// on linear sequences a window running past the end is an error.
func (s *Sequence) Bases(start, span int) ([]byte, error) {
	if start < 1 || span < 0 || start > len(s.Seq) {
		return nil, fmt.Errorf("invalid window %d+%d on %s (length %d)", start, span, s.Name, len(s.Seq))
	}
	out := make([]byte, span)
	for i := 0; i < span; i++ {
		pos := start - 1 + i
		if pos >= len(s.Seq) {
			if !s.Circular {
				return nil, fmt.Errorf("window %d+%d runs past end of %s (length %d)", start, span, s.Name, len(s.Seq))
			}
			pos %= len(s.Seq)
		}
		out[i] = s.Seq[pos]
	}
	return out, nil
}

// File is one FASTA file of a reference set, known by the filename it is
// emitted under.
type File struct {
	Name string
	Seqs []*Sequence
}

// Sequence returns the named sequence within the file.
func (f *File) Sequence(name string) (*Sequence, bool) {
	for _, s := range f.Seqs {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Set is a named collection of reference FASTA files.
type Set struct {
	Name  string
	Files []*File
}

// File returns the member file with the given filename.
func (s *Set) File(name string) (*File, bool) {
	for _, f := range s.Files {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Sequence finds a sequence by name across all files of the set, returning
// the sequence and the file that carries it.
func (s *Set) Sequence(name string) (*Sequence, *File, bool) {
	for _, f := range s.Files {
		if seq, ok := f.Sequence(name); ok {
			return seq, f, true
		}
	}
	return nil, nil, false
}

// Lookup resolves a reference set by name. An empty name selects the
// default set.
func Lookup(name string) (*Set, error) {
	if name == "" {
		name = DefaultSetName
	}
	set, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown reference set %q (available: %v)", name, Names())
	}
	return set, nil
}

// Names lists the available reference set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var sets = map[string]*Set{
	DefaultSetName: {
		Name: DefaultSetName,
		Files: []*File{
			{
				Name: "simple_ref.fa",
				Seqs: []*Sequence{
					{Name: "chr1", Seq: fill("ACGT", 10000)},
					{Name: "chr2", Seq: fill("TGCA", 8000)},
					{Name: "circ", Circular: true, Seq: fill("GATC", 1000)},
				},
			},
			{
				// Sized past 1 Mbp so mate pairs can sit more than
				// 1,000,000 bases apart on one sequence.
				Name: "large_ref.fa",
				Seqs: []*Sequence{
					{Name: "large_ref", Seq: fill("ACGT", 1100000)},
				},
			},
		},
	},
}

// fill builds an n-base sequence by cycling the pattern.
func fill(pattern string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
