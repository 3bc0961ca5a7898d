// Package fastq implements the four-line FASTQ codec used by the generated
// test fixtures, with optional gzip compression on file output.
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is a single sequencing read.
type Record struct {
	Name string
	Seq  string
	Qual string
}

// Writer emits records as four-line FASTQ entries.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	if len(r.Seq) != len(r.Qual) {
		return fmt.Errorf("sequence length (%d) and quality length (%d) must match for read %s",
			len(r.Seq), len(r.Qual), r.Name)
	}
	_, err := fmt.Fprintf(w.w, "@%s\n%s\n+\n%s\n", r.Name, r.Seq, r.Qual)
	return err
}

// WriteAll writes records to w in order.
func WriteAll(w io.Writer, recs []Record) error {
	fw := NewWriter(w)
	for _, r := range recs {
		if err := fw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Reader parses four-line FASTQ entries.
type Reader struct {
	s    *bufio.Scanner
	line int
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

func (r *Reader) next() (string, bool) {
	if !r.s.Scan() {
		return "", false
	}
	r.line++
	return r.s.Text(), true
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (Record, error) {
	head, ok := r.next()
	if !ok {
		if err := r.s.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	if !strings.HasPrefix(head, "@") {
		return Record{}, fmt.Errorf("line %d: expected @ header, got %q", r.line, head)
	}
	name := strings.TrimPrefix(head, "@")
	// Trailing comments after the first space are not part of the name.
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}

	seq, ok := r.next()
	if !ok {
		return Record{}, fmt.Errorf("truncated record %q: missing sequence line", name)
	}
	sep, ok := r.next()
	if !ok {
		return Record{}, fmt.Errorf("truncated record %q: missing + separator", name)
	}
	if !strings.HasPrefix(sep, "+") {
		return Record{}, fmt.Errorf("line %d: expected + separator, got %q", r.line, sep)
	}
	qual, ok := r.next()
	if !ok {
		return Record{}, fmt.Errorf("truncated record %q: missing quality line", name)
	}
	if len(seq) != len(qual) {
		return Record{}, fmt.Errorf("record %q: sequence length (%d) and quality length (%d) must match",
			name, len(seq), len(qual))
	}

	return Record{Name: name, Seq: seq, Qual: qual}, nil
}

// ReadAll reads records from r until EOF.
func ReadAll(r io.Reader) ([]Record, error) {
	fr := NewReader(r)
	var recs []Record
	for {
		rec, err := fr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
