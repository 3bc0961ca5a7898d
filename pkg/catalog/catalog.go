// Package catalog defines the fixed, ordered table of test cases the
// generator produces. The table is built once at load time, validated, and
// never mutated; adding a case is a source edit, not a runtime operation.
package catalog

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// Format names the file format family a test case produces.
type Format string

const (
	FormatFASTQ Format = "fastq"
	FormatSAM   Format = "sam"
	FormatBAM   Format = "bam"
	FormatCRAM  Format = "cram"
)

func (f Format) valid() bool {
	switch f {
	case FormatFASTQ, FormatSAM, FormatBAM, FormatCRAM:
		return true
	}
	return false
}

// Read is one literal FASTQ read.
type Read struct {
	Name string
	Seq  string
	Qual string
}

// FASTQParams declares the content of a FASTQ test case. Reads holds the
// single output file, or mate 1 when Mates is present; Mates holds mate 2
// and switches the case to paired two-file output.
type FASTQParams struct {
	Reads []Read
	Mates []Read
	Gzip  bool
}

// Paired reports whether the case produces a two-file mate pair.
func (p *FASTQParams) Paired() bool { return len(p.Mates) > 0 }

// Tag is one optional alignment field, converted to the matching SAM aux
// type (integer, float, string, or numeric array) when records are built.
type Tag struct {
	Name  string
	Value interface{}
}

// ReadSpec declares one alignment record. Positions are 1-based as in SAM
// text; zero means unset. An empty Seq on a mapped read asks the generator
// to derive the query bases from the reference through the CIGAR; an empty
// Qual gets a constant fill. OmitSeq and OmitQual emit the "*" placeholder
// instead.
type ReadSpec struct {
	Name     string
	Flags    sam.Flags
	Ref      string
	Pos      int
	MapQ     byte
	Cigar    string
	Seq      string
	Qual     string
	OmitSeq  bool
	OmitQual bool
	MateRef  string
	MatePos  int
	TempLen  int
	Tags     []Tag
}

// ReadGroup declares one @RG header line.
type ReadGroup struct {
	ID     string
	Sample string
}

// AlignParams declares the content of a SAM/BAM/CRAM test case.
type AlignParams struct {
	// RefFile names the reference FASTA whose sequences appear in the
	// header @SQ lines.
	RefFile string
	// ShipRef copies the reference FASTA and its index into the case
	// directory alongside the alignment file.
	ShipRef    bool
	ReadGroups []ReadGroup
	Reads      []ReadSpec
}

// Spec is one immutable catalog entry. Exactly one of FASTQ and Align is
// set, matching Format.
type Spec struct {
	ID          string
	Title       string
	Description string
	Format      Format
	FASTQ       *FASTQParams
	Align       *AlignParams
}

// Outputs lists the data files the case produces, in write order.
func (s Spec) Outputs() []string {
	switch {
	case s.FASTQ != nil && s.FASTQ.Paired():
		return []string{s.ID + "_1.fastq", s.ID + "_2.fastq"}
	case s.FASTQ != nil && s.FASTQ.Gzip:
		return []string{s.ID + ".fastq.gz"}
	case s.FASTQ != nil:
		return []string{s.ID + ".fastq"}
	}
	files := []string{s.ID + "." + string(s.Format)}
	if s.Align != nil && s.Align.ShipRef {
		files = append(files, s.Align.RefFile, s.Align.RefFile+".fai")
	}
	return files
}

// Catalog is the validated, ordered case table.
type Catalog struct {
	specs []Spec
	index map[string]int
}

// Load builds and validates the full case table. It fails fast with an
// error naming the offending identifier when an entry is malformed.
func Load() (*Catalog, error) {
	specs := append(fastqCases(), alignCases()...)

	c := &Catalog{
		specs: specs,
		index: make(map[string]int, len(specs)),
	}
	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no identifier", i)
		}
		if _, dup := c.index[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog identifier %s", spec.ID)
		}
		if err := validateSpec(spec); err != nil {
			return nil, fmt.Errorf("catalog entry %s: %w", spec.ID, err)
		}
		c.index[spec.ID] = i
	}
	return c, nil
}

// All returns the cases in declared order.
func (c *Catalog) All() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Get returns the case with the given identifier.
func (c *Catalog) Get(id string) (Spec, bool) {
	i, ok := c.index[id]
	if !ok {
		return Spec{}, false
	}
	return c.specs[i], true
}

// Len returns the number of cases.
func (c *Catalog) Len() int { return len(c.specs) }

// validateSpec checks the structural shape of one entry: title, format,
// parameter bag pairing, and per-read field consistency. Cross-read
// semantics (mate symmetry, TLEN arithmetic, reference bounds) are checked
// by the generator, which knows the reference set in play.
func validateSpec(s Spec) error {
	if s.Title == "" {
		return fmt.Errorf("missing title")
	}
	if !s.Format.valid() {
		return fmt.Errorf("unknown format %q", s.Format)
	}
	switch {
	case s.FASTQ != nil && s.Align != nil:
		return fmt.Errorf("both FASTQ and alignment parameters set")
	case s.FASTQ == nil && s.Align == nil:
		return fmt.Errorf("no parameters set")
	case s.FASTQ != nil && s.Format != FormatFASTQ:
		return fmt.Errorf("FASTQ parameters on %s case", s.Format)
	case s.Align != nil && s.Format == FormatFASTQ:
		return fmt.Errorf("alignment parameters on fastq case")
	}

	if s.FASTQ != nil {
		return validateFASTQ(s.FASTQ)
	}
	return validateAlign(s.Align)
}

func validateFASTQ(p *FASTQParams) error {
	if len(p.Reads) == 0 {
		return fmt.Errorf("no reads declared")
	}
	if p.Gzip && p.Paired() {
		return fmt.Errorf("gzip output is only produced for single-file cases")
	}
	for _, reads := range [][]Read{p.Reads, p.Mates} {
		for _, r := range reads {
			if r.Name == "" {
				return fmt.Errorf("read with empty name")
			}
			if len(r.Seq) != len(r.Qual) {
				return fmt.Errorf("read %s: sequence length (%d) and quality length (%d) must match",
					r.Name, len(r.Seq), len(r.Qual))
			}
		}
	}
	return nil
}

func validateAlign(p *AlignParams) error {
	if p.RefFile == "" {
		return fmt.Errorf("no reference file named")
	}
	if len(p.Reads) == 0 {
		return fmt.Errorf("no reads declared")
	}
	for _, r := range p.Reads {
		if err := validateReadSpec(r); err != nil {
			return fmt.Errorf("read %s: %w", r.Name, err)
		}
	}
	return nil
}

func validateReadSpec(r ReadSpec) error {
	if r.Name == "" {
		return fmt.Errorf("empty read name")
	}

	if r.Flags&sam.Unmapped != 0 {
		if r.Ref != "" || r.Pos != 0 || r.Cigar != "" {
			return fmt.Errorf("unmapped read must not carry reference, position, or CIGAR")
		}
	} else {
		if r.Ref == "" || r.Pos < 1 {
			return fmt.Errorf("mapped read needs a reference and a 1-based position")
		}
		if r.Cigar == "" {
			return fmt.Errorf("mapped read needs a CIGAR")
		}
		if _, err := sam.ParseCigar([]byte(r.Cigar)); err != nil {
			return fmt.Errorf("bad CIGAR %q: %w", r.Cigar, err)
		}
	}

	if r.OmitSeq && r.Seq != "" {
		return fmt.Errorf("literal sequence on a read declared without one")
	}
	if r.OmitQual && r.Qual != "" {
		return fmt.Errorf("literal quality on a read declared without one")
	}
	if r.OmitSeq && !r.OmitQual {
		return fmt.Errorf("quality without sequence is not representable")
	}
	if r.Seq != "" && r.Qual != "" && len(r.Seq) != len(r.Qual) {
		return fmt.Errorf("sequence length (%d) and quality length (%d) must match", len(r.Seq), len(r.Qual))
	}

	if r.Flags&sam.Paired == 0 {
		if r.Flags&(sam.MateUnmapped|sam.MateReverse|sam.Read1|sam.Read2|sam.ProperPair) != 0 {
			return fmt.Errorf("mate and pair flags on an unpaired read")
		}
		if r.MateRef != "" || r.MatePos != 0 || r.TempLen != 0 {
			return fmt.Errorf("mate fields on an unpaired read")
		}
	} else if r.Flags&sam.MateUnmapped != 0 {
		// An unmapped partner has no coordinates to point at.
		if r.MateRef != "" || r.MatePos != 0 {
			return fmt.Errorf("mate position on a read whose mate is unmapped")
		}
	}

	for _, tag := range r.Tags {
		if len(tag.Name) != 2 {
			return fmt.Errorf("tag name %q is not two characters", tag.Name)
		}
		if tag.Value == nil {
			return fmt.Errorf("tag %s has no value", tag.Name)
		}
	}
	return nil
}
