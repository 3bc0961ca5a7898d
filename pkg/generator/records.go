package generator

import (
	"fmt"
	"strings"

	"github.com/biogo/hts/sam"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
	"github.com/LelouchOTR/genie-test-cases/pkg/refseq"
)

const (
	// derivedQual is the Phred score given to reads that do not declare
	// literal qualities (ASCII 'I' after the +33 offset).
	derivedQual = 40

	// missingQual marks absent quality values. SAM renders a run of these
	// as "*" and BAM stores them verbatim.
	missingQual = 0xff

	// fillBase pads inserted and soft-clipped positions of derived reads.
	fillBase = 'A'
)

// buildAlignment converts the declarative read table of an alignment case
// into biogo records plus the header they are written under.
func buildAlignment(id string, p *catalog.AlignParams, set *refseq.Set) (*sam.Header, []*sam.Record, error) {
	file, ok := set.File(p.RefFile)
	if !ok {
		return nil, nil, validationErrorf(id, "reference file %q is not part of set %q", p.RefFile, set.Name)
	}

	h, err := buildHeader(p, file)
	if err != nil {
		return nil, nil, validationErrorf(id, "%v", err)
	}
	lookup := make(map[string]*sam.Reference, len(h.Refs()))
	for _, ref := range h.Refs() {
		lookup[ref.Name()] = ref
	}

	recs := make([]*sam.Record, 0, len(p.Reads))
	for _, r := range p.Reads {
		rec, err := buildRecord(id, r, file, lookup)
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, rec)
	}
	if err := validateRecords(id, recs); err != nil {
		return nil, nil, err
	}
	return h, recs, nil
}

// buildHeader assembles the header text for a case: the HD line, one SQ
// line per reference sequence (circular sequences declare their topology),
// and any read groups.
func buildHeader(p *catalog.AlignParams, file *refseq.File) (*sam.Header, error) {
	var b strings.Builder
	b.WriteString("@HD\tVN:1.6\tSO:unsorted\n")
	for _, seq := range file.Seqs {
		fmt.Fprintf(&b, "@SQ\tSN:%s\tLN:%d", seq.Name, seq.Len())
		if seq.Circular {
			b.WriteString("\tTP:circular")
		}
		b.WriteByte('\n')
	}
	for _, rg := range p.ReadGroups {
		fmt.Fprintf(&b, "@RG\tID:%s", rg.ID)
		if rg.Sample != "" {
			fmt.Fprintf(&b, "\tSM:%s", rg.Sample)
		}
		b.WriteByte('\n')
	}

	h, err := sam.NewHeader([]byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build header: %w", err)
	}
	return h, nil
}

// buildRecord converts one read description into a sam.Record. Mapped reads
// without literal bases take their sequence from the reference through the
// CIGAR; absent fields reduce to the zero values biogo renders as "*".
func buildRecord(id string, r catalog.ReadSpec, file *refseq.File, lookup map[string]*sam.Reference) (*sam.Record, error) {
	rec := &sam.Record{
		Name:    r.Name,
		Flags:   r.Flags,
		MapQ:    r.MapQ,
		Pos:     -1,
		MatePos: -1,
	}

	var cigar sam.Cigar
	if r.Cigar != "" {
		var err error
		cigar, err = sam.ParseCigar([]byte(r.Cigar))
		if err != nil {
			return nil, validationErrorf(id, "read %s: bad CIGAR %q: %v", r.Name, r.Cigar, err)
		}
		rec.Cigar = cigar
	}

	if r.Flags&sam.Unmapped == 0 {
		ref, ok := lookup[r.Ref]
		if !ok {
			return nil, validationErrorf(id, "read %s: unknown reference sequence %q", r.Name, r.Ref)
		}
		if r.Pos < 1 {
			return nil, validationErrorf(id, "read %s: mapped read needs a 1-based position, got %d", r.Name, r.Pos)
		}
		if len(cigar) == 0 {
			return nil, validationErrorf(id, "read %s: mapped read needs a CIGAR", r.Name)
		}
		rec.Ref = ref
		rec.Pos = r.Pos - 1
	}

	seq, err := resolveSeq(id, r, cigar, file)
	if err != nil {
		return nil, err
	}
	if !r.OmitSeq {
		rec.Seq = sam.NewSeq([]byte(seq))
	}

	switch {
	case r.OmitSeq:
		// No bases, no qualities.
	case r.OmitQual:
		rec.Qual = fillQual(len(seq), missingQual)
	case r.Qual != "":
		if len(r.Qual) != len(seq) {
			return nil, validationErrorf(id, "read %s: sequence length (%d) and quality length (%d) must match",
				r.Name, len(seq), len(r.Qual))
		}
		rec.Qual = phredQual(r.Qual)
	default:
		rec.Qual = fillQual(len(seq), derivedQual)
	}

	if r.MateRef != "" {
		mate, ok := lookup[r.MateRef]
		if !ok {
			return nil, validationErrorf(id, "read %s: unknown mate reference sequence %q", r.Name, r.MateRef)
		}
		rec.MateRef = mate
		rec.MatePos = r.MatePos - 1
	}
	rec.TempLen = r.TempLen

	for _, t := range r.Tags {
		aux, err := sam.NewAux(sam.NewTag(t.Name), t.Value)
		if err != nil {
			return nil, validationErrorf(id, "read %s: tag %s: %v", r.Name, t.Name, err)
		}
		rec.AuxFields = append(rec.AuxFields, aux)
	}

	return rec, nil
}

// resolveSeq produces the query bases for a read: the declared literal,
// nothing for reads emitting "*", or bases derived from the reference.
func resolveSeq(id string, r catalog.ReadSpec, cigar sam.Cigar, file *refseq.File) (string, error) {
	if r.OmitSeq {
		return "", nil
	}
	if r.Seq != "" {
		return r.Seq, nil
	}
	if r.Flags&sam.Unmapped != 0 {
		return "", validationErrorf(id, "read %s: unmapped read needs literal bases", r.Name)
	}
	seq, ok := file.Sequence(r.Ref)
	if !ok {
		return "", validationErrorf(id, "read %s: unknown reference sequence %q", r.Name, r.Ref)
	}
	derived, err := deriveSeq(r.Pos, cigar, seq)
	if err != nil {
		return "", validationErrorf(id, "read %s: %v", r.Name, err)
	}
	return derived, nil
}

// deriveSeq walks the CIGAR copying reference bases for match operations,
// altering them for declared mismatches, and padding inserted or clipped
// positions with a constant base. pos is 1-based.
func deriveSeq(pos int, cigar sam.Cigar, seq *refseq.Sequence) (string, error) {
	refSpan, _ := cigarSpans(cigar)
	bases, err := seq.Bases(pos, refSpan)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	cur := 0
	for _, co := range cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual:
			b.Write(bases[cur : cur+n])
			cur += n
		case sam.CigarMismatch:
			for i := 0; i < n; i++ {
				b.WriteByte(mutate(bases[cur+i]))
			}
			cur += n
		case sam.CigarInsertion, sam.CigarSoftClipped:
			for i := 0; i < n; i++ {
				b.WriteByte(fillBase)
			}
		case sam.CigarDeletion, sam.CigarSkipped:
			cur += n
		}
		// Hard clips and padding touch neither the read nor the walk.
	}
	return b.String(), nil
}

// cigarSpans reports how many reference and query bases a CIGAR covers.
// Hard clips count toward neither span.
func cigarSpans(cigar sam.Cigar) (ref, query int) {
	for _, co := range cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			ref += n
			query += n
		case sam.CigarInsertion, sam.CigarSoftClipped:
			query += n
		case sam.CigarDeletion, sam.CigarSkipped:
			ref += n
		}
	}
	return ref, query
}

// mutate swaps a base for a fixed partner so mismatch operations disagree
// with the reference deterministically.
func mutate(base byte) byte {
	switch base {
	case 'A':
		return 'C'
	case 'C':
		return 'A'
	case 'G':
		return 'T'
	case 'T':
		return 'G'
	}
	return fillBase
}

// phredQual converts an ASCII quality string to raw Phred scores.
func phredQual(s string) []byte {
	qual := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		qual[i] = s[i] - 33
	}
	return qual
}

func fillQual(n int, score byte) []byte {
	qual := make([]byte, n)
	for i := range qual {
		qual[i] = score
	}
	return qual
}
