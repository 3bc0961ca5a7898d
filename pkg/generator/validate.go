package generator

import (
	"github.com/biogo/hts/sam"
)

// validateRecords checks the promises alignment fixtures make before any
// file is written: CIGAR and sequence lengths agree, alignments stay inside
// their reference, and mates mirror each other's flags, coordinates, and
// template lengths.
func validateRecords(id string, recs []*sam.Record) error {
	pairs := make(map[string][]*sam.Record)
	var names []string
	for _, rec := range recs {
		if err := validateRecord(id, rec); err != nil {
			return err
		}
		if rec.Flags&sam.Paired != 0 {
			if _, seen := pairs[rec.Name]; !seen {
				names = append(names, rec.Name)
			}
			pairs[rec.Name] = append(pairs[rec.Name], rec)
		}
	}

	for _, name := range names {
		group := pairs[name]
		if len(group) != 2 {
			return validationErrorf(id, "pair %s: expected 2 reads, got %d", name, len(group))
		}
		if err := validatePair(id, group[0], group[1]); err != nil {
			return err
		}
	}
	return nil
}

func validateRecord(id string, rec *sam.Record) error {
	flags := rec.Flags
	if flags&sam.Read1 != 0 && flags&sam.Read2 != 0 {
		return validationErrorf(id, "read %s: flagged as both first and last of pair", rec.Name)
	}
	if flags&sam.Paired == 0 && flags&(sam.Read1|sam.Read2|sam.ProperPair) != 0 {
		return validationErrorf(id, "read %s: pair flags set on an unpaired read", rec.Name)
	}

	if flags&sam.Unmapped == 0 {
		refSpan, querySpan := cigarSpans(rec.Cigar)
		if end := rec.Pos + refSpan; end > rec.Ref.Len() {
			return validationErrorf(id, "read %s: alignment ends at %d, past the end of %s (%d)",
				rec.Name, end, rec.Ref.Name(), rec.Ref.Len())
		}
		// SEQ "*" leaves the query length unconstrained.
		if rec.Seq.Length > 0 && querySpan != rec.Seq.Length {
			return validationErrorf(id, "read %s: CIGAR covers %d query bases but sequence has %d",
				rec.Name, querySpan, rec.Seq.Length)
		}
	}
	if rec.Seq.Length > 0 && rec.Qual != nil && len(rec.Qual) != rec.Seq.Length {
		return validationErrorf(id, "read %s: sequence length (%d) and quality length (%d) must match",
			rec.Name, rec.Seq.Length, len(rec.Qual))
	}
	return nil
}

// validatePair checks the two mates of a read pair against each other.
func validatePair(id string, a, b *sam.Record) error {
	name := a.Name
	if a.Flags&sam.Read1 == 0 {
		a, b = b, a
	}
	if a.Flags&sam.Read1 == 0 || b.Flags&sam.Read2 == 0 {
		return validationErrorf(id, "pair %s: needs one first and one last read", name)
	}

	for _, m := range []struct {
		rec, mate *sam.Record
	}{{a, b}, {b, a}} {
		if got, want := m.rec.Flags&sam.MateUnmapped != 0, m.mate.Flags&sam.Unmapped != 0; got != want {
			return validationErrorf(id, "pair %s: read %s mate-unmapped flag disagrees with its mate", name, readLabel(m.rec))
		}
		if got, want := m.rec.Flags&sam.MateReverse != 0, m.mate.Flags&sam.Reverse != 0; got != want {
			return validationErrorf(id, "pair %s: read %s mate-reverse flag disagrees with its mate", name, readLabel(m.rec))
		}
		if m.rec.MateRef != nil && m.mate.Ref != nil {
			if m.rec.MateRef != m.mate.Ref || m.rec.MatePos != m.mate.Pos {
				return validationErrorf(id, "pair %s: read %s mate coordinates do not point at its mate", name, readLabel(m.rec))
			}
		}
	}

	if a.Flags&sam.ProperPair != b.Flags&sam.ProperPair {
		return validationErrorf(id, "pair %s: proper-pair flag set on only one mate", name)
	}

	if a.TempLen != -b.TempLen {
		return validationErrorf(id, "pair %s: template lengths %d and %d do not mirror", name, a.TempLen, b.TempLen)
	}
	bothMapped := a.Flags&sam.Unmapped == 0 && b.Flags&sam.Unmapped == 0
	if !bothMapped || a.Ref != b.Ref {
		if a.TempLen != 0 {
			return validationErrorf(id, "pair %s: template length must be zero when mates do not share a reference", name)
		}
		if a.Flags&sam.ProperPair != 0 {
			return validationErrorf(id, "pair %s: proper pair needs both mates mapped to one reference", name)
		}
		return nil
	}
	if a.TempLen == 0 {
		return nil
	}

	// abs(TLEN) is the 1-based closed span from the leftmost start to the
	// rightmost end. The leftmost mate takes the positive sign, the first
	// read winning a tie.
	aSpan, _ := cigarSpans(a.Cigar)
	bSpan, _ := cigarSpans(b.Cigar)
	span := max(a.Pos+aSpan, b.Pos+bSpan) - min(a.Pos, b.Pos)
	if abs(a.TempLen) != span {
		return validationErrorf(id, "pair %s: template length %d does not match the mate span %d", name, a.TempLen, span)
	}
	positive := a
	if b.Pos < a.Pos {
		positive = b
	}
	if positive.TempLen <= 0 {
		return validationErrorf(id, "pair %s: leftmost mate must carry the positive template length", name)
	}
	return nil
}

func readLabel(rec *sam.Record) string {
	if rec.Flags&sam.Read2 != 0 {
		return "2"
	}
	return "1"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
