package catalog

import (
	"strings"
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 54, cat.Len())

	specs := cat.All()
	assert.Equal(t, "FASTQ_01", specs[0].ID)
	assert.Equal(t, "FASTQ_12", specs[11].ID)
	assert.Equal(t, "SAM_01", specs[12].ID)
	assert.Equal(t, "SAM_42", specs[len(specs)-1].ID)

	seen := make(map[string]bool)
	for _, spec := range specs {
		assert.False(t, seen[spec.ID], "duplicate identifier %s", spec.ID)
		seen[spec.ID] = true
		hasPrefix := strings.HasPrefix(spec.ID, "FASTQ_") || strings.HasPrefix(spec.ID, "SAM_")
		assert.True(t, hasPrefix, "unexpected identifier %s", spec.ID)
		assert.NotEmpty(t, spec.Title, "%s has no title", spec.ID)
	}
}

func TestLoadIsStable(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	a, b := first.All(), second.All()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestGet(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	spec, ok := cat.Get("SAM_06")
	require.True(t, ok)
	assert.Equal(t, FormatSAM, spec.Format)

	_, ok = cat.Get("SAM_99")
	assert.False(t, ok)
}

func TestOutputs(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, tc := range []struct {
		id   string
		want []string
	}{
		{"FASTQ_01", []string{"FASTQ_01.fastq"}},
		{"FASTQ_05", []string{"FASTQ_05.fastq.gz"}},
		{"FASTQ_07", []string{"FASTQ_07_1.fastq", "FASTQ_07_2.fastq"}},
		{"SAM_01", []string{"SAM_01.sam"}},
		{"SAM_06", []string{"SAM_06.sam", "simple_ref.fa", "simple_ref.fa.fai"}},
		{"SAM_09", []string{"SAM_09.sam", "large_ref.fa", "large_ref.fa.fai"}},
		{"SAM_39", []string{"SAM_39.bam", "simple_ref.fa", "simple_ref.fa.fai"}},
		{"SAM_41", []string{"SAM_41.cram", "simple_ref.fa", "simple_ref.fa.fai"}},
	} {
		spec, ok := cat.Get(tc.id)
		require.True(t, ok, tc.id)
		assert.Equal(t, tc.want, spec.Outputs(), tc.id)
	}
}

// The distinguishing parameters of a few cases, pinned so that catalog
// edits cannot silently change what the fixtures exercise.
func TestCaseParameters(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	t.Run("FASTQ_02 read lengths", func(t *testing.T) {
		spec, ok := cat.Get("FASTQ_02")
		require.True(t, ok)
		require.Len(t, spec.FASTQ.Reads, 3)
		var lengths []int
		for _, r := range spec.FASTQ.Reads {
			assert.Len(t, r.Qual, len(r.Seq))
			lengths = append(lengths, len(r.Seq))
		}
		assert.Equal(t, []int{36, 40, 36}, lengths)
	})

	t.Run("FASTQ_12 uneven mate counts", func(t *testing.T) {
		spec, ok := cat.Get("FASTQ_12")
		require.True(t, ok)
		assert.Len(t, spec.FASTQ.Reads, 3)
		assert.Len(t, spec.FASTQ.Mates, 2)
	})

	t.Run("SAM_06 enclosing pair", func(t *testing.T) {
		spec, ok := cat.Get("SAM_06")
		require.True(t, ok)
		require.Len(t, spec.Align.Reads, 2)
		a, b := spec.Align.Reads[0], spec.Align.Reads[1]
		assert.Equal(t, "101M", a.Cigar)
		assert.Equal(t, "41M", b.Cigar)
		assert.NotZero(t, a.Flags&sam.ProperPair)
		assert.NotZero(t, b.Flags&sam.ProperPair)
		// [100,200] strictly encloses [120,160].
		assert.Less(t, a.Pos, b.Pos)
		assert.Greater(t, a.Pos+101, b.Pos+41)
	})

	t.Run("SAM_09 long distance", func(t *testing.T) {
		spec, ok := cat.Get("SAM_09")
		require.True(t, ok)
		for _, r := range spec.Align.Reads {
			assert.Greater(t, abs(r.TempLen), 1000000)
		}
	})

	t.Run("SAM_12 supplementary pair", func(t *testing.T) {
		spec, ok := cat.Get("SAM_12")
		require.True(t, ok)
		require.Len(t, spec.Align.Reads, 2)
		assert.Zero(t, spec.Align.Reads[0].Flags&sam.Supplementary)
		assert.NotZero(t, spec.Align.Reads[1].Flags&sam.Supplementary)
		for _, r := range spec.Align.Reads {
			require.Len(t, r.Tags, 1)
			assert.Equal(t, "SA", r.Tags[0].Name)
		}
	})

	t.Run("SAM_41 ships its reference", func(t *testing.T) {
		spec, ok := cat.Get("SAM_41")
		require.True(t, ok)
		assert.Equal(t, FormatCRAM, spec.Format)
		assert.True(t, spec.Align.ShipRef)
	})
}

func TestValidateSpecRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "missing title",
			spec: Spec{ID: "X_01", Format: FormatFASTQ, FASTQ: &FASTQParams{Reads: []Read{{Name: "r", Seq: "A", Qual: "!"}}}},
			want: "missing title",
		},
		{
			name: "no parameters",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatSAM},
			want: "no parameters set",
		},
		{
			name: "both parameter bags",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatSAM,
				FASTQ: &FASTQParams{Reads: []Read{{Name: "r", Seq: "A", Qual: "!"}}},
				Align: &AlignParams{RefFile: "simple_ref.fa", Reads: []ReadSpec{{Name: "r", Ref: "chr1", Pos: 1, Cigar: "1M"}}}},
			want: "both FASTQ and alignment parameters set",
		},
		{
			name: "fastq quality length mismatch",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatFASTQ,
				FASTQ: &FASTQParams{Reads: []Read{{Name: "r", Seq: "ACGT", Qual: "!"}}}},
			want: "must match",
		},
		{
			name: "gzip paired fastq",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatFASTQ,
				FASTQ: &FASTQParams{Gzip: true,
					Reads: []Read{{Name: "r", Seq: "A", Qual: "!"}},
					Mates: []Read{{Name: "r", Seq: "A", Qual: "!"}}}},
			want: "single-file",
		},
		{
			name: "mapped read without cigar",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatSAM,
				Align: &AlignParams{RefFile: "simple_ref.fa",
					Reads: []ReadSpec{{Name: "r", Ref: "chr1", Pos: 10}}}},
			want: "needs a CIGAR",
		},
		{
			name: "unmapped read with position",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatSAM,
				Align: &AlignParams{RefFile: "simple_ref.fa",
					Reads: []ReadSpec{{Name: "r", Flags: sam.Unmapped, Ref: "chr1", Pos: 10, Seq: "A", Qual: "!"}}}},
			want: "unmapped read must not carry",
		},
		{
			name: "bad cigar",
			spec: Spec{ID: "X_01", Title: "t", Format: FormatSAM,
				Align: &AlignParams{RefFile: "simple_ref.fa",
					Reads: []ReadSpec{{Name: "r", Ref: "chr1", Pos: 10, Cigar: "10Q"}}}},
			want: "bad CIGAR",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSpec(tc.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
