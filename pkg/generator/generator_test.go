package generator

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LelouchOTR/genie-test-cases/pkg/catalog"
	"github.com/LelouchOTR/genie-test-cases/pkg/fastq"
)

func testLogger() *log.Logger { return log.New(io.Discard) }

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func runAll(t *testing.T, cfg *Config) *Summary {
	t.Helper()
	sum, err := GenerateAll(loadCatalog(t), cfg, testLogger())
	require.NoError(t, err)
	return sum
}

func readSAM(t *testing.T, path string) []*sam.Record {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	sr, err := sam.NewReader(f)
	require.NoError(t, err)
	var recs []*sam.Record
	for {
		rec, err := sr.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	return recs
}

func readBAM(t *testing.T, path string) (*sam.Header, []*sam.Record) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	br, err := bam.NewReader(f, 1)
	require.NoError(t, err)
	defer br.Close()
	var recs []*sam.Record
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	return br.Header(), recs
}

// checkInvariants verifies the promises every alignment fixture makes,
// recomputed from the records as parsed back from disk.
func checkInvariants(t *testing.T, recs []*sam.Record) {
	t.Helper()
	pairs := make(map[string][]*sam.Record)
	for _, rec := range recs {
		if rec.Flags&sam.Unmapped == 0 {
			refSpan, _ := cigarSpans(rec.Cigar)
			assert.Equal(t, rec.Pos+refSpan, rec.End(), "read %s end", rec.Name)
			assert.LessOrEqual(t, rec.End(), rec.Ref.Len(), "read %s runs past %s", rec.Name, rec.Ref.Name())
		}
		if rec.Flags&sam.Paired != 0 {
			pairs[rec.Name] = append(pairs[rec.Name], rec)
		}
	}

	for name, group := range pairs {
		require.Len(t, group, 2, "pair %s", name)
		a, b := group[0], group[1]
		if a.Flags&sam.Read1 == 0 {
			a, b = b, a
		}
		assert.NotZero(t, a.Flags&sam.Read1, "pair %s first read", name)
		assert.NotZero(t, b.Flags&sam.Read2, "pair %s last read", name)

		assert.Equal(t, b.Flags&sam.Unmapped != 0, a.Flags&sam.MateUnmapped != 0, "pair %s mate-unmapped of first", name)
		assert.Equal(t, a.Flags&sam.Unmapped != 0, b.Flags&sam.MateUnmapped != 0, "pair %s mate-unmapped of last", name)
		assert.Equal(t, b.Flags&sam.Reverse != 0, a.Flags&sam.MateReverse != 0, "pair %s mate-reverse of first", name)
		assert.Equal(t, a.Flags&sam.Reverse != 0, b.Flags&sam.MateReverse != 0, "pair %s mate-reverse of last", name)

		assert.Equal(t, a.TempLen, -b.TempLen, "pair %s template lengths", name)
		bothMapped := a.Flags&sam.Unmapped == 0 && b.Flags&sam.Unmapped == 0
		if bothMapped && a.Ref == b.Ref && a.TempLen != 0 {
			span := max(a.End(), b.End()) - min(a.Pos, b.Pos)
			assert.Equal(t, span, abs(a.TempLen), "pair %s template length magnitude", name)
			leftmost := a
			if b.Pos < a.Pos {
				leftmost = b
			}
			assert.Positive(t, leftmost.TempLen, "pair %s template length sign", name)
		}
	}
}

func TestGenerateAllSummary(t *testing.T) {
	root := t.TempDir()
	sum := runAll(t, &Config{OutputDir: root})

	assert.Len(t, sum.Results, 54)
	assert.Equal(t, 53, sum.Generated)
	assert.Equal(t, 1, sum.Failed)
	assert.Zero(t, sum.Skipped)

	var failed []string
	for _, res := range sum.Failures() {
		failed = append(failed, res.Spec.ID)
	}
	assert.Equal(t, []string{"SAM_41"}, failed)

	for i, spec := range loadCatalog(t).All() {
		assert.Equal(t, spec.ID, sum.Results[i].Spec.ID, "result order")
	}

	assert.FileExists(t, filepath.Join(root, "CATALOG.md"))
	assert.FileExists(t, filepath.Join(root, "manifest.json"))
	assert.NoDirExists(t, filepath.Join(root, "SAM_41"))
	assert.DirExists(t, filepath.Join(root, "SAM_42"))
}

func TestGenerateAllSkipUnsupported(t *testing.T) {
	root := t.TempDir()
	sum := runAll(t, &Config{OutputDir: root, SkipUnsupported: true})

	assert.Equal(t, 53, sum.Generated)
	assert.Zero(t, sum.Failed)
	assert.Equal(t, 1, sum.Skipped)
}

func TestGenerateAllDeterministic(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	runAll(t, &Config{OutputDir: first})
	runAll(t, &Config{OutputDir: second})

	var rels []string
	walk := func(root string) ([]string, error) {
		var out []string
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			out = append(out, rel)
			return nil
		})
		return out, err
	}

	rels, err := walk(first)
	require.NoError(t, err)
	require.NotEmpty(t, rels)
	other, err := walk(second)
	require.NoError(t, err)
	assert.Equal(t, rels, other, "file trees differ")

	for _, rel := range rels {
		want, err := os.ReadFile(filepath.Join(first, rel))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(second, rel))
		require.NoError(t, err, rel)
		assert.True(t, bytes.Equal(want, got), "%s differs between runs", rel)
	}
}

func TestGeneratedOutput(t *testing.T) {
	root := t.TempDir()
	sum := runAll(t, &Config{OutputDir: root})

	t.Run("variable fastq read lengths", func(t *testing.T) {
		recs, err := fastq.ReadFile(filepath.Join(root, "FASTQ_02", "FASTQ_02.fastq"))
		require.NoError(t, err)
		var lengths []int
		for _, r := range recs {
			lengths = append(lengths, len(r.Seq))
		}
		assert.Equal(t, []int{36, 40, 36}, lengths)
	})

	t.Run("gzip fastq", func(t *testing.T) {
		path := filepath.Join(root, "FASTQ_05", "FASTQ_05.fastq.gz")
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Greater(t, len(raw), 2)
		assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")

		recs, err := fastq.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, recs, 3)
	})

	stems := func(recs []fastq.Record) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = strings.TrimSuffix(strings.TrimSuffix(r.Name, "/1"), "/2")
		}
		return out
	}
	mates := func(t *testing.T, id string) ([]fastq.Record, []fastq.Record) {
		t.Helper()
		first, err := fastq.ReadFile(filepath.Join(root, id, id+"_1.fastq"))
		require.NoError(t, err)
		second, err := fastq.ReadFile(filepath.Join(root, id, id+"_2.fastq"))
		require.NoError(t, err)
		return first, second
	}

	t.Run("mate names line up", func(t *testing.T) {
		for _, id := range []string{"FASTQ_03", "FASTQ_04"} {
			first, second := mates(t, id)
			assert.Equal(t, stems(first), stems(second), id)
		}
	})

	t.Run("mate name mismatch fixtures stay mismatched", func(t *testing.T) {
		first, second := mates(t, "FASTQ_07")
		assert.NotEqual(t, stems(first), stems(second))

		first, second = mates(t, "FASTQ_12")
		assert.Len(t, first, 3)
		assert.Len(t, second, 2)
	})

	t.Run("alignment invariants hold on disk", func(t *testing.T) {
		for _, res := range sum.Results {
			if res.Status != StatusGenerated || res.Spec.Format != catalog.FormatSAM {
				continue
			}
			t.Run(res.Spec.ID, func(t *testing.T) {
				recs := readSAM(t, filepath.Join(root, res.Spec.ID, res.Spec.ID+".sam"))
				require.NotEmpty(t, recs)
				checkInvariants(t, recs)
			})
		}
	})

	t.Run("enclosed pair", func(t *testing.T) {
		recs := readSAM(t, filepath.Join(root, "SAM_06", "SAM_06.sam"))
		require.Len(t, recs, 2)
		a, b := recs[0], recs[1]
		assert.Equal(t, 99, a.Pos)
		assert.Equal(t, 200, a.End())
		assert.Equal(t, 119, b.Pos)
		assert.Equal(t, 160, b.End())
		assert.Less(t, a.Pos, b.Pos)
		assert.Greater(t, a.End(), b.End())
		assert.NotZero(t, a.Flags&sam.ProperPair)
		assert.NotZero(t, b.Flags&sam.ProperPair)
		assert.Equal(t, 101, a.TempLen)
		assert.Equal(t, -101, b.TempLen)
	})

	t.Run("long distance pair", func(t *testing.T) {
		recs := readSAM(t, filepath.Join(root, "SAM_09", "SAM_09.sam"))
		require.Len(t, recs, 2)
		for _, rec := range recs {
			assert.Equal(t, "large_ref", rec.Ref.Name())
			assert.Greater(t, abs(rec.TempLen), 1000000)
		}
	})

	t.Run("cross reference pair", func(t *testing.T) {
		recs := readSAM(t, filepath.Join(root, "SAM_10", "SAM_10.sam"))
		require.Len(t, recs, 2)
		assert.Equal(t, "chr1", recs[0].Ref.Name())
		assert.Equal(t, "chr2", recs[1].Ref.Name())
		for _, rec := range recs {
			assert.Zero(t, rec.TempLen)
		}
	})

	t.Run("substitution tags", func(t *testing.T) {
		recs := readSAM(t, filepath.Join(root, "SAM_13", "SAM_13.sam"))
		require.Len(t, recs, 1)
		nm := recs[0].AuxFields.Get(sam.NewTag("NM"))
		require.NotNil(t, nm)
		assert.EqualValues(t, 1, nm.Value())
		md := recs[0].AuxFields.Get(sam.NewTag("MD"))
		require.NotNil(t, md)
		assert.Equal(t, "15G9", md.Value())
	})

	t.Run("optional tags survive the round trip", func(t *testing.T) {
		recs := readSAM(t, filepath.Join(root, "SAM_32", "SAM_32.sam"))
		require.Len(t, recs, 1)
		aux := recs[0].AuxFields

		nm := aux.Get(sam.NewTag("NM"))
		require.NotNil(t, nm)
		assert.EqualValues(t, 0, nm.Value())
		as := aux.Get(sam.NewTag("AS"))
		require.NotNil(t, as)
		assert.EqualValues(t, 24, as.Value())
		xf := aux.Get(sam.NewTag("XF"))
		require.NotNil(t, xf)
		assert.Equal(t, float32(0.75), xf.Value())
		xb := aux.Get(sam.NewTag("XB"))
		require.NotNil(t, xb)
		assert.Equal(t, []int32{-1, 0, 1}, xb.Value())
	})

	t.Run("read groups", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(root, "SAM_33", "SAM_33.sam"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "@RG\tID:rg1\tSM:sample1")
		assert.Contains(t, string(content), "@RG\tID:rg2\tSM:sample2")

		recs := readSAM(t, filepath.Join(root, "SAM_33", "SAM_33.sam"))
		require.Len(t, recs, 2)
		var groups []string
		for _, rec := range recs {
			rg := rec.AuxFields.Get(sam.NewTag("RG"))
			require.NotNil(t, rg)
			groups = append(groups, rg.Value().(string))
		}
		assert.Equal(t, []string{"rg1", "rg2"}, groups)
	})

	t.Run("circular reference topology", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(root, "SAM_38", "SAM_38.sam"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "@SQ\tSN:circ\tLN:1000\tTP:circular")

		recs := readSAM(t, filepath.Join(root, "SAM_38", "SAM_38.sam"))
		require.Len(t, recs, 2)
		primary, supp := recs[0], recs[1]
		assert.Equal(t, 950, primary.Pos)
		assert.Equal(t, "50M50S", primary.Cigar.String())
		assert.NotZero(t, supp.Flags&sam.Supplementary)
		assert.Equal(t, 0, supp.Pos)
		assert.Equal(t, "50H50M", supp.Cigar.String())
		// The soft-clipped tail of the primary is the sequence the
		// supplementary aligns at the origin.
		tail := string(primary.Seq.Expand()[50:])
		assert.Equal(t, tail, string(supp.Seq.Expand()))
	})

	t.Run("star fields", func(t *testing.T) {
		fields := func(t *testing.T, id string) []string {
			t.Helper()
			content, err := os.ReadFile(filepath.Join(root, id, id+".sam"))
			require.NoError(t, err)
			for _, line := range strings.Split(string(content), "\n") {
				if line == "" || strings.HasPrefix(line, "@") {
					continue
				}
				return strings.Split(line, "\t")
			}
			t.Fatalf("no records in %s", id)
			return nil
		}

		empty := fields(t, "SAM_30")
		require.GreaterOrEqual(t, len(empty), 11)
		assert.Equal(t, "*", empty[2], "RNAME")
		assert.Equal(t, "*", empty[9], "SEQ")
		assert.Equal(t, "*", empty[10], "QUAL")

		noQual := fields(t, "SAM_31")
		require.GreaterOrEqual(t, len(noQual), 11)
		assert.Len(t, noQual[9], 30)
		assert.Equal(t, "*", noQual[10], "QUAL")
	})

	t.Run("bam round trip", func(t *testing.T) {
		h, recs := readBAM(t, filepath.Join(root, "SAM_39", "SAM_39.bam"))
		refs := h.Refs()
		require.Len(t, refs, 3)
		assert.Equal(t, "chr1", refs[0].Name())

		require.Len(t, recs, 2)
		checkInvariants(t, recs)
		assert.Equal(t, "bam_pair_1", recs[0].Name)
		assert.Equal(t, 5999, recs[0].Pos)
		assert.Equal(t, 6099, recs[1].Pos)
		assert.Equal(t, "30M", recs[0].Cigar.String())
		assert.Equal(t, 130, recs[0].TempLen)
		assert.Equal(t, -130, recs[1].TempLen)
	})

	t.Run("shipped reference", func(t *testing.T) {
		assert.FileExists(t, filepath.Join(root, "SAM_06", "simple_ref.fa"))
		assert.FileExists(t, filepath.Join(root, "SAM_06", "simple_ref.fa.fai"))
		assert.FileExists(t, filepath.Join(root, "SAM_09", "large_ref.fa"))
	})

	t.Run("case readme", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(root, "SAM_06", "README.md"))
		require.NoError(t, err)
		text := string(content)
		assert.Contains(t, text, "## Test Case: SAM_06")
		assert.Contains(t, text, "**Format:** sam")
		assert.Contains(t, text, "- `SAM_06.sam`")
		assert.Contains(t, text, "- `simple_ref.fa`")
	})

	t.Run("catalog document", func(t *testing.T) {
		content, err := os.ReadFile(filepath.Join(root, "CATALOG.md"))
		require.NoError(t, err)
		text := string(content)
		assert.Contains(t, text, "# Test Data Catalog")
		assert.Contains(t, text, "| FASTQ_01 | fastq | generated | Single End - constant read length |")
		assert.Contains(t, text, "| SAM_41 | cram | failed |")
		assert.Contains(t, text, "Single-end reads with consistent length")
	})

	t.Run("manifest", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(root, "manifest.json"))
		require.NoError(t, err)
		var m Manifest
		require.NoError(t, json.Unmarshal(data, &m))

		assert.Equal(t, "gentests", m.Tool)
		assert.Equal(t, Version, m.Version)
		assert.Equal(t, "default", m.ReferenceSet)
		require.Len(t, m.Cases, 54)

		byID := make(map[string]ManifestCase, len(m.Cases))
		for _, c := range m.Cases {
			byID[c.ID] = c
		}

		gen := byID["SAM_06"]
		assert.Equal(t, StatusGenerated, gen.Status)
		require.NotEmpty(t, gen.Files)
		for _, f := range gen.Files {
			assert.True(t, strings.HasPrefix(f.Name, "SAM_06/"), f.Name)
			assert.Len(t, f.SHA256, 64)
			assert.Positive(t, f.Size)
		}

		failed := byID["SAM_41"]
		assert.Equal(t, StatusFailed, failed.Status)
		assert.Contains(t, failed.Error, "no writer available")
		assert.Empty(t, failed.Files)
	})
}

func TestGenerateCRAMUnsupported(t *testing.T) {
	cat := loadCatalog(t)
	spec, ok := cat.Get("SAM_41")
	require.True(t, ok)

	root := t.TempDir()
	_, err := Generate(spec, root, defaultSet(t))
	require.Error(t, err)

	var uerr *UnsupportedFormatError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "SAM_41", uerr.ID)
	assert.Equal(t, catalog.FormatCRAM, uerr.Format)
	assert.NoDirExists(t, filepath.Join(root, "SAM_41"))
}

func TestGenerateWriteError(t *testing.T) {
	cat := loadCatalog(t)
	spec, ok := cat.Get("FASTQ_01")
	require.True(t, ok)

	root := t.TempDir()
	// A file squatting on the case directory name makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(root, "FASTQ_01"), []byte("in the way"), 0o644))

	_, err := Generate(spec, root, defaultSet(t))
	require.Error(t, err)
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "FASTQ_01", werr.ID)
}

func TestGenerateAllSelectedSubset(t *testing.T) {
	root := t.TempDir()
	sum := runAll(t, &Config{OutputDir: root, SelectedIDs: []string{"SAM_41", "SAM_01"}})

	require.Len(t, sum.Results, 2)
	assert.Equal(t, "SAM_01", sum.Results[0].Spec.ID, "catalog order")
	assert.Equal(t, "SAM_41", sum.Results[1].Spec.ID)
	assert.Equal(t, 1, sum.Generated)
	assert.Equal(t, 1, sum.Failed)

	assert.DirExists(t, filepath.Join(root, "SAM_01"))
	assert.NoDirExists(t, filepath.Join(root, "SAM_41"))

	data, err := os.ReadFile(filepath.Join(root, "manifest.json"))
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Len(t, m.Cases, 2)
}
