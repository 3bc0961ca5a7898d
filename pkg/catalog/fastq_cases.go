package catalog

import "strings"

// asciiRange returns the characters from lo through hi inclusive.
func asciiRange(lo, hi byte) string {
	var b strings.Builder
	for c := lo; c <= hi; c++ {
		b.WriteByte(c)
	}
	return b.String()
}

// printableASCII spans the full Phred+33 symbol range, '!' through '~'.
var printableASCII = asciiRange('!', '~')

// fastqCases returns the FASTQ half of the catalog in declared order.
func fastqCases() []Spec {
	return []Spec{
		{
			ID:          "FASTQ_01",
			Title:       "Single End - constant read length",
			Description: "Single-end reads with consistent length",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "read1_const", Seq: "ACGTACGTACGT", Qual: "!!!!!!!!!!!!"},
					{Name: "read2_const", Seq: "CCCCCCCCCCCC", Qual: "############"},
					{Name: "read3_const", Seq: "GGGGGGGGGGGG", Qual: "$$$$$$$$$$$$"},
				},
			},
		},
		{
			ID:          "FASTQ_02",
			Title:       "Single End - variable read length",
			Description: "Single-end reads with varying lengths",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "read1_var", Seq: strings.Repeat("ACGT", 9), Qual: strings.Repeat("!", 36)},
					{Name: "read2_var", Seq: strings.Repeat("C", 40), Qual: strings.Repeat("#", 40)},
					{Name: "read3_var", Seq: strings.Repeat("G", 36), Qual: strings.Repeat("$", 36)},
				},
			},
		},
		{
			ID:          "FASTQ_03",
			Title:       "Paired End - both mates same length",
			Description: "Paired-end reads where both mates have same length",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "pair1_same/1", Seq: strings.Repeat("A", 15), Qual: strings.Repeat("!", 15)},
					{Name: "pair2_same/1", Seq: strings.Repeat("C", 15), Qual: strings.Repeat("$", 15)},
					{Name: "pair3_same/1", Seq: strings.Repeat("N", 15), Qual: strings.Repeat("&", 15)},
				},
				Mates: []Read{
					{Name: "pair1_same/2", Seq: strings.Repeat("T", 15), Qual: strings.Repeat("#", 15)},
					{Name: "pair2_same/2", Seq: strings.Repeat("G", 15), Qual: strings.Repeat("%", 15)},
					{Name: "pair3_same/2", Seq: strings.Repeat("A", 15), Qual: strings.Repeat("'", 15)},
				},
			},
		},
		{
			ID:          "FASTQ_04",
			Title:       "Paired End - mates different length",
			Description: "Paired-end reads with different lengths per mate",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "pair1_diff/1", Seq: strings.Repeat("A", 12), Qual: strings.Repeat("!", 12)},
					{Name: "pair2_diff/1", Seq: strings.Repeat("C", 12), Qual: strings.Repeat("$", 12)},
					{Name: "pair3_diff/1", Seq: strings.Repeat("N", 12), Qual: strings.Repeat("&", 12)},
				},
				Mates: []Read{
					{Name: "pair1_diff/2", Seq: strings.Repeat("T", 10), Qual: strings.Repeat("#", 10)},
					{Name: "pair2_diff/2", Seq: strings.Repeat("G", 10), Qual: strings.Repeat("%", 10)},
					{Name: "pair3_diff/2", Seq: strings.Repeat("A", 10), Qual: strings.Repeat("'", 10)},
				},
			},
		},
		{
			ID:          "FASTQ_05",
			Title:       "GZIP compressed input",
			Description: "FASTQ input compressed with gzip",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Gzip: true,
				Reads: []Read{
					{Name: "read1_gz", Seq: "ACGTACGTACGT", Qual: "!!!!!!!!!!!!"},
					{Name: "read2_gz", Seq: "CCCCCCCCCCCC", Qual: "############"},
					{Name: "read3_gz", Seq: "GGGGGGGGGGGG", Qual: "$$$$$$$$$$$$"},
				},
			},
		},
		{
			// The tool under test is expected to produce the gzip side;
			// the fixture itself is plain text.
			ID:          "FASTQ_06",
			Title:       "GZIP compressed output",
			Description: "Plain FASTQ input for exercising gzipped output",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "read1_const", Seq: "ACGTACGTACGT", Qual: "!!!!!!!!!!!!"},
					{Name: "read2_const", Seq: "CCCCCCCCCCCC", Qual: "############"},
					{Name: "read3_const", Seq: "GGGGGGGGGGGG", Qual: "$$$$$$$$$$$$"},
				},
			},
		},
		{
			// Mates deliberately share no name convention.
			ID:          "FASTQ_07",
			Title:       "Paired End - different read names",
			Description: "Paired-end files with non-matching read names",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "pair1_read_A", Seq: strings.Repeat("A", 10), Qual: strings.Repeat("!", 10)},
					{Name: "pair2_forward", Seq: strings.Repeat("C", 10), Qual: strings.Repeat("$", 10)},
					{Name: "pair3_left", Seq: strings.Repeat("G", 10), Qual: strings.Repeat("&", 10)},
				},
				Mates: []Read{
					{Name: "pair1_read_B", Seq: strings.Repeat("T", 10), Qual: strings.Repeat("#", 10)},
					{Name: "pair2_reverse", Seq: strings.Repeat("G", 10), Qual: strings.Repeat("%", 10)},
					{Name: "pair3_rightSide", Seq: strings.Repeat("T", 10), Qual: strings.Repeat("'", 10)},
				},
			},
		},
		{
			ID:          "FASTQ_08",
			Title:       "Full quality score range",
			Description: "All valid Phred+33 quality scores",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "qual_range_read", Seq: strings.Repeat("A", len(printableASCII)), Qual: printableASCII},
				},
			},
		},
		{
			ID:          "FASTQ_09",
			Title:       "ACGT nucleotide only",
			Description: "Reads containing only ACGT bases",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "acgt_read", Seq: strings.Repeat("ACGT", 10), Qual: strings.Repeat("!", 40)},
				},
			},
		},
		{
			ID:          "FASTQ_10",
			Title:       "IUPAC ambiguity codes",
			Description: "Reads with IUPAC ambiguity characters",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "iupac_read", Seq: strings.Repeat("ACGTRYSWKMBDHVN", 2), Qual: strings.Repeat("!", 30)},
				},
			},
		},
		{
			// Every printable ASCII character except space in one name.
			ID:          "FASTQ_11",
			Title:       "Special read name characters",
			Description: "Read names with special characters",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: printableASCII, Seq: "ACGT", Qual: "!!!!"},
				},
			},
		},
		{
			// The extra mate 1 read has no partner in mate file 2.
			ID:          "FASTQ_12",
			Title:       "Paired End - unequal file lengths",
			Description: "Paired-end files with unequal numbers of reads",
			Format:      FormatFASTQ,
			FASTQ: &FASTQParams{
				Reads: []Read{
					{Name: "unequal_pair1/1", Seq: strings.Repeat("A", 10), Qual: strings.Repeat("!", 10)},
					{Name: "unequal_pair2/1", Seq: strings.Repeat("C", 10), Qual: strings.Repeat("$", 10)},
					{Name: "extra_read/1", Seq: strings.Repeat("N", 10), Qual: strings.Repeat("&", 10)},
				},
				Mates: []Read{
					{Name: "unequal_pair1/2", Seq: strings.Repeat("T", 10), Qual: strings.Repeat("#", 10)},
					{Name: "unequal_pair2/2", Seq: strings.Repeat("G", 10), Qual: strings.Repeat("%", 10)},
				},
			},
		},
	}
}
