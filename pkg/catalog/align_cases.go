package catalog

import (
	"strings"

	"github.com/biogo/hts/sam"
)

// Flag shorthands for the read tables.
const (
	paired1 = sam.Paired | sam.Read1
	paired2 = sam.Paired | sam.Read2
)

const (
	simpleRef = "simple_ref.fa"
	largeRef  = "large_ref.fa"
)

// alignCases returns the SAM/BAM/CRAM half of the catalog in declared order.
func alignCases() []Spec {
	return []Spec{
		// Mapping state.
		{
			ID:          "SAM_01",
			Title:       "Unmapped read - single end",
			Description: "Single-end unmapped read with basic flags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "unmapped_se_1", Flags: sam.Unmapped, Seq: "AGCTAGCTAGCT", Qual: "!!!!!!!!!!!!"},
				},
			},
		},
		{
			ID:          "SAM_02",
			Title:       "Unmapped pair",
			Description: "Paired-end reads where both mates are unmapped",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "unmapped_pair_1", Flags: paired1 | sam.Unmapped | sam.MateUnmapped,
						Seq: "ACGTACGTAC", Qual: "!!!!!!!!!!"},
					{Name: "unmapped_pair_1", Flags: paired2 | sam.Unmapped | sam.MateUnmapped,
						Seq: "GTACGTACGT", Qual: "##########"},
				},
			},
		},
		{
			ID:          "SAM_03",
			Title:       "Half-mapped read pair",
			Description: "Paired-end reads where one mate is mapped and one is unmapped",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "half_mapped_pair_1", Flags: paired1 | sam.MateUnmapped,
						Ref: "chr1", Pos: 100, MapQ: 60, Cigar: "20M"},
					{Name: "half_mapped_pair_1", Flags: paired2 | sam.Unmapped,
						Seq: "TTTTGGGGCCCCAAAATTTT", Qual: "####################",
						MateRef: "chr1", MatePos: 100},
				},
			},
		},
		{
			ID:          "SAM_04",
			Title:       "Mapped read single end",
			Description: "Single-end mapped reads with different orientations",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "mapped_se_fwd", Ref: "chr1", Pos: 200, MapQ: 60, Cigar: "25M"},
					{Name: "mapped_se_rev", Flags: sam.Reverse, Ref: "chr1", Pos: 300, MapQ: 60, Cigar: "25M"},
				},
			},
		},

		// Pair geometry and TLEN.
		{
			ID:          "SAM_05",
			Title:       "Mapped read pair - same position + TLEN",
			Description: "Paired-end reads mapped to same position with template length",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "same_pos_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 500, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 500, TempLen: 30},
					{Name: "same_pos_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 500, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 500, TempLen: -30},
				},
			},
		},
		{
			// Mate A spans [100,200] and strictly encloses mate B at [120,160].
			ID:          "SAM_06",
			Title:       "Mapped read pair - enclosed + TLEN",
			Description: "Paired reads where one read encloses the other",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "enclosed_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 100, MapQ: 60, Cigar: "101M",
						MateRef: "chr1", MatePos: 120, TempLen: 101},
					{Name: "enclosed_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 120, MapQ: 60, Cigar: "41M",
						MateRef: "chr1", MatePos: 100, TempLen: -101},
				},
			},
		},
		{
			ID:          "SAM_07",
			Title:       "Mapped read pair - overlapping + TLEN",
			Description: "Paired reads with overlapping alignment",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "overlap_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 400, MapQ: 60, Cigar: "60M",
						MateRef: "chr1", MatePos: 430, TempLen: 90},
					{Name: "overlap_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 430, MapQ: 60, Cigar: "60M",
						MateRef: "chr1", MatePos: 400, TempLen: -90},
				},
			},
		},
		{
			ID:          "SAM_08",
			Title:       "Mapped read pair - no overlapping + TLEN",
			Description: "Paired reads with no overlap between mates",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "gapped_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 600, MapQ: 60, Cigar: "40M",
						MateRef: "chr1", MatePos: 800, TempLen: 240},
					{Name: "gapped_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 800, MapQ: 60, Cigar: "40M",
						MateRef: "chr1", MatePos: 600, TempLen: -240},
				},
			},
		},
		{
			// Start positions sit 1,004,000 bases apart, so the template
			// length exceeds one million.
			ID:          "SAM_09",
			Title:       "Mapped read pair - long distance + TLEN",
			Description: "Paired reads mapped far apart (>1M bases)",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: largeRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "long_distance_pair_1", Flags: paired1 | sam.MateReverse,
						Ref: "large_ref", Pos: 1000, MapQ: 60, Cigar: "100M",
						MateRef: "large_ref", MatePos: 1005000, TempLen: 1004100},
					{Name: "long_distance_pair_1", Flags: paired2 | sam.Reverse,
						Ref: "large_ref", Pos: 1005000, MapQ: 60, Cigar: "100M",
						MateRef: "large_ref", MatePos: 1000, TempLen: -1004100},
				},
			},
		},
		{
			ID:          "SAM_10",
			Title:       "Mapped read pair - different reference + TLEN",
			Description: "Paired reads mapped to different reference sequences",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "cross_ref_pair_1", Flags: paired1 | sam.MateReverse,
						Ref: "chr1", Pos: 1000, MapQ: 60, Cigar: "50M",
						MateRef: "chr2", MatePos: 2000},
					{Name: "cross_ref_pair_1", Flags: paired2 | sam.Reverse,
						Ref: "chr2", Pos: 2000, MapQ: 60, Cigar: "50M",
						MateRef: "chr1", MatePos: 1000},
				},
			},
		},

		// Alignment multiplicity.
		{
			ID:          "SAM_11",
			Title:       "Secondary alignment",
			Description: "Read with primary and secondary alignments",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "multi_hit_1", Ref: "chr1", Pos: 700, MapQ: 60, Cigar: "40M"},
					{Name: "multi_hit_1", Flags: sam.Secondary,
						Ref: "chr2", Pos: 1500, MapQ: 0, Cigar: "40M",
						OmitSeq: true, OmitQual: true},
				},
			},
		},
		{
			// One 80-base read split across chr1 and chr2.
			ID:          "SAM_12",
			Title:       "Supplementary / chimeric alignment",
			Description: "Chimeric read with supplementary alignments",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "chimeric_1", Ref: "chr1", Pos: 2000, MapQ: 60, Cigar: "50M30S",
						Tags: []Tag{{Name: "SA", Value: "chr2,3000,+,50H30M,60,0;"}}},
					{Name: "chimeric_1", Flags: sam.Supplementary,
						Ref: "chr2", Pos: 3000, MapQ: 60, Cigar: "50H30M",
						Tags: []Tag{{Name: "SA", Value: "chr1,2000,+,50M30S,60,0;"}}},
				},
			},
		},

		// CIGAR operators.
		{
			// The mismatch sits 15 bases in, over the G at chr1:915.
			ID:          "SAM_13",
			Title:       "Base substitution (M, =, X)",
			Description: "Read with M, =, X in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "subst_read_1", Ref: "chr1", Pos: 900, MapQ: 60, Cigar: "10M5=1X9M",
						Tags: []Tag{{Name: "NM", Value: uint(1)}, {Name: "MD", Value: "15G9"}}},
				},
			},
		},
		{
			ID:          "SAM_14",
			Title:       "Base insertion",
			Description: "Read with I in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "ins_read_1", Ref: "chr1", Pos: 1100, MapQ: 60, Cigar: "12M6I12M"},
				},
			},
		},
		{
			ID:          "SAM_15",
			Title:       "Base deletion",
			Description: "Read with D in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "del_read_1", Ref: "chr1", Pos: 1200, MapQ: 60, Cigar: "15M4D15M"},
				},
			},
		},
		{
			ID:          "SAM_16",
			Title:       "Softclips",
			Description: "Read with S in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "softclip_read_1", Ref: "chr1", Pos: 1300, MapQ: 60, Cigar: "5S20M5S"},
				},
			},
		},
		{
			ID:          "SAM_17",
			Title:       "Padding (P)",
			Description: "Read with P in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "pad_read_1", Ref: "chr1", Pos: 1400, MapQ: 60, Cigar: "10M1P10M"},
				},
			},
		},
		{
			ID:          "SAM_18",
			Title:       "Hardclips",
			Description: "Read with H in CIGAR string",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "hardclip_read_1", Ref: "chr1", Pos: 1500, MapQ: 60, Cigar: "10H25M10H"},
				},
			},
		},

		// Flag combinations.
		{
			ID:          "SAM_19",
			Title:       "PCR duplicate flag",
			Description: "Reads with different PCR duplicate flag values",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "dup_candidate_1", Ref: "chr1", Pos: 1600, MapQ: 60, Cigar: "30M"},
					{Name: "dup_candidate_2", Flags: sam.Duplicate, Ref: "chr1", Pos: 1600, MapQ: 60, Cigar: "30M"},
				},
			},
		},
		{
			ID:          "SAM_20",
			Title:       "Paired end - different flags per mate",
			Description: "Pairs with different flag combinations per mate",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "flag_mix_pair_1", Flags: paired1 | sam.MateReverse | sam.QCFail,
						Ref: "chr1", Pos: 1700, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 1800, TempLen: 130},
					{Name: "flag_mix_pair_1", Flags: paired2 | sam.Reverse | sam.Duplicate,
						Ref: "chr1", Pos: 1800, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 1700, TempLen: -130},
				},
			},
		},
		{
			ID:          "SAM_21",
			Title:       "Mate flags - unmapped",
			Description: "Unmapped pair carrying mate flag bits",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "mateflags_unmapped_1", Flags: paired1 | sam.Unmapped | sam.MateUnmapped | sam.MateReverse,
						Seq: "ACACACACAC", Qual: "!!!!!!!!!!"},
					{Name: "mateflags_unmapped_1", Flags: paired2 | sam.Unmapped | sam.MateUnmapped | sam.Reverse,
						Seq: "GTGTGTGTGT", Qual: "##########"},
				},
			},
		},
		{
			ID:          "SAM_22",
			Title:       "Mate flags - half mapped",
			Description: "Mapped read with unmapped mate flags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "mateflags_half_1", Flags: paired1 | sam.Reverse | sam.MateUnmapped,
						Ref: "chr2", Pos: 500, MapQ: 60, Cigar: "25M"},
					{Name: "mateflags_half_1", Flags: paired2 | sam.Unmapped | sam.MateReverse,
						Seq: "CCCCCGGGGGCCCCCGGGGGCCCCC", Qual: "#########################",
						MateRef: "chr2", MatePos: 500},
				},
			},
		},
		{
			ID:          "SAM_23",
			Title:       "Mate flags - short distance",
			Description: "Properly paired reads with nearby mates",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "mateflags_near_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 2100, MapQ: 60, Cigar: "35M",
						MateRef: "chr1", MatePos: 2200, TempLen: 135},
					{Name: "mateflags_near_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 2200, MapQ: 60, Cigar: "35M",
						MateRef: "chr1", MatePos: 2100, TempLen: -135},
				},
			},
		},
		{
			ID:          "SAM_24",
			Title:       "Mate flags - long distance",
			Description: "Reads with mates mapped far apart",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: largeRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "mateflags_far_1", Flags: paired1 | sam.MateReverse,
						Ref: "large_ref", Pos: 5000, MapQ: 60, Cigar: "50M",
						MateRef: "large_ref", MatePos: 1080000, TempLen: 1075050},
					{Name: "mateflags_far_1", Flags: paired2 | sam.Reverse,
						Ref: "large_ref", Pos: 1080000, MapQ: 60, Cigar: "50M",
						MateRef: "large_ref", MatePos: 5000, TempLen: -1075050},
				},
			},
		},

		// Splicing.
		{
			ID:          "SAM_25",
			Title:       "Short intron / splice (N)",
			Description: "Read with N cigar operator for splicing",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "splice_short_1", Ref: "chr1", Pos: 3000, MapQ: 60, Cigar: "20M50N20M"},
				},
			},
		},
		{
			ID:          "SAM_26",
			Title:       "Long intron / splice (N)",
			Description: "Read with long N cigar operator",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "splice_long_1", Ref: "chr1", Pos: 3100, MapQ: 60, Cigar: "20M2000N20M"},
				},
			},
		},

		// Empty reads.
		{
			ID:          "SAM_27",
			Title:       "Empty read (all bases deleted)",
			Description: "Read with all bases deleted (D in CIGAR)",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "empty_del_1", Ref: "chr1", Pos: 4000, MapQ: 60, Cigar: "10D",
						OmitSeq: true, OmitQual: true},
				},
			},
		},
		{
			ID:          "SAM_28",
			Title:       "Empty read (all bases softclipped)",
			Description: "Read with all bases softclipped (S in CIGAR)",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "empty_soft_1", Ref: "chr1", Pos: 4100, MapQ: 60, Cigar: "20S",
						Seq: "ACGTACGTACGTACGTACGT", Qual: "!!!!!!!!!!!!!!!!!!!!"},
				},
			},
		},
		{
			ID:          "SAM_29",
			Title:       "Empty read (all bases hardclipped)",
			Description: "Read with all bases hardclipped (H in CIGAR)",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "empty_hard_1", Ref: "chr1", Pos: 4200, MapQ: 60, Cigar: "20H",
						OmitSeq: true, OmitQual: true},
				},
			},
		},
		{
			ID:          "SAM_30",
			Title:       "Empty read (no nucleotides in read / * in sam)",
			Description: "Read with SEQ and QUAL set to '*'",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "empty_star_1", Flags: sam.Unmapped, OmitSeq: true, OmitQual: true},
				},
			},
		},
		{
			ID:          "SAM_31",
			Title:       "Quality scores absent",
			Description: "Read with QUAL set to '*'",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "no_qual_1", Ref: "chr1", Pos: 4400, MapQ: 60, Cigar: "30M", OmitQual: true},
				},
			},
		},

		// Header and tag surface.
		{
			ID:          "SAM_32",
			Title:       "Optional tags",
			Description: "Read with various optional tags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "tagged_read_1", Ref: "chr1", Pos: 4500, MapQ: 60, Cigar: "24M",
						Tags: []Tag{
							{Name: "NM", Value: uint(0)},
							{Name: "MD", Value: "24"},
							{Name: "AS", Value: 24},
							{Name: "XF", Value: float32(0.75)},
							{Name: "XB", Value: []int32{-1, 0, 1}},
						}},
				},
			},
		},
		{
			ID:          "SAM_33",
			Title:       "Read groups",
			Description: "Reads with different read group tags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				ReadGroups: []ReadGroup{
					{ID: "rg1", Sample: "sample1"},
					{ID: "rg2", Sample: "sample2"},
				},
				Reads: []ReadSpec{
					{Name: "rg_read_1", Ref: "chr1", Pos: 4600, MapQ: 60, Cigar: "20M",
						Tags: []Tag{{Name: "RG", Value: "rg1"}}},
					{Name: "rg_read_2", Ref: "chr1", Pos: 4700, MapQ: 60, Cigar: "20M",
						Tags: []Tag{{Name: "RG", Value: "rg2"}}},
				},
			},
		},

		// Strand orientation.
		{
			// One forward-reverse pair and one forward-forward pair.
			ID:          "SAM_34",
			Title:       "Reverse Complement (different + same) - short distance",
			Description: "Pairs with different reverse complement flag combinations",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "rc_pair_fr_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 5000, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 5100, TempLen: 130},
					{Name: "rc_pair_fr_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 5100, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 5000, TempLen: -130},
					{Name: "rc_pair_ff_1", Flags: paired1,
						Ref: "chr1", Pos: 5200, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 5300, TempLen: 130},
					{Name: "rc_pair_ff_1", Flags: paired2,
						Ref: "chr1", Pos: 5300, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 5200, TempLen: -130},
				},
			},
		},
		{
			// Same flag combinations with mates over a million bases apart.
			ID:          "SAM_35",
			Title:       "Reverse Complement (different + same) - long distance",
			Description: "Pairs with reverse flags and large separation",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: largeRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "rc_far_fr_1", Flags: paired1 | sam.MateReverse,
						Ref: "large_ref", Pos: 2000, MapQ: 60, Cigar: "40M",
						MateRef: "large_ref", MatePos: 1052000, TempLen: 1050040},
					{Name: "rc_far_fr_1", Flags: paired2 | sam.Reverse,
						Ref: "large_ref", Pos: 1052000, MapQ: 60, Cigar: "40M",
						MateRef: "large_ref", MatePos: 2000, TempLen: -1050040},
					{Name: "rc_far_rr_1", Flags: paired1 | sam.Reverse | sam.MateReverse,
						Ref: "large_ref", Pos: 3000, MapQ: 60, Cigar: "40M",
						MateRef: "large_ref", MatePos: 1053000, TempLen: 1050040},
					{Name: "rc_far_rr_1", Flags: paired2 | sam.Reverse | sam.MateReverse,
						Ref: "large_ref", Pos: 1053000, MapQ: 60, Cigar: "40M",
						MateRef: "large_ref", MatePos: 3000, TempLen: -1050040},
				},
			},
		},
		{
			ID:          "SAM_36",
			Title:       "Reverse Complement (different + same) - unmapped",
			Description: "Unmapped pairs with different reverse flags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				Reads: []ReadSpec{
					{Name: "rc_unmapped_1", Flags: paired1 | sam.Unmapped | sam.MateUnmapped | sam.Reverse,
						Seq: "AATTAATTAATT", Qual: "!!!!!!!!!!!!"},
					{Name: "rc_unmapped_1", Flags: paired2 | sam.Unmapped | sam.MateUnmapped | sam.MateReverse,
						Seq: "CCGGCCGGCCGG", Qual: "############"},
				},
			},
		},
		{
			ID:          "SAM_37",
			Title:       "Reverse Complement (different + same) - half mapped",
			Description: "Half-mapped pairs with different reverse flags",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "rc_half_1", Flags: paired1 | sam.Reverse | sam.MateUnmapped,
						Ref: "chr1", Pos: 5400, MapQ: 60, Cigar: "30M"},
					{Name: "rc_half_1", Flags: paired2 | sam.Unmapped | sam.MateReverse,
						Seq: "GGGGGTTTTTGGGGGTTTTTGGGGGTTTTT", Qual: "##############################",
						MateRef: "chr1", MatePos: 5400},
				},
			},
		},

		// Reference topology.
		{
			// The read runs over the origin of the circular sequence: the
			// first 50 bases align at the end, the remainder continues at
			// position 1 as a supplementary alignment.
			ID:          "SAM_38",
			Title:       "Circular reference",
			Description: "Read overlapping circular reference boundary",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "circular_read_1", Ref: "circ", Pos: 951, MapQ: 60, Cigar: "50M50S",
						Seq:  strings.Repeat("TCGA", 12) + "TC" + strings.Repeat("GATC", 12) + "GA",
						Tags: []Tag{{Name: "SA", Value: "circ,1,+,50H50M,60,0;"}}},
					{Name: "circular_read_1", Flags: sam.Supplementary,
						Ref: "circ", Pos: 1, MapQ: 60, Cigar: "50H50M",
						Tags: []Tag{{Name: "SA", Value: "circ,951,+,50M50S,60,0;"}}},
				},
			},
		},

		// Container formats.
		{
			ID:          "SAM_39",
			Title:       "(BAM input) - Generate BAM",
			Description: "Basic BAM file generation",
			Format:      FormatBAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "bam_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 6000, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 6100, TempLen: 130},
					{Name: "bam_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 6100, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 6000, TempLen: -130},
				},
			},
		},
		{
			ID:          "SAM_40",
			Title:       "(BAM output) - Generate SAM",
			Description: "Test BAM output capability",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "bam_out_pair_1", Flags: paired1 | sam.ProperPair | sam.MateReverse,
						Ref: "chr1", Pos: 6200, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 6300, TempLen: 130},
					{Name: "bam_out_pair_1", Flags: paired2 | sam.ProperPair | sam.Reverse,
						Ref: "chr1", Pos: 6300, MapQ: 60, Cigar: "30M",
						MateRef: "chr1", MatePos: 6200, TempLen: -130},
				},
			},
		},
		{
			ID:          "SAM_41",
			Title:       "(CRAM input) - Generate CRAM",
			Description: "Basic CRAM file generation",
			Format:      FormatCRAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "cram_read_1", Ref: "chr1", Pos: 6500, MapQ: 60, Cigar: "30M"},
				},
			},
		},
		{
			ID:          "SAM_42",
			Title:       "(CRAM output) - Generate SAM",
			Description: "Test CRAM output capability",
			Format:      FormatSAM,
			Align: &AlignParams{
				RefFile: simpleRef,
				ShipRef: true,
				Reads: []ReadSpec{
					{Name: "cram_out_read_1", Ref: "chr1", Pos: 6600, MapQ: 60, Cigar: "30M"},
				},
			},
		},
	}
}
