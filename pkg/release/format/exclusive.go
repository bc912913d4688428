package format

// hdrPriority ranks hdr-category formats for mutual-exclusivity resolution.
// Lower value wins. Formats absent from this table rank below every entry.
//
// A single release often satisfies several hdr formats at once (a DV release
// with an HDR10 layer also carries a bare "HDR" tag); counting more than one
// would double-score the same property.
var hdrPriority = map[string]int{
	FormatDVHDR10:      0,
	FormatDV:           1,
	FormatHDR10Plus:    2,
	FormatHDR10:        3,
	FormatHDR10Assumed: 4,
	FormatHDRGeneric:   5,
	FormatHLG:          6,
	FormatPQ:           7,
	FormatHDRAssumed:   8,
	FormatSDR:          9,
}

// ResolveExclusive drops redundant matches within logically exclusive
// categories. Only the hdr category is resolved: when more than one
// hdr-category format matched, the single highest-priority one is kept.
// Matches in every other category pass through unchanged.
func ResolveExclusive(matched []Result) []Result {
	bestHDR := -1
	for i, res := range matched {
		if res.Format.Category != CategoryHDR {
			continue
		}
		if bestHDR == -1 || hdrRank(res.Format.ID) < hdrRank(matched[bestHDR].Format.ID) {
			bestHDR = i
		}
	}
	if bestHDR == -1 {
		return matched
	}

	out := make([]Result, 0, len(matched))
	for i, res := range matched {
		if res.Format.Category == CategoryHDR && i != bestHDR {
			continue
		}
		out = append(out, res)
	}
	return out
}

func hdrRank(id string) int {
	if rank, ok := hdrPriority[id]; ok {
		return rank
	}
	return len(hdrPriority)
}
