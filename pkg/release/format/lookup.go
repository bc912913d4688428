package format

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// lookupThreshold is the minimum Jaro-Winkler similarity for a fuzzy hit.
const lookupThreshold = 0.85

// FindByName resolves a format by name, id, or close-enough fuzzy match.
// Jaro-Winkler favors shared prefixes, which suits format names well.
// When nothing clears the threshold it returns false plus up to three
// near-miss names usable for a "did you mean" hint.
func FindByName(name string, formats []CustomFormat) (CustomFormat, bool, []string) {
	for _, f := range formats {
		if strings.EqualFold(f.Name, name) || strings.EqualFold(f.ID, name) {
			return f, true, nil
		}
	}

	type scored struct {
		format CustomFormat
		score  float64
	}
	var candidates []scored
	for _, f := range formats {
		score := float64(edlib.JaroWinklerSimilarity(strings.ToLower(name), strings.ToLower(f.Name)))
		if score >= 0.70 {
			candidates = append(candidates, scored{format: f, score: score})
		}
	}
	if len(candidates) == 0 {
		return CustomFormat{}, false, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	if best.score >= lookupThreshold {
		return best.format, true, nil
	}

	var suggestions []string
	for _, c := range candidates {
		if len(suggestions) == 3 {
			break
		}
		suggestions = append(suggestions, c.format.Name)
	}
	return CustomFormat{}, false, suggestions
}
