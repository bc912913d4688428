package scoring

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable account of why a release scored the way
// it did: per-bucket subtotals, every matched format with its contribution,
// and the condition trace for formats that carried a score. Used by the
// operator-facing explain view.
func Explain(res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Release:  %s\n", res.ReleaseName)
	fmt.Fprintf(&b, "Profile:  %s\n", res.Profile)
	if res.Info != nil {
		fmt.Fprintf(&b, "Parsed:   %s / %s / %s", res.Info.Resolution, res.Info.Source, res.Info.Codec)
		if res.Info.HDR.String() != "sdr" {
			fmt.Fprintf(&b, " / %s", res.Info.HDR)
		}
		if res.Info.Audio.String() != "unknown" {
			fmt.Fprintf(&b, " / %s", res.Info.Audio)
		}
		if res.Info.Group != "" {
			fmt.Fprintf(&b, " / group=%s", res.Info.Group)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for _, bucket := range Buckets {
		bd, ok := res.Breakdown[bucket]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-18s %+5d  (%s)\n", bucket, bd.Score, strings.Join(bd.Formats, ", "))
	}

	b.WriteString("  " + strings.Repeat("─", 40) + "\n")
	if res.Banned {
		fmt.Fprintf(&b, "  Total:             BANNED (%s)\n", strings.Join(res.BannedReasons, ", "))
	} else {
		fmt.Fprintf(&b, "  Total:             %+.0f\n", res.TotalScore)
	}

	if res.SizeRejected {
		fmt.Fprintf(&b, "  Size:              rejected: %s\n", res.SizeReason)
	}
	if res.ProtocolRejected {
		fmt.Fprintf(&b, "  Protocol:          rejected: %s\n", res.ProtocolReason)
	}
	fmt.Fprintf(&b, "  Meets minimum:     %v\n", res.MeetsMinimum)

	// Condition traces for scored formats
	var traced []ScoredFormat
	for _, f := range res.Formats {
		if f.Score != 0 {
			traced = append(traced, f)
		}
	}
	if len(traced) > 0 {
		b.WriteString("\nMatched conditions:\n")
		for _, f := range traced {
			fmt.Fprintf(&b, "  %s (%+d)\n", f.Name, f.Score)
			for _, c := range f.Conditions {
				mark := " "
				if c.Matched {
					mark = "x"
				}
				neg := ""
				if c.Negate {
					neg = " negated"
				}
				fmt.Fprintf(&b, "    [%s] %s (%s%s)\n", mark, c.Name, c.Type, neg)
			}
		}
	}

	return b.String()
}
