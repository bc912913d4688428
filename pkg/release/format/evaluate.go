package format

import "github.com/vmunix/scorarr/pkg/release"

// Result is the evaluation of one format against one release.
type Result struct {
	Format     CustomFormat
	Matched    bool
	Conditions []ConditionResult
}

// Evaluate applies a format's conditions to release attributes.
//
// Required conditions are ANDed: all must match (vacuously true when there
// are none). Non-required conditions are ORed: at least one must match when
// any exist. A format with zero conditions therefore always matches; that
// edge case is relied on as a sentinel and must not change.
func Evaluate(f CustomFormat, info *release.Info) Result {
	res := Result{Format: f, Conditions: make([]ConditionResult, 0, len(f.Conditions))}

	requiredOK := true
	optionalSeen := false
	optionalOK := false

	for _, cond := range f.Conditions {
		cr := EvaluateCondition(cond, info)
		res.Conditions = append(res.Conditions, cr)

		if cond.Required {
			if !cr.Matched {
				requiredOK = false
			}
		} else {
			optionalSeen = true
			if cr.Matched {
				optionalOK = true
			}
		}
	}

	res.Matched = requiredOK && (!optionalSeen || optionalOK)
	return res
}

// MatchAll evaluates every format and returns only those that matched,
// in catalogue order, each retaining its condition trace.
func MatchAll(info *release.Info, formats []CustomFormat) []Result {
	var matched []Result
	for _, f := range formats {
		if res := Evaluate(f, info); res.Matched {
			matched = append(matched, res)
		}
	}
	return matched
}
