package feasibility

// SchedulingPointAnalysis holds per-service results of the scheduling-point
// test.
type SchedulingPointAnalysis struct {
	// Witness[i] is the earliest scheduling point t at which the cumulative
	// demand of services 0..i fits (W(t) ≤ t), or -1 when no such point
	// exists and service i is infeasible.
	Witness []int64

	Verdict Verdict
}

// AnalyzeSchedulingPoint runs the exact scheduling-point feasibility test
// (Lehoczky, Sha & Ding). For each service i it enumerates the finite set of
// scheduling points
//
//	S(i) = { l·T(k) : 0 ≤ k ≤ i, 1 ≤ l ≤ floor(T(i)/T(k)) }
//
// and passes service i iff at least one t in S(i) satisfies
//
//	W(t) = Σ_{j≤i} C(j)·ceil(t/T(j)) ≤ t
//
// This is the existential counterpart of the completion-time fixed point;
// the two tests agree on every valid input.
func AnalyzeSchedulingPoint(set ServiceSet) (SchedulingPointAnalysis, error) {
	if err := set.Validate(); err != nil {
		return SchedulingPointAnalysis{}, err
	}

	analysis := SchedulingPointAnalysis{
		Witness: make([]int64, len(set)),
		Verdict: Feasible,
	}

	for i := range set {
		analysis.Witness[i] = witnessPoint(set, i)
		if analysis.Witness[i] < 0 {
			analysis.Verdict = Infeasible
		}
	}

	return analysis, nil
}

// SchedulingPoint is the verdict-only form of AnalyzeSchedulingPoint.
func SchedulingPoint(set ServiceSet) (Verdict, error) {
	a, err := AnalyzeSchedulingPoint(set)
	if err != nil {
		return "", err
	}
	return a.Verdict, nil
}

// witnessPoint returns the earliest scheduling point at which service i's
// cumulative demand is absorbable, or -1 if none exists within T(i).
func witnessPoint(set ServiceSet, i int) int64 {
	best := int64(-1)

	for k := 0; k <= i; k++ {
		// Release instants of service k up to service i's own period.
		for l := int64(1); l <= set[i].Period/set[k].Period; l++ {
			t := l * set[k].Period
			if best >= 0 && t >= best {
				continue
			}

			var demand int64
			for j := 0; j <= i; j++ {
				demand += set[j].WCET * ceilDiv(t, set[j].Period)
			}

			if demand <= t {
				best = t
			}
		}
	}

	return best
}
