package feasibility

// Dynamic-priority feasibility.
//
// EDF and LLF are both optimal on a single processor with implicit
// deadlines, so total utilization U ≤ 1 is necessary and sufficient for
// either policy. The comparison runs on the exact reduced rational returned
// by UtilizationRatio: a set sitting exactly at U = 1 (a common boundary in
// the classic examples) is FEASIBLE, with no float epsilon to argue about.
//
// These are utilization-bound verdicts only. No EDF or LLF schedule is ever
// constructed or simulated here.

// DynamicBound runs the exact dynamic-priority utilization-bound test.
func DynamicBound(set ServiceSet) (Verdict, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}
	num, den := set.UtilizationRatio()
	return verdict(num <= den), nil
}

// EDFBound reports feasibility under earliest-deadline-first scheduling.
func EDFBound(set ServiceSet) (Verdict, error) {
	return DynamicBound(set)
}

// LLFBound reports feasibility under least-laxity-first scheduling. Same
// bound as EDF: both policies are optimal for this task model.
func LLFBound(set ServiceSet) (Verdict, error) {
	return DynamicBound(set)
}
