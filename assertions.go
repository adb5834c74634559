package feasibility

import "testing"

// Exported test assertions for the algebra of the feasibility tests. These
// run the real algorithms; a failure means an implementation bug, not a
// property of the task set under test.

// AssertExactAgreement verifies that the completion-time and scheduling-point
// tests return the same verdict. The two formulations are logically
// equivalent, so disagreement on any input is a bug.
func AssertExactAgreement(t testing.TB, set ServiceSet) {
	t.Helper()

	ct, err := CompletionTime(set)
	if err != nil {
		t.Fatalf("completion-time test failed: %v", err)
	}
	sp, err := SchedulingPoint(set)
	if err != nil {
		t.Fatalf("scheduling-point test failed: %v", err)
	}

	if ct != sp {
		t.Errorf("exact tests disagree on %v: completion-time=%s, scheduling-point=%s",
			set, ct, sp)
		return
	}
	t.Logf("✓ Exact tests agree: %s for %v", ct, set)
}

// AssertBoundSoundness verifies the sufficient condition: if the RM least
// upper bound passes, both exact tests must pass too. The converse is not
// checked; the bound is conservative.
func AssertBoundSoundness(t testing.TB, set ServiceSet) {
	t.Helper()

	bound, err := AnalyzeUtilizationBound(set)
	if err != nil {
		t.Fatalf("utilization-bound test failed: %v", err)
	}
	if bound.Verdict != Feasible {
		t.Logf("✓ Bound inconclusive (U=%.4f > LUB=%.4f); soundness vacuously holds",
			bound.Utilization, bound.Bound)
		return
	}

	ct, err := CompletionTime(set)
	if err != nil {
		t.Fatalf("completion-time test failed: %v", err)
	}
	sp, err := SchedulingPoint(set)
	if err != nil {
		t.Fatalf("scheduling-point test failed: %v", err)
	}

	if ct != Feasible || sp != Feasible {
		t.Errorf("bound claims feasible (U=%.4f ≤ LUB=%.4f) but exact tests say "+
			"completion-time=%s, scheduling-point=%s for %v",
			bound.Utilization, bound.Bound, ct, sp, set)
		return
	}
	t.Logf("✓ Bound pass confirmed by exact tests (U=%.4f ≤ LUB=%.4f)",
		bound.Utilization, bound.Bound)
}

// AssertWCETMonotonicity verifies that inflating any single WCET by one unit
// never flips an infeasible verdict back to feasible. More load can only
// hurt.
func AssertWCETMonotonicity(t testing.TB, set ServiceSet) {
	t.Helper()

	base, err := CompletionTime(set)
	if err != nil {
		t.Fatalf("completion-time test failed: %v", err)
	}

	for i := range set {
		inflated := make(ServiceSet, len(set))
		copy(inflated, set)
		inflated[i].WCET++

		if inflated.Validate() != nil {
			// Inflation broke WCET ≤ Period; not a schedulable configuration.
			continue
		}

		v, err := CompletionTime(inflated)
		if err != nil {
			t.Fatalf("completion-time test failed on inflated set: %v", err)
		}
		if base == Infeasible && v == Feasible {
			t.Errorf("monotonicity violated: inflating wcet[%d] turned %v feasible", i, set)
			return
		}
	}
	t.Logf("✓ WCET monotonicity holds for %v (base verdict %s)", set, base)
}
