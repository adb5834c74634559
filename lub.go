package feasibility

import "math"

// BoundAnalysis carries the numbers behind a utilization-bound verdict.
type BoundAnalysis struct {
	Utilization float64 // U = Σ C(i)/T(i)
	Bound       float64 // LUB(N) = N·(2^(1/N) − 1)
	Verdict     Verdict
}

// LeastUpperBound returns the Liu & Layland least upper bound for n services.
// LUB(1) = 1; the bound converges to ln 2 ≈ 0.6931 as n grows.
func LeastUpperBound(n int) float64 {
	return float64(n) * (math.Pow(2.0, 1.0/float64(n)) - 1.0)
}

// AnalyzeUtilizationBound runs the RM least-upper-bound test.
//
// The test is sufficient but not necessary: FEASIBLE guarantees the set is
// schedulable under rate monotonic priorities, INFEASIBLE proves nothing and
// defers to the exact tests. An empty set is rejected before the bound is
// computed (LUB would divide by zero).
func AnalyzeUtilizationBound(set ServiceSet) (BoundAnalysis, error) {
	if err := set.Validate(); err != nil {
		return BoundAnalysis{}, err
	}

	u := set.Utilization()
	lub := LeastUpperBound(len(set))

	return BoundAnalysis{
		Utilization: u,
		Bound:       lub,
		Verdict:     verdict(u <= lub),
	}, nil
}

// UtilizationBound is the verdict-only form of AnalyzeUtilizationBound.
func UtilizationBound(set ServiceSet) (Verdict, error) {
	a, err := AnalyzeUtilizationBound(set)
	if err != nil {
		return "", err
	}
	return a.Verdict, nil
}
