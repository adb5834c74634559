package feasibility

import "github.com/pkg/errors"

// SlackAnalysis reports how much margin each service has to its deadline.
type SlackAnalysis struct {
	Response []int64 // worst-case response time per service
	Slack    []int64 // Deadline − Response; negative means a missed deadline
	Verdict  Verdict
}

// Slack derives per-service slack from the completion-time fixed points.
// A feasible set has non-negative slack everywhere; the smallest slack marks
// the service closest to its deadline.
func Slack(set ServiceSet) (SlackAnalysis, error) {
	completion, err := AnalyzeCompletionTime(set)
	if err != nil {
		return SlackAnalysis{}, err
	}

	analysis := SlackAnalysis{
		Response: completion.Response,
		Slack:    make([]int64, len(set)),
		Verdict:  completion.Verdict,
	}
	for i := range set {
		analysis.Slack[i] = set[i].Deadline - completion.Response[i]
	}
	return analysis, nil
}

// WCETHeadroom returns the largest number of extra time units that can be
// added to service i's WCET while the whole set stays feasible under the
// exact test. Returns 0 for a set with no room and an error for invalid
// input or when the set is already infeasible as given.
//
// Feasibility is monotone in WCET (inflating a WCET can only hurt), so a
// binary search over the exact test is sound.
func WCETHeadroom(set ServiceSet, i int) (int64, error) {
	if err := set.Validate(); err != nil {
		return 0, err
	}
	if i < 0 || i >= len(set) {
		return 0, errors.Wrapf(ErrInvalidServiceSet, "service index %d out of range [0,%d)", i, len(set))
	}

	base, err := CompletionTime(set)
	if err != nil {
		return 0, err
	}
	if base != Feasible {
		return 0, errors.Errorf("set is infeasible as given; no headroom for service %d", i)
	}

	// WCET can never exceed the service's own period or deadline.
	limit := set[i].Period - set[i].WCET
	if d := set[i].Deadline - set[i].WCET; d < limit {
		limit = d
	}

	trial := make(ServiceSet, len(set))
	feasibleWith := func(extra int64) bool {
		copy(trial, set)
		trial[i].WCET += extra
		v, err := CompletionTime(trial)
		return err == nil && v == Feasible
	}

	lo, hi := int64(0), limit
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if feasibleWith(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}
