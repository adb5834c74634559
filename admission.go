package feasibility

import (
	"fmt"
	"sort"
	"time"
)

// Admitter answers "can this service join the set?" using the exact
// completion-time test. It holds the currently admitted set and splices each
// candidate into rate monotonic order before re-analyzing; the analysis
// itself stays purely offline.
//
// Decision flow per candidate: validate → splice → exact test → accept or
// reject with a reasoned message.
type Admitter struct {
	set ServiceSet

	admitted int
	rejected int
}

// DecisionType classifies an admission outcome.
type DecisionType string

const (
	DecisionAccept DecisionType = "ACCEPT"
	DecisionReject DecisionType = "REJECT"
)

// Decision records one admission outcome and its reasoning.
type Decision struct {
	Type      DecisionType
	Reason    string
	Candidate Service
	Set       ServiceSet // the admitted set after this decision
	Timestamp time.Time
}

// NewAdmitter starts from a baseline set, which must itself be exactly
// feasible.
func NewAdmitter(baseline ServiceSet) (*Admitter, error) {
	v, err := CompletionTime(baseline)
	if err != nil {
		return nil, err
	}
	if v != Feasible {
		return nil, fmt.Errorf("baseline set is infeasible; nothing can be admitted on top of it")
	}

	a := &Admitter{set: make(ServiceSet, len(baseline))}
	copy(a.set, baseline)
	return a, nil
}

// Admit decides whether candidate can join the admitted set without any
// service missing a deadline. On ACCEPT the candidate becomes part of the
// set for subsequent decisions; on REJECT the set is unchanged.
func (a *Admitter) Admit(candidate Service) Decision {
	now := time.Now()

	trial := spliceByPeriod(a.set, candidate)
	if err := trial.Validate(); err != nil {
		a.rejected++
		return Decision{
			Type:      DecisionReject,
			Reason:    fmt.Sprintf("candidate is malformed: %v", err),
			Candidate: candidate,
			Set:       a.set,
			Timestamp: now,
		}
	}

	completion, err := AnalyzeCompletionTime(trial)
	if err != nil {
		a.rejected++
		return Decision{
			Type:      DecisionReject,
			Reason:    fmt.Sprintf("analysis failed: %v", err),
			Candidate: candidate,
			Set:       a.set,
			Timestamp: now,
		}
	}

	if completion.Verdict != Feasible {
		a.rejected++
		return Decision{
			Type: DecisionReject,
			Reason: fmt.Sprintf(
				"admitting %s would make the set infeasible (U would reach %.2f%%)",
				candidate, trial.UtilizationPercent()),
			Candidate: candidate,
			Set:       a.set,
			Timestamp: now,
		}
	}

	a.set = trial
	a.admitted++
	return Decision{
		Type: DecisionAccept,
		Reason: fmt.Sprintf(
			"set remains feasible with %d services at U=%.2f%%",
			len(trial), trial.UtilizationPercent()),
		Candidate: candidate,
		Set:       a.set,
		Timestamp: now,
	}
}

// Set returns a copy of the currently admitted set.
func (a *Admitter) Set() ServiceSet {
	out := make(ServiceSet, len(a.set))
	copy(out, a.set)
	return out
}

// Statistics returns admission counters.
func (a *Admitter) Statistics() map[string]int {
	return map[string]int{
		"admitted": a.admitted,
		"rejected": a.rejected,
		"services": len(a.set),
	}
}

// spliceByPeriod inserts the candidate keeping ascending period order.
func spliceByPeriod(set ServiceSet, candidate Service) ServiceSet {
	out := make(ServiceSet, 0, len(set)+1)
	out = append(out, set...)
	pos := sort.Search(len(out), func(i int) bool {
		return out[i].Period >= candidate.Period
	})
	out = append(out, Service{})
	copy(out[pos+1:], out[pos:])
	out[pos] = candidate
	return out
}
