package feasibility

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidServiceSet is the sentinel wrapped by every validation failure.
// Callers can branch on it with errors.Is; the wrapped message names the
// violated invariant and the offending service index.
var ErrInvalidServiceSet = errors.New("invalid service set")

// Service is one periodic real-time task: a job of at most WCET time units
// is released every Period time units and must finish within Deadline time
// units of its release. The implicit-deadline model (Deadline == Period) is
// used everywhere in this package.
type Service struct {
	Period   int64 // T(i): time units between successive releases
	WCET     int64 // C(i): worst-case execution time per job
	Deadline int64 // D(i): relative deadline per job
}

// Utilization returns C(i)/T(i) for this service.
func (s Service) Utilization() float64 {
	return float64(s.WCET) / float64(s.Period)
}

// String renders the service in the C(i)/T(i) notation used in reports.
func (s Service) String() string {
	return fmt.Sprintf("C=%d T=%d D=%d", s.WCET, s.Period, s.Deadline)
}

// ServiceSet is an ordered sequence of services. Index order encodes rate
// monotonic priority: periods strictly increase, so service 0 has the
// shortest period and the highest priority. The analysis functions assume
// this ordering and Validate enforces it; nothing here sorts.
type ServiceSet []Service

// NewServiceSet builds an implicit-deadline set (D = T) from parallel
// period and WCET sequences and validates it.
func NewServiceSet(periods, wcets []int64) (ServiceSet, error) {
	if len(periods) != len(wcets) {
		return nil, errors.Wrapf(ErrInvalidServiceSet,
			"mismatched sequence lengths: %d periods, %d wcets",
			len(periods), len(wcets))
	}

	set := make(ServiceSet, len(periods))
	for i := range periods {
		set[i] = Service{Period: periods[i], WCET: wcets[i], Deadline: periods[i]}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// NewServiceSetWithDeadlines builds a set with explicit relative deadlines.
// The rate monotonic priority order (ascending period) still applies.
func NewServiceSetWithDeadlines(periods, wcets, deadlines []int64) (ServiceSet, error) {
	if len(periods) != len(wcets) || len(periods) != len(deadlines) {
		return nil, errors.Wrapf(ErrInvalidServiceSet,
			"mismatched sequence lengths: %d periods, %d wcets, %d deadlines",
			len(periods), len(wcets), len(deadlines))
	}

	set := make(ServiceSet, len(periods))
	for i := range periods {
		set[i] = Service{Period: periods[i], WCET: wcets[i], Deadline: deadlines[i]}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate rejects malformed sets before any analysis runs. Checks, in
// order: non-empty set, positive parameters, WCET within period and
// deadline, and strictly ascending periods.
func (set ServiceSet) Validate() error {
	if len(set) == 0 {
		return errors.Wrap(ErrInvalidServiceSet, "empty service set")
	}

	for i, s := range set {
		if s.Period <= 0 {
			return errors.Wrapf(ErrInvalidServiceSet,
				"non-positive period %d for service %d", s.Period, i)
		}
		if s.WCET <= 0 {
			return errors.Wrapf(ErrInvalidServiceSet,
				"non-positive wcet %d for service %d", s.WCET, i)
		}
		if s.Deadline <= 0 {
			return errors.Wrapf(ErrInvalidServiceSet,
				"non-positive deadline %d for service %d", s.Deadline, i)
		}
		if s.WCET > s.Period {
			return errors.Wrapf(ErrInvalidServiceSet,
				"wcet %d exceeds period %d for service %d", s.WCET, s.Period, i)
		}
		if s.WCET > s.Deadline {
			return errors.Wrapf(ErrInvalidServiceSet,
				"wcet %d exceeds deadline %d for service %d", s.WCET, s.Deadline, i)
		}
		if i > 0 && set[i-1].Period >= s.Period {
			return errors.Wrapf(ErrInvalidServiceSet,
				"periods not sorted strictly ascending: period %d at index %d after %d",
				s.Period, i, set[i-1].Period)
		}
	}

	return nil
}

// Utilization returns total CPU utilization U = Σ C(i)/T(i) as a float.
// Use UtilizationRatio where exact comparison against 1 matters.
func (set ServiceSet) Utilization() float64 {
	var u float64
	for _, s := range set {
		u += s.Utilization()
	}
	return u
}

// UtilizationRatio returns total utilization as a reduced rational num/den.
// Accumulating exactly avoids the off-by-epsilon verdicts a float sum would
// produce for sets sitting exactly at U = 1.
func (set ServiceSet) UtilizationRatio() (num, den int64) {
	num, den = 0, 1
	for _, s := range set {
		// num/den + C/T = (num·T + C·den) / (den·T), reduced each step
		num = num*s.Period + s.WCET*den
		den = den * s.Period
		g := gcd(num, den)
		num /= g
		den /= g
	}
	return num, den
}

// UtilizationPercent returns total utilization as a percentage, widening
// each term to floating point before dividing.
func (set ServiceSet) UtilizationPercent() float64 {
	return set.Utilization() * 100.0
}

// NaiveUtilizationPercent reproduces the classic integer-truncation mistake:
// each C(i)/T(i) is divided as integers before widening, so any service with
// C < T contributes zero. Kept only as a named foil for parity tests; use
// UtilizationPercent for real numbers.
func (set ServiceSet) NaiveUtilizationPercent() float64 {
	var u float64
	for _, s := range set {
		u += float64(s.WCET/s.Period) * 100.0
	}
	return u
}

// Verdict is the outcome of one feasibility test for a whole set.
type Verdict string

const (
	Feasible   Verdict = "FEASIBLE"
	Infeasible Verdict = "INFEASIBLE"
)

// verdict maps a boolean decision to its enum.
func verdict(ok bool) Verdict {
	if ok {
		return Feasible
	}
	return Infeasible
}

// ceilDiv is exact integer ceiling division for positive b. Preferred over
// math.Ceil of a float quotient, which loses precision for large time values.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
