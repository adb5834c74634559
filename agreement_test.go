package feasibility

import (
	"math/rand"
	"testing"
)

// The agreement property is the strongest check in the package: the
// completion-time and scheduling-point tests are different formulations of
// the same exact analysis and must never disagree. These tests drive both
// over the whole catalog and over randomized task sets.

func TestExactAgreement_Catalog(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Name, func(t *testing.T) {
			AssertExactAgreement(t, entry.Set)
		})
	}
}

func TestBoundSoundness_Catalog(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Name, func(t *testing.T) {
			AssertBoundSoundness(t, entry.Set)
		})
	}
}

func TestWCETMonotonicity_Catalog(t *testing.T) {
	for _, entry := range Catalog() {
		t.Run(entry.Name, func(t *testing.T) {
			AssertWCETMonotonicity(t, entry.Set)
		})
	}
}

// TestExactAgreement_Random fuzzes the properties over randomly generated
// valid sets, biased to hover around the interesting U ≈ 0.7..1.2 region.
// Fixed seed keeps failures reproducible.
func TestExactAgreement_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 300; trial++ {
		set := randomServiceSet(rng)
		if err := set.Validate(); err != nil {
			t.Fatalf("generator produced an invalid set: %v", err)
		}

		AssertExactAgreement(t, set)
		AssertBoundSoundness(t, set)
		AssertWCETMonotonicity(t, set)
	}
}

// randomServiceSet draws 1..6 distinct ascending periods in [2,40] and a
// WCET in [1,period] for each, then trims WCETs until total utilization is
// at most ~1.2 so both verdicts stay well represented.
func randomServiceSet(rng *rand.Rand) ServiceSet {
	n := 1 + rng.Intn(6)

	periods := map[int64]bool{}
	for len(periods) < n {
		periods[2+int64(rng.Intn(39))] = true
	}

	set := make(ServiceSet, 0, n)
	for p := int64(2); p <= 40; p++ {
		if periods[p] {
			set = append(set, Service{Period: p, WCET: 1 + int64(rng.Intn(int(p))), Deadline: p})
		}
	}

	// Shave load until U ≤ 1.2; heavily overloaded sets are all trivially
	// infeasible and teach nothing. Stops once every WCET is down to 1.
	for set.Utilization() > 1.2 {
		reducible := false
		for i := range set {
			if set[i].WCET > 1 {
				reducible = true
				break
			}
		}
		if !reducible {
			break
		}
		if i := rng.Intn(len(set)); set[i].WCET > 1 {
			set[i].WCET--
		}
	}

	return set
}
