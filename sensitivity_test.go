package feasibility

import (
	"errors"
	"testing"
)

// TestSlack_FeasibleSet: slack is deadline minus response, per service.
func TestSlack_FeasibleSet(t *testing.T) {
	analysis, err := Slack(catalogByName(t, "ex0"))
	if err != nil {
		t.Fatal(err)
	}
	if analysis.Verdict != Feasible {
		t.Fatalf("ex0 should be feasible, got %s", analysis.Verdict)
	}

	wantSlack := []int64{1, 8, 9} // D=[2,10,15] − R=[1,2,6]
	for i, want := range wantSlack {
		if analysis.Slack[i] != want {
			t.Errorf("slack[%d] = %d, expected %d", i, analysis.Slack[i], want)
		}
	}
	t.Logf("✓ ex0 slack %v (responses %v)", analysis.Slack, analysis.Response)
}

// TestSlack_BoundarySet: a fixed point exactly on the deadline gives zero
// slack, not negative.
func TestSlack_BoundarySet(t *testing.T) {
	analysis, err := Slack(catalogByName(t, "ex7"))
	if err != nil {
		t.Fatal(err)
	}
	if analysis.Verdict != Feasible {
		t.Fatalf("ex7 should be feasible, got %s", analysis.Verdict)
	}
	if analysis.Slack[2] != 0 {
		t.Errorf("service 2 slack = %d, expected 0 (response lands on deadline)",
			analysis.Slack[2])
	}
	t.Logf("✓ ex7: zero slack at the U=1 boundary")
}

// TestWCETHeadroom_LowestPriority: service 2 of ex0 can grow from C=2 to
// C=5 before its own response passes the deadline.
func TestWCETHeadroom_LowestPriority(t *testing.T) {
	headroom, err := WCETHeadroom(catalogByName(t, "ex0"), 2)
	if err != nil {
		t.Fatal(err)
	}
	if headroom != 3 {
		t.Errorf("headroom = %d, expected 3", headroom)
	}
	t.Logf("✓ ex0 service 2 headroom: +%d time units", headroom)
}

// TestWCETHeadroom_HighestPriority: growing ex0's 2-period service by even
// one unit starves the 10-period service, so headroom is zero.
func TestWCETHeadroom_HighestPriority(t *testing.T) {
	headroom, err := WCETHeadroom(catalogByName(t, "ex0"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if headroom != 0 {
		t.Errorf("headroom = %d, expected 0", headroom)
	}
	t.Logf("✓ ex0 service 0 has no headroom")
}

// TestWCETHeadroom_Errors: infeasible baselines and bad indices are refused.
func TestWCETHeadroom_Errors(t *testing.T) {
	if _, err := WCETHeadroom(catalogByName(t, "ex1"), 0); err == nil {
		t.Error("headroom over an infeasible set accepted")
	}

	_, err := WCETHeadroom(catalogByName(t, "ex0"), 5)
	if !errors.Is(err, ErrInvalidServiceSet) {
		t.Errorf("expected ErrInvalidServiceSet for out-of-range index, got %v", err)
	}
	t.Logf("✓ Headroom error paths covered")
}

// TestWCETHeadroom_ResultIsTight: the reported headroom is feasible and one
// more unit is not.
func TestWCETHeadroom_ResultIsTight(t *testing.T) {
	set := catalogByName(t, "ex0")
	headroom, err := WCETHeadroom(set, 2)
	if err != nil {
		t.Fatal(err)
	}

	at := make(ServiceSet, len(set))
	copy(at, set)
	at[2].WCET += headroom
	if v, _ := CompletionTime(at); v != Feasible {
		t.Errorf("set at reported headroom should be feasible, got %s", v)
	}

	over := make(ServiceSet, len(set))
	copy(over, set)
	over[2].WCET += headroom + 1
	if over.Validate() == nil {
		if v, _ := CompletionTime(over); v != Infeasible {
			t.Errorf("set one unit past headroom should be infeasible, got %s", v)
		}
	}
	t.Logf("✓ Headroom +%d is tight", headroom)
}
