package feasibility

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report is the combined verdict of every test over one service set.
type Report struct {
	Set ServiceSet

	UtilizationPct float64 // properly widened percentage
	Bound          float64 // LUB(N) for this set size

	CompletionTime  Verdict // exact
	SchedulingPoint Verdict // exact
	RMLUB           Verdict // sufficient only
	EDF             Verdict // U ≤ 1 bound
	LLF             Verdict // U ≤ 1 bound

	Completion CompletionAnalysis
	Points     SchedulingPointAnalysis
}

// Analyze runs all five tests over one set. Input is validated once, up
// front; every test after that is a pure function of the set.
func Analyze(set ServiceSet) (Report, error) {
	if err := set.Validate(); err != nil {
		return Report{}, err
	}

	bound, err := AnalyzeUtilizationBound(set)
	if err != nil {
		return Report{}, err
	}
	completion, err := AnalyzeCompletionTime(set)
	if err != nil {
		return Report{}, err
	}
	points, err := AnalyzeSchedulingPoint(set)
	if err != nil {
		return Report{}, err
	}
	dynamic, err := DynamicBound(set)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Set:             set,
		UtilizationPct:  set.UtilizationPercent(),
		Bound:           bound.Bound,
		CompletionTime:  completion.Verdict,
		SchedulingPoint: points.Verdict,
		RMLUB:           bound.Verdict,
		EDF:             dynamic,
		LLF:             dynamic,
		Completion:      completion,
		Points:          points,
	}, nil
}

// Render writes the classic one-line-per-test report.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Completion Time: %s\n", r.CompletionTime)
	fmt.Fprintf(w, "Scheduling Point: %s\n", r.SchedulingPoint)
	fmt.Fprintf(w, "RM LUB: %s\n", r.RMLUB)
	fmt.Fprintf(w, "EDF: %s\n", r.EDF)
	fmt.Fprintf(w, "LLF: %s\n", r.LLF)
}

// Header renders the task-set summary line that precedes a report.
func (r Report) Header() string {
	wcets := make([]string, len(r.Set))
	periods := make([]string, len(r.Set))
	for i, s := range r.Set {
		wcets[i] = fmt.Sprintf("C%d=%d", i+1, s.WCET)
		periods[i] = fmt.Sprintf("T%d=%d", i+1, s.Period)
	}
	return fmt.Sprintf("U=%.2f%% (%s; %s; T=D)",
		r.UtilizationPct, strings.Join(wcets, ", "), strings.Join(periods, ", "))
}

// WriteTable renders a summary table over many reports, one row per set.
func WriteTable(w io.Writer, names []string, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Set", "U%", "Completion", "Sched Point", "RM LUB", "EDF", "LLF"})

	for i, r := range reports {
		name := fmt.Sprintf("set-%d", i)
		if i < len(names) {
			name = names[i]
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", r.UtilizationPct),
			string(r.CompletionTime),
			string(r.SchedulingPoint),
			string(r.RMLUB),
			string(r.EDF),
			string(r.LLF),
		})
	}

	table.Render()
}
