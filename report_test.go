package feasibility

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_FeasibleSet(t *testing.T) {
	report, err := Analyze(catalogByName(t, "ex0"))
	require.NoError(t, err)

	assert.Equal(t, Feasible, report.CompletionTime)
	assert.Equal(t, Feasible, report.SchedulingPoint)
	assert.Equal(t, Feasible, report.RMLUB)
	assert.Equal(t, Feasible, report.EDF)
	assert.Equal(t, Feasible, report.LLF)
	assert.InDelta(t, 73.33, report.UtilizationPct, 0.01)
	assert.InDelta(t, 0.7798, report.Bound, 0.0001)

	// The detail analyses ride along with the verdicts.
	assert.Equal(t, []int64{1, 2, 6}, report.Completion.Response)
	assert.Equal(t, []int64{2, 2, 6}, report.Points.Witness)
}

func TestAnalyze_InvalidInput(t *testing.T) {
	_, err := Analyze(ServiceSet{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServiceSet)
}

func TestReport_Render(t *testing.T) {
	report, err := Analyze(catalogByName(t, "ex1"))
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Render(&buf)

	want := "Completion Time: INFEASIBLE\n" +
		"Scheduling Point: INFEASIBLE\n" +
		"RM LUB: INFEASIBLE\n" +
		"EDF: FEASIBLE\n" +
		"LLF: FEASIBLE\n"
	assert.Equal(t, want, buf.String())
}

func TestReport_Header(t *testing.T) {
	report, err := Analyze(catalogByName(t, "ex0"))
	require.NoError(t, err)

	header := report.Header()
	assert.Contains(t, header, "U=73.33%")
	assert.Contains(t, header, "C1=1, C2=1, C3=2")
	assert.Contains(t, header, "T1=2, T2=10, T3=15")
	assert.Contains(t, header, "T=D")
}

func TestWriteTable(t *testing.T) {
	var names []string
	var reports []Report
	for _, entry := range Catalog()[:3] {
		report, err := Analyze(entry.Set)
		require.NoError(t, err)
		names = append(names, entry.Name)
		reports = append(reports, report)
	}

	var buf bytes.Buffer
	WriteTable(&buf, names, reports)
	out := buf.String()

	for _, name := range names {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "FEASIBLE")
	assert.Contains(t, out, "INFEASIBLE")
	// One header row plus one row per set.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), len(reports)+1)
}
