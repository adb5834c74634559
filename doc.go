// Package feasibility provides offline feasibility analysis for fixed-priority,
// single-processor periodic task sets under rate-monotonic scheduling.
//
// # Overview
//
// Given a set of periodic services, each described by a period T(i), a
// worst-case execution time C(i), and a relative deadline D(i), the package
// decides analytically whether every job of every service meets its deadline.
// Nothing is ever executed or simulated: the answer comes from worst-case
// analysis alone.
//
// Three decision tests form the core:
//
//   - Utilization bound (Liu & Layland) — approximate, sufficient but not
//     necessary. O(N).
//   - Completion-time test (Joseph & Pandya) — exact, iterative fixed-point
//     on the worst-case response time. O(N²).
//   - Scheduling-point test (Lehoczky, Sha & Ding) — exact, existential check
//     over the critical instants induced by higher-priority releases. O(N³).
//
// The two exact tests are logically equivalent and must agree on every input;
// the package ships assertion helpers that enforce this property in tests.
//
// # Task model
//
// Services are ordered by strictly increasing period, which under rate
// monotonic assignment is strictly decreasing priority (index 0 is the
// highest priority). Deadlines are implicit throughout (T = D). The caller
// establishes the ordering; Validate rejects sets that violate it rather
// than silently re-sorting.
//
// # Quick start
//
//	set, err := feasibility.NewServiceSet(
//	    []int64{2, 10, 15}, // periods, ascending
//	    []int64{1, 1, 2},   // worst-case execution times
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := feasibility.Analyze(set)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.Render(os.Stdout)
//
// Or call the tests individually:
//
//	verdict, err := feasibility.CompletionTime(set) // FEASIBLE / INFEASIBLE
//
// # The utilization bound
//
// Total utilization U = Σ C(i)/T(i) is compared against the least upper
// bound for N services:
//
//	LUB(N) = N·(2^(1/N) − 1)
//
// LUB(1) = 1, LUB(3) ≈ 0.7798, and LUB(N) → ln 2 ≈ 0.6931 as N → ∞.
// U ≤ LUB(N) guarantees schedulability; U > LUB(N) proves nothing, which is
// exactly why the exact tests exist.
//
// # The completion-time test
//
// For each service i, the worst-case response time is the smallest fixed
// point of
//
//	a(k+1) = C(i) + Σ_{j<i} ceil(a(k)/T(j))·C(j)
//
// starting from a(0) = Σ_{j≤i} C(j). The sequence is monotonically
// non-decreasing, so iteration stops as soon as a(k) exceeds D(i) (the
// service is infeasible, no need to converge) or reaches a fixed point.
// All ceilings are exact integer divisions; no floating point touches the
// time arithmetic.
//
// # The scheduling-point test
//
// Service i is feasible iff there exists a scheduling point t = l·T(k)
// (k ≤ i, 1 ≤ l ≤ floor(T(i)/T(k))) at which cumulative demand fits:
//
//	Σ_{j≤i} C(j)·ceil(t/T(j)) ≤ t
//
// # Dynamic-priority bound
//
// The report also carries EDF and LLF verdicts. Both policies are optimal on
// a single processor with implicit deadlines, so U ≤ 1 — evaluated exactly
// on the reduced rational utilization — is necessary and sufficient. These
// are utilization-bound verdicts, not scheduling simulations.
//
// # Testing
//
// Exported assertions validate the algebra of the tests:
//
//	func TestMyTaskSet(t *testing.T) {
//	    set, _ := feasibility.NewServiceSet(periods, wcets)
//
//	    // Both exact tests must return the same verdict.
//	    feasibility.AssertExactAgreement(t, set)
//
//	    // A bound pass implies true feasibility.
//	    feasibility.AssertBoundSoundness(t, set)
//
//	    // Inflating a WCET can never rescue an infeasible set.
//	    feasibility.AssertWCETMonotonicity(t, set)
//	}
//
// # References
//
//   - Liu, C.L., Layland, J.W. "Scheduling algorithms for multiprogramming in
//     a hard-real-time environment." JACM 20.1 (1973).
//   - Lehoczky, J., Sha, L., Ding, Y. "The rate monotonic scheduling
//     algorithm: Exact characterization and average case behavior." RTSS 1989.
//   - Joseph, M., Pandya, P. "Finding response times in a real-time system."
//     The Computer Journal 29.5 (1986).
package feasibility
