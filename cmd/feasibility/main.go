// Command feasibility runs the three rate monotonic feasibility tests over
// the classic example task sets and prints one report per set plus a
// summary table.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"

	feasibility "github.com/mash9756/ECEN5623-Ex2"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	catalog := feasibility.Catalog()

	names := make([]string, len(catalog))
	sets := make([]feasibility.ServiceSet, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.Name
		sets[i] = entry.Set
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	reports, err := feasibility.AnalyzeBatch(ctx, sets, runtime.NumCPU())
	if err != nil {
		slog.Error("batch analysis failed", "err", err)
		os.Exit(1)
	}
	slog.Info("analyzed catalog",
		"sets", len(reports),
		"workers", runtime.NumCPU(),
		"elapsed", time.Since(start))

	for i, report := range reports {
		fmt.Println("************************************************************************")
		fmt.Printf("%s %s\n\n", names[i], report.Header())
		report.Render(os.Stdout)

		if report.CompletionTime != report.SchedulingPoint {
			// Should be unreachable; the exact tests are equivalent.
			slog.Error("exact tests disagree", "set", names[i])
		}
	}
	fmt.Println("************************************************************************")

	fmt.Println()
	feasibility.WriteTable(os.Stdout, names, reports)
}
