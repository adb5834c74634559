package feasibility

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// The analysis functions are pure and share no state, so a batch of
// independent service sets is embarrassingly parallel. AnalyzeBatch fans the
// sets out over a fixed worker pool and preserves input order in the output.

// AnalyzeBatch analyzes every set concurrently with the given number of
// workers (workers < 1 means one per set). The first validation failure
// cancels the batch and is returned with the offending index; results are
// positional and complete only on a nil error.
func AnalyzeBatch(ctx context.Context, sets []ServiceSet, workers int) ([]Report, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	if workers < 1 || workers > len(sets) {
		workers = len(sets)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		reports  = make([]Report, len(sets))
		jobs     = make(chan int)
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := Analyze(sets[i])
				if err != nil {
					fail(errors.Wrapf(err, "set %d", i))
					return
				}
				reports[i] = report
			}
		}()
	}

feed:
	for i := range sets {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
