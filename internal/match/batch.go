package match

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent matches concurrently, at most parallelism at a
// time (unlimited when parallelism <= 0). Each match keeps its own
// single-threaded simulation. Results are returned in cfgs order; the first
// error cancels the remaining matches.
func RunBatch(ctx context.Context, cfgs []Config, parallelism int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(cfgs))

	eg, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		eg.SetLimit(parallelism)
	}
	for i, cfg := range cfgs {
		eg.Go(func() error {
			m, err := New(cfg, logger)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			res, err := m.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
