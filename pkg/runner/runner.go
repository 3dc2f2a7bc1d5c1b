package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ProcessFunc handles one target. It reports problems through its result
// rather than an error so that one bad input never aborts the batch.
type ProcessFunc[T any] func(ctx context.Context, path string) T

// Run processes targets on at most jobs workers and returns one result per
// target, indexed like targets. On cancellation no new targets are started,
// the results of unstarted targets are zero values, and the context error
// is returned.
func Run[T any](ctx context.Context, targets []string, opts Options, process ProcessFunc[T]) ([]T, error) {
	results := make([]T, len(targets))
	if len(targets) == 0 {
		return results, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.EffectiveJobs(len(targets)))

	for idx, path := range targets {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			results[idx] = process(groupCtx, path)
			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("run cancelled: %w", err)
	}
	return results, nil
}
