package scoring

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scorarr/pkg/release/format"
)

// ScoreAll scores a batch of release names concurrently and returns results
// in input order. Scoring is pure and shares no mutable state beyond the
// read-only pattern cache, so candidates parallelize freely. formats may be
// nil for the built-in catalogue; limit <= 0 uses one worker per CPU.
// The only possible error is context cancellation.
func ScoreAll(ctx context.Context, names []string, profile Profile, formats []format.CustomFormat, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ScoreRelease(name, profile, &Options{Formats: formats})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
