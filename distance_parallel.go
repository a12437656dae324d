package ngramdist

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many haystacks a worker scores between context
// cancellation checks.
const cancelCheckInterval = 1024

// DistanceBatchParallel is DistanceBatch sharded across worker goroutines.
//
// The counter table is not safely shareable across concurrent scans, so each
// worker profiles the needle into its own private Profile and scores a
// contiguous shard of the batch. Scores land in input order regardless of
// worker scheduling. workers is capped at the number of haystacks; with one
// worker (or one haystack) this degenerates to the serial path.
//
// Returns ctx.Err() if the context is canceled before the batch completes;
// the partial output is discarded.
func (m *Metric) DistanceBatchParallel(ctx context.Context, haystacks [][]byte, needle []byte, workers int) ([]float32, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}
	if workers > len(haystacks) {
		workers = len(haystacks)
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return m.DistanceBatch(haystacks, needle), nil
	}

	out := make([]float32, len(haystacks))
	g, ctx := errgroup.WithContext(ctx)
	shard := (len(haystacks) + workers - 1) / workers
	for start := 0; start < len(haystacks); start += shard {
		start := start
		end := min(start+shard, len(haystacks))
		g.Go(func() error {
			p := m.NewProfile(needle)
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = p.Distance(haystacks[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
