package sim

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/RianAsmara/lost-beacons/config"
)

// BatchSummary aggregates many runs of one scenario.
type BatchSummary struct {
	Runs        int            `json:"runs"`
	Outcomes    map[string]int `json:"outcomes"`
	MeanElapsed float64        `json:"mean_elapsed"`
	Decisions   map[string]int `json:"decisions"`
	Stats       Snapshot       `json:"stats"`
	Results     []Result       `json:"-"`
}

// RunBatch plays n runs seeded seed, seed+1, ... with at most workers in
// flight. Results keep seed order. The first failing run cancels the rest.
func RunBatch(ctx context.Context, sc *Scenario, t config.Tuning, seed int64, n, workers int, opts ...Option) (BatchSummary, error) {
	if workers < 1 {
		workers = 1
	}
	stats := NewStats()
	results := make([]Result, n)

	runOpts := append(slices.Clone(opts), WithStats(stats))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		runSeed := seed + int64(i)
		eg.Go(func() error {
			s, err := New(sc, t, runSeed, runOpts...)
			if err != nil {
				return err
			}
			res, err := s.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return BatchSummary{}, err
	}

	sum := BatchSummary{
		Runs:      n,
		Outcomes:  make(map[string]int),
		Decisions: make(map[string]int),
		Stats:     stats.Snapshot(),
		Results:   results,
	}
	total := 0.0
	for _, r := range results {
		sum.Outcomes[r.Outcome]++
		total += r.Elapsed
		for k, v := range r.Decisions {
			sum.Decisions[k] += v
		}
	}
	if n > 0 {
		sum.MeanElapsed = total / float64(n)
	}
	slog.Info("batch finished", "scenario", sc.Name, "runs", n, "workers", workers, "outcomes", sum.Outcomes)
	return sum, nil
}
