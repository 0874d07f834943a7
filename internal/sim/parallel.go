package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/san-kum/spacesim/internal/physics"
)

// Generator builds the initial population for one ensemble member.
type Generator func(seed int64) ([]physics.Entity, error)

// Ensemble runs independently seeded populations concurrently. Each member
// gets its own Simulator built from NewSimulator, so metrics are never
// shared between goroutines.
type Ensemble struct {
	Generate     Generator
	NewSimulator func() *Simulator
	Runs         int
	SeedStart    int64
	// Parallelism caps concurrent runs. Zero means unbounded.
	Parallelism int
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.Runs)

	g, ctx := errgroup.WithContext(ctx)
	if e.Parallelism > 0 {
		g.SetLimit(e.Parallelism)
	}

	for i := 0; i < e.Runs; i++ {
		g.Go(func() error {
			seed := e.SeedStart + int64(i)
			pop, err := e.Generate(seed)
			if err != nil {
				return err
			}

			s := New()
			if e.NewSimulator != nil {
				s = e.NewSimulator()
			}

			runCfg := cfg
			runCfg.Seed = seed
			res, err := s.Run(ctx, pop, runCfg)
			if err != nil {
				return err
			}
			klog.V(4).Infof("sim: ensemble run %d (seed %d) finished", i, seed)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
