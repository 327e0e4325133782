package sim

import (
	"fmt"
	"sync"
	"time"

	"saas-forecast/internal/model"
)

// BatchOptions controls how a Monte Carlo batch executes. The zero value is
// usable: a time-derived seed and sequential execution.
type BatchOptions struct {
	// Seed is the base RNG seed; trial i draws from seed+i. 0 means derive
	// from the clock. Fixing it makes the whole batch reproducible,
	// regardless of worker count.
	Seed int64

	// Workers caps concurrent trials. <=1 runs sequentially. Trials are
	// independent and write only to their own slot, so this is purely a
	// throughput knob.
	Workers int
}

// RunBatch executes trials independent projections and collects them into a
// Batch. No aggregation happens here; consumers pull metric tables off the
// Batch themselves.
func (e *Engine) RunBatch(months, trials int, opt BatchOptions) (*model.Batch, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be > 0, got %d", months)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be > 0, got %d", trials)
	}

	seed := opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := opt.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	runs := make([]model.Run, trials)
	errs := make([]error, trials)

	runTrial := func(i int) {
		s := NewRandSampler(seed + int64(i))
		runs[i], errs[i] = e.RunOnce(s, months)
	}

	if workers == 1 {
		for i := 0; i < trials; i++ {
			runTrial(i)
		}
	} else {
		var wg sync.WaitGroup
		next := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					runTrial(i)
				}
			}()
		}
		for i := 0; i < trials; i++ {
			next <- i
		}
		close(next)
		wg.Wait()
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	return &model.Batch{Months: months, Runs: runs}, nil
}
