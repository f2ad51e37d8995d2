package optim

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
)

// Gradienter computes the gradient of a model family's loss with respect to
// every parameter touched by one instance.
type Gradienter[L any] interface {
	Gradient(p param.Reader, inst data.Instance[L]) vector.Vector
}

// Optimizer computes parameter deltas from instances.
type Optimizer[L any] interface {
	// LearningRate returns the step size at epoch.
	LearningRate(epoch int64) float64

	// Update returns lr·∇ for one instance; the caller subtracts it.
	Update(p param.Reader, g Gradienter[L], inst data.Instance[L], epoch int64) (vector.Vector, error)

	// BatchUpdate returns the aggregated delta for a batch, already carrying
	// the sign for direct addition.
	BatchUpdate(p param.Reader, g Gradienter[L], batch []data.Instance[L], epoch int64) (vector.Vector, error)

	// Teardown releases optimizer state. Safe to call more than once.
	Teardown()
}

func errWorkers(n int) error {
	return fmt.Errorf("%w: workers must be >= 1, given: %d", ErrInvalidArgument, n)
}

// gradients evaluates g on every instance of batch using up to workers
// goroutines. Result i belongs to batch[i].
func gradients[L any](p param.Reader, g Gradienter[L], batch []data.Instance[L], workers int) []vector.Vector {
	out := make([]vector.Vector, len(batch))
	if workers <= 1 || len(batch) < 2 {
		for i, inst := range batch {
			out[i] = g.Gradient(p, inst)
		}

		return out
	}
	if workers > len(batch) {
		workers = len(batch)
	}
	per := (len(batch) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		s := w * per
		e := s + per
		if e > len(batch) {
			e = len(batch)
		}
		if s >= e {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				out[i] = g.Gradient(p, batch[i])
			}
		}(s, e)
	}
	wg.Wait()

	return out
}

// mean averages grads, summing in slice order.
func mean(grads []vector.Vector) vector.Vector {
	out := vector.New(0)
	if len(grads) == 0 {
		return out
	}
	inv := 1 / float64(len(grads))
	for _, gr := range grads {
		out.AddScaled(gr, inv)
	}

	return out
}
