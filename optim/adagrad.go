package optim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
)

// AdaGrad scales each coordinate's step by the inverse root of its
// accumulated squared gradients:
//
//	G_k  += g_k²
//	Δ_k   = lr(t) · g_k / (√G_k + ε)
//
// Accumulators are kept only for coordinates that have received a gradient.
type AdaGrad[L any] struct {
	schedule Schedule
	workers  int
	epsilon  float64
	accum    map[string]float64
	closed   bool
}

// NewAdaGrad returns an AdaGrad optimizer. schedule must not be nil.
func NewAdaGrad[L any](schedule Schedule, opts ...Option) (*AdaGrad[L], error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule is nil", ErrInvalidArgument)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &AdaGrad[L]{
		schedule: schedule,
		workers:  o.workers,
		epsilon:  o.epsilon,
		accum:    make(map[string]float64),
	}, nil
}

// LearningRate returns the schedule's base rate at epoch.
func (o *AdaGrad[L]) LearningRate(epoch int64) float64 {
	return o.schedule.Rate(epoch)
}

// Accumulator returns G_k, 0 for coordinates never seen.
func (o *AdaGrad[L]) Accumulator(key string) float64 {
	return o.accum[key]
}

// Update returns the adaptive step for one instance; the caller subtracts it.
func (o *AdaGrad[L]) Update(p param.Reader, g Gradienter[L], inst data.Instance[L], epoch int64) (vector.Vector, error) {
	if o.closed {
		return nil, ErrClosed
	}
	if g == nil {
		return nil, ErrNilGradienter
	}

	return o.step(g.Gradient(p, inst), o.LearningRate(epoch)), nil
}

// BatchUpdate applies the adaptive step to the mean batch gradient and
// returns it negated, ready for direct addition.
func (o *AdaGrad[L]) BatchUpdate(p param.Reader, g Gradienter[L], batch []data.Instance[L], epoch int64) (vector.Vector, error) {
	if o.closed {
		return nil, ErrClosed
	}
	if g == nil {
		return nil, ErrNilGradienter
	}
	delta := o.step(mean(gradients(p, g, batch, o.workers)), o.LearningRate(epoch))
	delta.Scale(-1)

	return delta, nil
}

// Teardown drops the accumulators and closes the optimizer.
func (o *AdaGrad[L]) Teardown() {
	o.accum = nil
	o.closed = true
}

func (o *AdaGrad[L]) step(grad vector.Vector, lr float64) vector.Vector {
	delta := vector.New(len(grad))
	for k, gk := range grad {
		if gk == 0 {
			continue
		}
		o.accum[k] += gk * gk
		delta[k] = lr * gk / (math.Sqrt(o.accum[k]) + o.epsilon)
	}

	return delta
}
