package optim

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
)

// SGD is stochastic gradient descent driven by a learning-rate Schedule.
type SGD[L any] struct {
	schedule Schedule
	workers  int
	closed   bool
}

// NewSGD returns an SGD optimizer. schedule must not be nil.
func NewSGD[L any](schedule Schedule, opts ...Option) (*SGD[L], error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule is nil", ErrInvalidArgument)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &SGD[L]{schedule: schedule, workers: o.workers}, nil
}

// LearningRate returns the schedule's rate at epoch.
func (o *SGD[L]) LearningRate(epoch int64) float64 {
	return o.schedule.Rate(epoch)
}

// Update returns lr(epoch)·∇(inst).
func (o *SGD[L]) Update(p param.Reader, g Gradienter[L], inst data.Instance[L], epoch int64) (vector.Vector, error) {
	if o.closed {
		return nil, ErrClosed
	}
	if g == nil {
		return nil, ErrNilGradienter
	}
	delta := g.Gradient(p, inst).Clone()
	delta.Scale(o.LearningRate(epoch))

	return delta, nil
}

// BatchUpdate returns -lr(epoch)·mean(∇) over batch. An empty batch yields an
// empty delta.
func (o *SGD[L]) BatchUpdate(p param.Reader, g Gradienter[L], batch []data.Instance[L], epoch int64) (vector.Vector, error) {
	if o.closed {
		return nil, ErrClosed
	}
	if g == nil {
		return nil, ErrNilGradienter
	}
	delta := mean(gradients(p, g, batch, o.workers))
	delta.Scale(-o.LearningRate(epoch))

	return delta, nil
}

// Teardown marks the optimizer closed.
func (o *SGD[L]) Teardown() {
	o.closed = true
}
