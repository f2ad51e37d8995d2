package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/optim"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/truncation"
	"github.com/katalvlaran/lvlearn/vector"
	"go.uber.org/zap"
)

// Model is an updateable linear model over a sparse parameter store.
//
// Invariants:
//   - epoch ≥ 0 and only grows through Update and Merge (SetEpoch aside);
//   - a failed update leaves the parameters and the lazy clock unchanged;
//   - truncation fires only when Period > 0 ∧ epoch > 0 ∧ epoch mod Period == 0;
//   - after Teardown, Update and UpdateBatch return ErrTornDown.
type Model[L any] struct {
	id        uuid.UUID
	family    Family[L]
	opt       optim.Optimizer[L]
	param     *param.Store
	epoch     int64
	trunc     truncation.Config
	argString string
	log       *zap.Logger
	metrics   *metrics
	tornDown  bool
}

// New builds a model around family and opt. The optimizer must not be
// shared with another model.
//
// Errors:
//   - ErrNilFamily, ErrNilOptimizer  — missing collaborator
//   - ErrInvalidArgument            — invalid truncation config or nil decay
//   - registration errors from the prometheus Registerer
func New[L any](family Family[L], opt optim.Optimizer[L], opts ...Option) (*Model[L], error) {
	if family == nil {
		return nil, ErrNilFamily
	}
	if opt == nil {
		return nil, ErrNilOptimizer
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.trunc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if o.decay == nil {
		return nil, fmt.Errorf("%w: decay is nil", ErrInvalidArgument)
	}

	storeOpts := []param.Option{
		param.WithCapacity(o.capacity),
		param.WithDecay(o.decay),
		param.WithFreezeKeySet(o.frozen),
	}
	var store *param.Store
	if o.initial != nil {
		store = param.NewFrom(o.initial, storeOpts...)
	} else {
		store = param.New(storeOpts...)
	}

	id := uuid.New()
	mt, err := newMetrics(id.String(), o.registerer)
	if err != nil {
		return nil, err
	}
	m := &Model[L]{
		id:        id,
		family:    family,
		opt:       opt,
		param:     store,
		trunc:     o.trunc,
		argString: o.argString,
		log:       o.logger.With(zap.String("model_id", id.String()), zap.String("model_type", family.Name())),
		metrics:   mt,
	}
	m.metrics.active.Set(float64(store.Len()))
	m.log.Debug("model created",
		zap.Int("params", store.Len()),
		zap.Int("truncation_period", o.trunc.Period),
		zap.Bool("frozen", o.frozen),
	)

	return m, nil
}

// ID returns the model's unique identifier.
func (m *Model[L]) ID() uuid.UUID { return m.id }

// ModelType returns the family name.
func (m *Model[L]) ModelType() string { return m.family.Name() }

// ArgString returns the opaque metadata slot.
func (m *Model[L]) ArgString() string { return m.argString }

// SetArgString overwrites the opaque metadata slot.
func (m *Model[L]) SetArgString(s string) { m.argString = s }

// Epoch returns the number of single-instance updates applied (plus merged epochs).
func (m *Model[L]) Epoch() int64 { return m.epoch }

// SetEpoch overwrites the epoch counter. It exists for restoring a persisted
// model: unlike Update and Merge it may move the epoch backwards, which also
// shifts the truncation schedule. Training code should not call it.
func (m *Model[L]) SetEpoch(e int64) error {
	if e < 0 {
		return fmt.Errorf("%w: epoch must be non-negative, given: %d", ErrInvalidArgument, e)
	}
	m.epoch = e
	m.metrics.epoch.Set(float64(e))

	return nil
}

// TornDown reports whether Teardown has been called.
func (m *Model[L]) TornDown() bool { return m.tornDown }

// Update applies one single-instance gradient step.
func (m *Model[L]) Update(inst data.Instance[L]) error {
	if m.tornDown {
		m.log.Warn("update after teardown")

		return ErrTornDown
	}
	ticked := m.epoch > 0
	if ticked {
		m.param.IncrementIteration()
	}
	delta, err := m.opt.Update(m.param.View(), m.family, inst, m.epoch)
	if err != nil {
		m.rewind(ticked)

		return fmt.Errorf("model: update at epoch %d: %w", m.epoch, err)
	}
	m.param.AddScaled(delta, -1)
	m.Truncate(inst)
	m.epoch++
	m.metrics.observe(updateKindSingle, m.param.Len(), m.epoch)

	return nil
}

// UpdateBatch applies one aggregated minibatch step. The lazy clock advances
// once for the whole batch and epoch is left unchanged.
func (m *Model[L]) UpdateBatch(batch []data.Instance[L]) error {
	if m.tornDown {
		m.log.Warn("batch update after teardown", zap.Int("batch", len(batch)))

		return ErrTornDown
	}
	ticked := m.epoch > 0
	if ticked {
		m.param.IncrementIteration()
	}
	delta, err := m.opt.BatchUpdate(m.param.View(), m.family, batch, m.epoch)
	if err != nil {
		m.rewind(ticked)

		return fmt.Errorf("model: batch update at epoch %d: %w", m.epoch, err)
	}
	m.param.Add(delta)
	m.metrics.observe(updateKindBatch, m.param.Len(), m.epoch)

	return nil
}

// rewind undoes the clock tick of a failed update. The optimizer reads
// through a View, so no coordinate was caught up to the discarded tick.
func (m *Model[L]) rewind(ticked bool) {
	if ticked {
		m.param.RewindIteration()
	}
}

// Truncate applies truncation for inst when the schedule is due at the
// current epoch and reports whether it fired.
func (m *Model[L]) Truncate(inst data.Instance[L]) bool {
	if !m.trunc.Due(m.epoch) {
		return false
	}
	m.ApplyTruncation(inst.Features)

	return true
}

// ApplyTruncation shrinks the coordinates of x toward zero unconditionally
// and prunes those that reach zero. Returns the number pruned.
func (m *Model[L]) ApplyTruncation(x vector.Vector) int {
	step := m.trunc.Step(m.opt.LearningRate(m.epoch))
	pruned := truncation.Apply(m.param, x.Keys(), m.trunc.Threshold, step)
	m.metrics.truncations.Inc()
	m.metrics.observePruned(pruned, m.param.Len())
	m.log.Debug("truncation applied",
		zap.Int64("epoch", m.epoch),
		zap.Float64("step", step),
		zap.Int("touched", len(x)),
		zap.Int("pruned", pruned),
	)

	return pruned
}

// Predict returns the family's prediction for x.
func (m *Model[L]) Predict(x vector.Vector) L {
	return m.family.Predict(m.param.View(), x)
}

// Loss returns the family's loss on inst.
func (m *Model[L]) Loss(inst data.Instance[L]) float64 {
	return m.family.Loss(m.param.View(), inst)
}

// DotWithParam returns w·x without going through Predict.
func (m *Model[L]) DotWithParam(x vector.Vector) float64 {
	return m.param.Dot(x)
}

// Param returns a read-only view of the parameters.
func (m *Model[L]) Param() param.View {
	return m.param.View()
}

// Decompose returns every active (key, weight) pair ordered by key, for
// external serialization.
func (m *Model[L]) Decompose() []vector.Pair {
	return m.param.Pairs()
}

// Len returns the number of active parameters.
func (m *Model[L]) Len() int {
	return m.param.Len()
}

// SetParameter writes one weight directly. Returns false when the feature set
// is frozen and name is unseen.
func (m *Model[L]) SetParameter(name string, value float64) bool {
	return m.param.Set(name, value)
}

// SetFreezeFeatureSet toggles whether new parameter keys may be introduced.
func (m *Model[L]) SetFreezeFeatureSet(freeze bool) {
	m.param.SetFreezeKeySet(freeze)
}

// ReScale multiplies every parameter by c.
func (m *Model[L]) ReScale(c float64) {
	m.param.Mul(c)
	m.log.Debug("parameters rescaled", zap.Float64("scale", c))
}

// Merge adds other's parameters scaled by scaling and adds other's epoch.
// No normalization is applied; pass 1/numShards to average shards.
func (m *Model[L]) Merge(other *Model[L], scaling float64) error {
	if other == nil {
		return ErrNilModel
	}
	m.param.AddScaled(other.param.Vector(), scaling)
	m.epoch += other.epoch
	m.metrics.active.Set(float64(m.param.Len()))
	m.metrics.epoch.Set(float64(m.epoch))
	m.log.Debug("model merged",
		zap.String("other_id", other.id.String()),
		zap.Float64("scaling", scaling),
		zap.Int64("epoch", m.epoch),
	)

	return nil
}

// ThresholdParameters removes every parameter with |w| < t and returns how
// many were removed.
func (m *Model[L]) ThresholdParameters(t float64) int {
	removed := m.param.Filter(func(_ string, w float64) bool {
		return math.Abs(w) >= t
	})
	m.metrics.observePruned(removed, m.param.Len())
	m.log.Debug("parameters thresholded", zap.Float64("threshold", t), zap.Int("removed", removed))

	return removed
}

// Norm returns the Lp norm of the parameters.
func (m *Model[L]) Norm(p float64) float64 {
	return m.param.Norm(p)
}

// CompareTo returns signum(‖other‖₂ - ‖m‖₂): models with a larger norm sort
// first. A nil other compares as an empty model (norm 0).
func (m *Model[L]) CompareTo(other *Model[L]) int {
	var otherNorm float64
	if other != nil {
		otherNorm = other.param.Norm(2)
	}
	d := otherNorm - m.param.Norm(2)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Teardown releases the optimizer and metrics. Further updates fail with
// ErrTornDown. Calling it again is a no-op.
func (m *Model[L]) Teardown() {
	if m.tornDown {
		return
	}
	m.tornDown = true
	m.opt.Teardown()
	m.metrics.unregister()
	m.log.Debug("model torn down", zap.Int64("epoch", m.epoch), zap.Int("params", m.param.Len()))
}
