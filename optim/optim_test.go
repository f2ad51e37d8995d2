package optim_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/optim"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreGrad returns (w·x - label)·x, the squared-error gradient.
type scoreGrad struct {
	calls atomic.Int64
}

func (g *scoreGrad) Gradient(p param.Reader, inst data.Instance[float64]) vector.Vector {
	g.calls.Add(1)
	d := p.Dot(inst.Features) - inst.Label
	out := inst.Features.Clone()
	out.Scale(d)

	return out
}

func constant(t *testing.T, eta float64) optim.Constant {
	t.Helper()
	s, err := optim.NewConstant(eta)
	require.NoError(t, err)

	return s
}

// TestSchedules_Validation rejects non-positive and non-finite parameters.
func TestSchedules_Validation(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := optim.NewConstant(bad)
		assert.ErrorIs(t, err, optim.ErrInvalidArgument)
		_, err = optim.NewInverseSqrt(bad)
		assert.ErrorIs(t, err, optim.ErrInvalidArgument)
		_, err = optim.NewInverse(bad, 10)
		assert.ErrorIs(t, err, optim.ErrInvalidArgument)
	}
	_, err := optim.NewInverse(1, 0)
	assert.ErrorIs(t, err, optim.ErrInvalidArgument)
}

// TestSchedules_Decreasing checks values and monotonicity.
func TestSchedules_Decreasing(t *testing.T) {
	c := constant(t, 0.1)
	assert.Equal(t, 0.1, c.Rate(0))
	assert.Equal(t, 0.1, c.Rate(1_000_000))

	is, err := optim.NewInverseSqrt(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, is.Rate(0))
	assert.InDelta(t, 0.5, is.Rate(3), 1e-15)
	assert.Equal(t, 1.0, is.Rate(-5), "negative epoch clamps to 0")

	inv, err := optim.NewInverse(1, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, inv.Rate(10), 1e-15)

	for e := int64(0); e < 100; e++ {
		assert.LessOrEqual(t, is.Rate(e+1), is.Rate(e))
		assert.LessOrEqual(t, inv.Rate(e+1), inv.Rate(e))
	}
}

// TestSGD_Construct covers nil schedule and bad workers.
func TestSGD_Construct(t *testing.T) {
	_, err := optim.NewSGD[float64](nil)
	assert.ErrorIs(t, err, optim.ErrInvalidArgument)

	_, err = optim.NewSGD[float64](constant(t, 0.1), optim.WithWorkers(0))
	assert.ErrorIs(t, err, optim.ErrInvalidArgument)

	_, err = optim.NewAdaGrad[float64](constant(t, 0.1), optim.WithEpsilon(0))
	assert.ErrorIs(t, err, optim.ErrInvalidArgument)
}

// TestSGD_Update verifies delta = lr·∇ and that the gradient is not aliased.
func TestSGD_Update(t *testing.T) {
	opt, err := optim.NewSGD[float64](constant(t, 0.1))
	require.NoError(t, err)

	s := param.New()
	inst := data.NewInstance(1.0, vector.Vector{"a": 1, "b": 2})
	delta, err := opt.Update(s.View(), &scoreGrad{}, inst, 0)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, delta["a"], 1e-15)
	assert.InDelta(t, -0.2, delta["b"], 1e-15)
	assert.Equal(t, vector.Vector{"a": 1, "b": 2}, inst.Features, "instance is immutable")
}

// TestSGD_EmptyInstance yields an empty delta.
func TestSGD_EmptyInstance(t *testing.T) {
	opt, err := optim.NewSGD[float64](constant(t, 0.1))
	require.NoError(t, err)
	delta, err := opt.Update(param.New().View(), &scoreGrad{}, data.NewInstance[float64](1, nil), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, delta.Len())
}

// TestSGD_BatchMeanAndSign checks the averaged, pre-negated batch delta and
// that parallel workers give the same result as one worker.
func TestSGD_BatchMeanAndSign(t *testing.T) {
	batch := []data.Instance[float64]{
		data.NewInstance(1.0, vector.Vector{"a": 1}),
		data.NewInstance(1.0, vector.Vector{"a": 1, "b": 1}),
		data.NewInstance(-1.0, vector.Vector{"b": 2}),
		data.NewInstance(0.0, vector.Vector{"c": 1}),
	}
	s := param.New()

	seq, err := optim.NewSGD[float64](constant(t, 0.5))
	require.NoError(t, err)
	g := &scoreGrad{}
	d1, err := seq.BatchUpdate(s.View(), g, batch, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(batch)), g.calls.Load())

	// mean ∇: a = (-1 -1)/4, b = (-1 + 2)/4, c = 0
	assert.InDelta(t, 0.25, d1["a"], 1e-15)
	assert.InDelta(t, -0.125, d1["b"], 1e-15)
	assert.Equal(t, 0.0, d1["c"])

	par, err := optim.NewSGD[float64](constant(t, 0.5), optim.WithWorkers(3))
	require.NoError(t, err)
	d2, err := par.BatchUpdate(s.View(), &scoreGrad{}, batch, 0)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	empty, err := par.BatchUpdate(s.View(), &scoreGrad{}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

// TestSGD_Teardown verifies that updates fail after teardown and that
// teardown is idempotent.
func TestSGD_Teardown(t *testing.T) {
	opt, err := optim.NewSGD[float64](constant(t, 0.1))
	require.NoError(t, err)
	opt.Teardown()
	opt.Teardown()

	_, err = opt.Update(param.New().View(), &scoreGrad{}, data.NewInstance(1.0, vector.Vector{"a": 1}), 0)
	assert.ErrorIs(t, err, optim.ErrClosed)
	_, err = opt.BatchUpdate(param.New().View(), &scoreGrad{}, nil, 0)
	assert.ErrorIs(t, err, optim.ErrClosed)
}

// TestOptimizers_NilGradienter rejects a nil family.
func TestOptimizers_NilGradienter(t *testing.T) {
	sgd, err := optim.NewSGD[float64](constant(t, 0.1))
	require.NoError(t, err)
	_, err = sgd.Update(param.New().View(), nil, data.Instance[float64]{}, 0)
	assert.ErrorIs(t, err, optim.ErrNilGradienter)

	ada, err := optim.NewAdaGrad[float64](constant(t, 0.1))
	require.NoError(t, err)
	_, err = ada.BatchUpdate(param.New().View(), nil, nil, 0)
	assert.ErrorIs(t, err, optim.ErrNilGradienter)
}

// TestAdaGrad_Accumulates checks that repeated gradients shrink the step.
func TestAdaGrad_Accumulates(t *testing.T) {
	opt, err := optim.NewAdaGrad[float64](constant(t, 1))
	require.NoError(t, err)
	inst := data.NewInstance(2.0, vector.Vector{"a": 1})
	s := param.New()

	d1, err := opt.Update(s.View(), &scoreGrad{}, inst, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d1["a"], 1e-6, "first step: g/|g|")
	assert.InDelta(t, 4.0, opt.Accumulator("a"), 1e-12)

	d2, err := opt.Update(s.View(), &scoreGrad{}, inst, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2/math.Sqrt(8), d2["a"], 1e-6)
	assert.Less(t, math.Abs(d2["a"]), math.Abs(d1["a"]))

	db, err := opt.BatchUpdate(s.View(), &scoreGrad{}, []data.Instance[float64]{inst}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Sqrt(12), db["a"], 1e-6, "batch delta is pre-negated")

	opt.Teardown()
	assert.Equal(t, 0.0, opt.Accumulator("a"), "accumulators released")
	_, err = opt.Update(s.View(), &scoreGrad{}, inst, 3)
	assert.ErrorIs(t, err, optim.ErrClosed)
}
