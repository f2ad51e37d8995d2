package model_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/model"
	"github.com/katalvlaran/lvlearn/optim"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
	"github.com/stretchr/testify/require"
)

// fixedSlope is a family whose loss derivative w.r.t. the score is a
// constant, so its gradient is slope·x regardless of the parameters.
type fixedSlope struct {
	slope float64
}

func (f fixedSlope) Gradient(_ param.Reader, inst data.Instance[float64]) vector.Vector {
	out := inst.Features.Clone()
	out.Scale(f.slope)

	return out
}

func (fixedSlope) Predict(p param.Reader, x vector.Vector) float64 { return p.Dot(x) }

func (f fixedSlope) Loss(p param.Reader, inst data.Instance[float64]) float64 {
	return f.slope * p.Dot(inst.Features)
}

func (fixedSlope) Name() string { return "fixed_slope" }

var _ model.Family[float64] = fixedSlope{}

func newSGD(t *testing.T, eta float64) *optim.SGD[float64] {
	t.Helper()
	sched, err := optim.NewConstant(eta)
	require.NoError(t, err)
	opt, err := optim.NewSGD[float64](sched)
	require.NoError(t, err)

	return opt
}

func newModel(t *testing.T, f model.Family[float64], eta float64, opts ...model.Option) *model.Model[float64] {
	t.Helper()
	m, err := model.New[float64](f, newSGD(t, eta), opts...)
	require.NoError(t, err)

	return m
}

func inst(label float64, x vector.Vector) data.Instance[float64] {
	return data.NewInstance(label, x)
}
