package model_test

import (
	"testing"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/model"
	"github.com/katalvlaran/lvlearn/truncation"
	"github.com/katalvlaran/lvlearn/vector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestMetrics_Registered checks counters and gauges after a few updates and
// that teardown unregisters the collectors.
func TestMetrics_Registered(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := newModel(t, fixedSlope{slope: 0}, 0.1,
		model.WithRegisterer(reg),
		model.WithInitialParams(vector.Vector{"a": 0.0005, "b": 2}),
		model.WithTruncation(truncation.Config{Period: 1, Threshold: 0.05, UpdateRate: 0.1}))

	x := data.NewInstance(0.0, vector.Vector{"a": 1})
	require.NoError(t, m.Update(x))
	require.NoError(t, m.Update(x)) // truncation fires at epoch 1, prunes a
	require.NoError(t, m.UpdateBatch([]data.Instance[float64]{x}))

	n, err := testutil.GatherAndCount(reg,
		"lvlearn_model_updates_total",
		"lvlearn_model_truncations_total",
		"lvlearn_model_pruned_parameters_total",
		"lvlearn_model_active_parameters",
		"lvlearn_model_epoch",
	)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "two update kinds plus four single series")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, mt := range mf.GetMetric() {
			switch {
			case mt.GetCounter() != nil:
				values[mf.GetName()] += mt.GetCounter().GetValue()
			case mt.GetGauge() != nil:
				values[mf.GetName()] = mt.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, values["lvlearn_model_updates_total"])
	assert.Equal(t, 1.0, values["lvlearn_model_truncations_total"])
	assert.Equal(t, 1.0, values["lvlearn_model_pruned_parameters_total"])
	assert.Equal(t, 2.0, values["lvlearn_model_epoch"])

	// a pruned by truncation, then reintroduced as 0 by the batch delta
	assert.Equal(t, float64(m.Len()), values["lvlearn_model_active_parameters"])

	m.Teardown()
	n, err = testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "collectors unregistered on teardown")
}

// TestMetrics_TwoModelsOneRegistry relies on the model_id const label.
func TestMetrics_TwoModelsOneRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = newModel(t, fixedSlope{}, 0.1, model.WithRegisterer(reg))
	_ = newModel(t, fixedSlope{}, 0.1, model.WithRegisterer(reg))

	n, err := testutil.GatherAndCount(reg, "lvlearn_model_epoch")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestLogging_TruncationAndTeardown observes debug and warn entries.
func TestLogging_TruncationAndTeardown(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newModel(t, fixedSlope{}, 0.1,
		model.WithLogger(zap.New(core)),
		model.WithTruncation(truncation.Config{Period: 1, Threshold: 1, UpdateRate: 1}))

	x := data.NewInstance(0.0, vector.Vector{"a": 1})
	require.NoError(t, m.Update(x))
	require.NoError(t, m.Update(x))
	m.Teardown()
	assert.ErrorIs(t, m.Update(x), model.ErrTornDown)

	assert.Equal(t, 1, logs.FilterMessage("truncation applied").Len())
	assert.Equal(t, 1, logs.FilterMessage("model torn down").Len())
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.Equal(t, "update after teardown", warn[0].Message)
	assert.Equal(t, m.ID().String(), warn[0].ContextMap()["model_id"])
}
