package model

import (
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/truncation"
	"github.com/katalvlaran/lvlearn/vector"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultArgString is the metadata slot value until SetArgString is called.
const DefaultArgString = "NOT SET"

// Option configures a Model at construction.
type Option func(*Options)

// Options holds the resolved Model configuration. Validation happens in New.
type Options struct {
	capacity   int
	initial    vector.Vector
	decay      param.Decay
	trunc      truncation.Config
	frozen     bool
	argString  string
	logger     *zap.Logger
	registerer prometheus.Registerer
}

// DefaultOptions returns an empty, growable, undecayed model with truncation
// disabled, a no-op logger and no metrics registration.
func DefaultOptions() Options {
	return Options{
		capacity:  param.DefaultCapacity,
		decay:     param.NoDecay{},
		trunc:     truncation.DefaultConfig(),
		argString: DefaultArgString,
		logger:    zap.NewNop(),
	}
}

// WithCapacity sets the initial parameter map capacity.
func WithCapacity(n int) Option {
	return func(o *Options) { o.capacity = n }
}

// WithInitialParams warm-starts the model from a copy of v.
func WithInitialParams(v vector.Vector) Option {
	return func(o *Options) { o.initial = v }
}

// WithDecay sets the lazy per-tick regularizer of the parameter store.
func WithDecay(d param.Decay) Option {
	return func(o *Options) { o.decay = d }
}

// WithTruncation sets the truncated-gradient policy.
func WithTruncation(c truncation.Config) Option {
	return func(o *Options) { o.trunc = c }
}

// WithFreezeKeySet starts the model with a frozen feature set.
func WithFreezeKeySet(frozen bool) Option {
	return func(o *Options) { o.frozen = frozen }
}

// WithArgString sets the opaque metadata slot.
func WithArgString(s string) Option {
	return func(o *Options) { o.argString = s }
}

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers the model's collectors on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) { o.registerer = r }
}
