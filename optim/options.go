package optim

const (
	// DefaultWorkers is the number of goroutines BatchUpdate uses for gradients.
	DefaultWorkers = 1

	// DefaultEpsilon stabilizes AdaGrad's denominator.
	DefaultEpsilon = 1e-8
)

// Option configures an optimizer at construction.
type Option func(*Options)

// Options holds resolved optimizer settings.
type Options struct {
	workers int
	epsilon float64
}

// DefaultOptions returns DefaultWorkers and DefaultEpsilon.
func DefaultOptions() Options {
	return Options{workers: DefaultWorkers, epsilon: DefaultEpsilon}
}

// WithWorkers sets how many goroutines compute per-instance gradients in
// BatchUpdate. Must be ≥ 1; validated by the constructor.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithEpsilon sets AdaGrad's denominator offset. Must be finite and > 0;
// validated by the constructor. Ignored by SGD.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.epsilon = eps }
}

func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers < 1 {
		return o, errWorkers(o.workers)
	}
	if err := positive("epsilon", o.epsilon); err != nil {
		return o, err
	}

	return o, nil
}
