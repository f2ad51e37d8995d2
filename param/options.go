package param

// DefaultCapacity is the initial map capacity of a fresh Store.
const DefaultCapacity = 100

const panicNilDecay = "param: WithDecay: decay must not be nil"

// Option configures a Store at construction.
type Option func(*Options)

// Options holds the resolved Store configuration.
type Options struct {
	capacity int
	decay    Decay
	frozen   bool
}

// DefaultOptions returns the zero-configuration: capacity DefaultCapacity,
// NoDecay, growable key-set.
func DefaultOptions() Options {
	return Options{capacity: DefaultCapacity, decay: NoDecay{}}
}

// WithCapacity sets the initial map capacity. Negative values are treated as 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithDecay sets the lazy regularizer. Panics on nil (programmer error).
func WithDecay(d Decay) Option {
	if d == nil {
		panic(panicNilDecay)
	}

	return func(o *Options) { o.decay = d }
}

// WithFreezeKeySet starts the Store in frozen (true) or growable (false) mode.
func WithFreezeKeySet(frozen bool) Option {
	return func(o *Options) { o.frozen = frozen }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
