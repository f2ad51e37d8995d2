package param

import (
	"fmt"
	"math"
)

// Decay maps a number of elapsed clock ticks to the multiplicative factor
// applied to a coordinate on catch-up.
//
// Implementations MUST satisfy Factor(0) == 1 and
// Factor(a+b) == Factor(a)·Factor(b): coordinates are caught up at arbitrary,
// uneven intervals and the result may not depend on how the ticks were split.
type Decay interface {
	Factor(ticks int64) float64
}

// NoDecay leaves coordinates untouched.
type NoDecay struct{}

// Factor always returns 1.
func (NoDecay) Factor(int64) float64 { return 1 }

// L2Decay shrinks every coordinate by a constant fraction per tick,
// the closed form of an L2 penalty under a fixed step: w ← w·(1-rate)^ticks.
type L2Decay struct {
	rate float64
}

// NewL2Decay validates rate and returns the decay.
func NewL2Decay(rate float64) (L2Decay, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate >= 1 {
		return L2Decay{}, fmt.Errorf("%w: got %v", ErrInvalidDecay, rate)
	}

	return L2Decay{rate: rate}, nil
}

// Rate returns the per-tick shrink fraction.
func (d L2Decay) Rate() float64 { return d.rate }

// Factor returns (1-rate)^ticks. Non-positive ticks yield 1.
func (d L2Decay) Factor(ticks int64) float64 {
	if ticks <= 0 || d.rate == 0 {
		return 1
	}

	return math.Pow(1-d.rate, float64(ticks))
}
