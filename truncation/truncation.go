package truncation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/param"
)

// Defaults mirror a disabled policy with the customary shrink rate.
const (
	DefaultPeriod     = 0
	DefaultThreshold  = 0.0
	DefaultUpdateRate = 0.1
)

// ErrInvalidArgument indicates a negative or non-finite configuration value.
var ErrInvalidArgument = errors.New("truncation: invalid argument")

// Config is the truncation schedule and shrink band.
type Config struct {
	// Period fires truncation every Period epochs; 0 disables it.
	Period int

	// Threshold bounds the magnitude band (0, Threshold) that is shrunk.
	Threshold float64

	// UpdateRate scales the learning rate into the per-firing shrink step.
	UpdateRate float64
}

// DefaultConfig returns a disabled policy.
func DefaultConfig() Config {
	return Config{Period: DefaultPeriod, Threshold: DefaultThreshold, UpdateRate: DefaultUpdateRate}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := ValidatePeriod(c.Period); err != nil {
		return err
	}
	if err := ValidateThreshold(c.Threshold); err != nil {
		return err
	}

	return ValidateUpdateRate(c.UpdateRate)
}

// ValidatePeriod requires period ≥ 0.
func ValidatePeriod(period int) error {
	if period < 0 {
		return fmt.Errorf("%w: period must be non-negative, given: %d", ErrInvalidArgument, period)
	}

	return nil
}

// ValidateThreshold requires a finite threshold ≥ 0.
func ValidateThreshold(threshold float64) error {
	if !nonNegative(threshold) {
		return fmt.Errorf("%w: threshold must be non-negative, given: %v", ErrInvalidArgument, threshold)
	}

	return nil
}

// ValidateUpdateRate requires a finite update rate ≥ 0.
func ValidateUpdateRate(rate float64) error {
	if !nonNegative(rate) {
		return fmt.Errorf("%w: update rate must be non-negative, given: %v", ErrInvalidArgument, rate)
	}

	return nil
}

// Enabled reports whether the policy can ever fire.
func (c Config) Enabled() bool {
	return c.Period > 0
}

// Due reports whether truncation fires at epoch:
// Period > 0 ∧ epoch > 0 ∧ epoch mod Period == 0.
func (c Config) Due(epoch int64) bool {
	return c.Period > 0 && epoch > 0 && epoch%int64(c.Period) == 0
}

// Step returns the shrink amount for a given learning rate.
func (c Config) Step(learningRate float64) float64 {
	return learningRate * c.UpdateRate
}

// Shrink moves w toward zero by step when |w| lies in (0, threshold).
func Shrink(w, threshold, step float64) float64 {
	switch {
	case w > 0 && w < threshold:
		return math.Max(0, w-step)
	case w < 0 && w > -threshold:
		return math.Min(0, w+step)
	default:
		return w
	}
}

// Apply shrinks the coordinates of s among keys and prunes those that become
// exactly zero. Absent keys are ignored. Returns the number pruned.
func Apply(s *param.Store, keys []string, threshold, step float64) int {
	s.TransformKeys(keys, func(w float64) float64 {
		return Shrink(w, threshold, step)
	})

	return s.RemoveZeroKeys(keys)
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
