package optim

import (
	"fmt"
	"math"
)

// Schedule maps an epoch to a learning rate. Implementations must be
// deterministic and non-increasing in epoch.
type Schedule interface {
	Rate(epoch int64) float64
}

// Constant is a fixed learning rate.
type Constant struct {
	eta float64
}

// NewConstant returns a fixed-rate schedule. eta must be finite and > 0.
func NewConstant(eta float64) (Constant, error) {
	if err := positive("eta", eta); err != nil {
		return Constant{}, err
	}

	return Constant{eta: eta}, nil
}

// Rate returns eta for every epoch.
func (c Constant) Rate(int64) float64 { return c.eta }

// InverseSqrt decays as eta0/√(1+epoch).
type InverseSqrt struct {
	eta0 float64
}

// NewInverseSqrt returns an inverse-square-root schedule. eta0 must be finite and > 0.
func NewInverseSqrt(eta0 float64) (InverseSqrt, error) {
	if err := positive("eta0", eta0); err != nil {
		return InverseSqrt{}, err
	}

	return InverseSqrt{eta0: eta0}, nil
}

// Rate returns eta0/√(1+epoch); negative epochs are treated as 0.
func (s InverseSqrt) Rate(epoch int64) float64 {
	if epoch < 0 {
		epoch = 0
	}

	return s.eta0 / math.Sqrt(1+float64(epoch))
}

// Inverse decays as eta0/(1 + epoch/examplesPerEpoch): the rate halves after
// one pass over examplesPerEpoch instances, thirds after two, and so on.
type Inverse struct {
	eta0             float64
	examplesPerEpoch float64
}

// NewInverse returns an inverse-time schedule. Both arguments must be > 0.
func NewInverse(eta0 float64, examplesPerEpoch int64) (Inverse, error) {
	if err := positive("eta0", eta0); err != nil {
		return Inverse{}, err
	}
	if examplesPerEpoch <= 0 {
		return Inverse{}, fmt.Errorf("%w: examplesPerEpoch must be > 0, given: %d", ErrInvalidArgument, examplesPerEpoch)
	}

	return Inverse{eta0: eta0, examplesPerEpoch: float64(examplesPerEpoch)}, nil
}

// Rate returns eta0/(1 + epoch/examplesPerEpoch); negative epochs are treated as 0.
func (s Inverse) Rate(epoch int64) float64 {
	if epoch < 0 {
		epoch = 0
	}

	return s.eta0 / (1 + float64(epoch)/s.examplesPerEpoch)
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be finite and > 0, given: %v", ErrInvalidArgument, name, v)
	}

	return nil
}
