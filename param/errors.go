package param

import "errors"

// ErrInvalidDecay is returned when a decay rate is outside [0, 1) or not finite.
var ErrInvalidDecay = errors.New("param: decay rate must be finite and in [0, 1)")
