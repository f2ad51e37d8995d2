package optim

import "errors"

var (
	// ErrInvalidArgument indicates an invalid schedule or optimizer setting.
	ErrInvalidArgument = errors.New("optim: invalid argument")

	// ErrClosed is returned by Update/BatchUpdate after Teardown.
	ErrClosed = errors.New("optim: optimizer torn down")

	// ErrNilGradienter indicates a nil Gradienter was passed to an update call.
	ErrNilGradienter = errors.New("optim: gradienter is nil")
)
