package model

import "errors"

var (
	// ErrInvalidArgument indicates an invalid configuration value.
	ErrInvalidArgument = errors.New("model: invalid argument")

	// ErrTornDown is returned by updates attempted after Teardown.
	ErrTornDown = errors.New("model: model torn down")

	// ErrNilFamily indicates New was called without a model family.
	ErrNilFamily = errors.New("model: family is nil")

	// ErrNilOptimizer indicates New was called without an optimizer.
	ErrNilOptimizer = errors.New("model: optimizer is nil")

	// ErrNilModel indicates a nil *Model argument.
	ErrNilModel = errors.New("model: nil model")
)
