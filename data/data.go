// Package data defines the labeled instance consumed by lvlearn models.
//
// An Instance pairs an opaque label with a sparse feature vector. Models and
// optimizers treat instances as immutable: nothing in lvlearn writes to
// Instance.Features.
package data

import "github.com/katalvlaran/lvlearn/vector"

// Instance is a labeled example. L is the label type of the model family
// (e.g. float64 for regression and binary classification).
type Instance[L any] struct {
	// Label is the supervised target. It is interpreted only by the model family.
	Label L

	// Features is the sparse feature vector. A nil map is an empty instance.
	Features vector.Vector
}

// NewInstance returns an Instance with the given label and features.
func NewInstance[L any](label L, features vector.Vector) Instance[L] {
	return Instance[L]{Label: label, Features: features}
}

// Vector returns the feature vector of the instance.
func (in Instance[L]) Vector() vector.Vector {
	return in.Features
}

// Empty reports whether the instance has no active features.
func (in Instance[L]) Empty() bool {
	return len(in.Features) == 0
}
