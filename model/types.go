package model

import (
	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/optim"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
)

// Family is the per-family math of a linear model: gradient, prediction and
// loss, all expressed against a read-only view of the parameters.
type Family[L any] interface {
	optim.Gradienter[L]

	// Predict maps a feature vector to a label.
	Predict(p param.Reader, x vector.Vector) L

	// Loss returns the instance loss under the current parameters.
	Loss(p param.Reader, inst data.Instance[L]) float64

	// Name identifies the family, e.g. "logistic".
	Name() string
}

// Contribution is one feature's share of a prediction.
type Contribution struct {
	Feature   string
	Value     float64 // x_k
	Weight    float64 // w_k
	Magnitude float64 // |x_k·w_k|
}
