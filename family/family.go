package family

import (
	"math"

	"github.com/katalvlaran/lvlearn/data"
	"github.com/katalvlaran/lvlearn/param"
	"github.com/katalvlaran/lvlearn/vector"
)

// Names reported by the families.
const (
	NameLogistic     = "logistic"
	NameLeastSquares = "least_squares"
	NameHinge        = "hinge"
)

// scaled returns d·x as a new vector; a zero derivative yields an empty one.
func scaled(x vector.Vector, d float64) vector.Vector {
	if d == 0 {
		return vector.New(0)
	}
	out := x.Clone()
	out.Scale(d)

	return out
}

// Sigmoid is the numerically stable logistic function.
func Sigmoid(s float64) float64 {
	if s >= 0 {
		return 1 / (1 + math.Exp(-s))
	}
	e := math.Exp(s)

	return e / (1 + e)
}

// Logistic is binary logistic regression with labels in {0, 1}.
type Logistic struct{}

// Name returns NameLogistic.
func (Logistic) Name() string { return NameLogistic }

// Probability returns σ(w·x).
func (Logistic) Probability(p param.Reader, x vector.Vector) float64 {
	return Sigmoid(p.Dot(x))
}

// Gradient returns (σ(w·x) - y)·x.
func (f Logistic) Gradient(p param.Reader, inst data.Instance[float64]) vector.Vector {
	return scaled(inst.Features, f.Probability(p, inst.Features)-inst.Label)
}

// Predict returns 1 when σ(w·x) ≥ 0.5, else 0.
func (f Logistic) Predict(p param.Reader, x vector.Vector) float64 {
	if f.Probability(p, x) >= 0.5 {
		return 1
	}

	return 0
}

// Loss returns the log loss, computed from the score to avoid log(0).
func (Logistic) Loss(p param.Reader, inst data.Instance[float64]) float64 {
	s := p.Dot(inst.Features)
	// log(1+e^s) - y·s
	var softplus float64
	if s > 0 {
		softplus = s + math.Log1p(math.Exp(-s))
	} else {
		softplus = math.Log1p(math.Exp(s))
	}

	return softplus - inst.Label*s
}

// LeastSquares is linear regression under squared error.
type LeastSquares struct{}

// Name returns NameLeastSquares.
func (LeastSquares) Name() string { return NameLeastSquares }

// Gradient returns (w·x - y)·x.
func (LeastSquares) Gradient(p param.Reader, inst data.Instance[float64]) vector.Vector {
	return scaled(inst.Features, p.Dot(inst.Features)-inst.Label)
}

// Predict returns w·x.
func (LeastSquares) Predict(p param.Reader, x vector.Vector) float64 {
	return p.Dot(x)
}

// Loss returns ½(w·x - y)².
func (LeastSquares) Loss(p param.Reader, inst data.Instance[float64]) float64 {
	r := p.Dot(inst.Features) - inst.Label

	return 0.5 * r * r
}

// Hinge is a linear SVM with labels in {-1, +1}.
type Hinge struct{}

// Name returns NameHinge.
func (Hinge) Name() string { return NameHinge }

// Gradient returns -y·x inside the margin (y·s < 1), nothing otherwise.
func (Hinge) Gradient(p param.Reader, inst data.Instance[float64]) vector.Vector {
	if inst.Label*p.Dot(inst.Features) >= 1 {
		return vector.New(0)
	}

	return scaled(inst.Features, -inst.Label)
}

// Predict returns +1 for a non-negative score, else -1.
func (Hinge) Predict(p param.Reader, x vector.Vector) float64 {
	if p.Dot(x) >= 0 {
		return 1
	}

	return -1
}

// Loss returns max(0, 1 - y·w·x).
func (Hinge) Loss(p param.Reader, inst data.Instance[float64]) float64 {
	return math.Max(0, 1-inst.Label*p.Dot(inst.Features))
}
