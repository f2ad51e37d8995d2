// Package family provides concrete linear-model families for lvlearn:
// the gradient, prediction and loss of a single dot-product score s = w·x.
//
// Every family here has a gradient of the form dLoss/ds · x, so one instance
// touches exactly its own features.
//
//	Logistic     — labels {0, 1}; p = σ(s); log loss
//	LeastSquares — real labels; ŷ = s; ½(s - y)²
//	Hinge        — labels {-1, +1}; sign(s); max(0, 1 - y·s)
package family
