// Package truncation implements truncated-gradient sparsification for
// online linear models (Langford, Li & Zhang, JMLR 10, 2009).
//
// Every Period single-instance updates, the weights of the instance that
// triggered the check are shrunk toward zero when their magnitude lies inside
// (0, Threshold):
//
//	0 < w < θ   →  max(0, w - step)
//	-θ < w < 0  →  min(0, w + step)
//	otherwise   →  w
//
// where step = learningRate(epoch)·UpdateRate. Coordinates that reach exactly
// 0 are pruned. Only the triggering instance's keys are visited, so the cost
// tracks the instance size, not the parameter count.
//
// Shrink never flips a sign and never increases a magnitude.
package truncation
