// Package optim provides the gradient optimizers that turn labeled instances
// into parameter deltas for lvlearn models.
//
// An optimizer never owns the model it serves. Every call receives a
// read-only param.Reader over the model's current parameters and the
// Gradienter (model family) that computes per-instance gradients:
//
//	delta, err := opt.Update(store.View(), family, inst, epoch)
//
// Sign conventions:
//   - Update returns lr·∇ (the model subtracts it);
//   - BatchUpdate returns -lr·mean(∇) (the model adds it).
//
// Optimizers:
//   - SGD     — plain stochastic gradient descent on a Schedule
//   - AdaGrad — per-coordinate adaptive step lr/(√G_k + ε)
//
// Schedules:
//   - Constant    — η
//   - InverseSqrt — η₀/√(1+t)
//   - Inverse     — η₀/(1 + t/n)
//
// BatchUpdate may compute per-instance gradients on several goroutines
// (WithWorkers). Those goroutines only read the Reader; aggregation runs on the
// calling goroutine in instance order, so results are deterministic.
//
// After Teardown every Update/BatchUpdate returns ErrClosed.
package optim
