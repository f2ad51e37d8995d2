// Package param implements Store, the sparse parameter vector of an online
// linear learner, with lazy per-coordinate regularization.
//
// 🚀 Why lazy?
//
//	A regularizer conceptually decays every weight on every step. With sparse
//	instances (hundreds of active features out of millions) touching every
//	coordinate per step is unaffordable. Store keeps a logical clock and, per
//	coordinate, the clock value at which that coordinate was last brought up
//	to date. Decay is applied on touch:
//
//	  ticks  = clock - lastClock(k)
//	  w(k)   = w(k) · Decay.Factor(ticks)
//	  lastClock(k) = clock
//
//	so one step costs O(touched coordinates), not O(dimension).
//
// ✨ Key features:
//   - IncrementIteration advances the clock and touches nothing
//   - every public read and write catches the coordinate up first
//   - Decay is a multiplicative factor, so catch-up commutes with Mul and is
//     insensitive to how unevenly coordinates are visited
//   - frozen key-set mode: writes to unseen keys are silently dropped
//   - Filter is a two-phase mark-then-remove pass (no mutation while iterating)
//   - View: a read-only Reader that computes caught-up values without writing,
//     safe for concurrent readers while no writer runs
//
// ⚙️ Usage:
//
//	decay, _ := param.NewL2Decay(1e-4)
//	s := param.New(param.WithDecay(decay))
//	s.Add(vector.Vector{"a": 0.5})
//	s.IncrementIteration()
//	w := s.Get("a") // 0.5 · (1-1e-4)
//
// Store performs no internal locking: callers serialize writers.
package param
