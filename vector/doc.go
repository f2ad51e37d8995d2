// Package vector provides Vector, the sparse string-keyed numeric vector used
// throughout lvlearn for feature vectors, gradients and parameter deltas.
//
// 🚀 What is a Vector?
//
//	A map from feature identifier to value. Missing keys read as 0, so a
//	Vector with a handful of entries can stand for a point in a space with
//	millions of dimensions:
//	  • feature vectors of labeled instances
//	  • gradients returned by model families
//	  • deltas returned by optimizers
//
// ✨ Key features:
//   - Dot iterates the smaller operand: O(min(|a|, |b|))
//   - Keys and Pairs are sorted, so every walk over a Vector is deterministic
//   - Norm(p) for any p ≥ 1 (including +Inf) via gonum/floats
//
// ⚙️ Usage:
//
//	x := vector.Vector{"age": 0.3, "country=fr": 1}
//	w := vector.Vector{"age": 2}
//	score := w.Dot(x) // 0.6
//
// A Vector is a plain map: it is not safe for concurrent mutation.
package vector
