// Package lvlearn is the update engine of an online linear learner: a sparse,
// lazily regularized parameter vector refined from a stream of labeled
// examples by stochastic gradient descent, kept small by truncated-gradient
// sparsification, and mergeable across independently trained shards.
//
// 🚀 What is in the box?
//
//	vector/     — sparse string-keyed Vector (features, gradients, deltas)
//	data/       — Instance[L]: label + sparse features
//	param/      — Store: parameter vector with lazy per-coordinate decay
//	optim/      — Schedules, SGD and AdaGrad optimizers
//	truncation/ — truncated-gradient shrink policy
//	model/      — Model[L]: update orchestration, merge, explain, metrics
//	family/     — Logistic, LeastSquares and Hinge families
//
// ✨ Why lvlearn?
//
//   - O(active features) per update, even with a regularizer on every weight
//   - pluggable families and optimizers behind small interfaces
//   - shard-parallel training: train independent models, Merge the results
//   - zap logging and prometheus metrics, both opt-in
//
// Quick sketch:
//
//	instance ─▶ Optimizer.Update(view) ─▶ Store.AddScaled(-δ) ─▶ truncation (every Period)
//
// See examples/ for a runnable sharded training program.
package lvlearn
