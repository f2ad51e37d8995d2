// Package model implements Model, the orchestrator of an online linear
// learner: it sequences lazy-clock advancement, optimizer calls, parameter
// application, truncated-gradient sparsification and epoch bookkeeping.
//
// 🚀 Single-instance update (Update):
//
//  1. if epoch > 0, advance the store's lazy clock one tick
//  2. delta = optimizer.Update(view, family, instance, epoch)
//  3. param -= delta
//  4. truncate the instance's coordinates if the schedule is due
//  5. epoch++
//
// Batch update (UpdateBatch) advances the clock once for the whole batch, adds
// the optimizer's pre-negated aggregated delta, and leaves epoch unchanged.
// Mixing both paths on one model therefore changes how often truncation
// fires; that asymmetry is deliberate and kept stable.
//
// ✨ Other operations:
//   - Merge(other, scaling)       — param += other·scaling, epoch += other.epoch
//   - ReScale(c)                  — param *= c
//   - ThresholdParameters(t)      — drop every |w| < t
//   - CompareTo / SortByNorm      — order by descending L2 norm
//   - ExplainPrediction(x, n)     — top-n |x_k·w_k| contributions
//
// Families (logistic, least squares, hinge, …) plug in through Family; the
// optimizer receives a read-only param.Reader on every call and never holds
// a pointer back to the model.
//
// ⚙️ Usage:
//
//	sched, _ := optim.NewInverseSqrt(0.5)
//	opt, _ := optim.NewSGD[float64](sched)
//	m, err := model.New[float64](family.Logistic{}, opt,
//		model.WithTruncation(truncation.Config{Period: 10, Threshold: 0.05, UpdateRate: 0.1}),
//		model.WithLogger(logger),
//	)
//	_ = m.Update(data.NewInstance(1.0, vector.Vector{"f": 1}))
//
// Concurrency: a Model performs no internal locking. All mutating calls on
// one Model must be serialized by the caller; parallelism comes from training
// independent models and combining them with Merge.
package model
