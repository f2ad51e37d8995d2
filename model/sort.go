package model

import "sort"

// SortByNorm orders models by descending L2 norm of their parameters.
// The sort is stable, so equal-norm models keep their relative order.
func SortByNorm[L any](models []*Model[L]) {
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].CompareTo(models[j]) < 0
	})
}
