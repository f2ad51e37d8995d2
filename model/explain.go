package model

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlearn/vector"
)

// ExplainPrediction ranks the features of x by |x_k·w_k|, descending, and
// returns the top n. Features absent from x or with zero weight are skipped.
// n < 0 returns every contribution. Ties are broken by feature name.
func (m *Model[L]) ExplainPrediction(x vector.Vector, n int) []Contribution {
	view := m.param.View()
	out := make([]Contribution, 0, len(x))
	for k, xv := range x {
		w := view.Get(k)
		if w == 0 {
			continue
		}
		out = append(out, Contribution{
			Feature:   k,
			Value:     xv,
			Weight:    w,
			Magnitude: math.Abs(xv * w),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Magnitude != out[j].Magnitude {
			return out[i].Magnitude > out[j].Magnitude
		}

		return out[i].Feature < out[j].Feature
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

// FormatExplanation renders ExplainPrediction(x, n) as
// "feature:value->weight " entries with two decimals.
func (m *Model[L]) FormatExplanation(x vector.Vector, n int) string {
	var b strings.Builder
	for _, c := range m.ExplainPrediction(x, n) {
		fmt.Fprintf(&b, "%s:%.2f->%.2f ", c.Feature, c.Value, c.Weight)
	}

	return b.String()
}
