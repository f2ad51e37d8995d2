package vector

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Vector is a sparse vector keyed by feature identifier.
// The zero value (nil) is a valid, empty, read-only Vector.
type Vector map[string]float64

// Pair is one (key, value) entry of a sparse vector.
type Pair struct {
	Key   string
	Value float64
}

// New returns an empty Vector with room for capacity entries.
func New(capacity int) Vector {
	if capacity < 0 {
		capacity = 0
	}

	return make(Vector, capacity)
}

// Get returns the value stored under key, or 0 when key is absent.
func (v Vector) Get(key string) float64 {
	return v[key]
}

// Set stores value under key.
func (v Vector) Set(key string, value float64) {
	v[key] = value
}

// Len reports the number of stored entries.
func (v Vector) Len() int {
	return len(v)
}

// Keys returns the stored keys in ascending order.
func (v Vector) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Pairs returns the stored entries ordered by key.
func (v Vector) Pairs() []Pair {
	out := make([]Pair, 0, len(v))
	for _, k := range v.Keys() {
		out = append(out, Pair{Key: k, Value: v[k]})
	}

	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for k, x := range v {
		out[k] = x
	}

	return out
}

// Dot returns Σ v[k]·o[k] over the keys present in both vectors.
// Complexity: O(min(|v|, |o|)).
func (v Vector) Dot(o Vector) float64 {
	small, large := v, o
	if len(large) < len(small) {
		small, large = large, small
	}
	var sum float64
	for k, x := range small {
		if y, ok := large[k]; ok {
			sum += x * y
		}
	}

	return sum
}

// Add adds o into v in place.
func (v Vector) Add(o Vector) {
	v.AddScaled(o, 1)
}

// AddScaled adds scale·o into v in place.
func (v Vector) AddScaled(o Vector, scale float64) {
	for k, x := range o {
		v[k] += x * scale
	}
}

// Scale multiplies every entry of v by c in place.
func (v Vector) Scale(c float64) {
	for k := range v {
		v[k] *= c
	}
}

// Values returns the stored values in key order.
func (v Vector) Values() []float64 {
	out := make([]float64, 0, len(v))
	for _, k := range v.Keys() {
		out = append(out, v[k])
	}

	return out
}

// ValidNormOrder reports whether p names an Lp norm: p ≥ 1 or +Inf.
func ValidNormOrder(p float64) bool {
	return !math.IsNaN(p) && p >= 1
}

// Norm returns the Lp norm of v. p must be ≥ 1 or +Inf; any other p
// (including NaN) yields NaN. An empty vector has norm 0.
func (v Vector) Norm(p float64) float64 {
	if !ValidNormOrder(p) {
		return math.NaN()
	}
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v.Values(), p)
}
