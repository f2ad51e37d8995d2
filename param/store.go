package param

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlearn/vector"
	"gonum.org/v1/gonum/floats"
)

// Reader is read-only access to a parameter vector.
// Both *Store and View satisfy it.
type Reader interface {
	// Get returns the up-to-date weight of key, 0 when absent.
	Get(key string) float64

	// Dot returns Σ w(k)·x(k) over the keys of x.
	Dot(x vector.Vector) float64
}

// entry is one coordinate: its weight as of clock, and that clock.
type entry struct {
	value float64
	clock int64
}

// Store is a sparse parameter vector with lazy per-coordinate decay.
//
// Invariant: entries[k].value is the true weight of k only when
// entries[k].clock == s.clock; every public operation catches k up first.
type Store struct {
	entries map[string]entry
	clock   int64
	decay   Decay
	frozen  bool
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	o := gatherOptions(opts...)

	return &Store{
		entries: make(map[string]entry, o.capacity),
		decay:   o.decay,
		frozen:  o.frozen,
	}
}

// NewFrom returns a Store warm-started with a copy of init.
// The key-set is seeded before a frozen option takes effect.
func NewFrom(init vector.Vector, opts ...Option) *Store {
	o := gatherOptions(opts...)
	if o.capacity < len(init) {
		o.capacity = len(init)
	}
	s := &Store{
		entries: make(map[string]entry, o.capacity),
		decay:   o.decay,
	}
	for k, v := range init {
		s.entries[k] = entry{value: v}
	}
	s.frozen = o.frozen

	return s
}

// catchUp brings k up to the current clock and returns its weight.
func (s *Store) catchUp(k string) (float64, bool) {
	e, ok := s.entries[k]
	if !ok {
		return 0, false
	}
	if e.clock != s.clock {
		e.value *= s.decay.Factor(s.clock - e.clock)
		e.clock = s.clock
		s.entries[k] = e
	}

	return e.value, true
}

// peek computes the up-to-date weight of k without writing it back.
func (s *Store) peek(k string) float64 {
	e, ok := s.entries[k]
	if !ok {
		return 0
	}
	if e.clock == s.clock {
		return e.value
	}

	return e.value * s.decay.Factor(s.clock-e.clock)
}

// Get returns the weight of key after catch-up, or 0 when absent.
func (s *Store) Get(key string) float64 {
	v, _ := s.catchUp(key)

	return v
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]

	return ok
}

// Len returns the number of present coordinates.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clock returns the current logical clock.
func (s *Store) Clock() int64 {
	return s.clock
}

// IncrementIteration advances the clock by one tick. No coordinate is touched.
func (s *Store) IncrementIteration() {
	s.clock++
}

// RewindIteration undoes the last IncrementIteration. It is only valid when
// no coordinate has been written since that tick; the clock never goes below 0.
func (s *Store) RewindIteration() {
	if s.clock > 0 {
		s.clock--
	}
}

// Frozen reports whether the key-set is frozen.
func (s *Store) Frozen() bool {
	return s.frozen
}

// SetFreezeKeySet toggles frozen key-set mode.
func (s *Store) SetFreezeKeySet(frozen bool) {
	s.frozen = frozen
}

// Set overwrites the weight of key. The stored clock becomes the current
// clock, so no pending decay applies to the new value. Returns false when the
// key-set is frozen and key is unseen.
func (s *Store) Set(key string, value float64) bool {
	if _, ok := s.entries[key]; !ok && s.frozen {
		return false
	}
	s.entries[key] = entry{value: value, clock: s.clock}

	return true
}

// Delete removes key. A later write reintroduces it with a fresh clock.
func (s *Store) Delete(key string) {
	delete(s.entries, key)
}

// Dot returns Σ w(k)·x(k) over the keys of x, catching each touched key up.
func (s *Store) Dot(x vector.Vector) float64 {
	var sum float64
	for k, xv := range x {
		if w, ok := s.catchUp(k); ok {
			sum += w * xv
		}
	}

	return sum
}

// Add adds delta into the store.
func (s *Store) Add(delta vector.Vector) {
	s.AddScaled(delta, 1)
}

// AddScaled adds scale·delta into the store. Present keys are caught up
// first; unseen keys are introduced unless the key-set is frozen.
func (s *Store) AddScaled(delta vector.Vector, scale float64) {
	for k, d := range delta {
		if w, ok := s.catchUp(k); ok {
			s.entries[k] = entry{value: w + d*scale, clock: s.clock}

			continue
		}
		if s.frozen {
			continue
		}
		s.entries[k] = entry{value: d * scale, clock: s.clock}
	}
}

// Mul scales every present coordinate by c. Decay factors are multiplicative,
// so no catch-up is needed.
func (s *Store) Mul(c float64) {
	for k, e := range s.entries {
		e.value *= c
		s.entries[k] = e
	}
}

// Transform replaces every present weight w with fn(w), after catch-up.
func (s *Store) Transform(fn func(float64) float64) {
	for k := range s.entries {
		w, _ := s.catchUp(k)
		s.entries[k] = entry{value: fn(w), clock: s.clock}
	}
}

// TransformKeys applies fn to the present coordinates among keys only.
// Absent keys are skipped, never introduced.
func (s *Store) TransformKeys(keys []string, fn func(float64) float64) {
	for _, k := range keys {
		if w, ok := s.catchUp(k); ok {
			s.entries[k] = entry{value: fn(w), clock: s.clock}
		}
	}
}

// RemoveZeroCoordinates drops every coordinate whose weight is exactly 0
// and returns how many were removed.
func (s *Store) RemoveZeroCoordinates() int {
	return s.Filter(func(_ string, w float64) bool { return w != 0 })
}

// RemoveZeroKeys drops the coordinates among keys whose weight is exactly 0.
func (s *Store) RemoveZeroKeys(keys []string) int {
	removed := 0
	for _, k := range keys {
		if w, ok := s.catchUp(k); ok && w == 0 {
			delete(s.entries, k)
			removed++
		}
	}

	return removed
}

// Filter keeps the coordinates for which keep returns true and removes the
// rest. Keys are marked in a first pass and deleted in a second one.
// Returns the number of removed coordinates.
func (s *Store) Filter(keep func(key string, w float64) bool) int {
	var drop []string
	for k := range s.entries {
		w, _ := s.catchUp(k)
		if !keep(k, w) {
			drop = append(drop, k)
		}
	}
	for _, k := range drop {
		delete(s.entries, k)
	}

	return len(drop)
}

// Norm returns the Lp norm over present coordinates. p must be ≥ 1 or +Inf;
// any other p (including NaN) yields NaN.
func (s *Store) Norm(p float64) float64 {
	if !vector.ValidNormOrder(p) {
		return math.NaN()
	}
	if len(s.entries) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(s.entries))
	for _, k := range s.keys() {
		vals = append(vals, s.peek(k))
	}

	return floats.Norm(vals, p)
}

// Pairs returns every present coordinate, caught up, ordered by key.
func (s *Store) Pairs() []vector.Pair {
	keys := s.keys()
	out := make([]vector.Pair, 0, len(keys))
	for _, k := range keys {
		w, _ := s.catchUp(k)
		out = append(out, vector.Pair{Key: k, Value: w})
	}

	return out
}

// Range calls fn for every present coordinate in key order until fn returns
// false. fn must not mutate the store; use Filter to remove coordinates.
func (s *Store) Range(fn func(key string, w float64) bool) {
	for _, p := range s.Pairs() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Vector returns an up-to-date snapshot of the store.
func (s *Store) Vector() vector.Vector {
	out := make(vector.Vector, len(s.entries))
	for k := range s.entries {
		out[k] = s.peek(k)
	}

	return out
}

// View returns a read-only Reader over s.
func (s *Store) View() View {
	return View{s: s}
}

func (s *Store) keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// View reads a Store without catching coordinates up in place. It is safe
// for concurrent use as long as no goroutine mutates the underlying Store.
type View struct {
	s *Store
}

// Get returns the up-to-date weight of key, 0 when absent.
func (v View) Get(key string) float64 {
	return v.s.peek(key)
}

// Dot returns Σ w(k)·x(k) over the keys of x.
func (v View) Dot(x vector.Vector) float64 {
	var sum float64
	for k, xv := range x {
		sum += v.s.peek(k) * xv
	}

	return sum
}

// Len returns the number of present coordinates.
func (v View) Len() int {
	return len(v.s.entries)
}
