// File: types.go
// Role: solver configuration sentinels, the delta constant, and the
//       motif-class result accumulator.
package enumerator

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/modit/canonical"
)

// InfiniteDelta disables the time-window constraint: every occurrence span
// is admissible. Encoded as the maximum representable timestamp span.
const InfiniteDelta int64 = math.MaxInt64

// Sentinel errors for solver construction and runs.
var (
	// ErrNilGraph indicates NewSolver received no graph.
	ErrNilGraph = errors.New("enumerator: graph must not be nil")

	// ErrBadNodeBound indicates n_max < 2: an occurrence is at least one
	// edge, which needs up to two nodes.
	ErrBadNodeBound = errors.New("enumerator: n_max must be >= 2")

	// ErrBadEdgeBound indicates e_max < 1.
	ErrBadEdgeBound = errors.New("enumerator: e_max must be >= 1")

	// ErrBadDelta indicates a negative delta; use InfiniteDelta to disable
	// the window.
	ErrBadDelta = errors.New("enumerator: delta must be >= 0")
)

// MotifClass pairs one canonical form with its support: the number of
// distinct occurrences that reduced to it.
type MotifClass struct {
	Form  canonical.Form
	Count int
}

// Result accumulates motif classes keyed by canonical form.
type Result struct {
	classes map[string]*MotifClass
}

func newResult() *Result {
	return &Result{classes: make(map[string]*MotifClass)}
}

// add counts one occurrence of form.
func (r *Result) add(form canonical.Form) {
	key := form.Key()
	if mc, ok := r.classes[key]; ok {
		mc.Count++
		return
	}
	r.classes[key] = &MotifClass{Form: form, Count: 1}
}

// Count returns the support recorded for form, 0 if the class is absent.
func (r *Result) Count(form canonical.Form) int {
	if mc, ok := r.classes[form.Key()]; ok {
		return mc.Count
	}

	return 0
}

// NumClasses returns the number of distinct motif classes.
func (r *Result) NumClasses() int { return len(r.classes) }

// NumOccurrences returns the total occurrence count across all classes.
func (r *Result) NumOccurrences() int {
	total := 0
	for _, mc := range r.classes {
		total += mc.Count
	}

	return total
}

// Classes returns every motif class sorted by canonical key, the stable
// order the output writer relies on.
func (r *Result) Classes() []MotifClass {
	out := make([]MotifClass, 0, len(r.classes))
	for _, mc := range r.classes {
		out = append(out, *mc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Form.Key() < out[j].Form.Key()
	})

	return out
}
