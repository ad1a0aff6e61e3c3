// File: types.go
// Role: the CanonicalSubgraph output record (Form) and its structural
//       equality / deterministic key encoding.
package canonical

import "strconv"

// Edge is one outgoing edge of a canonical node: destination canonical
// index, normalized timestamp rank, edge label. Ordering is lexicographic
// over (Dest, Time, Label), ascending.
type Edge struct {
	Dest  int
	Time  int
	Label int
}

// Form is the canonical shape of an occurrence, the motif-class key.
// Index i of Labels is canonical node i's label; Edges[i] is its sorted
// outgoing edge list. Two Forms denote the same motif class iff they are
// structurally equal element-wise.
type Form struct {
	Labels []int
	Edges  [][]Edge
}

// NumNodes returns the number of canonical nodes.
func (f Form) NumNodes() int { return len(f.Labels) }

// Equal reports structural equality over labels and sorted edge lists.
func (f Form) Equal(other Form) bool {
	if len(f.Labels) != len(other.Labels) {
		return false
	}
	for i, label := range f.Labels {
		if other.Labels[i] != label {
			return false
		}
		if len(f.Edges[i]) != len(other.Edges[i]) {
			return false
		}
		for j, e := range f.Edges[i] {
			if other.Edges[i][j] != e {
				return false
			}
		}
	}

	return true
}

// Key renders the Form as a compact string: one segment per canonical node,
// "index:label(dest,time,label)(...)", segments joined by ';'. Equal Forms
// produce equal keys and vice versa, so Key doubles as both the result-map
// key and the deterministic output sort order.
func (f Form) Key() string {
	buf := make([]byte, 0, 16*len(f.Labels))
	for i, label := range f.Labels {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(i), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(label), 10)
		for _, e := range f.Edges[i] {
			buf = append(buf, '(')
			buf = strconv.AppendInt(buf, int64(e.Dest), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(e.Time), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(e.Label), 10)
			buf = append(buf, ')')
		}
	}

	return string(buf)
}
