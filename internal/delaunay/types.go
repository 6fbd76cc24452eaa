// Package delaunay triangulates a point set with the incremental
// Bowyer–Watson algorithm. All structures refer to points by index.
package delaunay

import "fmt"

// Edge is an undirected pair of point indices with A <= B.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Triangle references three distinct point indices. No winding order is
// implied.
type Triangle struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`
}

// Edges returns the three edges of t in canonical form.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.I, t.J), NewEdge(t.J, t.K), NewEdge(t.K, t.I)}
}

// HasVertexAtOrAbove reports whether any corner index is >= n.
func (t Triangle) HasVertexAtOrAbove(n int) bool {
	return t.I >= n || t.J >= n || t.K >= n
}
