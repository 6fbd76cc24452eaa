// Package graph builds the room connectivity graph from a triangulation and
// extracts its minimum spanning tree.
package graph

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// EdgesFromTriangles returns the union of all triangle edges, deduplicated,
// in first-seen order.
func EdgesFromTriangles(tris []delaunay.Triangle) []delaunay.Edge {
	seen := mapset.New[delaunay.Edge]()
	edges := make([]delaunay.Edge, 0, len(tris)*3)
	for _, t := range tris {
		for _, e := range t.Edges() {
			if seen.Has(e) {
				continue
			}
			seen.Put(e)
			edges = append(edges, e)
		}
	}
	return edges
}

// ConnectivityEdges returns the candidate edge set for n points: the
// triangulation edges, or the single pair when only two points exist.
func ConnectivityEdges(n int, tris []delaunay.Triangle) []delaunay.Edge {
	if n == 2 {
		return []delaunay.Edge{delaunay.NewEdge(0, 1)}
	}
	return EdgesFromTriangles(tris)
}

// PrimMST returns the minimum spanning tree of the graph (points, edges)
// using Prim's algorithm rooted at vertex 0. Each step scans every edge for
// the shortest one crossing the visited frontier. If the graph is
// disconnected the tree covering vertex 0's component is returned.
func PrimMST(points []geom.Vec2, edges []delaunay.Edge) []delaunay.Edge {
	n := len(points)
	if n <= 1 {
		return nil
	}

	visited := mapset.New[int]()
	visited.Put(0)
	mst := make([]delaunay.Edge, 0, n-1)

	for visited.Size() < n {
		best := math.MaxFloat64
		var bestEdge delaunay.Edge
		next := -1

		for _, e := range edges {
			aIn, bIn := visited.Has(e.A), visited.Has(e.B)
			if aIn == bIn {
				continue
			}
			d := geom.Dist(points[e.A], points[e.B])
			if d < best {
				best = d
				bestEdge = e
				if aIn {
					next = e.B
				} else {
					next = e.A
				}
			}
		}

		if next < 0 {
			break
		}
		mst = append(mst, bestEdge)
		visited.Put(next)
	}
	return mst
}

// TotalLength sums the Euclidean lengths of edges.
func TotalLength(points []geom.Vec2, edges []delaunay.Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += geom.Dist(points[e.A], points[e.B])
	}
	return total
}
