package graph

import (
	"math"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
)

func TestPrimMSTSquareSkipsDiagonals(t *testing.T) {
	points := []geom.Vec2{geom.V(0, 0), geom.V(10, 0), geom.V(10, 10), geom.V(0, 10)}
	edges := []delaunay.Edge{
		delaunay.NewEdge(0, 1),
		delaunay.NewEdge(1, 2),
		delaunay.NewEdge(2, 3),
		delaunay.NewEdge(3, 0),
		delaunay.NewEdge(0, 2),
		delaunay.NewEdge(1, 3),
	}

	mst := PrimMST(points, edges)
	if len(mst) != 3 {
		t.Fatalf("PrimMST() returned %d edges, want 3", len(mst))
	}
	for _, e := range mst {
		if e == delaunay.NewEdge(0, 2) || e == delaunay.NewEdge(1, 3) {
			t.Errorf("PrimMST() selected diagonal %v", e)
		}
	}
	if got := TotalLength(points, mst); math.Abs(got-30) > 1e-9 {
		t.Errorf("TotalLength(mst) = %v, want 30", got)
	}
}

func TestPrimMSTDisconnectedReturnsForest(t *testing.T) {
	points := []geom.Vec2{geom.V(0, 0), geom.V(1, 0), geom.V(50, 50), geom.V(51, 50)}
	edges := []delaunay.Edge{delaunay.NewEdge(0, 1), delaunay.NewEdge(2, 3)}

	mst := PrimMST(points, edges)
	if len(mst) != 1 || mst[0] != delaunay.NewEdge(0, 1) {
		t.Errorf("PrimMST(disconnected) = %v, want [0-1]", mst)
	}
}

func TestPrimMSTTrivial(t *testing.T) {
	if got := PrimMST(nil, nil); got != nil {
		t.Errorf("PrimMST(nil) = %v, want nil", got)
	}
	if got := PrimMST([]geom.Vec2{geom.V(1, 1)}, nil); got != nil {
		t.Errorf("PrimMST(one point) = %v, want nil", got)
	}
}

func TestEdgesFromTrianglesDeduplicates(t *testing.T) {
	tris := []delaunay.Triangle{{I: 0, J: 1, K: 2}, {I: 2, J: 0, K: 3}}

	edges := EdgesFromTriangles(tris)
	if len(edges) != 5 {
		t.Fatalf("EdgesFromTriangles() returned %d edges, want 5: %v", len(edges), edges)
	}
	seen := make(map[delaunay.Edge]bool)
	for _, e := range edges {
		if e.A > e.B {
			t.Errorf("edge %v is not canonical", e)
		}
		if seen[e] {
			t.Errorf("edge %v returned twice", e)
		}
		seen[e] = true
	}
}

func TestConnectivityEdgesTwoPoints(t *testing.T) {
	got := ConnectivityEdges(2, nil)
	if len(got) != 1 || got[0] != delaunay.NewEdge(0, 1) {
		t.Errorf("ConnectivityEdges(2) = %v, want [0-1]", got)
	}
}

func TestMSTOfTriangulationSpansAllPoints(t *testing.T) {
	points := []geom.Vec2{
		geom.V(0, 0), geom.V(300, 20), geom.V(120, 250),
		geom.V(-200, 180), geom.V(90, -260), geom.V(400, 310),
	}
	edges := EdgesFromTriangles(delaunay.Triangulate(points))

	mst := PrimMST(points, edges)
	if len(mst) != len(points)-1 {
		t.Errorf("PrimMST() returned %d edges, want %d", len(mst), len(points)-1)
	}
}
