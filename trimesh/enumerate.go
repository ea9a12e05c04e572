package trimesh

import (
	"github.com/james-bowman/sparse"

	"github.com/notargets/gotripack/geometry2D"
	"github.com/notargets/gotripack/types"
)

// Triangles lists every triangle once, in counterclockwise order with the
// lowest numbered vertex first.
func (tm *TriMesh[T]) Triangles() (tris [][3]int) {
	tris = make([][3]int, 0, tm.triangleCount)
	for n := 0; n < tm.nodeCount; n++ {
		tm.adj.eachWedge(n, func(a, b int) bool {
			if n < a && n < b {
				tris = append(tris, [3]int{n, a, b})
			}
			return true
		})
	}
	return
}

// Arcs lists every undirected arc once
func (tm *TriMesh[T]) Arcs() (arcs []types.EdgeKey) {
	arcs = make([]types.EdgeKey, 0, tm.arcCount)
	for n := 0; n < tm.nodeCount; n++ {
		for _, nb := range tm.adj.ring(n) {
			if n < nb {
				arcs = append(arcs, types.NewEdgeKey(n, nb))
			}
		}
	}
	return
}

func (tm *TriMesh[T]) TriangleGeometry(tri [3]int) geometry2D.Triangle {
	var (
		x1, y1 = tm.xy(tri[0])
		x2, y2 = tm.xy(tri[1])
		x3, y3 = tm.xy(tri[2])
	)
	return geometry2D.Circum(x1, y1, x2, y2, x3, y3)
}

// Geometry returns the triangle geometry in the order of Triangles
func (tm *TriMesh[T]) Geometry() (geom []geometry2D.Triangle) {
	tris := tm.Triangles()
	geom = make([]geometry2D.Triangle, len(tris))
	for k, tri := range tris {
		geom[k] = tm.TriangleGeometry(tri)
	}
	return
}

// AdjacencyMatrix is the symmetric node to node connectivity, 1 for every
// directed arc and 0 elsewhere.
func (tm *TriMesh[T]) AdjacencyMatrix() *sparse.CSR {
	dok := sparse.NewDOK(tm.nodeCount, tm.nodeCount)
	for n := 0; n < tm.nodeCount; n++ {
		for _, nb := range tm.adj.ring(n) {
			dok.Set(n, nb, 1)
		}
	}
	return dok.ToCSR()
}

// HullArcs lists the directed hull arcs, counterclockwise from the first
// boundary node
func (tm *TriMesh[T]) HullArcs() (arcs []types.EdgeInt) {
	nb := len(tm.nodes)
	arcs = make([]types.EdgeInt, nb)
	for i, n := range tm.nodes {
		arcs[i] = types.NewEdgeInt(n, tm.nodes[(i+1)%nb])
	}
	return
}
