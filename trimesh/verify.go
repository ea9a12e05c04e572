package trimesh

import (
	"math"

	"github.com/pkg/errors"

	"github.com/notargets/gotripack/geometry2D"
	"github.com/notargets/gotripack/types"
)

// delaunayTolerance is the relative distance inside a circumcircle tolerated
// before an opposite node counts as a violation
const delaunayTolerance = 1.e-9

// Verify checks the structural invariants of the triangulation and the empty
// circumcircle property of every interior arc.
func (tm *TriMesh[T]) Verify() (err error) {
	if err = tm.verifyRings(); err != nil {
		return
	}
	if err = tm.verifyCounts(); err != nil {
		return
	}
	if err = tm.verifyHull(); err != nil {
		return
	}
	return tm.verifyDelaunay()
}

func (tm *TriMesh[T]) verifyRings() (err error) {
	adj := tm.adj
	for n := 0; n < tm.nodeCount; n++ {
		var (
			nbrs = adj.ring(n)
			seen = make(map[int]bool, len(nbrs))
			lpl  = adj.lend[n]
		)
		if len(nbrs) < 2 {
			return errors.Wrapf(ErrInconsistentMesh, "node %d has %d neighbors", n, len(nbrs))
		}
		for lp := adj.lptr[lpl]; ; lp = adj.lptr[lp] {
			nb := adj.list[lp].node
			switch {
			case nb == n, nb < 0, nb >= tm.nodeCount:
				return errors.Wrapf(ErrInconsistentMesh, "node %d has invalid neighbor %d", n, nb)
			case seen[nb]:
				return errors.Wrapf(ErrInconsistentMesh, "node %d lists neighbor %d twice", n, nb)
			}
			seen[nb] = true
			if adj.list[lp].boundary && lp != lpl {
				return errors.Wrapf(ErrInconsistentMesh, "node %d has a boundary flag before its last neighbor", n)
			}
			if _, found := adj.lstptr(adj.lend[nb], n); !found {
				return errors.Wrapf(ErrInconsistentMesh, "node %d is a neighbor of %d but not the reverse", nb, n)
			}
			if lp == lpl {
				break
			}
		}
		adj.eachWedge(n, func(a, b int) bool {
			xn, yn := tm.xy(n)
			xa, ya := tm.xy(a)
			xb, yb := tm.xy(b)
			if geometry2D.Orient(xn, yn, xa, ya, xb, yb) <= 0 {
				err = errors.Wrapf(ErrDegenerateTriangle, "triangle (%d,%d,%d) is not counterclockwise", n, a, b)
				return false
			}
			return true
		})
		if err != nil {
			return
		}
	}
	return
}

func (tm *TriMesh[T]) verifyCounts() (err error) {
	var bdy int
	for n := 0; n < tm.nodeCount; n++ {
		if tm.adj.isBoundary(n) {
			bdy++
		}
	}
	switch {
	case bdy != tm.boundaryNodeCount:
		err = errors.Wrapf(ErrBoundaryOpen, "%d flagged nodes, hull walk found %d", bdy, tm.boundaryNodeCount)
	case bdy < 3:
		err = errors.Wrapf(ErrBoundaryOpen, "hull has %d nodes", bdy)
	case len(tm.Triangles()) != tm.triangleCount:
		err = errors.Wrapf(ErrInconsistentMesh, "%d triangles listed, expected %d", len(tm.Triangles()), tm.triangleCount)
	case len(tm.Arcs()) != tm.arcCount:
		err = errors.Wrapf(ErrInconsistentMesh, "%d arcs listed, expected %d", len(tm.Arcs()), tm.arcCount)
	}
	return
}

// verifyHull checks that the hull arcs close into one counterclockwise loop of
// mesh arcs, traversing no arc in both directions.
func (tm *TriMesh[T]) verifyHull() (err error) {
	var (
		hull  = tm.HullArcs()
		arcs  = make(map[types.EdgeKey]bool, tm.arcCount)
		steps = make(map[types.EdgeInt]bool, len(hull))
	)
	for _, ek := range tm.Arcs() {
		arcs[ek] = true
	}
	for i, e := range hull {
		switch next := hull[(i+1)%len(hull)]; {
		case !arcs[e.Key()]:
			return errors.Wrapf(ErrBoundaryOpen, "hull arc %v is not an arc of the mesh", e)
		case steps[e.Reverse()]:
			return errors.Wrapf(ErrBoundaryOpen, "hull arc %v is traversed in both directions", e)
		case e.To() != next.From():
			return errors.Wrapf(ErrBoundaryOpen, "hull arc %v is followed by %v", e, next)
		case !tm.adj.isHullArc(e.From(), e.To()):
			return errors.Wrapf(ErrBoundaryOpen, "hull arc %v is not counterclockwise", e)
		}
		steps[e] = true
	}
	return
}

// verifyDelaunay tests the node opposite each interior arc against the
// circumcircle on the other side. InCircle is exact in sign only, so a hit is
// confirmed against the circumradius with a relative tolerance.
func (tm *TriMesh[T]) verifyDelaunay() (err error) {
	adj := tm.adj
	for n := 0; n < tm.nodeCount; n++ {
		lpl := adj.lend[n]
		for lp := adj.lptr[lpl]; ; lp = adj.lptr[lp] {
			nb := adj.list[lp].node
			if n < nb && !adj.list[lp].boundary {
				lpr := adj.mustFind(nb, n)
				if !adj.list[lpr].boundary {
					// Triangles (n, nb, c) and (nb, n, d)
					c := adj.list[adj.lptr[lp]].node
					d := adj.list[adj.lptr[lpr]].node
					if tm.insideCircumcircle(d, [3]int{n, nb, c}) {
						return errors.Wrapf(ErrNotDelaunay, "node %d is inside the circumcircle of (%d,%d,%d)", d, n, nb, c)
					}
				}
			}
			if lp == lpl {
				break
			}
		}
	}
	return
}

func (tm *TriMesh[T]) insideCircumcircle(p int, tri [3]int) bool {
	var (
		xp, yp = tm.xy(p)
		x1, y1 = tm.xy(tri[0])
		x2, y2 = tm.xy(tri[1])
		x3, y3 = tm.xy(tri[2])
	)
	if !geometry2D.InCircle(xp, yp, x1, y1, x2, y2, x3, y3) {
		return false
	}
	circ := geometry2D.Circum(x1, y1, x2, y2, x3, y3)
	if circ.Degenerate() {
		return true
	}
	dist := math.Hypot(xp-circ.Circumcenter.X, yp-circ.Circumcenter.Y)
	return dist < circ.Circumradius*(1-delaunayTolerance)
}
