package trimesh

import (
	"github.com/pkg/errors"

	"github.com/notargets/gotripack/geometry2D"
)

// Location is the result of locating a point relative to the triangulation.
//
// If the point is contained in a triangle, I1, I2, I3 are its vertices in
// counterclockwise order. Otherwise I1 is the rightmost and I2 the leftmost
// boundary node visible from the point, and I3 = -1. Rightmost and leftmost
// are from the perspective of the point.
type Location struct {
	I1, I2, I3 int
}

func (l Location) IsExterior() bool { return l.I3 < 0 }

func (l Location) Vertices() [3]int { return [3]int{l.I1, l.I2, l.I3} }

func interior(i1, i2, i3 int) Location { return Location{I1: i1, I2: i2, I3: i3} }

// FindTriangle locates (x, y) relative to the finished triangulation.
func (tm *TriMesh[T]) FindTriangle(x, y float64) (loc Location, err error) {
	defer func() {
		if rerr := handleMeshFaultRecover(recover()); rerr != nil {
			err = rerr
		}
	}()
	return tm.findTriangle(tm.nodeCount-1, x, y)
}

// orientP is the orientation of P relative to the directed arc a->b
func (tm *TriMesh[T]) orientP(a, b int, px, py float64) float64 {
	xa, ya := tm.xy(a)
	xb, yb := tm.xy(b)
	return geometry2D.Orient(xa, ya, xb, yb, px, py)
}

/*
findTriangle locates P starting from node nst.

The neighbors of the current node N0 are classified against the ray N0->P.
A neighbor lying on the ray either holds P on its arc, or becomes the new N0.
Otherwise the wedge (N0, N1, N2) with N1 right of or on the ray and N2 strictly
left of it contains the ray, and the walk crosses arcs N1-N2 along the ray
until a triangle contains P or a hull arc separates P from the triangulation.
A boundary N0 without such a wedge sees P through one of its two hull arcs.

A point on an arc N0->N is placed in the triangle to the left of N0->N when
there is one.
*/
func (tm *TriMesh[T]) findTriangle(nst int, px, py float64) (loc Location, err error) {
	var (
		adj    = tm.adj
		n0     = nst
		budget = 4*tm.inserted + 16
	)
RESTART:
	for ; budget > 0; budget-- {
		x0, y0 := tm.xy(n0)
		if x0 == px && y0 == py {
			return interior(n0, adj.first(n0), adj.list[adj.lptr[adj.lptr[adj.lend[n0]]]].node), nil
		}
		side := func(v int) float64 {
			xv, yv := tm.xy(v)
			return geometry2D.Orient(x0, y0, px, py, xv, yv)
		}
		// Neighbors on the ray toward P
		var (
			nbrs = adj.ring(n0)
			bdy  = adj.isBoundary(n0)
		)
		for i, nb := range nbrs {
			xb, yb := tm.xy(nb)
			if side(nb) != 0 || !geometry2D.Forward(x0, y0, xb, yb, px, py) {
				continue
			}
			if !geometry2D.Forward(xb, yb, x0, y0, px, py) {
				// P is beyond nb
				n0 = nb
				continue RESTART
			}
			// P is on the arc n0-nb
			if bdy && i == len(nbrs)-1 {
				return interior(n0, nbrs[i-1], nb), nil
			}
			return interior(n0, nb, nbrs[(i+1)%len(nbrs)]), nil
		}
		var (
			n1, n2 = -1, -1
		)
		adj.eachWedge(n0, func(a, b int) bool {
			if side(a) <= 0 && side(b) > 0 {
				n1, n2 = a, b
				return false
			}
			return true
		})
		if n1 < 0 {
			if !bdy {
				err = errors.Wrapf(ErrLocateFailed, "no wedge of interior node %d contains (%g,%g)", n0, px, py)
				return
			}
			// P is outside the hull angle at n0
			nf, nl := nbrs[0], nbrs[len(nbrs)-1]
			switch {
			case tm.orientP(n0, nf, px, py) < 0:
				return tm.visibleChain(n0, nf, px, py)
			case tm.orientP(nl, n0, px, py) < 0:
				return tm.visibleChain(nl, n0, px, py)
			}
			err = errors.Wrapf(ErrLocateFailed, "(%g,%g) is neither inside nor outside the hull at node %d", px, py, n0)
			return
		}
		if tm.orientP(n1, n2, px, py) >= 0 {
			return interior(n0, n1, n2), nil
		}
		// P is strictly right of n1->n2, walk across it
		for budget--; budget > 0; budget-- {
			lp := adj.mustFind(n2, n1)
			if adj.list[lp].boundary {
				return tm.visibleChain(n1, n2, px, py)
			}
			n4 := adj.list[adj.lptr[lp]].node
			o14, o42 := tm.orientP(n1, n4, px, py), tm.orientP(n4, n2, px, py)
			if o14 >= 0 && o42 >= 0 {
				return interior(n1, n4, n2), nil
			}
			exitLeft := side(n4) > 0
			switch {
			case exitLeft && o14 < 0, !exitLeft && o42 >= 0:
				n2 = n4
			default:
				n1 = n4
			}
		}
		break
	}
	err = errors.Wrapf(ErrLocateFailed, "(%g,%g) from node %d", px, py, nst)
	return
}

// visibleChain extends the hull arc u->v, which P sees, to the full chain of
// hull arcs visible from P.
func (tm *TriMesh[T]) visibleChain(u, v int, px, py float64) (loc Location, err error) {
	var (
		adj         = tm.adj
		right, left = v, u
		steps       int
	)
	for ; steps < tm.inserted; steps++ {
		next := adj.first(right)
		if tm.orientP(right, next, px, py) >= 0 {
			break
		}
		right = next
	}
	for ; steps < tm.inserted; steps++ {
		prev := adj.last(left)
		if tm.orientP(prev, left, px, py) >= 0 {
			break
		}
		left = prev
	}
	if steps >= tm.inserted || right == left {
		err = errors.Wrapf(ErrLocateFailed, "every hull arc is visible from (%g,%g)", px, py)
		return
	}
	return Location{I1: right, I2: left, I3: -1}, nil
}
