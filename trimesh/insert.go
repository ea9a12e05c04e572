package trimesh

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// swapTolerance absorbs roundoff in swapTest so that nearly cocircular
// quadrilaterals do not swap back and forth. It is relative to the product of
// the four side lengths of the quadrilateral.
const swapTolerance = 20 * 0x1p-52

// addNode adds node k, located at loc, to the triangulation and restores the
// Delaunay property with diagonal swaps.
func (tm *TriMesh[T]) addNode(k int, loc Location) (err error) {
	px, py := tm.xy(k)
	if loc.IsExterior() {
		tm.bdyadd(k, loc.I1, loc.I2)
	} else {
		tri := loc.Vertices()
		for _, v := range tri {
			if xv, yv := tm.xy(v); xv == px && yv == py {
				err = errors.Wrapf(ErrDuplicatePoint, "node %d and node %d are both at (%g,%g)", k, v, px, py)
				return
			}
		}
		var split bool
		for i := 0; i < 3 && !split; i++ {
			a, b, c := tri[i], tri[(i+1)%3], tri[(i+2)%3]
			if tm.orientP(a, b, px, py) == 0 && tm.adj.isHullArc(a, b) {
				tm.splitHullArc(k, a, b, c)
				split = true
			}
		}
		if !split {
			tm.intadd(k, tri[0], tri[1], tri[2])
		}
	}
	tm.inserted++
	swaps := tm.optimize(k)
	tm.swaps += swaps
	Logger().Debug("node added",
		slog.Int("node", k),
		slog.Bool("exterior", loc.IsExterior()),
		slog.Int("swaps", swaps))
	return
}

// intadd connects k, strictly inside or on an interior arc of the
// counterclockwise triangle (i1, i2, i3), to the three vertices
func (tm *TriMesh[T]) intadd(k, i1, i2, i3 int) {
	adj := tm.adj
	adj.insert(k, adj.mustFind(i1, i2))
	adj.insert(k, adj.mustFind(i2, i3))
	adj.insert(k, adj.mustFind(i3, i1))
	adj.addRing(k, []int{i1, i2, i3}, false)
}

// splitHullArc replaces the hull arc a->b of triangle (a, b, c) by a->k->b
func (tm *TriMesh[T]) splitHullArc(k, a, b, c int) {
	adj := tm.adj
	adj.list[adj.mustFind(a, b)].node = k
	adj.list[adj.lend[b]].node = k
	adj.insert(k, adj.mustFind(c, a))
	adj.addRing(k, []int{b, c, a}, true)
}

/*
bdyadd connects exterior node k to the chain of hull nodes visible from it,

	left -> ... -> right

traversed counterclockwise along the hull. k becomes the hull successor of left
and the hull predecessor of right, the nodes between them become interior.
*/
func (tm *TriMesh[T]) bdyadd(k, right, left int) {
	adj := tm.adj
	chain := []int{right}
	for n := right; n != left; {
		n = adj.last(n)
		chain = append(chain, n)
		if len(chain) > tm.inserted {
			fatalf(ErrInconsistentMesh, "hull does not lead from node %d back to node %d", right, left)
		}
	}
	for i, n := range chain {
		lpl := adj.lend[n]
		switch i {
		case 0:
			adj.list[lpl].boundary = false
			adj.lend[n] = adj.insert(k, lpl)
			adj.list[adj.lend[n]].boundary = true
		case len(chain) - 1:
			adj.insert(k, lpl)
		default:
			adj.list[lpl].boundary = false
			adj.insert(k, lpl)
		}
	}
	adj.addRing(k, chain, true)
}

/*
optimize applies the circumcircle test to every arc opposite node k, swapping
diagonals until all triangles containing k are locally Delaunay. Each swap
creates two new arcs opposite k which are tested in turn.

The ring of k is scanned as pairs (IO2, IO1) of consecutive neighbors, IN1 is
the node opposite k across the arc IO1-IO2.
*/
func (tm *TriMesh[T]) optimize(k int) (swaps int) {
	var (
		adj  = tm.adj
		lpf  = adj.lptr[adj.lend[k]]
		io2  = adj.list[lpf].node
		lpo1 = adj.lptr[lpf]
		io1  = adj.list[lpo1].node
	)
	for {
		lp := adj.mustFind(io1, io2)
		if !adj.list[lp].boundary {
			in1 := adj.list[adj.lptr[lp]].node
			if tm.swapTest(in1, k, io1, io2) {
				if swaps++; swaps > 3*tm.inserted {
					fatalf(ErrInconsistentMesh, "swaps around node %d do not terminate", k)
				}
				lpo1 = tm.swap(in1, k, io1, io2)
				io1 = in1
				continue
			}
		}
		if lpo1 == lpf || adj.list[lpo1].boundary {
			return
		}
		io2 = io1
		lpo1 = adj.lptr[lpo1]
		io1 = adj.list[lpo1].node
	}
}

/*
swapTest decides whether the diagonal IO1-IO2 of the convex quadrilateral
(IO1, IN2, IO2, IN1) should be replaced by IN1-IN2. The diagonal is swapped
when the sum of the interior angles at IN1 and IN2 exceeds 180 degrees, the
sine of that sum being

	SIN1*COS2 + COS1*SIN2

The test is equivalent to IN2 lying inside the circumcircle of (IN1, IO1, IO2).
Both terms carry the product of the four side lengths, dividing by it leaves
the sine of the angle sum.
*/
func (tm *TriMesh[T]) swapTest(in1, in2, io1, io2 int) bool {
	var (
		xn1, yn1 = tm.xy(in1)
		xn2, yn2 = tm.xy(in2)
		xo1, yo1 = tm.xy(io1)
		xo2, yo2 = tm.xy(io2)
	)
	var (
		dx11, dy11 = xo1 - xn1, yo1 - yn1
		dx12, dy12 = xo2 - xn1, yo2 - yn1
		dx22, dy22 = xo2 - xn2, yo2 - yn2
		dx21, dy21 = xo1 - xn2, yo1 - yn2
	)
	cos1 := dx11*dx12 + dy11*dy12
	cos2 := dx22*dx21 + dy22*dy21
	switch {
	case cos1 >= 0 && cos2 >= 0:
		// Both angles at most 90 degrees
		return false
	case cos1 < 0 && cos2 < 0:
		return true
	}
	sin1 := dx11*dy12 - dx12*dy11
	sin2 := dx22*dy21 - dx21*dy22
	scale := math.Hypot(dx11, dy11) * math.Hypot(dx12, dy12) *
		math.Hypot(dx22, dy22) * math.Hypot(dx21, dy21)
	return sin1*cos2+cos1*sin2 < -swapTolerance*scale
}

// swap replaces the diagonal IO1-IO2 by IN1-IN2, where (IO1, IO2, IN1) and
// (IO2, IO1, IN2) are triangles. Returns the position of IN1 in the ring of
// IN2. The two entries freed from IO1 and IO2 are reused for the new arc.
func (tm *TriMesh[T]) swap(in1, in2, io1, io2 int) (lp21 int) {
	adj := tm.adj
	// Delete IO2 from the ring of IO1
	lp := adj.mustFind(io1, in2)
	lph := adj.lptr[lp]
	adj.lptr[lp] = adj.lptr[lph]
	if adj.lend[io1] == lph {
		adj.lend[io1] = lp
	}
	// Insert IN2 after IO1 in the ring of IN1
	lp = adj.mustFind(in1, io1)
	adj.list[lph] = entry{node: in2}
	adj.lptr[lph], adj.lptr[lp] = adj.lptr[lp], lph

	// Delete IO1 from the ring of IO2
	lp = adj.mustFind(io2, in1)
	lph = adj.lptr[lp]
	adj.lptr[lp] = adj.lptr[lph]
	if adj.lend[io2] == lph {
		adj.lend[io2] = lp
	}
	// Insert IN1 after IO2 in the ring of IN2
	lp = adj.mustFind(in2, io2)
	adj.list[lph] = entry{node: in1}
	adj.lptr[lph], adj.lptr[lp] = adj.lptr[lp], lph
	return lph
}
