package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle carries the vertices of a triangle together with the quantities
// derived from them by Circum. It is a value, never stored in the mesh.
type Triangle struct {
	V            [3]r2.Vec
	Circumcenter r2.Vec
	Circumradius float64
	Area         float64 // Signed, positive for counterclockwise vertices
	AspectRatio  float64 // 2*inradius/circumradius, 0 for a degenerate triangle
}

// Degenerate is true for a zero area triangle, in which case the circumcenter
// and circumradius are NaN and must not be used.
func (t Triangle) Degenerate() bool {
	return t.AspectRatio == 0
}

// Contains is true when (x,y) lies in the closed triangle, for either vertex
// order.
func (t Triangle) Contains(x, y float64) bool {
	var (
		v  = t.V
		o1 = Orient(v[0].X, v[0].Y, v[1].X, v[1].Y, x, y)
		o2 = Orient(v[1].X, v[1].Y, v[2].X, v[2].Y, x, y)
		o3 = Orient(v[2].X, v[2].Y, v[0].X, v[0].Y, x, y)
	)
	if t.Area < 0 {
		return o1 <= 0 && o2 <= 0 && o3 <= 0
	}
	return o1 >= 0 && o2 >= 0 && o3 >= 0
}

/*
Circum computes the signed area, circumcenter, circumradius and aspect ratio
of the triangle with vertices V1, V2, V3.

	U[i], V[i] are the x and y components of the edge opposite vertex i
	A  = (U1*V2 - U2*V1)/2
	XC = X1 - Sum(DS[i]*V[i]) / 4A,  YC = Y1 + Sum(DS[i]*U[i]) / 4A,  DS[i] = |Vi - V1|^2
	AR = 4|A| / ((|E1|+|E2|+|E3|) * CR)

AR is twice the ratio of the inscribed to the circumscribed radius, 1 for an
equilateral triangle and approaching 0 for slivers.
*/
func Circum(x1, y1, x2, y2, x3, y3 float64) (t Triangle) {
	t.V = [3]r2.Vec{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	var (
		e = [3]r2.Vec{
			r2.Sub(t.V[2], t.V[1]),
			r2.Sub(t.V[0], t.V[2]),
			r2.Sub(t.V[1], t.V[0]),
		}
	)
	t.Area = 0.5 * (e[0].X*e[1].Y - e[1].X*e[0].Y)
	if t.Area == 0 {
		t.AspectRatio = 0
		t.Circumcenter = r2.Vec{X: math.NaN(), Y: math.NaN()}
		t.Circumradius = math.NaN()
		return
	}
	var fx, fy float64
	for i := 0; i < 3; i++ {
		ds := r2.Norm2(r2.Sub(t.V[i], t.V[0]))
		fx -= ds * e[i].Y
		fy += ds * e[i].X
	}
	t.Circumcenter = r2.Add(t.V[0], r2.Vec{X: fx / (4 * t.Area), Y: fy / (4 * t.Area)})
	t.Circumradius = r2.Norm(r2.Sub(t.Circumcenter, t.V[0]))
	perimeter := r2.Norm(e[0]) + r2.Norm(e[1]) + r2.Norm(e[2])
	t.AspectRatio = 4 * math.Abs(t.Area) / (perimeter * t.Circumradius)
	return
}
