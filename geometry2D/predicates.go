package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Float is the coordinate type accepted by the point set consumers. All of the
// predicates are evaluated in float64.
type Float interface {
	~float32 | ~float64
}

// Orient returns the z component of (P2-P1) x (P0-P1). It is positive when P0
// is to the left of the directed line P1->P2, zero when the three points are
// collinear and negative when P0 is to the right.
// The products are explicitly rounded so that the compiler can not fuse them,
// which keeps Orient(...) >= 0 identical to Left(...) on every platform.
func Orient(x1, y1, x2, y2, x0, y0 float64) float64 {
	var (
		dx1, dy1 = x2 - x1, y2 - y1
		dx2, dy2 = x0 - x1, y0 - y1
	)
	return float64(dx1*dy2) - float64(dx2*dy1)
}

// Left determines whether node N0 is to the left of, or on, the line through
// N1-N2 as viewed by an observer at N1 facing N2. No tolerance is applied, the
// result of repeated calls on the same triple is always the same.
func Left(x1, y1, x2, y2, x0, y0 float64) bool {
	var (
		dx1, dy1 = x2 - x1, y2 - y1 // N1->N2
		dx2, dy2 = x0 - x1, y0 - y1 // N1->N0
	)
	return float64(dx1*dy2) >= float64(dx2*dy1)
}

// Forward is true iff C is forward of A->B, <A->B, A->C> >= 0
func Forward(xa, ya, xb, yb, xc, yc float64) bool {
	return r2.Dot(r2.Vec{X: xb - xa, Y: yb - ya}, r2.Vec{X: xc - xa, Y: yc - ya}) >= 0
}

// InCircle is true when Pr lies strictly inside the circle through Pi, Pj, Pk.
// The vertex order of the reference triangle may be either clockwise or
// counterclockwise.
func InCircle(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	var (
		// Handedness of the reference triangle, counterclockwise is positive
		signBit = math.Signbit(Orient(piX, piY, pjX, pjY, pkX, pkY))
		ax, ay  = piX - prX, piY - prY
		bx, by  = pjX - prX, pjY - prY
		cx, cy  = pkX - prX, pkY - prY
	)
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	if signBit {
		return det < 0
	}
	return det > 0
}
