package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox[T Float](X, Y []T) (Box *BoundingBox) {
	if len(X) == 0 || len(X) != len(Y) {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin[0], Box.XMin[1] = float64(X[0]), float64(Y[0])
	Box.XMax = Box.XMin
	for i := range X {
		Box.Grow(float64(X[i]), float64(Y[i]))
	}
	return Box
}

func (bb *BoundingBox) Grow(x, y float64) {
	pt := [2]float64{x, y}
	for i := 0; i < 2; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], pt[i])
		bb.XMax[i] = math.Max(bb.XMax[i], pt[i])
	}
}

func (bb *BoundingBox) Centroid() (centroid r2.Vec) {
	return r2.Vec{
		X: 0.5 * (bb.XMax[0] + bb.XMin[0]),
		Y: 0.5 * (bb.XMax[1] + bb.XMin[1]),
	}
}

// Diagonal is the length of the box diagonal, a length scale for the point set
func (bb *BoundingBox) Diagonal() float64 {
	return r2.Norm(r2.Vec{X: bb.XMax[0] - bb.XMin[0], Y: bb.XMax[1] - bb.XMin[1]})
}

func (bb *BoundingBox) PointInside(x, y float64) (within bool) {
	pt := [2]float64{x, y}
	for ii := 0; ii < 2; ii++ {
		if pt[ii] > bb.XMax[ii] || pt[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}
