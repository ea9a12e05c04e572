package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	{ // Left is inclusive of the line itself
		assert.True(t, Left(0, 0, 1, 0, 0.5, 1))
		assert.False(t, Left(0, 0, 1, 0, 0.5, -1))
		assert.True(t, Left(0, 0, 1, 0, 2, 0))
		assert.True(t, Left(0, 0, 1, 0, -3, 0))
	}
	{ // Reversing the reference segment flips the side for non collinear points
		pts := [][2]float64{{0, 0}, {1, 0}, {0.3, 0.7}, {-2, 5}, {4, -1}, {1e3, 1e-3}}
		for i := range pts {
			for j := range pts {
				for k := range pts {
					a, b, c := pts[i], pts[j], pts[k]
					if Orient(a[0], a[1], b[0], b[1], c[0], c[1]) == 0 {
						continue
					}
					assert.Equal(t, Left(a[0], a[1], b[0], b[1], c[0], c[1]),
						!Left(b[0], b[1], a[0], a[1], c[0], c[1]))
				}
			}
		}
	}
	{ // Orient agrees with Left including the collinear case
		assert.Equal(t, 1., Orient(0, 0, 1, 0, 0, 1))
		assert.Equal(t, -1., Orient(0, 0, 1, 0, 0, -1))
		assert.Equal(t, 0., Orient(0, 0, 1, 1, 2, 2))
		assert.True(t, Left(0, 0, 1, 1, 2, 2))
	}
	{ // Forward is a 90 degree cone
		assert.True(t, Forward(0, 0, 1, 0, 1, 1))
		assert.True(t, Forward(0, 0, 1, 0, 0, 1)) // Exactly 90 degrees
		assert.False(t, Forward(0, 0, 1, 0, -1, 1))
	}
	{ // InCircle does not depend on the orientation of the reference triangle
		assert.True(t, InCircle(-0.33, -0.33, -1, -1, 1, -1, -1, 1))
		assert.True(t, InCircle(-0.33, -0.33, -1, 1, 1, -1, -1, -1))
		assert.False(t, InCircle(1, 1, -1, -1, 1, -1, -1, 1)) // Cocircular
		assert.False(t, InCircle(2, 2, -1, -1, 1, -1, -1, 1))
		assert.False(t, InCircle(-1, 1, -1, -1, 1, -1, -1, 1)) // A vertex
	}
}

func TestCircum(t *testing.T) {
	{ // Right triangle, the circumcenter is the midpoint of the hypotenuse
		tri := Circum(0, 0, 1, 0, 0, 1)
		assert.Equal(t, 0.5, tri.Area)
		assert.InDelta(t, 0.5, tri.Circumcenter.X, 1.e-15)
		assert.InDelta(t, 0.5, tri.Circumcenter.Y, 1.e-15)
		assert.InDelta(t, math.Sqrt(0.5), tri.Circumradius, 1.e-15)
		assert.False(t, tri.Degenerate())
		ar := 4 * 0.5 / ((2 + math.Sqrt2) * math.Sqrt(0.5))
		assert.InDelta(t, ar, tri.AspectRatio, 1.e-14)
	}
	{ // Clockwise order gives a negative area and the same circle
		tri := Circum(0, 0, 0, 1, 1, 0)
		assert.Equal(t, -0.5, tri.Area)
		assert.InDelta(t, 0.5, tri.Circumcenter.X, 1.e-15)
		assert.InDelta(t, 0.5, tri.Circumcenter.Y, 1.e-15)
		assert.True(t, tri.AspectRatio > 0)
	}
	{ // Equilateral triangles have unit aspect ratio regardless of placement
		h := math.Sqrt(3) / 2
		for _, off := range [][2]float64{{0, 0}, {100, -50}, {1e4, 1e4}} {
			tri := Circum(off[0], off[1], off[0]+1, off[1], off[0]+0.5, off[1]+h)
			assert.InDelta(t, 1., tri.AspectRatio, 1.e-9)
			assert.InDelta(t, 1/math.Sqrt(3), tri.Circumradius, 1.e-9)
			assert.InDelta(t, off[0]+0.5, tri.Circumcenter.X, 1.e-9)
		}
	}
	{ // Slivers approach zero
		tri := Circum(0, 0, 1, 0, 0.5, 1.e-6)
		assert.True(t, tri.AspectRatio < 1.e-5)
		assert.True(t, tri.AspectRatio > 0)
	}
	{ // Collinear vertices are flagged, the circle is undefined
		tri := Circum(0, 0, 1, 1, 2, 2)
		assert.True(t, tri.Degenerate())
		assert.Equal(t, 0., tri.Area)
		assert.True(t, math.IsNaN(tri.Circumradius))
		assert.True(t, math.IsNaN(tri.Circumcenter.X))
	}
	{ // The circumcircle passes through all three vertices
		tri := Circum(0.1, 0.2, 3.7, -1.1, 2.2, 4.9)
		for _, v := range tri.V {
			d := math.Hypot(v.X-tri.Circumcenter.X, v.Y-tri.Circumcenter.Y)
			assert.InDelta(t, tri.Circumradius, d, 1.e-12)
		}
		assert.True(t, tri.Contains(2, 1))
		assert.True(t, tri.Contains(0.1, 0.2))
		assert.False(t, tri.Contains(-1, 0))
	}
}

func TestPolygonalArea(t *testing.T) {
	x := []float64{0, 1, 1, 0, 0.5}
	y := []float64{0, 0, 1, 1, 2}
	{ // Unit square, counterclockwise is positive
		assert.Equal(t, 1., PolygonalArea(x, y, []int{0, 1, 2, 3}))
		assert.Equal(t, -1., PolygonalArea(x, y, []int{3, 2, 1, 0}))
		// Starting point does not matter
		assert.Equal(t, 1., PolygonalArea(x, y, []int{2, 3, 0, 1}))
	}
	{ // House shape
		assert.Equal(t, 1.5, PolygonalArea(x, y, []int{0, 1, 2, 4, 3}))
	}
	{ // Three or fewer nodes are defined to have no area
		assert.Equal(t, 0., PolygonalArea(x, y, []int{0, 1, 2}))
		assert.Equal(t, 0., PolygonalArea(x, y, []int{}))
	}
	{ // float32 inputs are promoted
		x32 := []float32{0, 2, 2, 0}
		y32 := []float32{0, 0, 2, 2}
		assert.Equal(t, 4., PolygonalArea(x32, y32, []int{0, 1, 2, 3}))
	}
	{ // Out of range indices are a caller error
		assert.Panics(t, func() { PolygonalArea(x, y, []int{0, 1, 2, 9}) })
	}
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox([]float64{0, 2, -1}, []float64{1, 3, 0})
	assert.Equal(t, [2]float64{-1, 0}, bb.XMin)
	assert.Equal(t, [2]float64{2, 3}, bb.XMax)
	assert.Equal(t, 0.5, bb.Centroid().X)
	assert.InDelta(t, math.Sqrt(18), bb.Diagonal(), 1.e-15)
	assert.True(t, bb.PointInside(0, 0))
	assert.False(t, bb.PointInside(3, 0))
	assert.Nil(t, NewBoundingBox([]float64{}, []float64{}))
}
