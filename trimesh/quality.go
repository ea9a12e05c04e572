package trimesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSliverAspectRatio is the aspect ratio below which Quality counts a
// triangle as a sliver
const DefaultSliverAspectRatio = 0.1

// QualityReport summarizes the shape of the triangles. Aspect ratios are
// 2*inradius/circumradius, 1 for an equilateral triangle.
type QualityReport struct {
	Triangles                          int
	MinAspectRatio, MaxAspectRatio     float64
	MeanAspectRatio, StdDevAspectRatio float64
	TotalArea                          float64
	Slivers                            int // Triangles with aspect ratio below the sliver threshold
}

// Quality computes aspect ratio statistics over all triangles, counting those
// below sliverThreshold as slivers.
func (tm *TriMesh[T]) Quality(sliverThreshold float64) (qr QualityReport) {
	geom := tm.Geometry()
	qr.Triangles = len(geom)
	var (
		ar   = make([]float64, len(geom))
		area = make([]float64, len(geom))
	)
	for k, tri := range geom {
		ar[k], area[k] = tri.AspectRatio, tri.Area
		if tri.AspectRatio < sliverThreshold {
			qr.Slivers++
		}
	}
	if len(geom) == 0 {
		return
	}
	qr.MinAspectRatio, qr.MaxAspectRatio = floats.Min(ar), floats.Max(ar)
	qr.MeanAspectRatio, qr.StdDevAspectRatio = stat.MeanStdDev(ar, nil)
	if math.IsNaN(qr.StdDevAspectRatio) {
		// A single triangle has no spread
		qr.StdDevAspectRatio = 0
	}
	qr.TotalArea = floats.Sum(area)
	return
}

func (qr QualityReport) Print() (txt string) {
	txt += fmt.Sprintf("Triangles                     = %d\n", qr.Triangles)
	txt += fmt.Sprintf("Aspect Ratio [min, max]       = [%8.5f, %8.5f]\n", qr.MinAspectRatio, qr.MaxAspectRatio)
	txt += fmt.Sprintf("Aspect Ratio [mean, std dev]  = [%8.5f, %8.5f]\n", qr.MeanAspectRatio, qr.StdDevAspectRatio)
	txt += fmt.Sprintf("Slivers                       = %d\n", qr.Slivers)
	txt += fmt.Sprintf("Total Area                    = %g\n", qr.TotalArea)
	return
}
