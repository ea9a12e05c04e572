package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file of the mesh command
type MeshParameters struct {
	Title           string       `json:"Title"`
	PointFile       string       `json:"PointFile"`
	Verify          bool         `json:"Verify"`
	ListTriangles   bool         `json:"ListTriangles"`
	SliverThreshold float64      `json:"SliverThreshold"` // Aspect ratio below which a triangle is a sliver
	Queries         [][2]float64 `json:"Queries"`         // Points to locate in the finished mesh
}

func (ip *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *MeshParameters) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *MeshParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Point File\n", ip.PointFile)
	fmt.Fprintf(w, "%v\t\t\t= Verify\n", ip.Verify)
	fmt.Fprintf(w, "%v\t\t\t= List Triangles\n", ip.ListTriangles)
	fmt.Fprintf(w, "%8.5f\t\t= Sliver Threshold\n", ip.SliverThreshold)
	for _, q := range ip.Queries {
		fmt.Fprintf(w, "Query (%g, %g)\n", q[0], q[1])
	}
}
