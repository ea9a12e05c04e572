/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gotripack/InputParameters"
	"github.com/notargets/gotripack/geometry2D"
	"github.com/notargets/gotripack/readfiles"
	"github.com/notargets/gotripack/trimesh"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Triangulate a point file and report the mesh",
	Long: `
Reads a scattered point set, builds its Delaunay triangulation and prints the
node, boundary, triangle and arc counts together with triangle quality.

gotripack mesh -F points.su2 [-I run.yaml] [--verify] [--triangles]`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.MeshParameters
		)
		pointFile, _ := cmd.Flags().GetString("pointFile")
		icFile, _ := cmd.Flags().GetString("inputParametersFile")
		if ip, err = processInput(pointFile, icFile); err != nil {
			return
		}
		if cmd.Flags().Changed("verify") || !ip.Verify {
			ip.Verify = viper.GetBool("verify")
		}
		if cmd.Flags().Changed("triangles") || !ip.ListTriangles {
			ip.ListTriangles = viper.GetBool("triangles")
		}
		if cmd.Flags().Changed("sliver") || ip.SliverThreshold == 0 {
			ip.SliverThreshold, _ = cmd.Flags().GetFloat64("sliver")
		}
		return RunMesh(ip, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("pointFile", "F", "", "Point file to read in SU2 (.su2) layout")
	MeshCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- PointFile\n\t- Verify\n\t- Queries")
	MeshCmd.Flags().Bool("verify", false, "check the triangulation invariants and the Delaunay property")
	MeshCmd.Flags().Bool("triangles", false, "list every triangle with its circumcircle")
	MeshCmd.Flags().Float64("sliver", trimesh.DefaultSliverAspectRatio, "aspect ratio below which a triangle counts as a sliver")
	_ = viper.BindPFlag("verify", MeshCmd.Flags().Lookup("verify"))
	_ = viper.BindPFlag("triangles", MeshCmd.Flags().Lookup("triangles"))
}

func processInput(pointFile, icFile string) (ip *InputParameters.MeshParameters, err error) {
	ip = &InputParameters.MeshParameters{}
	if len(icFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = errors.Wrapf(err, "parsing %s", icFile)
			return
		}
	}
	if len(pointFile) != 0 {
		ip.PointFile = pointFile
	}
	if len(ip.PointFile) == 0 {
		exampleFile := `
########################################
Title: "Test Case"
PointFile: points.su2
Verify: true
SliverThreshold: 0.1
Queries:
  - [0.5, 0.5]
########################################
`
		err = fmt.Errorf("must supply a point file (-F, --pointFile) or an input parameters file (-I) naming one, example:%s", exampleFile)
	}
	return
}

func RunMesh(ip *InputParameters.MeshParameters, w io.Writer) (err error) {
	var (
		X, Y []float64
		tm   *trimesh.TriMesh[float64]
	)
	if viper.GetBool("verbose") {
		ip.Fprint(w)
	} else if len(ip.Title) != 0 {
		fmt.Fprintf(w, "\"%s\"\n", ip.Title)
	}
	if X, Y, err = readfiles.ReadPointsFile(ip.PointFile, false); err != nil {
		return
	}
	if tm, err = trimesh.NewTriMesh(X, Y); err != nil {
		return
	}
	bb := geometry2D.NewBoundingBox(X, Y)
	fmt.Fprintf(w, "[%g, %g] to [%g, %g]\t= Extent\n", bb.XMin[0], bb.XMin[1], bb.XMax[0], bb.XMax[1])
	fmt.Fprintf(w, "(%g, %g), %g\t= Centroid, Diagonal\n", bb.Centroid().X, bb.Centroid().Y, bb.Diagonal())
	fmt.Fprintf(w, "%d\t\t= Nodes\n", tm.NodeCount())
	fmt.Fprintf(w, "%d\t\t= Boundary Nodes\n", tm.BoundaryNodeCount())
	fmt.Fprintf(w, "%d\t\t= Triangles\n", tm.TriangleCount())
	fmt.Fprintf(w, "%d\t\t= Arcs\n", tm.ArcCount())
	fmt.Fprintf(w, "%d\t\t= Swaps\n", tm.Swaps())
	fmt.Fprintf(w, "%v\t= Boundary\n", tm.BoundaryNodes())
	fmt.Fprintf(w, "%g\t\t= Hull Area\n", geometry2D.PolygonalArea(X, Y, tm.BoundaryNodes()))
	fmt.Fprint(w, tm.Quality(ip.SliverThreshold).Print())
	if ip.Verify {
		if err = tm.Verify(); err != nil {
			return
		}
		fmt.Fprintln(w, "Verified")
	}
	if ip.ListTriangles {
		for k, tri := range tm.Triangles() {
			g := tm.TriangleGeometry(tri)
			fmt.Fprintf(w, "T[%d] = %v, center = (%g, %g), radius = %g, area = %g, ratio = %8.5f\n",
				k, tri, g.Circumcenter.X, g.Circumcenter.Y, g.Circumradius, g.Area, g.AspectRatio)
		}
	}
	for _, q := range ip.Queries {
		var loc trimesh.Location
		if loc, err = tm.FindTriangle(q[0], q[1]); err != nil {
			return
		}
		switch {
		case !bb.PointInside(q[0], q[1]):
			fmt.Fprintf(w, "(%g, %g) is beyond the extent, visible hull from %d to %d\n", q[0], q[1], loc.I2, loc.I1)
		case loc.IsExterior():
			fmt.Fprintf(w, "(%g, %g) is outside, visible hull from %d to %d\n", q[0], q[1], loc.I2, loc.I1)
		default:
			fmt.Fprintf(w, "(%g, %g) is in triangle %v\n", q[0], q[1], loc.Vertices())
		}
	}
	return
}
