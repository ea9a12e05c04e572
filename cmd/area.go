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

	"github.com/notargets/gotripack/geometry2D"
	"github.com/notargets/gotripack/readfiles"
)

// AreaCmd represents the area command
var AreaCmd = &cobra.Command{
	Use:   "area",
	Short: "Signed area of a polygon through points of a point file",
	Long: `
Computes the signed area of the polygon visiting the given nodes in order,
positive when they run counterclockwise.

gotripack area -F points.su2 --nodes 0,1,2,3`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pointFile, _ := cmd.Flags().GetString("pointFile")
		nodes, _ := cmd.Flags().GetIntSlice("nodes")
		return RunArea(pointFile, nodes, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(AreaCmd)
	AreaCmd.Flags().StringP("pointFile", "F", "", "Point file to read in SU2 (.su2) layout")
	AreaCmd.Flags().IntSliceP("nodes", "n", nil, "polygon vertices as node indices, in order")
}

func RunArea(pointFile string, nodes []int, w io.Writer) (err error) {
	var (
		X, Y []float64
	)
	if X, Y, err = readfiles.ReadPointsFile(pointFile, false); err != nil {
		return
	}
	for _, n := range nodes {
		if n < 0 || n >= len(X) {
			return errors.Errorf("node %d is out of range, have %d points", n, len(X))
		}
	}
	fmt.Fprintf(w, "%g\t\t= Area\n", geometry2D.PolygonalArea(X, Y, nodes))
	return
}
