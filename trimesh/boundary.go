package trimesh

import (
	"github.com/pkg/errors"
)

// buildNodes collects the hull in counterclockwise order starting from the
// lowest numbered boundary node and derives the Euler counts
//
//	NT = 2N - NB - 2
//	NA = NT + N - 1
func (tm *TriMesh[T]) buildNodes() (err error) {
	var (
		adj   = tm.adj
		start = -1
	)
	for n := 0; n < tm.nodeCount; n++ {
		if adj.lend[n] < 0 {
			err = errors.Wrapf(ErrInconsistentMesh, "node %d was never inserted", n)
			return
		}
		if start < 0 && adj.isBoundary(n) {
			start = n
		}
	}
	if start < 0 {
		err = errors.Wrap(ErrBoundaryOpen, "no boundary node")
		return
	}
	nodes := []int{start}
	for n := adj.first(start); n != start; n = adj.first(n) {
		if !adj.isBoundary(n) {
			err = errors.Wrapf(ErrBoundaryOpen, "hull successor %d is an interior node", n)
			return
		}
		if nodes = append(nodes, n); len(nodes) > tm.nodeCount {
			err = errors.Wrapf(ErrBoundaryOpen, "hull from node %d does not close", start)
			return
		}
	}
	tm.nodes = nodes
	tm.boundaryNodeCount = len(nodes)
	tm.triangleCount = 2*tm.nodeCount - tm.boundaryNodeCount - 2
	tm.arcCount = tm.triangleCount + tm.nodeCount - 1
	return
}
