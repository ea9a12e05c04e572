package trimesh

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/notargets/gotripack/geometry2D"
	"github.com/notargets/gotripack/types"
)

// TriMesh is a Delaunay triangulation of a fixed, caller owned point set. The
// coordinate slices are referenced, never copied, and must not be modified
// while the mesh is in use.
type TriMesh[T geometry2D.Float] struct {
	x, y []T
	adj  *adjacency

	inserted          int // Nodes currently in the triangulation
	swaps             int // Diagonal swaps performed during construction
	nodeCount         int
	boundaryNodeCount int
	arcCount          int
	triangleCount     int
	nodes             []int // Boundary nodes in counterclockwise order
}

// NewTriMesh triangulates the points (x[i], y[i]). Nodes are added in input
// order, the first three must not be collinear.
func NewTriMesh[T geometry2D.Float](x, y []T) (tm *TriMesh[T], err error) {
	if len(x) != len(y) {
		err = errors.Wrapf(ErrLengthMismatch, "len(X) = %d, len(Y) = %d", len(x), len(y))
		return
	}
	if len(x) < 3 {
		err = errors.Wrapf(ErrInsufficientPoints, "have %d", len(x))
		return
	}
	if uint64(len(x)) > types.MaxNodes {
		err = errors.Wrapf(ErrTooManyPoints, "have %d, limit %d", len(x), uint64(types.MaxNodes))
		return
	}
	defer func() {
		if rerr := handleMeshFaultRecover(recover()); rerr != nil {
			tm, err = nil, rerr
		}
	}()
	mesh := &TriMesh[T]{
		x:         x,
		y:         y,
		adj:       newAdjacency(len(x)),
		nodeCount: len(x),
	}
	if err = mesh.seed(); err != nil {
		return
	}
	var loc Location
	for k := 3; k < mesh.nodeCount; k++ {
		px, py := mesh.xy(k)
		// The previous node is the closest starting point for spatially coherent input
		if loc, err = mesh.findTriangle(k-1, px, py); err != nil {
			err = errors.Wrapf(err, "locating node %d", k)
			return
		}
		if err = mesh.addNode(k, loc); err != nil {
			return
		}
	}
	if err = mesh.buildNodes(); err != nil {
		return
	}
	Logger().Info("triangulation complete",
		slog.Int("nodes", mesh.nodeCount),
		slog.Int("boundaryNodes", mesh.boundaryNodeCount),
		slog.Int("triangles", mesh.triangleCount),
		slog.Int("arcs", mesh.arcCount),
		slog.Int("swaps", mesh.swaps))
	tm = mesh
	return
}

func (tm *TriMesh[T]) xy(n int) (x, y float64) {
	return float64(tm.x[n]), float64(tm.y[n])
}

// seed stores the first triangle in counterclockwise order
func (tm *TriMesh[T]) seed() (err error) {
	var (
		x0, y0 = tm.xy(0)
		x1, y1 = tm.xy(1)
		x2, y2 = tm.xy(2)
	)
	var order [3]int
	switch {
	case !geometry2D.Left(x0, y0, x1, y1, x2, y2):
		order = [3]int{0, 2, 1}
	case !geometry2D.Left(x1, y1, x0, y0, x2, y2):
		order = [3]int{0, 1, 2}
	default:
		err = errors.Wrapf(ErrCollinearSeed, "(%g,%g), (%g,%g), (%g,%g)", x0, y0, x1, y1, x2, y2)
		return
	}
	for i := 0; i < 3; i++ {
		tm.adj.addRing(order[i], []int{order[(i+1)%3], order[(i+2)%3]}, true)
	}
	tm.inserted = 3
	return
}

// NodeCount is the number of nodes in the triangulation
func (tm *TriMesh[T]) NodeCount() int { return tm.nodeCount }

func (tm *TriMesh[T]) BoundaryNodeCount() int { return tm.boundaryNodeCount }

func (tm *TriMesh[T]) TriangleCount() int { return tm.triangleCount }

func (tm *TriMesh[T]) ArcCount() int { return tm.arcCount }

// Swaps is the number of diagonal swaps performed while inserting nodes
func (tm *TriMesh[T]) Swaps() int { return tm.swaps }

// BoundaryNodes returns the hull nodes in counterclockwise order
func (tm *TriMesh[T]) BoundaryNodes() (nodes []int) {
	nodes = make([]int, len(tm.nodes))
	copy(nodes, tm.nodes)
	return
}

func (tm *TriMesh[T]) Point(n int) (x, y float64) { return tm.xy(n) }

// Neighbors returns the neighbors of node n in counterclockwise order. For a
// boundary node the first neighbor is its hull successor and the last one its
// hull predecessor.
func (tm *TriMesh[T]) Neighbors(n int) (nbrs []int, err error) {
	if err = tm.checkNode(n); err != nil {
		return
	}
	return tm.adj.ring(n), nil
}

func (tm *TriMesh[T]) IsBoundary(n int) (bool, error) {
	if err := tm.checkNode(n); err != nil {
		return false, err
	}
	return tm.adj.isBoundary(n), nil
}

func (tm *TriMesh[T]) checkNode(n int) error {
	if n < 0 || n >= tm.nodeCount {
		return errors.Wrapf(ErrNodeRange, "node %d, have %d nodes", n, tm.nodeCount)
	}
	return nil
}
