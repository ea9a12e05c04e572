package trimesh

import (
	"github.com/pkg/errors"
)

// Input validation errors, fatal to construction
var (
	ErrLengthMismatch     = errors.New("X and Y must be the same length")
	ErrInsufficientPoints = errors.New("X and Y must have at least three nodes for meshing")
	ErrCollinearSeed      = errors.New("the first three nodes must not be co-linear")
	ErrDuplicatePoint     = errors.New("duplicate nodes")
	ErrTooManyPoints      = errors.New("node indices must fit in a packed arc")
)

// Consistency errors, these indicate a broken adjacency structure
var (
	ErrLocateFailed       = errors.New("point location did not terminate")
	ErrBoundaryOpen       = errors.New("boundary traversal did not return to its start")
	ErrInconsistentMesh   = errors.New("inconsistent adjacency structure")
	ErrNotDelaunay        = errors.New("triangulation is not Delaunay")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrNodeRange          = errors.New("node index out of range")
)

// Threading errors through every ring update would bury the topology in error
// plumbing. Instead the mutation path panics with a meshFault and the exported
// entry points recover it into an error.
type meshFault struct {
	err error
}

func fatalf(cause error, format string, args ...interface{}) {
	panic(meshFault{err: errors.Wrapf(cause, format, args...)})
}

func handleMeshFaultRecover(r interface{}) error {
	if r != nil {
		if fault, ok := r.(meshFault); ok {
			return fault.err
		}
		panic(r)
	}
	return nil
}
