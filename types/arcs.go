package types

import (
	"fmt"
)

// MaxNodes is the largest node count whose indices fit in half of a packed arc
const MaxNodes = 1 << 32

/*
EdgeKey identifies an undirected arc of a triangulation, the lower node index
in the low 32 bits and the higher one above it. The arcs [4,0] and [0,4] have
the same key, and keys order by their higher node first.
*/
type EdgeKey uint64

// NewEdgeKey packs the arc between nodes a and b, both in [0, MaxNodes)
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey(uint64(uint32(a)) | uint64(uint32(b))<<32)
}

// Nodes returns the end points of the arc, lowest first
func (ek EdgeKey) Nodes() (lo, hi int) {
	return int(uint32(ek)), int(ek >> 32)
}

func (ek EdgeKey) String() string {
	lo, hi := ek.Nodes()
	return fmt.Sprintf("%d-%d", lo, hi)
}

// EdgeInt is a directed arc From->To, e.g. one step counterclockwise along
// the hull of a triangulation
type EdgeInt uint64

func NewEdgeInt(from, to int) EdgeInt {
	return EdgeInt(uint64(uint32(from))<<32 | uint64(uint32(to)))
}

func (e EdgeInt) From() int { return int(e >> 32) }

func (e EdgeInt) To() int { return int(uint32(e)) }

// Key drops the direction
func (e EdgeInt) Key() EdgeKey { return NewEdgeKey(e.From(), e.To()) }

func (e EdgeInt) Reverse() EdgeInt { return NewEdgeInt(e.To(), e.From()) }

func (e EdgeInt) String() string {
	return fmt.Sprintf("%d->%d", e.From(), e.To())
}
