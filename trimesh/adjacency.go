package trimesh

/*
The triangulation is stored as a set of circular adjacency lists held in one
growable arena:

	list[lp]  neighbor entry at position lp
	lptr[lp]  position of the next (counterclockwise) entry of the same ring
	lend[n]   position of the last entry in the ring of node n

The neighbors of every node are in counterclockwise order. For a boundary node
the first neighbor is its successor on the hull and the last neighbor is its
predecessor, which is flagged with boundary = true. Interior rings carry no
flag. lnew, the first unused position, is len(list).
*/
type entry struct {
	node     int
	boundary bool
}

type adjacency struct {
	list []entry
	lptr []int
	lend []int
}

func newAdjacency(nodeCount int) (adj *adjacency) {
	// A triangulation of N nodes has at most 6N-12 directed arcs
	capacity := 6 * nodeCount
	adj = &adjacency{
		list: make([]entry, 0, capacity),
		lptr: make([]int, 0, capacity),
		lend: make([]int, nodeCount),
	}
	for i := range adj.lend {
		adj.lend[i] = -1
	}
	return
}

func (adj *adjacency) lnew() int { return len(adj.list) }

func (adj *adjacency) push(e entry, next int) (lp int) {
	lp = len(adj.list)
	adj.list = append(adj.list, e)
	adj.lptr = append(adj.lptr, next)
	return
}

// addRing installs the ring of node n with the given neighbors in
// counterclockwise order, flagging the last one when n is on the boundary.
func (adj *adjacency) addRing(n int, nbrs []int, boundary bool) {
	start := adj.lnew()
	for i, nb := range nbrs {
		next := start + i + 1
		if i == len(nbrs)-1 {
			next = start
		}
		adj.push(entry{node: nb}, next)
	}
	adj.lend[n] = adj.lnew() - 1
	adj.list[adj.lend[n]].boundary = boundary
}

// insert places node k in a ring directly after position lp
func (adj *adjacency) insert(k, lp int) (lnew int) {
	lnew = adj.push(entry{node: k}, adj.lptr[lp])
	adj.lptr[lp] = lnew
	return
}

// lstptr returns the position of nb in the ring whose last entry is at lpl
func (adj *adjacency) lstptr(lpl, nb int) (lp int, found bool) {
	lp = adj.lptr[lpl]
	for {
		if adj.list[lp].node == nb {
			return lp, true
		}
		if lp == lpl {
			return lpl, false
		}
		lp = adj.lptr[lp]
	}
}

// position of nb in the ring of n, which must exist
func (adj *adjacency) mustFind(n, nb int) (lp int) {
	var found bool
	if lp, found = adj.lstptr(adj.lend[n], nb); !found {
		fatalf(ErrInconsistentMesh, "node %d is not a neighbor of node %d", nb, n)
	}
	return
}

func (adj *adjacency) first(n int) int { return adj.list[adj.lptr[adj.lend[n]]].node }

func (adj *adjacency) last(n int) int { return adj.list[adj.lend[n]].node }

func (adj *adjacency) isBoundary(n int) bool { return adj.list[adj.lend[n]].boundary }

// isHullArc is true when a->b is an arc of the hull traversed counterclockwise
func (adj *adjacency) isHullArc(a, b int) bool {
	e := adj.list[adj.lend[b]]
	return e.boundary && e.node == a
}

// ring returns the neighbors of n in counterclockwise order, first to last
func (adj *adjacency) ring(n int) (nbrs []int) {
	lpl := adj.lend[n]
	lp := lpl
	for {
		lp = adj.lptr[lp]
		nbrs = append(nbrs, adj.list[lp].node)
		if lp == lpl {
			return
		}
	}
}

// eachWedge calls fn for every pair of consecutive neighbors (a, b) of n such
// that (n, a, b) is a triangle, stopping early when fn returns false.
func (adj *adjacency) eachWedge(n int, fn func(a, b int) bool) {
	var (
		lpl = adj.lend[n]
		lp  = adj.lptr[lpl]
	)
	for {
		next := adj.lptr[lp]
		if lp == lpl && adj.list[lpl].boundary {
			return
		}
		if !fn(adj.list[lp].node, adj.list[next].node) {
			return
		}
		if lp == lpl {
			return
		}
		lp = next
	}
}
