package geometry2D

// PolygonalArea returns the signed area bounded by the closed polygonal curve
// passing through the nodes in the given order, positive when the nodes are
// in counterclockwise order. Node indices address x and y directly, out of
// range indices panic. Fewer than four nodes yields zero.
func PolygonalArea[T Float](x, y []T, nodes []int) (area float64) {
	if len(nodes) <= 3 {
		return 0
	}
	var (
		n1, n2 int
		sum    float64
	)
	n2 = nodes[len(nodes)-1]
	for _, node := range nodes {
		n1, n2 = n2, node
		sum += (float64(x[n2]) - float64(x[n1])) * (float64(y[n1]) + float64(y[n2]))
	}
	// sum contains twice the negative signed area of the region
	area = -sum / 2
	return
}
