package advanced

import "sort"

// SegmentNodeList is the sorted set of intersection nodes on one segment
// string. It is owned exclusively by that string. The list is kept sorted by
// the SegmentNode ordering at all times, as a slice maintained with binary
// search — the comparator is a composite (segment index, octant-directed
// point) key for which a plain ordered slice is both the simplest and the
// cheapest faithful container.
type SegmentNodeList struct {
	edge  *SegmentString
	nodes []*SegmentNode
}

func newSegmentNodeList(edge *SegmentString) *SegmentNodeList {
	return &SegmentNodeList{edge: edge}
}

func (l *SegmentNodeList) Edge() *SegmentString {
	return l.edge
}

// Nodes returns the nodes in sorted order. The slice is the live backing
// store; don't hold it across further insertions.
func (l *SegmentNodeList) Nodes() []*SegmentNode {
	return l.nodes
}

// Add inserts a node for an intersection at intPt on the segment starting at
// segmentIndex, or returns the existing node if one is already registered
// there. The idempotence is load-bearing: the same geometric intersection is
// routinely reported several times (once from each string involved, and
// again by later snap passes), and each report must resolve to the one node.
func (l *SegmentNodeList) Add(intPt Coord, segmentIndex int) *SegmentNode {
	node := newSegmentNode(l.edge, intPt, segmentIndex, l.edge.SegmentOctant(segmentIndex))

	i := sort.Search(len(l.nodes), func(i int) bool {
		return l.nodes[i].CompareTo(node) >= 0
	})
	if i < len(l.nodes) && l.nodes[i].CompareTo(node) == 0 {
		return l.nodes[i]
	}

	l.nodes = append(l.nodes, nil)
	copy(l.nodes[i+1:], l.nodes[i:])
	l.nodes[i] = node
	return node
}

// addEndpoints makes sure both string endpoints are nodes, so that the
// split-edge walk always has a first and last boundary. Idempotent via Add.
func (l *SegmentNodeList) addEndpoints() {
	maxSegIndex := l.edge.Size() - 1
	l.Add(l.edge.Coord(0), 0)
	l.Add(l.edge.Coord(maxSegIndex), maxSegIndex)
}

// addCollapsedNodes synthesizes nodes at collapse vertices: vertices that
// have become degenerate because the string doubles back on itself one
// segment away (an a-b-a pattern). Without an explicit node at b, a split
// edge would silently absorb the zero-length excursion. Collapses can be
// present in the raw input or be created by node insertion, so both sources
// are scanned.
func (l *SegmentNodeList) addCollapsedNodes() {
	var collapsedVertexIndexes []int
	collapsedVertexIndexes = l.findCollapsesFromInsertedNodes(collapsedVertexIndexes)
	collapsedVertexIndexes = l.findCollapsesFromExistingVertices(collapsedVertexIndexes)

	for _, vertexIndex := range collapsedVertexIndexes {
		l.Add(l.edge.Coord(vertexIndex), vertexIndex)
	}
}

// A collapse already present in the input shows up directly as
// pts[i] == pts[i+2].
func (l *SegmentNodeList) findCollapsesFromExistingVertices(collapsedVertexIndexes []int) []int {
	for i := 0; i < l.edge.Size()-2; i++ {
		if Equal2D(l.edge.Coord(i), l.edge.Coord(i+2)) {
			collapsedVertexIndexes = append(collapsedVertexIndexes, i+1)
		}
	}
	return collapsedVertexIndexes
}

// A collapse created by insertion shows up as two distinct nodes with the
// same coordinate separated by exactly one vertex.
func (l *SegmentNodeList) findCollapsesFromInsertedNodes(collapsedVertexIndexes []int) []int {
	for i := 1; i < len(l.nodes); i++ {
		if vertexIndex, found := findCollapseIndex(l.nodes[i-1], l.nodes[i]); found {
			collapsedVertexIndexes = append(collapsedVertexIndexes, vertexIndex)
		}
	}
	return collapsedVertexIndexes
}

func findCollapseIndex(ei0, ei1 *SegmentNode) (int, bool) {
	// The nodes must be equal in position to pinch off a collapse.
	if !Equal2D(ei0.Coord, ei1.Coord) {
		return 0, false
	}
	verticesBetween := ei1.SegmentIndex - ei0.SegmentIndex
	if !ei1.IsInterior() {
		verticesBetween--
	}
	// If there is exactly one vertex between the nodes, that vertex is the
	// tip of the collapse.
	if verticesBetween == 1 {
		return ei0.SegmentIndex + 1, true
	}
	return 0, false
}

// AddSplitEdges cuts the owning string at every node and appends the
// resulting child strings to edgeList, returning the extended list. After
// endpoint and collapse synthesis the sorted node sequence partitions the
// string completely, so the children, in order, cover every original vertex
// and every intersection point.
func (l *SegmentNodeList) AddSplitEdges(edgeList []*SegmentString) []*SegmentString {
	l.addEndpoints()
	l.addCollapsedNodes()

	eiPrev := l.nodes[0]
	for _, ei := range l.nodes[1:] {
		edgeList = append(edgeList, l.createSplitEdge(eiPrev, ei))
		eiPrev = ei
	}
	return edgeList
}

// createSplitEdge materializes the child string between two adjacent nodes.
// The child runs from ei0's point, through every original vertex strictly
// between the two segment indexes, to ei1's point. The final point is
// omitted when ei1 sits exactly on the vertex that was already copied as the
// last interior vertex — otherwise the shared vertex would appear twice.
func (l *SegmentNodeList) createSplitEdge(ei0, ei1 *SegmentNode) *SegmentString {
	npts := ei1.SegmentIndex - ei0.SegmentIndex + 2

	lastSegStartPt := l.edge.Coord(ei1.SegmentIndex)
	useIntPt1 := ei1.IsInterior() || !Equal2D(ei1.Coord, lastSegStartPt)
	if !useIntPt1 {
		npts--
	}

	pts := make([]Coord, 0, npts)
	pts = append(pts, CopyCoord(ei0.Coord))
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		pts = append(pts, CopyCoord(l.edge.Coord(i)))
	}
	if useIntPt1 {
		pts = append(pts, CopyCoord(ei1.Coord))
	}

	// The child carries the same data reference as its parent.
	return NewSegmentString(pts, l.edge.Data())
}
