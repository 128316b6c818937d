package advanced

// SimpleNoder nodes by brute force: every segment of every string is tested
// against every segment of every string, including the string itself. It is
// quadratic and exists as the correctness reference for the indexed noders
// and as a sane choice for very small inputs, where building an index costs
// more than it saves.
type SimpleNoder struct {
	segInt          SegmentIntersector
	nodedSegStrings []*SegmentString
}

func NewSimpleNoder(segInt SegmentIntersector) *SimpleNoder {
	if segInt == nil {
		fatalf("noder requires a segment intersector")
	}
	return &SimpleNoder{segInt: segInt}
}

func (n *SimpleNoder) ComputeNodes(inputSegStrings []*SegmentString) {
	n.nodedSegStrings = inputSegStrings
	for _, edge0 := range inputSegStrings {
		for _, edge1 := range inputSegStrings {
			n.computeIntersects(edge0, edge1)
		}
	}
}

func (n *SimpleNoder) computeIntersects(e0, e1 *SegmentString) {
	for i0 := 0; i0 < e0.Size()-1; i0++ {
		for i1 := 0; i1 < e1.Size()-1; i1++ {
			n.segInt.ProcessIntersections(e0, i0, e1, i1)
		}
	}
}

func (n *SimpleNoder) NodedSubstrings() []*SegmentString {
	return NodedSubstrings(n.nodedSegStrings)
}
