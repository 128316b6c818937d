package advanced

// SimpleSnapRounder snap-rounds by brute force. The input must already lie
// on the integer grid of the precision model's scale (wrap it in a
// ScaledNoder otherwise). Every interior intersection and every vertex
// becomes a hot pixel, and every segment is tested against every pixel. It
// is the correctness reference for MCIndexSnapRounder, usable directly on
// small inputs.
type SimpleSnapRounder struct {
	pm              *PrecisionModel
	li              *LineIntersector
	scaleFactor     float64
	nodedSegStrings []*SegmentString
}

func NewSimpleSnapRounder(pm *PrecisionModel) *SimpleSnapRounder {
	return &SimpleSnapRounder{
		pm:          pm,
		li:          NewLineIntersector(pm),
		scaleFactor: pm.Scale(),
	}
}

func (r *SimpleSnapRounder) ComputeNodes(inputSegStrings []*SegmentString) {
	r.nodedSegStrings = inputSegStrings
	r.snapRound(inputSegStrings)
}

func (r *SimpleSnapRounder) NodedSubstrings() []*SegmentString {
	return NodedSubstrings(r.nodedSegStrings)
}

func (r *SimpleSnapRounder) snapRound(segStrings []*SegmentString) {
	intersections := r.findInteriorIntersections(segStrings)
	r.computeIntersectionSnaps(segStrings, intersections)
	r.computeVertexSnaps(segStrings)
}

// findInteriorIntersections computes nodes for all interior intersections
// and collects their points as future hot pixel centres.
func (r *SimpleSnapRounder) findInteriorIntersections(segStrings []*SegmentString) []Coord {
	intFinderAdder := NewInteriorIntersectionFinderAdder(r.li)
	noder := NewSimpleNoder(intFinderAdder)
	noder.ComputeNodes(segStrings)
	return intFinderAdder.InteriorIntersections()
}

// computeIntersectionSnaps snaps every segment to the hot pixel of every
// interior intersection point.
func (r *SimpleSnapRounder) computeIntersectionSnaps(segStrings []*SegmentString, snapPts []Coord) {
	for _, snapPt := range snapPts {
		hotPixel := NewHotPixel(snapPt, r.scaleFactor, r.li)
		for _, ss := range segStrings {
			r.addSnappedNodes(hotPixel, ss)
		}
	}
}

func (r *SimpleSnapRounder) addSnappedNodes(hotPixel *HotPixel, ss *SegmentString) {
	for i := 0; i < ss.Size()-1; i++ {
		hotPixel.AddSnappedNode(ss, i)
	}
}

// computeVertexSnaps snaps every segment to the hot pixel of every vertex of
// every string. When a vertex pixel captures a segment, the vertex itself is
// noded as well, so both strings split at the shared point.
func (r *SimpleSnapRounder) computeVertexSnaps(segStrings []*SegmentString) {
	for _, e0 := range segStrings {
		for _, e1 := range segStrings {
			r.computeVertexSnapsPair(e0, e1)
		}
	}
}

func (r *SimpleSnapRounder) computeVertexSnapsPair(e0, e1 *SegmentString) {
	pts0 := e0.Coords()
	for i0 := 0; i0 < len(pts0); i0++ {
		hotPixel := NewHotPixel(pts0[i0], r.scaleFactor, r.li)
		for i1 := 0; i1 < e1.Size()-1; i1++ {
			// A vertex pixel must not capture its own segment.
			if e0 == e1 && i0 == i1 {
				continue
			}
			if hotPixel.AddSnappedNode(e1, i1) {
				e0.AddIntersection(pts0[i0], i0)
			}
		}
	}
}
