package advanced

// MCIndexSnapRounder is the indexed snap rounder. Like SimpleSnapRounder it
// requires input already on the integer grid of the precision model's scale
// (ScaledNoder provides the wrapping for arbitrary input), and produces
// output that is guaranteed fully noded: rounding artefacts cannot survive,
// because every segment near a snap point is forced through it.
//
// It works in two phases over one shared chain index. Phase one runs the
// chain-indexed noder with an interior-intersection finder, which both nodes
// the strings and collects the intersection points. Phase two builds a hot
// pixel at each intersection point and each vertex, and snaps the indexed
// chains to them.
type MCIndexSnapRounder struct {
	pm          *PrecisionModel
	li          *LineIntersector
	scaleFactor float64

	noder           *MCIndexNoder
	pointSnapper    *MCIndexPointSnapper
	nodedSegStrings []*SegmentString
}

func NewMCIndexSnapRounder(pm *PrecisionModel) *MCIndexSnapRounder {
	return &MCIndexSnapRounder{
		pm:          pm,
		li:          NewLineIntersector(pm),
		scaleFactor: pm.Scale(),
	}
}

func (r *MCIndexSnapRounder) ComputeNodes(inputSegStrings []*SegmentString) {
	r.nodedSegStrings = inputSegStrings
	r.noder = NewMCIndexNoder(nil)
	r.pointSnapper = NewMCIndexPointSnapper(r.noder.Index())
	r.snapRound(inputSegStrings)
}

func (r *MCIndexSnapRounder) NodedSubstrings() []*SegmentString {
	return NodedSubstrings(r.nodedSegStrings)
}

func (r *MCIndexSnapRounder) snapRound(segStrings []*SegmentString) {
	intersections := r.findInteriorIntersections(segStrings)
	r.computeIntersectionSnaps(intersections)
	r.computeVertexSnaps(segStrings)
}

// findInteriorIntersections nodes the strings with the chain-indexed noder,
// collecting the interior intersection points. As a side effect the noder's
// index now holds all chains, ready for the snapping phase.
func (r *MCIndexSnapRounder) findInteriorIntersections(segStrings []*SegmentString) []Coord {
	intFinderAdder := NewInteriorIntersectionFinderAdder(r.li)
	r.noder.SetSegmentIntersector(intFinderAdder)
	r.noder.ComputeNodes(segStrings)
	return intFinderAdder.InteriorIntersections()
}

func (r *MCIndexSnapRounder) computeIntersectionSnaps(snapPts []Coord) {
	for _, snapPt := range snapPts {
		hotPixel := NewHotPixel(snapPt, r.scaleFactor, r.li)
		r.pointSnapper.SnapPoint(hotPixel)
	}
}

// computeVertexSnaps snaps all segments to the hot pixels of the input
// vertices. When a vertex pixel captures some segment, the vertex is noded
// on its own string too, so both strings split at the shared point.
func (r *MCIndexSnapRounder) computeVertexSnaps(segStrings []*SegmentString) {
	for _, edge := range segStrings {
		r.computeEdgeVertexSnaps(edge)
	}
}

func (r *MCIndexSnapRounder) computeEdgeVertexSnaps(e *SegmentString) {
	pts := e.Coords()
	for i := 0; i < len(pts); i++ {
		hotPixel := NewHotPixel(pts[i], r.scaleFactor, r.li)
		if r.pointSnapper.Snap(hotPixel, e, i) {
			e.AddIntersection(pts[i], i)
		}
	}
}
