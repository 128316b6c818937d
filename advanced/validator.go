package advanced

// NodingValidator checks that a set of segment strings is fully noded: no
// segment contains an intersection point in its interior, and no string's
// endpoint lands on an interior vertex of another. The check is brute force
// over all segment pairs, so it is a test and debugging tool, not a
// production pass. Violations panic with the offending coordinates; use the
// package facade to get them back as errors.
type NodingValidator struct {
	li         *LineIntersector
	segStrings []*SegmentString
}

func NewNodingValidator(segStrings []*SegmentString) *NodingValidator {
	return &NodingValidator{
		// Validation is exact; no rounding of intersection points.
		li:         NewLineIntersector(NewFloatingPrecisionModel()),
		segStrings: segStrings,
	}
}

func (v *NodingValidator) CheckValid() {
	v.checkEndPtVertexIntersections()
	v.checkInteriorIntersections()
	v.checkCollapses()
}

// A collapse is a vertex where a string doubles straight back on itself.
// Noding must have cut the string there.
func (v *NodingValidator) checkCollapses() {
	for _, ss := range v.segStrings {
		pts := ss.Coords()
		for i := 0; i < len(pts)-2; i++ {
			if Equal2D(pts[i], pts[i+2]) {
				fatalf("found non-noded collapse at (%v, %v) (%v, %v) (%v, %v)",
					pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], pts[i+2][0], pts[i+2][1])
			}
		}
	}
}

func (v *NodingValidator) checkInteriorIntersections() {
	for _, ss0 := range v.segStrings {
		for _, ss1 := range v.segStrings {
			v.checkInteriorIntersectionsBetween(ss0, ss1)
		}
	}
}

func (v *NodingValidator) checkInteriorIntersectionsBetween(ss0, ss1 *SegmentString) {
	for i0 := 0; i0 < ss0.Size()-1; i0++ {
		for i1 := 0; i1 < ss1.Size()-1; i1++ {
			v.checkInteriorIntersectionsAt(ss0, i0, ss1, i1)
		}
	}
}

func (v *NodingValidator) checkInteriorIntersectionsAt(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	p00 := e0.Coord(segIndex0)
	p01 := e0.Coord(segIndex0 + 1)
	p10 := e1.Coord(segIndex1)
	p11 := e1.Coord(segIndex1 + 1)

	v.li.ComputeIntersection(p00, p01, p10, p11)
	if !v.li.HasIntersection() {
		return
	}
	if v.li.IsProper() ||
		v.hasInteriorIntersection(p00, p01) ||
		v.hasInteriorIntersection(p10, p11) {
		pt := v.li.Intersection(0)
		fatalf("found non-noded intersection at (%v, %v) between (%v, %v)-(%v, %v) and (%v, %v)-(%v, %v)",
			pt[0], pt[1],
			p00[0], p00[1], p01[0], p01[1],
			p10[0], p10[1], p11[0], p11[1])
	}
}

// hasInteriorIntersection reports whether any of the current intersection
// points falls strictly inside the segment p0-p1.
func (v *NodingValidator) hasInteriorIntersection(p0, p1 Coord) bool {
	for i := 0; i < v.li.IntersectionNum(); i++ {
		intPt := v.li.Intersection(i)
		if !Equal2D(intPt, p0) && !Equal2D(intPt, p1) {
			return true
		}
	}
	return false
}

// Endpoints of noded strings may coincide with each other, but never with an
// interior vertex of some string.
func (v *NodingValidator) checkEndPtVertexIntersections() {
	for _, ss := range v.segStrings {
		pts := ss.Coords()
		v.checkEndPtVertexIntersectionsAt(pts[0])
		v.checkEndPtVertexIntersectionsAt(pts[len(pts)-1])
	}
}

func (v *NodingValidator) checkEndPtVertexIntersectionsAt(testPt Coord) {
	for _, ss := range v.segStrings {
		pts := ss.Coords()
		for i := 1; i < len(pts)-1; i++ {
			if Equal2D(pts[i], testPt) {
				fatalf("found endpoint touching an interior vertex at (%v, %v)", testPt[0], testPt[1])
			}
		}
	}
}
