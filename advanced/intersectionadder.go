package advanced

// IntersectionAdder is the SegmentIntersector used for general noding: it
// registers every non-trivial intersection on both strings involved, and
// keeps per-instance counts of what it saw. The counters are plain fields on
// the adder (never process-global), so concurrent noding runs with separate
// adders don't interfere.
type IntersectionAdder struct {
	li *LineIntersector

	numIntersections         int
	numInteriorIntersections int
	numProperIntersections   int

	hasIntersection         bool
	hasProper               bool
	hasInterior             bool
	properIntersectionPoint Coord
}

func NewIntersectionAdder(li *LineIntersector) *IntersectionAdder {
	return &IntersectionAdder{li: li}
}

func (ia *IntersectionAdder) HasIntersection() bool {
	return ia.hasIntersection
}

func (ia *IntersectionAdder) HasProperIntersection() bool {
	return ia.hasProper
}

func (ia *IntersectionAdder) HasInteriorIntersection() bool {
	return ia.hasInterior
}

// ProperIntersectionPoint returns some proper intersection point seen during
// the run, if any.
func (ia *IntersectionAdder) ProperIntersectionPoint() Coord {
	return ia.properIntersectionPoint
}

func (ia *IntersectionAdder) SegmentIntersections() int {
	return ia.numIntersections
}

func (ia *IntersectionAdder) InteriorIntersections() int {
	return ia.numInteriorIntersections
}

func (ia *IntersectionAdder) ProperIntersections() int {
	return ia.numProperIntersections
}

// A trivial intersection is a single point where two segments of the same
// string meet because they are adjacent — including the wraparound pair of a
// closed ring. Those shared vertices are the expected topology, not nodes to
// insert.
func (ia *IntersectionAdder) isTrivialIntersection(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) bool {
	if e0 != e1 {
		return false
	}
	if ia.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.Size() - 1
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) ||
			(segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i0, i1 int) bool {
	diff := i0 - i1
	return diff == 1 || diff == -1
}

// ProcessIntersections tests one candidate segment pair and registers any
// non-trivial intersection on both strings. Note that a pair is never
// processed twice by a well-behaved noder, but even if it were, node
// insertion is idempotent.
func (ia *IntersectionAdder) ProcessIntersections(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) {
	// Don't test a segment against itself.
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}

	p00 := e0.Coord(segIndex0)
	p01 := e0.Coord(segIndex0 + 1)
	p10 := e1.Coord(segIndex1)
	p11 := e1.Coord(segIndex1 + 1)

	ia.li.ComputeIntersection(p00, p01, p10, p11)
	if !ia.li.HasIntersection() {
		return
	}

	ia.numIntersections++
	if ia.li.IsInteriorIntersection() {
		ia.numInteriorIntersections++
		ia.hasInterior = true
	}

	if ia.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}

	ia.hasIntersection = true
	e0.AddIntersections(ia.li, segIndex0)
	e1.AddIntersections(ia.li, segIndex1)
	if ia.li.IsProper() {
		ia.numProperIntersections++
		ia.hasProper = true
		ia.properIntersectionPoint = CopyCoord(ia.li.Intersection(0))
	}
}

// InteriorIntersectionFinderAdder is the SegmentIntersector used by the snap
// rounders: it registers intersections like IntersectionAdder does, but only
// for segment pairs with an interior intersection, and it collects those
// intersection points so that hot pixels can be built at each of them.
type InteriorIntersectionFinderAdder struct {
	li                    *LineIntersector
	interiorIntersections []Coord
}

func NewInteriorIntersectionFinderAdder(li *LineIntersector) *InteriorIntersectionFinderAdder {
	return &InteriorIntersectionFinderAdder{li: li}
}

// InteriorIntersections returns the intersection points collected so far.
func (f *InteriorIntersectionFinderAdder) InteriorIntersections() []Coord {
	return f.interiorIntersections
}

func (f *InteriorIntersectionFinderAdder) ProcessIntersections(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}

	p00 := e0.Coord(segIndex0)
	p01 := e0.Coord(segIndex0 + 1)
	p10 := e1.Coord(segIndex1)
	p11 := e1.Coord(segIndex1 + 1)

	f.li.ComputeIntersection(p00, p01, p10, p11)
	if !f.li.HasIntersection() || !f.li.IsInteriorIntersection() {
		return
	}

	for i := 0; i < f.li.IntersectionNum(); i++ {
		f.interiorIntersections = append(f.interiorIntersections, CopyCoord(f.li.Intersection(i)))
	}
	e0.AddIntersections(f.li, segIndex0)
	e1.AddIntersections(f.li, segIndex1)
}
