package advanced

// MonotoneChain is a run of consecutive segments of one string whose
// direction vectors all lie in a single quadrant. Within a chain the x and y
// ordinates each change monotonically, which buys two things: the chain's
// envelope is just the box of its two end vertices, and two chains can be
// searched for overlapping segment pairs by recursive bisection instead of
// the full cross product. Chains never share segments; together the chains of
// a string cover it exactly.
type MonotoneChain struct {
	segStr *SegmentString
	start  int
	end    int

	// id disambiguates chains during index queries so that each chain pair
	// is processed once. Assigned by the owning noder.
	id int

	env    Envelope
	hasEnv bool
}

// NewMonotoneChains splits a segment string into its maximal monotone chains.
func NewMonotoneChains(segStr *SegmentString) []*MonotoneChain {
	startIndexes := chainStartIndexes(segStr.Coords())
	chains := make([]*MonotoneChain, 0, len(startIndexes)-1)
	for i := 0; i < len(startIndexes)-1; i++ {
		chains = append(chains, &MonotoneChain{
			segStr: segStr,
			start:  startIndexes[i],
			end:    startIndexes[i+1],
		})
	}
	return chains
}

func (mc *MonotoneChain) SegmentString() *SegmentString {
	return mc.segStr
}

func (mc *MonotoneChain) Start() int {
	return mc.start
}

func (mc *MonotoneChain) End() int {
	return mc.end
}

func (mc *MonotoneChain) ID() int {
	return mc.id
}

func (mc *MonotoneChain) SetID(id int) {
	mc.id = id
}

// Envelope returns the bounding box of the chain. Monotonicity makes the box
// of the two end vertices exact.
func (mc *MonotoneChain) Envelope() Envelope {
	if !mc.hasEnv {
		mc.env = EnvelopeOf(mc.segStr.Coord(mc.start), mc.segStr.Coord(mc.end))
		mc.hasEnv = true
	}
	return mc.env
}

// ComputeOverlaps finds all pairs of segments, one from each chain, whose
// envelopes overlap, and hands each pair to si. The search bisects both
// chains, pruning any half-pair whose end-vertex boxes are disjoint.
func (mc *MonotoneChain) ComputeOverlaps(other *MonotoneChain, si SegmentIntersector) {
	mc.computeOverlaps(mc.start, mc.end, other, other.start, other.end, si)
}

func (mc *MonotoneChain) computeOverlaps(start0, end0 int, other *MonotoneChain, start1, end1 int, si SegmentIntersector) {
	// Both runs are down to single segments: this is a candidate pair.
	if end0-start0 == 1 && end1-start1 == 1 {
		si.ProcessIntersections(mc.segStr, start0, other.segStr, start1)
		return
	}
	if !overlapsSection(mc.segStr, start0, end0, other.segStr, start1, end1) {
		return
	}

	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2

	if start0 < mid0 {
		if start1 < mid1 {
			mc.computeOverlaps(start0, mid0, other, start1, mid1, si)
		}
		if mid1 < end1 {
			mc.computeOverlaps(start0, mid0, other, mid1, end1, si)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			mc.computeOverlaps(mid0, end0, other, start1, mid1, si)
		}
		if mid1 < end1 {
			mc.computeOverlaps(mid0, end0, other, mid1, end1, si)
		}
	}
}

func overlapsSection(ss0 *SegmentString, start0, end0 int, ss1 *SegmentString, start1, end1 int) bool {
	env0 := EnvelopeOf(ss0.Coord(start0), ss0.Coord(end0))
	env1 := EnvelopeOf(ss1.Coord(start1), ss1.Coord(end1))
	return env0.Intersects(env1)
}

// Select visits the start index of every segment of the chain whose envelope
// intersects searchEnv, again by bisection.
func (mc *MonotoneChain) Select(searchEnv Envelope, visit func(segIndex int)) {
	mc.computeSelect(searchEnv, mc.start, mc.end, visit)
}

func (mc *MonotoneChain) computeSelect(searchEnv Envelope, start, end int, visit func(segIndex int)) {
	env := EnvelopeOf(mc.segStr.Coord(start), mc.segStr.Coord(end))
	if !searchEnv.Intersects(env) {
		return
	}
	if end-start == 1 {
		visit(start)
		return
	}
	mid := (start + end) / 2
	if start < mid {
		mc.computeSelect(searchEnv, start, mid, visit)
	}
	if mid < end {
		mc.computeSelect(searchEnv, mid, end, visit)
	}
}

// chainStartIndexes returns the vertex indexes at which maximal monotone
// chains begin, plus the final vertex index as a closing sentinel.
func chainStartIndexes(pts []Coord) []int {
	start := 0
	startIndexes := []int{start}
	for start < len(pts)-1 {
		last := findChainEnd(pts, start)
		startIndexes = append(startIndexes, last)
		start = last
	}
	return startIndexes
}

// findChainEnd returns the index of the last vertex of the monotone chain
// starting at start. Repeated points at the chain start are skipped before
// the chain quadrant is sampled, so a run of duplicates never produces a
// zero-vector direction.
func findChainEnd(pts []Coord, start int) int {
	safeStart := start
	for safeStart < len(pts)-1 && Equal2D(pts[safeStart], pts[safeStart+1]) {
		safeStart++
	}
	// Only repeated points remain; the chain is the rest of the string.
	if safeStart >= len(pts)-1 {
		return len(pts) - 1
	}

	chainQuad := quadrant(pts[safeStart], pts[safeStart+1])
	last := start + 1
	for last < len(pts) {
		if !Equal2D(pts[last-1], pts[last]) {
			if quadrant(pts[last-1], pts[last]) != chainQuad {
				break
			}
		}
		last++
	}
	return last - 1
}

// quadrant returns the quadrant (0..3, counterclockwise from +x/+y) of the
// direction vector from p0 to p1. Axis-aligned directions are assigned so
// that each quadrant is half-open.
func quadrant(p0, p1 Coord) int {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	if dx == 0 && dy == 0 {
		fatalf("cannot compute the quadrant for a zero-length segment at (%v, %v)", p0[0], p0[1])
	}
	if dx >= 0 {
		if dy >= 0 {
			return 0
		}
		return 3
	}
	if dy >= 0 {
		return 1
	}
	return 2
}
