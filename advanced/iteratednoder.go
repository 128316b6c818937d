package advanced

// IteratedNoder nodes a set of segment strings completely by running the
// chain-indexed noder repeatedly until no new interior intersections appear.
// One pass over floating-point input is not always enough: rounding the
// computed intersection points can perturb segments into new intersections.
// Iterating drives the arrangement to a fixed point in practice, but there
// are inputs (notably under a fixed precision model) for which it never
// settles, so the loop gives up after a bounded number of non-improving
// iterations instead of spinning.
type IteratedNoder struct {
	pm              *PrecisionModel
	maxIterations   int
	nodedSegStrings []*SegmentString
}

// The default iteration bound. In practice convergence takes two or three
// passes; anything still churning after five is diverging.
const DefaultMaxIterations = 5

func NewIteratedNoder(pm *PrecisionModel) *IteratedNoder {
	return &IteratedNoder{
		pm:            pm,
		maxIterations: DefaultMaxIterations,
	}
}

// SetMaximumIterations overrides the iteration bound. Lower values fail
// faster on inputs that don't converge; raising it only helps inputs that
// are converging slowly, which is rare.
func (n *IteratedNoder) SetMaximumIterations(maxIter int) {
	if maxIter < 1 {
		fatalf("iteration bound must be positive, got %d", maxIter)
	}
	n.maxIterations = maxIter
}

func (n *IteratedNoder) ComputeNodes(segStrings []*SegmentString) {
	nodedEdges := segStrings
	nodingIterations := 0
	lastNodesCreated := -1
	for {
		var numInteriorIntersections int
		nodedEdges, numInteriorIntersections = n.node(nodedEdges)
		nodingIterations++

		// Fail if the number of new nodes created is not declining.
		// However, allow a few iterations at least before doing this, since
		// the noding of a pathological set may start slowly.
		if lastNodesCreated > 0 &&
			numInteriorIntersections >= lastNodesCreated &&
			nodingIterations > n.maxIterations {
			fatalf("noding failed to converge after %d iterations; try a coarser precision model", nodingIterations)
		}
		lastNodesCreated = numInteriorIntersections

		if numInteriorIntersections <= 0 {
			break
		}
	}
	n.nodedSegStrings = nodedEdges
}

// node runs a single chain-indexed noding pass and reports the split edges
// along with the number of interior intersections found.
func (n *IteratedNoder) node(segStrings []*SegmentString) ([]*SegmentString, int) {
	li := NewLineIntersector(n.pm)
	adder := NewIntersectionAdder(li)
	noder := NewMCIndexNoder(adder)
	noder.ComputeNodes(segStrings)
	return noder.NodedSubstrings(), adder.InteriorIntersections()
}

func (n *IteratedNoder) NodedSubstrings() []*SegmentString {
	return n.nodedSegStrings
}
