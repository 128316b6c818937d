package advanced

// MCIndexNoder is the workhorse noder: each segment string is broken into
// monotone chains, the chains go into an STR tree, and only chain pairs with
// overlapping envelopes are searched for intersecting segments. Expected
// near-linear behaviour on realistic data, against SimpleNoder's quadratic
// sweep.
//
// The chain index it builds is also reused by the snap-rounding point
// snapper, so both the tree and the chain list are exposed.
type MCIndexNoder struct {
	segInt SegmentIntersector

	monoChains      []*MonotoneChain
	index           *STRtree
	idCounter       int
	nodedSegStrings []*SegmentString
	nOverlaps       int
}

// NewMCIndexNoder creates a noder. segInt may be nil if it is supplied later
// with SetSegmentIntersector, but it must be set before ComputeNodes runs.
func NewMCIndexNoder(segInt SegmentIntersector) *MCIndexNoder {
	return &MCIndexNoder{
		segInt: segInt,
		index:  NewSTRtree(),
	}
}

// SetSegmentIntersector installs the intersection strategy. The snap rounder
// constructs the noder first and the intersector afterwards.
func (n *MCIndexNoder) SetSegmentIntersector(segInt SegmentIntersector) {
	n.segInt = segInt
}

// Index exposes the chain tree for reuse after ComputeNodes has run.
func (n *MCIndexNoder) Index() *STRtree {
	return n.index
}

// MonoChains exposes all chains added to the index.
func (n *MCIndexNoder) MonoChains() []*MonotoneChain {
	return n.monoChains
}

// Overlaps reports how many chain pairs were searched; useful when comparing
// index behaviour across inputs.
func (n *MCIndexNoder) Overlaps() int {
	return n.nOverlaps
}

func (n *MCIndexNoder) ComputeNodes(inputSegStrings []*SegmentString) {
	if n.segInt == nil {
		fatalf("noder requires a segment intersector")
	}
	n.nodedSegStrings = inputSegStrings
	for _, segStr := range inputSegStrings {
		n.add(segStr)
	}
	n.intersectChains()
}

func (n *MCIndexNoder) add(segStr *SegmentString) {
	for _, mc := range NewMonotoneChains(segStr) {
		mc.SetID(n.idCounter)
		n.idCounter++
		n.index.Insert(mc.Envelope(), mc)
		n.monoChains = append(n.monoChains, mc)
	}
}

func (n *MCIndexNoder) intersectChains() {
	for _, queryChain := range n.monoChains {
		n.index.Query(queryChain.Envelope(), func(item interface{}) {
			testChain := item.(*MonotoneChain)
			// Each pair is searched once, with the query chain holding the
			// smaller id. A chain is never searched against itself: a
			// monotone run cannot self-intersect, and a string still nodes
			// against itself through its other chains.
			if testChain.ID() <= queryChain.ID() {
				return
			}
			queryChain.ComputeOverlaps(testChain, n.segInt)
			n.nOverlaps++
		})
	}
}

func (n *MCIndexNoder) NodedSubstrings() []*SegmentString {
	return NodedSubstrings(n.nodedSegStrings)
}
