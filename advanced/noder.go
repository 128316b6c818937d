package advanced

// Noder is the common contract for all noding strategies: compute the
// intersection nodes for a set of segment strings, then expose the split
// edges. ComputeNodes mutates the input strings (their node lists accumulate
// the intersections found), so a set of strings belongs to exactly one
// noding run at a time.
type Noder interface {
	ComputeNodes(segStrings []*SegmentString)
	NodedSubstrings() []*SegmentString
}

// SegmentIntersector is the strategy a noder drives: for each candidate pair
// of segments (one from each string, possibly the same string) it decides
// whether and how to register an intersection. The candidate discovery layer
// over-approximates; this is where the exact geometry happens.
type SegmentIntersector interface {
	ProcessIntersections(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int)
}
