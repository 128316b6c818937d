package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/noding/dbg"
)

// SegmentString is one contiguous polyline being noded: an ordered, mutable
// list of coordinates plus an opaque data payload linking back to whatever
// the caller built the string from (a parent edge, a feature id — the core
// never interprets it, only threads it through to the split edges). Every
// string owns exactly one SegmentNodeList, which accumulates the
// intersections found on it during a noding run.
type SegmentString struct {
	nodeList *SegmentNodeList
	pts      []Coord
	data     interface{}
}

// NewSegmentString creates a segment string over the given points. Fewer than
// two points is a caller error: a "string" with no segments has no business
// entering a noding run, and catching it here is much cheaper than debugging
// the index math that would otherwise go wrong later.
func NewSegmentString(pts []Coord, data interface{}) *SegmentString {
	if len(pts) < 2 {
		fatalf("a segment string requires at least 2 points, got %d", len(pts))
	}
	ss := &SegmentString{pts: pts, data: data}
	ss.nodeList = newSegmentNodeList(ss)
	return ss
}

// Data returns the opaque payload attached at construction.
func (ss *SegmentString) Data() interface{} {
	return ss.data
}

func (ss *SegmentString) Size() int {
	return len(ss.pts)
}

func (ss *SegmentString) Coord(i int) Coord {
	return ss.pts[i]
}

// Coords returns the backing point slice. Callers must not mutate it while a
// noding run is in progress.
func (ss *SegmentString) Coords() []Coord {
	return ss.pts
}

func (ss *SegmentString) IsClosed() bool {
	return Equal2D(ss.pts[0], ss.pts[len(ss.pts)-1])
}

func (ss *SegmentString) NodeList() *SegmentNodeList {
	return ss.nodeList
}

// SegmentOctant returns the octant of the segment starting at vertex i, or -1
// for the final vertex, where no segment starts.
func (ss *SegmentString) SegmentOctant(i int) int {
	if i == len(ss.pts)-1 {
		return -1
	}
	return safeOctant(ss.pts[i], ss.pts[i+1])
}

// A zero-length segment has no direction; report it as octant 0 so that node
// ordering stays total. These only arise from repeated input points, which
// the collapse handling deals with separately.
func safeOctant(p0, p1 Coord) int {
	if Equal2D(p0, p1) {
		return 0
	}
	return OctantOfSegment(p0, p1)
}

// AddIntersection registers an intersection point on the segment starting at
// segmentIndex. If the point is exactly equal to the next vertex, the node is
// attributed to the segment starting at that vertex instead. This
// canonicalization is essential: a node landing exactly on a vertex must
// always belong to the segment starting there, never to the one ending
// there, or the splitting logic would see two different index domains for
// the same geometric point.
func (ss *SegmentString) AddIntersection(intPt Coord, segmentIndex int) *SegmentNode {
	normalizedIndex := segmentIndex
	if next := segmentIndex + 1; next < len(ss.pts) && Equal2D(intPt, ss.pts[next]) {
		normalizedIndex = next
	}
	return ss.nodeList.Add(intPt, normalizedIndex)
}

// AddIntersections registers every intersection point the intersector found
// for the segment starting at segmentIndex.
func (ss *SegmentString) AddIntersections(li *LineIntersector, segmentIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		ss.AddIntersection(li.Intersection(i), segmentIndex)
	}
}

// NodedSubstrings splits every input string at its accumulated nodes and
// returns all the split edges in one flattened list. This is the universal
// finalize step: every noder ends by calling it.
func NodedSubstrings(segStrings []*SegmentString) []*SegmentString {
	var result []*SegmentString
	for _, ss := range segStrings {
		result = ss.nodeList.AddSplitEdges(result)
	}
	return result
}

func (ss *SegmentString) String() string {
	name := dbg.Name(ss)
	if ss.IsClosed() {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("SegmentString %s (%d points, %d nodes)", name, len(ss.pts), len(ss.nodeList.nodes))
}
