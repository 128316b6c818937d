package advanced

import (
	"fmt"

	"github.com/osuushi/noding/dbg"
)

// SegmentNode is a single intersection point registered on one segment
// string. It owns a private copy of the intersection coordinate — never a
// reference into the string's point list, which is still being read while
// nodes accumulate. Nodes are created by SegmentNodeList.Add and never
// mutated afterwards.
type SegmentNode struct {
	// The intersection point (owned copy).
	Coord Coord
	// Index of the vertex at which the hosting segment starts.
	SegmentIndex int

	segmentOctant int
	isInterior    bool
}

func newSegmentNode(segString *SegmentString, coord Coord, segmentIndex, segmentOctant int) *SegmentNode {
	return &SegmentNode{
		Coord:         CopyCoord(coord),
		SegmentIndex:  segmentIndex,
		segmentOctant: segmentOctant,
		// A node is interior iff it differs from the segment's start vertex.
		isInterior: !Equal2D(coord, segString.Coord(segmentIndex)),
	}
}

// IsInterior reports whether the node falls strictly inside its segment
// rather than exactly on an existing vertex.
func (n *SegmentNode) IsInterior() bool {
	return n.isInterior
}

// CompareTo orders nodes along their string: first by segment index, then —
// for nodes sharing a segment — along the segment's direction of travel,
// using the octant-aware point comparison. Two nodes are equal exactly when
// they have the same segment index and the same coordinate. This ordering
// determines the split-edge boundaries, so it must be total and stable.
func (n *SegmentNode) CompareTo(other *SegmentNode) int {
	if n.SegmentIndex < other.SegmentIndex {
		return -1
	}
	if n.SegmentIndex > other.SegmentIndex {
		return 1
	}
	if Equal2D(n.Coord, other.Coord) {
		return 0
	}
	// An exterior node sits exactly on the segment's start vertex, so it
	// always sorts before any interior node of the same segment.
	if !n.isInterior {
		return -1
	}
	if !other.isInterior {
		return 1
	}
	return comparePointsAlongOctant(n.segmentOctant, n.Coord, other.Coord)
}

// comparePointsAlongOctant orders two points lying on a segment whose
// direction is in the given octant, in order of travel along the segment.
// Within one octant both ordinates change monotonically, so the comparison
// reduces to signed deltas with the dominant axis checked first.
func comparePointsAlongOctant(octant int, p0, p1 Coord) int {
	xSign := relativeSign(p0[0], p1[0])
	ySign := relativeSign(p0[1], p1[1])

	switch octant {
	case 0:
		return compareBySigns(xSign, ySign)
	case 1:
		return compareBySigns(ySign, xSign)
	case 2:
		return compareBySigns(ySign, -xSign)
	case 3:
		return compareBySigns(-xSign, ySign)
	case 4:
		return compareBySigns(-xSign, -ySign)
	case 5:
		return compareBySigns(-ySign, -xSign)
	case 6:
		return compareBySigns(-ySign, xSign)
	case 7:
		return compareBySigns(xSign, -ySign)
	}
	fatalf("invalid octant value: %d", octant)
	return 0
}

func relativeSign(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBySigns(primary, secondary int) int {
	if primary != 0 {
		return primary
	}
	return secondary
}

func (n *SegmentNode) String() string {
	kind := "vertex"
	if n.isInterior {
		kind = "interior"
	}
	return fmt.Sprintf("SegmentNode %s at (%v, %v) seg %d (%s)",
		dbg.Name(n), n.Coord[0], n.Coord[1], n.SegmentIndex, kind)
}
