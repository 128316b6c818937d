package advanced

import "math"

// HotPixel is the tolerance square of width 1/scaleFactor centred on a snap
// point. During snap rounding every segment that passes through a hot pixel
// is noded at the pixel's centre, which is what keeps rounded output
// consistent: a segment can't sneak past a vertex closer than half a grid
// cell without acquiring a node there.
//
// The boundary is half-open: the top and right edges belong to the pixels
// above and to the right, so adjacent pixels tile the plane without a
// segment along a shared edge being claimed twice. The containment test is
// only exact when the snap point and the tested segments lie on the integer
// grid defined by scaleFactor; ScaledNoder arranges exactly that.
type HotPixel struct {
	li          *LineIntersector
	pt          Coord
	originalPt  Coord
	scaleFactor float64

	minx, maxx, miny, maxy float64

	// The corners of the tolerance square, counterclockwise from top-right.
	corner [4]Coord

	safeEnv    Envelope
	hasSafeEnv bool
}

// safeEnvExpansionFactor pads the query envelope by 3/4 of a grid cell, a
// hair more than the half cell the pixel itself spans.
const safeEnvExpansionFactor = 0.75

func NewHotPixel(pt Coord, scaleFactor float64, li *LineIntersector) *HotPixel {
	if scaleFactor <= 0 {
		fatalf("hot pixel scale factor must be positive, got %v", scaleFactor)
	}
	h := &HotPixel{
		li:          li,
		originalPt:  pt,
		pt:          pt,
		scaleFactor: scaleFactor,
	}
	if scaleFactor != 1.0 {
		h.pt = NewCoord(h.scale(pt[0]), h.scale(pt[1]))
	}
	h.initCorners(h.pt)
	return h
}

// Coordinate returns the snap point in the original (unscaled) coordinate
// space. Nodes are inserted at this point, never at the scaled one.
func (h *HotPixel) Coordinate() Coord {
	return h.originalPt
}

// SafeEnvelope returns an envelope guaranteed to contain everything that can
// interact with the pixel, for use as an index query window.
func (h *HotPixel) SafeEnvelope() Envelope {
	if !h.hasSafeEnv {
		safeTolerance := safeEnvExpansionFactor / h.scaleFactor
		h.safeEnv = EnvelopeOfCoord(h.originalPt)
		h.safeEnv.ExpandBy(safeTolerance)
		h.hasSafeEnv = true
	}
	return h.safeEnv
}

func (h *HotPixel) initCorners(pt Coord) {
	const tolerance = 0.5
	h.minx = pt[0] - tolerance
	h.maxx = pt[0] + tolerance
	h.miny = pt[1] - tolerance
	h.maxy = pt[1] + tolerance

	h.corner[0] = NewCoord(h.maxx, h.maxy)
	h.corner[1] = NewCoord(h.minx, h.maxy)
	h.corner[2] = NewCoord(h.minx, h.miny)
	h.corner[3] = NewCoord(h.maxx, h.miny)
}

func (h *HotPixel) scale(val float64) float64 {
	return math.Round(val * h.scaleFactor)
}

// Intersects reports whether the segment p0-p1 (given in the original
// coordinate space) passes through the pixel.
func (h *HotPixel) Intersects(p0, p1 Coord) bool {
	if h.scaleFactor == 1.0 {
		return h.intersectsScaled(p0, p1)
	}
	return h.intersectsScaled(
		NewCoord(h.scale(p0[0]), h.scale(p0[1])),
		NewCoord(h.scale(p1[0]), h.scale(p1[1])),
	)
}

func (h *HotPixel) intersectsScaled(p0, p1 Coord) bool {
	segMinX := math.Min(p0[0], p1[0])
	segMaxX := math.Max(p0[0], p1[0])
	segMinY := math.Min(p0[1], p1[1])
	segMaxY := math.Max(p0[1], p1[1])

	if h.maxx < segMinX || h.minx > segMaxX || h.maxy < segMinY || h.miny > segMaxY {
		return false
	}
	return h.intersectsToleranceSquare(p0, p1)
}

// intersectsToleranceSquare tests the segment against the square with the
// half-open boundary rule. A proper crossing of any edge is inside. A
// non-proper touch only counts when the segment meets both the left and the
// bottom edges (the closed sides), or when an endpoint is the pixel centre
// itself.
func (h *HotPixel) intersectsToleranceSquare(p0, p1 Coord) bool {
	intersectsLeft := false
	intersectsBottom := false

	h.li.ComputeIntersection(p0, p1, h.corner[0], h.corner[1])
	if h.li.IsProper() {
		return true
	}

	h.li.ComputeIntersection(p0, p1, h.corner[1], h.corner[2])
	if h.li.IsProper() {
		return true
	}
	intersectsLeft = h.li.HasIntersection()

	h.li.ComputeIntersection(p0, p1, h.corner[2], h.corner[3])
	if h.li.IsProper() {
		return true
	}
	intersectsBottom = h.li.HasIntersection()

	h.li.ComputeIntersection(p0, p1, h.corner[3], h.corner[0])
	if h.li.IsProper() {
		return true
	}

	if intersectsLeft && intersectsBottom {
		return true
	}
	if Equal2D(p0, h.pt) {
		return true
	}
	if Equal2D(p1, h.pt) {
		return true
	}
	return false
}

// AddSnappedNode nodes the given segment at the pixel centre if the segment
// passes through the pixel. Reports whether a node was added.
func (h *HotPixel) AddSnappedNode(segStr *SegmentString, segIndex int) bool {
	p0 := segStr.Coord(segIndex)
	p1 := segStr.Coord(segIndex + 1)
	if !h.Intersects(p0, p1) {
		return false
	}
	segStr.AddIntersection(h.Coordinate(), segIndex)
	return true
}
