package advanced

import (
	"math"

	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// IntersectionType classifies the result of intersecting two segments.
type IntersectionType int

const (
	// The segments do not intersect at all.
	NoIntersection IntersectionType = iota
	// The segments intersect in a single point.
	PointIntersection
	// The segments are collinear and overlap; the intersection is itself a
	// segment, reported as its two endpoints.
	CollinearIntersection
)

// LineIntersector computes the intersection of two line segments. It is
// stateful: call ComputeIntersection, then interrogate the result. A single
// intersector is reused across the millions of candidate pairs a noding run
// tests, so it allocates nothing per call except the computed point itself.
//
// Orientation tests go through big.Float arithmetic (bigxy), not the naive
// cross product. Near-collinear segments are exactly where noding breaks
// down, and a single wrong orientation sign produces a missed node that
// corrupts everything downstream, so the slow-but-exact predicate is not
// optional here.
type LineIntersector struct {
	precisionModel *PrecisionModel
	inputLines     [2][2]Coord
	intPt          [2]Coord
	result         IntersectionType
	isProper       bool
}

// NewLineIntersector creates an intersector which rounds computed
// intersection points with the given precision model. The model only applies
// to genuinely computed points; intersections that coincide with an input
// endpoint copy the endpoint exactly.
func NewLineIntersector(pm *PrecisionModel) *LineIntersector {
	if pm == nil {
		fatalf("line intersector requires a precision model")
	}
	return &LineIntersector{precisionModel: pm}
}

func (li *LineIntersector) HasIntersection() bool {
	return li.result != NoIntersection
}

// IntersectionNum returns the number of intersection points (0, 1, or 2).
func (li *LineIntersector) IntersectionNum() int {
	switch li.result {
	case PointIntersection:
		return 1
	case CollinearIntersection:
		return 2
	}
	return 0
}

func (li *LineIntersector) Intersection(i int) Coord {
	return li.intPt[i]
}

// IsProper reports whether the intersection point lies strictly in the
// interior of both segments. A proper intersection is always a single point.
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProper
}

// IsInteriorIntersection reports whether any intersection point is not an
// endpoint of one of the input segments. This is the test that distinguishes
// "these segments merely share a vertex" (fine, already noded) from "one
// segment's interior is touched" (a node is still required there).
func (li *LineIntersector) IsInteriorIntersection() bool {
	return li.isInteriorIntersectionOf(0) || li.isInteriorIntersectionOf(1)
}

func (li *LineIntersector) isInteriorIntersectionOf(inputLineIndex int) bool {
	for i := 0; i < li.IntersectionNum(); i++ {
		if !Equal2D(li.intPt[i], li.inputLines[inputLineIndex][0]) &&
			!Equal2D(li.intPt[i], li.inputLines[inputLineIndex][1]) {
			return true
		}
	}
	return false
}

// IsIntersection reports whether pt is one of the intersection points.
func (li *LineIntersector) IsIntersection(pt Coord) bool {
	for i := 0; i < li.IntersectionNum(); i++ {
		if Equal2D(li.intPt[i], pt) {
			return true
		}
	}
	return false
}

// ComputeIntersection computes the intersection of the segments p1-p2 and
// q1-q2 and stores the result for interrogation.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 Coord) {
	li.inputLines[0][0] = p1
	li.inputLines[0][1] = p2
	li.inputLines[1][0] = q1
	li.inputLines[1][1] = q2
	li.isProper = false

	// Cheap envelope rejection first; the orientation predicates are expensive.
	env1 := EnvelopeOf(p1, p2)
	env2 := EnvelopeOf(q1, q2)
	if !env1.Intersects(env2) {
		li.result = NoIntersection
		return
	}

	// For each endpoint, compute which side of the other segment it lies on.
	// If both endpoints of either segment lie strictly on the same side of the
	// other, the segments cannot intersect.
	q1Side := bigxy.OrientationIndex(p1, p2, q1)
	q2Side := bigxy.OrientationIndex(p1, p2, q2)
	if (q1Side > orientation.Collinear && q2Side > orientation.Collinear) ||
		(q1Side < orientation.Collinear && q2Side < orientation.Collinear) {
		li.result = NoIntersection
		return
	}

	p1Side := bigxy.OrientationIndex(q1, q2, p1)
	p2Side := bigxy.OrientationIndex(q1, q2, p2)
	if (p1Side > orientation.Collinear && p2Side > orientation.Collinear) ||
		(p1Side < orientation.Collinear && p2Side < orientation.Collinear) {
		li.result = NoIntersection
		return
	}

	collinear := q1Side == orientation.Collinear && q2Side == orientation.Collinear &&
		p1Side == orientation.Collinear && p2Side == orientation.Collinear
	if collinear {
		li.result = li.computeCollinearIntersection(p1, p2, q1, q2)
		return
	}

	// At this point there is exactly one intersection point, since the
	// segments are not collinear.
	if q1Side == orientation.Collinear || q2Side == orientation.Collinear ||
		p1Side == orientation.Collinear || p2Side == orientation.Collinear {
		// The intersection is an endpoint of one of the inputs. Copy the
		// endpoint rather than computing it: the copy has the exact original
		// value, which matters for robustness. Two equal endpoints are checked
		// explicitly first, because the orientation results can be mutually
		// inconsistent for nearly-collinear inputs, and the shared endpoint is
		// the one answer that is certainly right.
		switch {
		case Equal2D(p1, q1) || Equal2D(p1, q2):
			li.intPt[0] = CopyCoord(p1)
		case Equal2D(p2, q1) || Equal2D(p2, q2):
			li.intPt[0] = CopyCoord(p2)
		case q1Side == orientation.Collinear:
			li.intPt[0] = CopyCoord(q1)
		case q2Side == orientation.Collinear:
			li.intPt[0] = CopyCoord(q2)
		case p1Side == orientation.Collinear:
			li.intPt[0] = CopyCoord(p1)
		default:
			li.intPt[0] = CopyCoord(p2)
		}
	} else {
		li.isProper = true
		li.intPt[0] = li.intersection(p1, p2, q1, q2)
	}
	li.result = PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 Coord) IntersectionType {
	env1 := EnvelopeOf(p1, p2)
	env2 := EnvelopeOf(q1, q2)
	q1InP := env1.IntersectsCoord(q1)
	q2InP := env1.IntersectsCoord(q2)
	p1InQ := env2.IntersectsCoord(p1)
	p2InQ := env2.IntersectsCoord(p2)

	switch {
	case p1InQ && p2InQ:
		li.intPt[0] = CopyCoord(p1)
		li.intPt[1] = CopyCoord(p2)
		return CollinearIntersection
	case q1InP && q2InP:
		li.intPt[0] = CopyCoord(q1)
		li.intPt[1] = CopyCoord(q2)
		return CollinearIntersection
	case q1InP && p1InQ:
		li.intPt[0] = CopyCoord(q1)
		li.intPt[1] = CopyCoord(p1)
		return collinearOrPoint(q1, p1, q2InP, p2InQ)
	case q1InP && p2InQ:
		li.intPt[0] = CopyCoord(q1)
		li.intPt[1] = CopyCoord(p2)
		return collinearOrPoint(q1, p2, q2InP, p1InQ)
	case q2InP && p1InQ:
		li.intPt[0] = CopyCoord(q2)
		li.intPt[1] = CopyCoord(p1)
		return collinearOrPoint(q2, p1, q1InP, p2InQ)
	case q2InP && p2InQ:
		li.intPt[0] = CopyCoord(q2)
		li.intPt[1] = CopyCoord(p2)
		return collinearOrPoint(q2, p2, q1InP, p1InQ)
	}
	return NoIntersection
}

// Two collinear segments that overlap in a single shared endpoint are a point
// intersection, not a collinear one.
func collinearOrPoint(pt0, pt1 Coord, otherInside1, otherInside2 bool) IntersectionType {
	if Equal2D(pt0, pt1) && !otherInside1 && !otherInside2 {
		return PointIntersection
	}
	return CollinearIntersection
}

// intersection computes the actual value of a proper intersection point, with
// the precision model applied.
func (li *LineIntersector) intersection(p1, p2, q1, q2 Coord) Coord {
	intPt := intersectionWithNormalization(p1, p2, q1, q2)

	// Due to rounding, the computed intersection can land outside the
	// envelopes of the input segments, which is clearly inconsistent. Force a
	// reasonable answer by falling back to the nearest input endpoint.
	if !li.isInSegmentEnvelopes(intPt) {
		intPt = nearestEndpoint(p1, p2, q1, q2)
	}

	li.precisionModel.MakePrecise(intPt)
	return intPt
}

func (li *LineIntersector) isInSegmentEnvelopes(intPt Coord) bool {
	env1 := EnvelopeOf(li.inputLines[0][0], li.inputLines[0][1])
	env2 := EnvelopeOf(li.inputLines[1][0], li.inputLines[1][1])
	return env1.IntersectsCoord(intPt) && env2.IntersectsCoord(intPt)
}

// To obtain maximum precision the coordinates are normalized so that the
// midpoint of the overlap of the two segment envelopes sits at the origin.
// This removes the common significant digits from the calculation, leaving
// more mantissa bits for the part that actually differs.
func intersectionWithNormalization(p1, p2, q1, q2 Coord) Coord {
	n1 := CopyCoord(p1)
	n2 := CopyCoord(p2)
	n3 := CopyCoord(q1)
	n4 := CopyCoord(q2)

	env1 := EnvelopeOf(n1, n2)
	env2 := EnvelopeOf(n3, n4)
	midX := (math.Max(env1.MinX, env2.MinX) + math.Min(env1.MaxX, env2.MaxX)) / 2
	midY := (math.Max(env1.MinY, env2.MinY) + math.Min(env1.MaxY, env2.MaxY)) / 2
	for _, c := range []Coord{n1, n2, n3, n4} {
		c[0] -= midX
		c[1] -= midY
	}

	intPt := safeHCoordinateIntersection(n1, n2, n3, n4)
	intPt[0] += midX
	intPt[1] += midY
	return intPt
}

// safeHCoordinateIntersection computes the intersection using homogeneous
// coordinates. Round-off can make the raw computation blow up (usually for
// nearly-parallel segments); in that case a reasonable approximation is
// returned instead.
func safeHCoordinateIntersection(p1, p2, q1, q2 Coord) Coord {
	// Unrolled 2x2 determinants of the two line equations.
	px := p1[1] - p2[1]
	py := p2[0] - p1[0]
	pw := p1[0]*p2[1] - p2[0]*p1[1]

	qx := q1[1] - q2[1]
	qy := q2[0] - q1[0]
	qw := q1[0]*q2[1] - q2[0]*q1[1]

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	xInt := x / w
	yInt := y / w
	if math.IsNaN(xInt) || math.IsInf(xInt, 0) || math.IsNaN(yInt) || math.IsInf(yInt, 0) {
		return nearestEndpoint(p1, p2, q1, q2)
	}
	return NewCoord(xInt, yInt)
}

// nearestEndpoint picks the input endpoint closest to the centroid of all
// four endpoints. For the nearly-parallel failure cases this is a defensible
// stand-in for the true intersection, and crucially it is a value that
// already exists in the input, so it cannot introduce a brand new coordinate.
func nearestEndpoint(p1, p2, q1, q2 Coord) Coord {
	centreX := (p1[0] + p2[0] + q1[0] + q2[0]) / 4
	centreY := (p1[1] + p2[1] + q1[1] + q2[1]) / 4

	nearest := p1
	minDist := math.Hypot(p1[0]-centreX, p1[1]-centreY)
	for _, c := range []Coord{p2, q1, q2} {
		dist := math.Hypot(c[0]-centreX, c[1]-centreY)
		if dist < minDist {
			minDist = dist
			nearest = c
		}
	}
	return CopyCoord(nearest)
}
