package advanced

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// Coord is the coordinate primitive for the whole package. We use go-geom's
// coordinate type directly so that callers working with that ecosystem can
// hand us their slices without conversion. Only the X and Y ordinates are
// ever consulted; any Z or M values ride along untouched.
type Coord = geom.Coord

func NewCoord(x, y float64) Coord {
	return Coord{x, y}
}

// Copy a coordinate down to 2D. Nodes own their own copies of intersection
// points, so they must never alias a point list that is still being split.
func CopyCoord(c Coord) Coord {
	return Coord{c[0], c[1]}
}

// 2D equality. Exact comparison is deliberate: after a precision model has
// rounded two coordinates, they are either identical or distinct, and the
// node bookkeeping relies on that dichotomy. Z is ignored.
func Equal2D(a, b Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// Lexicographic x-then-y comparison.
func CompareCoords2D(a, b Coord) int {
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	case a[1] < b[1]:
		return -1
	case a[1] > b[1]:
		return 1
	}
	return 0
}

// Envelope is an axis-aligned bounding box. The zero value is the nil
// envelope (the envelope of nothing), which is represented by MinX > MaxX so
// that expanding it by any coordinate produces that coordinate's envelope.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NilEnvelope returns the envelope of the empty set.
func NilEnvelope() Envelope {
	return Envelope{MinX: 0, MinY: 0, MaxX: -1, MaxY: -1}
}

func NewEnvelope(x0, y0, x1, y1 float64) Envelope {
	return Envelope{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// EnvelopeOf gives the envelope of a single segment.
func EnvelopeOf(p0, p1 Coord) Envelope {
	return NewEnvelope(p0[0], p0[1], p1[0], p1[1])
}

func EnvelopeOfCoord(p Coord) Envelope {
	return NewEnvelope(p[0], p[1], p[0], p[1])
}

func (e *Envelope) IsNil() bool {
	return e.MaxX < e.MinX
}

func (e *Envelope) Width() float64 {
	if e.IsNil() {
		return 0
	}
	return e.MaxX - e.MinX
}

func (e *Envelope) Height() float64 {
	if e.IsNil() {
		return 0
	}
	return e.MaxY - e.MinY
}

func (e *Envelope) ExpandToIncludeCoord(p Coord) {
	e.ExpandToInclude(EnvelopeOfCoord(p))
}

func (e *Envelope) ExpandToInclude(other Envelope) {
	if other.IsNil() {
		return
	}
	if e.IsNil() {
		*e = other
		return
	}
	e.MinX = math.Min(e.MinX, other.MinX)
	e.MinY = math.Min(e.MinY, other.MinY)
	e.MaxX = math.Max(e.MaxX, other.MaxX)
	e.MaxY = math.Max(e.MaxY, other.MaxY)
}

func (e *Envelope) ExpandBy(distance float64) {
	if e.IsNil() {
		return
	}
	e.MinX -= distance
	e.MinY -= distance
	e.MaxX += distance
	e.MaxY += distance
}

// Boundary touches count as intersection. The candidate discovery layers are
// allowed to over-approximate, never to miss.
func (e *Envelope) Intersects(other Envelope) bool {
	if e.IsNil() || other.IsNil() {
		return false
	}
	return !(other.MinX > e.MaxX || other.MaxX < e.MinX ||
		other.MinY > e.MaxY || other.MaxY < e.MinY)
}

func (e *Envelope) IntersectsCoord(p Coord) bool {
	if e.IsNil() {
		return false
	}
	return p[0] >= e.MinX && p[0] <= e.MaxX && p[1] >= e.MinY && p[1] <= e.MaxY
}

func (e *Envelope) Contains(other Envelope) bool {
	if e.IsNil() || other.IsNil() {
		return false
	}
	return other.MinX >= e.MinX && other.MaxX <= e.MaxX &&
		other.MinY >= e.MinY && other.MaxY <= e.MaxY
}

func (e *Envelope) Centre() Coord {
	return NewCoord((e.MinX+e.MaxX)/2, (e.MinY+e.MaxY)/2)
}
