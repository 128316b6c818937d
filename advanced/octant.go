package advanced

import "math"

// Octants classify the direction of a vector into one of eight pie slices,
// numbered counterclockwise from the positive x axis:
//
//	 \2|1/
//	 3\|/0
//	 --+--
//	 4/|\7
//	 /5|6\
//
// Octant 0 includes the positive x axis; each octant is closed on its lower
// boundary and open on its upper one. Nodes that land on the same segment are
// ordered along that segment's direction of travel, and the octant is what
// makes that ordering direction-consistent.

// Octant computes the octant of a direction vector. A zero-length vector has
// no direction, which is a caller error.
func Octant(dx, dy float64) int {
	if dx == 0.0 && dy == 0.0 {
		fatalf("cannot compute the octant for a zero-length vector")
	}

	adx := math.Abs(dx)
	ady := math.Abs(dy)

	if dx >= 0.0 {
		if dy >= 0.0 {
			if adx >= ady {
				return 0
			}
			return 1
		}
		// dy < 0
		if adx >= ady {
			return 7
		}
		return 6
	}
	// dx < 0
	if dy >= 0.0 {
		if adx >= ady {
			return 3
		}
		return 2
	}
	// dy < 0
	if adx >= ady {
		return 4
	}
	return 5
}

// OctantOfSegment computes the octant of the directed segment p0 -> p1.
func OctantOfSegment(p0, p1 Coord) int {
	return Octant(p1[0]-p0[0], p1[1]-p0[1])
}
