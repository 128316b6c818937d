// A robust line noding package for Go.
//
// This package takes a set of linestrings which may cross, touch, or overlap
// each other, and splits them at every intersection point, producing a set of
// linestrings that meet only at shared endpoints. That property (being
// "fully noded") is the precondition for almost all polygon overlay and
// topology work.
package noding

import "github.com/osuushi/noding/advanced"

type Coord = advanced.Coord

// Node splits the input lines at every intersection, using full
// floating-point precision. Each input line must have at least two points.
//
// Because rounding the computed intersection points can itself create new
// intersections, noding runs repeatedly until no intersections remain. For
// pathological inputs that never settle, an error is returned; snap rounding
// handles those.
func Node(lines ...[]Coord) (result [][]Coord, err error) {
	defer func() {
		recoveredErr := advanced.HandleNodingPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	segStrings := toSegmentStrings(lines)
	noder := advanced.NewIteratedNoder(advanced.NewFloatingPrecisionModel())
	noder.ComputeNodes(segStrings)
	return toCoordLists(noder.NodedSubstrings()), nil
}

// SnapRound splits the input lines at every intersection and rounds all
// coordinates (vertices and intersection points alike) onto the grid of the
// given scale: a scale of 1000 keeps three decimal digits. Unlike Node, the
// result is guaranteed fully noded for any input, at the cost of moving
// points by up to half a grid cell.
func SnapRound(scale float64, lines ...[]Coord) (result [][]Coord, err error) {
	defer func() {
		recoveredErr := advanced.HandleNodingPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	pm := advanced.NewFixedPrecisionModel(scale)
	// The snap rounder itself works on the integer grid; the scaled wrapper
	// maps the input onto it and back.
	inner := advanced.NewMCIndexSnapRounder(advanced.NewFixedPrecisionModel(1.0))
	noder := advanced.NewScaledNoder(inner, pm.Scale())
	noder.ComputeNodes(toSegmentStrings(lines))
	return toCoordLists(noder.NodedSubstrings()), nil
}

// Validate checks that the input lines are fully noded, returning an error
// describing the first violation found: a crossing without a node, an
// endpoint on another line's interior vertex, or an uncut collapse.
func Validate(lines ...[]Coord) (err error) {
	defer func() {
		recoveredErr := advanced.HandleNodingPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	validator := advanced.NewNodingValidator(toSegmentStrings(lines))
	validator.CheckValid()
	return nil
}

// toSegmentStrings wraps the caller's lines, tagging each string with the
// index of the line it came from so split edges can be traced back.
func toSegmentStrings(lines [][]Coord) []*advanced.SegmentString {
	segStrings := make([]*advanced.SegmentString, len(lines))
	for i, line := range lines {
		pts := make([]Coord, len(line))
		for j, p := range line {
			pts[j] = advanced.CopyCoord(p)
		}
		segStrings[i] = advanced.NewSegmentString(pts, i)
	}
	return segStrings
}

func toCoordLists(segStrings []*advanced.SegmentString) [][]Coord {
	lines := make([][]Coord, len(segStrings))
	for i, ss := range segStrings {
		lines[i] = ss.Coords()
	}
	return lines
}
