package advanced

import "math"

// ScaledNoder wraps a noder that assumes integer-valued coordinates (the
// snap rounders) and makes it usable on arbitrary input: coordinates are
// scaled up and rounded to integers, the wrapped noder runs, and the results
// are scaled back down. A scale factor of 1 means the input is already on
// the integer grid and the wrapper passes everything through untouched.
type ScaledNoder struct {
	noder       Noder
	scaleFactor float64
}

func NewScaledNoder(noder Noder, scaleFactor float64) *ScaledNoder {
	if scaleFactor <= 0 {
		fatalf("scale factor must be positive, got %v", scaleFactor)
	}
	return &ScaledNoder{noder: noder, scaleFactor: scaleFactor}
}

func (n *ScaledNoder) isIntegerScale() bool {
	return n.scaleFactor == 1.0
}

func (n *ScaledNoder) ComputeNodes(inputSegStrings []*SegmentString) {
	if n.isIntegerScale() {
		n.noder.ComputeNodes(inputSegStrings)
		return
	}
	n.noder.ComputeNodes(n.scale(inputSegStrings))
}

func (n *ScaledNoder) NodedSubstrings() []*SegmentString {
	splitSS := n.noder.NodedSubstrings()
	if n.isIntegerScale() {
		return splitSS
	}
	for _, ss := range splitSS {
		n.rescale(ss)
	}
	return splitSS
}

// scale maps each string onto the integer grid. Rounding can make adjacent
// vertices coincide, so duplicates are removed; a string that collapses to a
// single distinct point keeps a duplicate second vertex so it remains a
// valid (zero-length) string.
func (n *ScaledNoder) scale(segStrings []*SegmentString) []*SegmentString {
	scaled := make([]*SegmentString, 0, len(segStrings))
	for _, ss := range segStrings {
		pts := ss.Coords()
		scaledPts := make([]Coord, 0, len(pts))
		for _, p := range pts {
			sp := NewCoord(
				math.Round(p[0]*n.scaleFactor),
				math.Round(p[1]*n.scaleFactor),
			)
			if len(scaledPts) > 0 && Equal2D(scaledPts[len(scaledPts)-1], sp) {
				continue
			}
			scaledPts = append(scaledPts, sp)
		}
		if len(scaledPts) < 2 {
			scaledPts = append(scaledPts, CopyCoord(scaledPts[0]))
		}
		scaled = append(scaled, NewSegmentString(scaledPts, ss.Data()))
	}
	return scaled
}

// rescale maps a result string back to the original coordinate space, in
// place.
func (n *ScaledNoder) rescale(ss *SegmentString) {
	for _, p := range ss.Coords() {
		p[0] /= n.scaleFactor
		p[1] /= n.scaleFactor
	}
}
