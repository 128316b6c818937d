package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledNoderRoundTrip(t *testing.T) {
	inner := NewMCIndexNoder(NewIntersectionAdder(NewLineIntersector(NewFixedPrecisionModel(1))))
	noder := NewScaledNoder(inner, 10)

	noder.ComputeNodes([]*SegmentString{
		NewSegmentString(line(0, 0, 1, 1), nil),
		NewSegmentString(line(0, 1, 1, 0), nil),
	})
	split := noder.NodedSubstrings()

	require.Len(t, split, 4)
	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 0.5, 0.5), nil),
		NewSegmentString(line(0.5, 0.5, 1, 1), nil),
		NewSegmentString(line(0, 1, 0.5, 0.5), nil),
		NewSegmentString(line(0.5, 0.5, 1, 0), nil),
	}), edgeSet(split))
}

func TestScaledNoderDeduplicatesRoundedPoints(t *testing.T) {
	inner := NewMCIndexNoder(NewIntersectionAdder(NewLineIntersector(NewFixedPrecisionModel(1))))
	noder := NewScaledNoder(inner, 10)

	// (0.04, 0.04) rounds onto (0, 0) at scale 10
	noder.ComputeNodes([]*SegmentString{
		NewSegmentString(line(0, 0, 0.04, 0.04, 1, 1), nil),
	})
	split := noder.NodedSubstrings()
	require.Len(t, split, 1)
	assert.Equal(t, line(0, 0, 1, 1), split[0].Coords())
}

func TestScaledNoderCollapsedString(t *testing.T) {
	inner := NewMCIndexNoder(NewIntersectionAdder(NewLineIntersector(NewFixedPrecisionModel(1))))
	noder := NewScaledNoder(inner, 10)

	// The whole string rounds to a single grid point; it must survive as a
	// (zero length) two point string rather than vanish.
	noder.ComputeNodes([]*SegmentString{
		NewSegmentString(line(0.01, 0.01, 0.04, 0.04), nil),
	})
	split := noder.NodedSubstrings()
	require.Len(t, split, 1)
	assert.Equal(t, line(0, 0, 0, 0), split[0].Coords())
}

func TestScaledNoderIntegerScalePassthrough(t *testing.T) {
	inner := NewMCIndexNoder(NewIntersectionAdder(floatingLI()))
	noder := NewScaledNoder(inner, 1)

	input := NewSegmentString(line(0, 0.25, 10, 0.25), nil)
	noder.ComputeNodes([]*SegmentString{input})
	split := noder.NodedSubstrings()
	require.Len(t, split, 1)
	// At scale 1 nothing is rescaled or rounded
	assert.Equal(t, line(0, 0.25, 10, 0.25), split[0].Coords())

	assert.Panics(t, func() { NewScaledNoder(inner, 0) })
}
