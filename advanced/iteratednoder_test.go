package advanced

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Under a fixed precision model, rounding the intersection of the two
// diagonals moves it onto the horizontal line, which creates intersections
// that were not in the input. One extra pass resolves them.
func cascadingTestStrings() []*SegmentString {
	return []*SegmentString{
		NewSegmentString(line(0, 0, 10, 1), nil),
		NewSegmentString(line(0, 1, 10, 0), nil),
		NewSegmentString(line(2, 1, 8, 1), nil),
	}
}

func TestIteratedNoderConverges(t *testing.T) {
	noder := NewIteratedNoder(NewFixedPrecisionModel(1))
	noder.ComputeNodes(cascadingTestStrings())
	split := noder.NodedSubstrings()

	// The rounded crossing point (5, 1) lands on the horizontal line, which
	// then has to be noded against all four half-diagonals.
	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 5, 1), nil),
		NewSegmentString(line(5, 1, 8, 1), nil),
		NewSegmentString(line(8, 1, 10, 1), nil),
		NewSegmentString(line(0, 1, 2, 1), nil),
		NewSegmentString(line(2, 1, 5, 1), nil),
		NewSegmentString(line(5, 1, 10, 0), nil),
		NewSegmentString(line(2, 1, 5, 1), nil),
		NewSegmentString(line(5, 1, 8, 1), nil),
	}), edgeSet(split))
}

func TestIteratedNoderNoIntersections(t *testing.T) {
	noder := NewIteratedNoder(NewFloatingPrecisionModel())
	noder.ComputeNodes([]*SegmentString{
		NewSegmentString(line(0, 0, 10, 0), nil),
		NewSegmentString(line(0, 5, 10, 5), nil),
	})
	split := noder.NodedSubstrings()
	require.Len(t, split, 2)
	assert.Equal(t, line(0, 0, 10, 0), split[0].Coords())
	assert.Equal(t, line(0, 5, 10, 5), split[1].Coords())
}

func TestIteratedNoderFloating(t *testing.T) {
	noder := NewIteratedNoder(NewFloatingPrecisionModel())
	noder.ComputeNodes([]*SegmentString{
		NewSegmentString(line(0, 0, 10, 10), nil),
		NewSegmentString(line(0, 10, 10, 0), nil),
	})
	assert.Len(t, noder.NodedSubstrings(), 4)
}

func TestIteratedNoderIterationBound(t *testing.T) {
	runWithBound := func(maxIter int) (err error) {
		defer func() {
			err = HandleNodingPanicRecover(recover())
		}()
		noder := NewIteratedNoder(NewFixedPrecisionModel(1))
		noder.SetMaximumIterations(maxIter)
		noder.ComputeNodes(cascadingTestStrings())
		return nil
	}

	t.Run("enough iterations", func(t *testing.T) {
		assert.NoError(t, runWithBound(DefaultMaxIterations))
	})

	t.Run("bound too low", func(t *testing.T) {
		err := runWithBound(1)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "converge"))
	})

	t.Run("invalid bound", func(t *testing.T) {
		assert.Panics(t, func() {
			NewIteratedNoder(NewFloatingPrecisionModel()).SetMaximumIterations(0)
		})
	})
}
