package advanced

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCIndexSnapRounderOnGridCrossing(t *testing.T) {
	split := nodeStrings(NewMCIndexSnapRounder(NewFixedPrecisionModel(1)),
		NewSegmentString(line(0, 0, 10, 10), nil),
		NewSegmentString(line(0, 10, 10, 0), nil),
	)

	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 5, 5), nil),
		NewSegmentString(line(5, 5, 10, 10), nil),
		NewSegmentString(line(0, 10, 5, 5), nil),
		NewSegmentString(line(5, 5, 10, 0), nil),
	}), edgeSet(split))

	assert.NotPanics(t, func() { NewNodingValidator(split).CheckValid() })
}

func TestMCIndexSnapRounderRoundsIntersection(t *testing.T) {
	// The diagonals cross at (5, 0.5), which rounds to (5, 1). Both strings
	// must be noded at the rounded point, not the true one.
	split := nodeStrings(NewMCIndexSnapRounder(NewFixedPrecisionModel(1)),
		NewSegmentString(line(0, 0, 10, 1), nil),
		NewSegmentString(line(0, 1, 10, 0), nil),
	)

	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 5, 1), nil),
		NewSegmentString(line(5, 1, 10, 1), nil),
		NewSegmentString(line(0, 1, 5, 1), nil),
		NewSegmentString(line(5, 1, 10, 0), nil),
	}), edgeSet(split))

	assert.NotPanics(t, func() { NewNodingValidator(split).CheckValid() })
}

func TestMCIndexSnapRounderVertexPixels(t *testing.T) {
	// Rounding the diagonal crossing onto the horizontal line means the
	// diagonals now pass within half a grid cell of the horizontal line's
	// endpoints. The vertex hot pixels catch that in the same pass, where the
	// iterated noder would need extra rounds.
	split := nodeStrings(NewMCIndexSnapRounder(NewFixedPrecisionModel(1)),
		cascadingTestStrings()...)

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

	assert.NotPanics(t, func() { NewNodingValidator(split).CheckValid() })
}

func TestSimpleSnapRounderMatchesIndexed(t *testing.T) {
	t.Run("cascade", func(t *testing.T) {
		simpleSplit := nodeStrings(NewSimpleSnapRounder(NewFixedPrecisionModel(1)),
			cascadingTestStrings()...)
		indexedSplit := nodeStrings(NewMCIndexSnapRounder(NewFixedPrecisionModel(1)),
			cascadingTestStrings()...)
		assert.Equal(t, edgeSet(simpleSplit), edgeSet(indexedSplit))
	})

	for seed := int64(0); seed < 5; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			simpleSplit := nodeStrings(NewSimpleSnapRounder(NewFixedPrecisionModel(1)),
				randomGridSegmentStrings(rand.New(rand.NewSource(seed)), 5)...)
			indexedSplit := nodeStrings(NewMCIndexSnapRounder(NewFixedPrecisionModel(1)),
				randomGridSegmentStrings(rand.New(rand.NewSource(seed)), 5)...)

			require.Equal(t, edgeSet(simpleSplit), edgeSet(indexedSplit))
		})
	}
}

// randomGridSegmentStrings builds strings whose vertices already lie on the
// unit grid, as the snap rounders require.
func randomGridSegmentStrings(rnd *rand.Rand, n int) []*SegmentString {
	result := make([]*SegmentString, n)
	for i := range result {
		pts := make([]Coord, 2+rnd.Intn(3))
		for j := range pts {
			for {
				pts[j] = NewCoord(float64(rnd.Intn(21)), float64(rnd.Intn(21)))
				if j == 0 || !Equal2D(pts[j], pts[j-1]) {
					break
				}
			}
		}
		result[i] = NewSegmentString(pts, i)
	}
	return result
}
