package advanced

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeStrings(noder Noder, segStrings ...*SegmentString) []*SegmentString {
	noder.ComputeNodes(segStrings)
	return noder.NodedSubstrings()
}

// edgeSet renders the split edges in a canonical order for comparison.
func edgeSet(segStrings []*SegmentString) []string {
	result := make([]string, len(segStrings))
	for i, ss := range segStrings {
		result[i] = fmt.Sprintf("%v", ss.Coords())
	}
	sort.Strings(result)
	return result
}

func TestMCIndexNoderCrossing(t *testing.T) {
	li := floatingLI()
	adder := NewIntersectionAdder(li)
	noder := NewMCIndexNoder(adder)

	split := nodeStrings(noder,
		NewSegmentString(line(0, 0, 10, 10), nil),
		NewSegmentString(line(0, 10, 10, 0), nil),
	)

	require.Len(t, split, 4)
	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 5, 5), nil),
		NewSegmentString(line(5, 5, 10, 10), nil),
		NewSegmentString(line(0, 10, 5, 5), nil),
		NewSegmentString(line(5, 5, 10, 0), nil),
	}), edgeSet(split))

	assert.True(t, adder.HasIntersection())
	assert.True(t, adder.HasProperIntersection())
	assert.True(t, adder.HasInteriorIntersection())
	assert.Equal(t, 1, adder.SegmentIntersections())
	assert.Equal(t, 1, adder.ProperIntersections())
	assert.Equal(t, 1, adder.InteriorIntersections())
	assert.Equal(t, NewCoord(5, 5), adder.ProperIntersectionPoint())
}

func TestSimpleNoderCrossing(t *testing.T) {
	li := floatingLI()
	noder := NewSimpleNoder(NewIntersectionAdder(li))

	split := nodeStrings(noder,
		NewSegmentString(line(0, 0, 10, 10), nil),
		NewSegmentString(line(0, 10, 10, 0), nil),
	)
	require.Len(t, split, 4)
	for _, ss := range split {
		assert.Equal(t, 2, ss.Size())
		assert.True(t, Equal2D(ss.Coord(0), NewCoord(5, 5)) || Equal2D(ss.Coord(1), NewCoord(5, 5)))
	}
}

func TestNoderDataThreading(t *testing.T) {
	li := floatingLI()
	noder := NewMCIndexNoder(NewIntersectionAdder(li))

	split := nodeStrings(noder,
		NewSegmentString(line(0, 0, 10, 10), "a"),
		NewSegmentString(line(0, 10, 10, 0), "b"),
	)
	counts := map[interface{}]int{}
	for _, ss := range split {
		counts[ss.Data()]++
	}
	assert.Equal(t, map[interface{}]int{"a": 2, "b": 2}, counts)
}

func TestNoderClosedRing(t *testing.T) {
	// Adjacent segments of a ring, including the wraparound pair, share
	// vertices; none of that is an intersection worth noding.
	li := floatingLI()
	adder := NewIntersectionAdder(li)
	noder := NewMCIndexNoder(adder)

	ring := NewSegmentString(line(0, 0, 10, 0, 10, 10, 0, 10, 0, 0), nil)
	split := nodeStrings(noder, ring)

	require.Len(t, split, 1)
	assert.Equal(t, ring.Coords(), split[0].Coords())
	assert.False(t, adder.HasInteriorIntersection())
}

func TestNoderTouchingStrings(t *testing.T) {
	// An endpoint landing on another string's interior still needs a node
	// on that string.
	li := floatingLI()
	noder := NewMCIndexNoder(NewIntersectionAdder(li))

	split := nodeStrings(noder,
		NewSegmentString(line(0, 0, 10, 0), nil),
		NewSegmentString(line(5, 0, 5, 5), nil),
	)
	assert.Equal(t, edgeSet([]*SegmentString{
		NewSegmentString(line(0, 0, 5, 0), nil),
		NewSegmentString(line(5, 0, 10, 0), nil),
		NewSegmentString(line(5, 0, 5, 5), nil),
	}), edgeSet(split))
}

func randomSegmentStrings(rnd *rand.Rand, n int) []*SegmentString {
	result := make([]*SegmentString, n)
	for i := range result {
		pts := make([]Coord, 2+rnd.Intn(4))
		for j := range pts {
			pts[j] = NewCoord(rnd.Float64()*20, rnd.Float64()*20)
		}
		result[i] = NewSegmentString(pts, i)
	}
	return result
}

func TestSimpleAndMCIndexNodersAgree(t *testing.T) {
	// The chain index only prunes candidate pairs; the noded output must be
	// exactly what the brute force noder produces.
	for seed := int64(0); seed < 10; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			simpleSplit := nodeStrings(
				NewSimpleNoder(NewIntersectionAdder(floatingLI())),
				randomSegmentStrings(rand.New(rand.NewSource(seed)), 6)...,
			)
			indexedSplit := nodeStrings(
				NewMCIndexNoder(NewIntersectionAdder(floatingLI())),
				randomSegmentStrings(rand.New(rand.NewSource(seed)), 6)...,
			)
			assert.Equal(t, edgeSet(simpleSplit), edgeSet(indexedSplit))
		})
	}
}

func TestNoderRequiresIntersector(t *testing.T) {
	assert.Panics(t, func() { NewSimpleNoder(nil) })
	assert.Panics(t, func() {
		NewMCIndexNoder(nil).ComputeNodes([]*SegmentString{
			NewSegmentString(line(0, 0, 1, 1), nil),
		})
	})
}
