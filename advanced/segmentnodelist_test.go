package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSplitEdgesSingleNode(t *testing.T) {
	ss := NewSegmentString(line(0, 0, 10, 0), "tag")
	ss.AddIntersection(NewCoord(5, 0), 0)

	split := NodedSubstrings([]*SegmentString{ss})
	require.Len(t, split, 2)
	assert.Equal(t, line(0, 0, 5, 0), split[0].Coords())
	assert.Equal(t, line(5, 0, 10, 0), split[1].Coords())

	// The children carry the parent's data
	assert.Equal(t, "tag", split[0].Data())
	assert.Equal(t, "tag", split[1].Data())
}

func TestAddSplitEdgesOrdering(t *testing.T) {
	t.Run("forward segment", func(t *testing.T) {
		ss := NewSegmentString(line(0, 0, 10, 0), nil)
		// Insertion order must not matter
		ss.AddIntersection(NewCoord(7, 0), 0)
		ss.AddIntersection(NewCoord(3, 0), 0)

		split := NodedSubstrings([]*SegmentString{ss})
		require.Len(t, split, 3)
		assert.Equal(t, line(0, 0, 3, 0), split[0].Coords())
		assert.Equal(t, line(3, 0, 7, 0), split[1].Coords())
		assert.Equal(t, line(7, 0, 10, 0), split[2].Coords())
	})

	t.Run("reversed segment orders along travel", func(t *testing.T) {
		ss := NewSegmentString(line(10, 0, 0, 0), nil)
		ss.AddIntersection(NewCoord(3, 0), 0)
		ss.AddIntersection(NewCoord(7, 0), 0)

		split := NodedSubstrings([]*SegmentString{ss})
		require.Len(t, split, 3)
		assert.Equal(t, line(10, 0, 7, 0), split[0].Coords())
		assert.Equal(t, line(7, 0, 3, 0), split[1].Coords())
		assert.Equal(t, line(3, 0, 0, 0), split[2].Coords())
	})
}

func TestAddSplitEdgesInteriorVertices(t *testing.T) {
	// Nodes on different segments, with untouched vertices in between
	ss := NewSegmentString(line(0, 0, 10, 0, 20, 0, 30, 0), nil)
	ss.AddIntersection(NewCoord(5, 0), 0)
	ss.AddIntersection(NewCoord(25, 0), 2)

	split := NodedSubstrings([]*SegmentString{ss})
	require.Len(t, split, 3)
	assert.Equal(t, line(0, 0, 5, 0), split[0].Coords())
	assert.Equal(t, line(5, 0, 10, 0, 20, 0, 25, 0), split[1].Coords())
	assert.Equal(t, line(25, 0, 30, 0), split[2].Coords())
}

func TestAddSplitEdgesNoNodes(t *testing.T) {
	// With no intersections, splitting returns the string itself (as one
	// edge covering all vertices).
	ss := NewSegmentString(line(0, 0, 5, 5, 10, 0), nil)
	split := NodedSubstrings([]*SegmentString{ss})
	require.Len(t, split, 1)
	assert.Equal(t, ss.Coords(), split[0].Coords())
}

func TestAddSplitEdgesCollapse(t *testing.T) {
	// An a-b-a doubling back must be cut at b even though nothing else
	// touches it.
	ss := NewSegmentString(line(0, 0, 5, 5, 0, 0), nil)
	split := NodedSubstrings([]*SegmentString{ss})
	require.Len(t, split, 2)
	assert.Equal(t, line(0, 0, 5, 5), split[0].Coords())
	assert.Equal(t, line(5, 5, 0, 0), split[1].Coords())
}

func TestSegmentNodeCompareTo(t *testing.T) {
	ss := NewSegmentString(line(0, 0, 10, 0, 20, 0), nil)

	nodeAt := func(pt Coord, segIndex int) *SegmentNode {
		return ss.NodeList().Add(pt, segIndex)
	}

	vertex := nodeAt(NewCoord(10, 0), 1)
	early := nodeAt(NewCoord(3, 0), 0)
	late := nodeAt(NewCoord(7, 0), 0)
	onSecond := nodeAt(NewCoord(15, 0), 1)

	// Segment index dominates
	assert.Equal(t, -1, early.CompareTo(onSecond))
	assert.Equal(t, 1, onSecond.CompareTo(early))
	// Along one segment, order of travel
	assert.Equal(t, -1, early.CompareTo(late))
	// A node on the start vertex precedes interior nodes of its segment
	assert.Equal(t, -1, vertex.CompareTo(onSecond))
	assert.Equal(t, 1, onSecond.CompareTo(vertex))
	// Same position is equal
	assert.Equal(t, 0, early.CompareTo(nodeAt(NewCoord(3, 0), 0)))
}
