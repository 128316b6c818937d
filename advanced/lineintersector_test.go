package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatingLI() *LineIntersector {
	return NewLineIntersector(NewFloatingPrecisionModel())
}

func TestLineIntersectorProperCrossing(t *testing.T) {
	li := floatingLI()
	li.ComputeIntersection(
		NewCoord(0, 0), NewCoord(10, 10),
		NewCoord(0, 10), NewCoord(10, 0),
	)
	require.True(t, li.HasIntersection())
	assert.Equal(t, 1, li.IntersectionNum())
	assert.True(t, li.IsProper())
	assert.True(t, li.IsInteriorIntersection())
	assert.Equal(t, NewCoord(5, 5), li.Intersection(0))
	assert.True(t, li.IsIntersection(NewCoord(5, 5)))
}

func TestLineIntersectorDisjoint(t *testing.T) {
	t.Run("separate envelopes", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(1, 1),
			NewCoord(5, 5), NewCoord(6, 6),
		)
		assert.False(t, li.HasIntersection())
		assert.Equal(t, 0, li.IntersectionNum())
		assert.False(t, li.IsProper())
	})

	t.Run("overlapping envelopes, no crossing", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 0),
			NewCoord(0, 1), NewCoord(10, 2),
		)
		assert.False(t, li.HasIntersection())
	})
}

func TestLineIntersectorEndpointTouch(t *testing.T) {
	t.Run("endpoint on interior", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 0),
			NewCoord(5, 0), NewCoord(5, 5),
		)
		require.True(t, li.HasIntersection())
		assert.Equal(t, 1, li.IntersectionNum())
		assert.False(t, li.IsProper())
		// The touch point is interior to the first segment
		assert.True(t, li.IsInteriorIntersection())
		assert.Equal(t, NewCoord(5, 0), li.Intersection(0))
	})

	t.Run("shared endpoint", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 0),
			NewCoord(10, 0), NewCoord(10, 10),
		)
		require.True(t, li.HasIntersection())
		assert.False(t, li.IsProper())
		assert.False(t, li.IsInteriorIntersection())
		assert.Equal(t, NewCoord(10, 0), li.Intersection(0))
	})
}

func TestLineIntersectorCollinear(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 0),
			NewCoord(5, 0), NewCoord(15, 0),
		)
		require.True(t, li.HasIntersection())
		assert.Equal(t, 2, li.IntersectionNum())
		assert.False(t, li.IsProper())
		assert.True(t, li.IsIntersection(NewCoord(5, 0)))
		assert.True(t, li.IsIntersection(NewCoord(10, 0)))
		assert.True(t, li.IsInteriorIntersection())
	})

	t.Run("containment", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 0),
			NewCoord(2, 0), NewCoord(8, 0),
		)
		require.True(t, li.HasIntersection())
		assert.Equal(t, 2, li.IntersectionNum())
		assert.True(t, li.IsIntersection(NewCoord(2, 0)))
		assert.True(t, li.IsIntersection(NewCoord(8, 0)))
	})

	t.Run("touch at a single shared endpoint", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(5, 0),
			NewCoord(5, 0), NewCoord(10, 0),
		)
		require.True(t, li.HasIntersection())
		assert.Equal(t, 1, li.IntersectionNum())
		assert.Equal(t, NewCoord(5, 0), li.Intersection(0))
		assert.False(t, li.IsInteriorIntersection())
	})

	t.Run("collinear but disjoint", func(t *testing.T) {
		li := floatingLI()
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(1, 1),
			NewCoord(2, 2), NewCoord(3, 3),
		)
		assert.False(t, li.HasIntersection())
	})
}

func TestLineIntersectorPrecisionModel(t *testing.T) {
	t.Run("computed points are rounded", func(t *testing.T) {
		li := NewLineIntersector(NewFixedPrecisionModel(1))
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 1),
			NewCoord(0, 1), NewCoord(10, 0),
		)
		require.True(t, li.HasIntersection())
		assert.True(t, li.IsProper())
		// The true intersection is (5, 0.5); the model rounds it
		assert.Equal(t, NewCoord(5, 1), li.Intersection(0))
	})

	t.Run("endpoint copies are not rounded", func(t *testing.T) {
		li := NewLineIntersector(NewFixedPrecisionModel(1))
		li.ComputeIntersection(
			NewCoord(0, 0), NewCoord(10, 10),
			NewCoord(2.5, 2.5), NewCoord(7, 0),
		)
		require.True(t, li.HasIntersection())
		assert.False(t, li.IsProper())
		assert.Equal(t, NewCoord(2.5, 2.5), li.Intersection(0))
	})
}

func TestLineIntersectorReuse(t *testing.T) {
	// One intersector is reused across calls; state must not leak.
	li := floatingLI()
	li.ComputeIntersection(
		NewCoord(0, 0), NewCoord(10, 10),
		NewCoord(0, 10), NewCoord(10, 0),
	)
	require.True(t, li.IsProper())

	li.ComputeIntersection(
		NewCoord(0, 0), NewCoord(1, 1),
		NewCoord(5, 5), NewCoord(6, 6),
	)
	assert.False(t, li.HasIntersection())
	assert.False(t, li.IsProper())
	assert.Equal(t, 0, li.IntersectionNum())

	assert.Panics(t, func() { NewLineIntersector(nil) })
}
