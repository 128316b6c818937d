package advanced

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomEnvelope(rnd *rand.Rand) Envelope {
	x := rnd.Float64() * 100
	y := rnd.Float64() * 100
	return NewEnvelope(x, y, x+rnd.Float64()*10, y+rnd.Float64()*10)
}

func TestSTRtreeQuery(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	tree := NewSTRtree()
	envs := make([]Envelope, 200)
	for i := range envs {
		envs[i] = randomEnvelope(rnd)
		tree.Insert(envs[i], i)
	}
	require.Equal(t, 200, tree.Size())

	for q := 0; q < 25; q++ {
		q := q
		window := randomEnvelope(rnd)
		t.Run(fmt.Sprintf("window %d", q), func(t *testing.T) {
			var expected []int
			for i, env := range envs {
				if env.Intersects(window) {
					expected = append(expected, i)
				}
			}
			var actual []int
			tree.Query(window, func(item interface{}) {
				actual = append(actual, item.(int))
			})
			assert.ElementsMatch(t, expected, actual)
		})
	}
}

func TestSTRtreeSmall(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tree := NewSTRtree()
		assert.Empty(t, tree.QueryAll(NewEnvelope(0, 0, 100, 100)))
	})

	t.Run("single item", func(t *testing.T) {
		tree := NewSTRtree()
		tree.Insert(NewEnvelope(0, 0, 1, 1), "a")
		assert.Equal(t, []interface{}{"a"}, tree.QueryAll(NewEnvelope(0.5, 0.5, 2, 2)))
		assert.Empty(t, tree.QueryAll(NewEnvelope(5, 5, 6, 6)))
	})

	t.Run("more items than one node holds", func(t *testing.T) {
		tree := NewSTRtreeWithCapacity(2)
		for i := 0; i < 20; i++ {
			x := float64(i)
			tree.Insert(NewEnvelope(x, 0, x+0.5, 1), i)
		}
		assert.ElementsMatch(t, []interface{}{3, 4, 5}, tree.QueryAll(NewEnvelope(3.1, 0, 5.2, 1)))
	})
}

func TestSTRtreeInsertAfterBuild(t *testing.T) {
	tree := NewSTRtree()
	tree.Insert(NewEnvelope(0, 0, 1, 1), "a")
	tree.Build()
	assert.Panics(t, func() {
		tree.Insert(NewEnvelope(2, 2, 3, 3), "b")
	})

	assert.Panics(t, func() { NewSTRtreeWithCapacity(1) })
}
