package advanced

import (
	"math"
	"sort"
)

// STRtree is a packed R-tree built with the Sort-Tile-Recursive loading
// algorithm. It is a static index: all items are inserted first, the tree is
// built once (lazily, on the first query), and no insertion is allowed
// afterwards. The bulk load produces well-filled nodes with little overlap,
// which is what makes it the index of choice for the chain-based noder,
// where the full item set is known up front.
type STRtree struct {
	nodeCapacity int
	entries      []strEntry
	root         *strNode
	built        bool
}

type strEntry struct {
	env  Envelope
	item interface{}
}

type strNode struct {
	env      Envelope
	children []*strNode
	entries  []strEntry
}

const defaultSTRtreeNodeCapacity = 10

func NewSTRtree() *STRtree {
	return NewSTRtreeWithCapacity(defaultSTRtreeNodeCapacity)
}

func NewSTRtreeWithCapacity(nodeCapacity int) *STRtree {
	if nodeCapacity < 2 {
		fatalf("STR tree node capacity must be at least 2, got %d", nodeCapacity)
	}
	return &STRtree{nodeCapacity: nodeCapacity}
}

// Size returns the number of items in the tree.
func (t *STRtree) Size() int {
	return len(t.entries)
}

// Insert adds an item with the given bounds. Inserting after the tree has
// been built is a programming error.
func (t *STRtree) Insert(env Envelope, item interface{}) {
	if t.built {
		fatalf("cannot insert into an STR tree after it has been built")
	}
	if env.IsNil() {
		return
	}
	t.entries = append(t.entries, strEntry{env: env, item: item})
}

// Build packs the inserted items into the tree. Calling it more than once is
// harmless; Query calls it implicitly.
func (t *STRtree) Build() {
	if t.built {
		return
	}
	t.built = true
	if len(t.entries) == 0 {
		return
	}
	nodes := t.packEntries(t.entries)
	for len(nodes) > 1 {
		nodes = t.packNodes(nodes)
	}
	t.root = nodes[0]
}

// packEntries builds the leaf level: entries are sorted into vertical slices
// by envelope centre x, each slice is sorted by centre y, and consecutive
// runs of nodeCapacity entries become leaf nodes.
func (t *STRtree) packEntries(entries []strEntry) []*strNode {
	sorted := make([]strEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci := sorted[i].env.Centre()
		cj := sorted[j].env.Centre()
		return ci[0] < cj[0]
	})

	sliceCapacity := t.sliceCapacity(len(sorted))
	var nodes []*strNode
	for start := 0; start < len(sorted); start += sliceCapacity {
		end := start + sliceCapacity
		if end > len(sorted) {
			end = len(sorted)
		}
		slice := sorted[start:end]
		sort.SliceStable(slice, func(i, j int) bool {
			ci := slice[i].env.Centre()
			cj := slice[j].env.Centre()
			return ci[1] < cj[1]
		})
		for s := 0; s < len(slice); s += t.nodeCapacity {
			e := s + t.nodeCapacity
			if e > len(slice) {
				e = len(slice)
			}
			node := &strNode{env: NilEnvelope(), entries: slice[s:e]}
			for _, entry := range node.entries {
				node.env.ExpandToInclude(entry.env)
			}
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// packNodes builds one interior level above the given nodes, with the same
// slice-then-tile scheme applied to the node envelopes.
func (t *STRtree) packNodes(nodes []*strNode) []*strNode {
	sorted := make([]*strNode, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].env.Centre()[0] < sorted[j].env.Centre()[0]
	})

	sliceCapacity := t.sliceCapacity(len(sorted))
	var parents []*strNode
	for start := 0; start < len(sorted); start += sliceCapacity {
		end := start + sliceCapacity
		if end > len(sorted) {
			end = len(sorted)
		}
		slice := sorted[start:end]
		sort.SliceStable(slice, func(i, j int) bool {
			return slice[i].env.Centre()[1] < slice[j].env.Centre()[1]
		})
		for s := 0; s < len(slice); s += t.nodeCapacity {
			e := s + t.nodeCapacity
			if e > len(slice) {
				e = len(slice)
			}
			parent := &strNode{env: NilEnvelope(), children: slice[s:e]}
			for _, child := range parent.children {
				parent.env.ExpandToInclude(child.env)
			}
			parents = append(parents, parent)
		}
	}
	return parents
}

// sliceCapacity is the number of elements per vertical slice such that the
// slices tile into roughly square groups of nodeCapacity.
func (t *STRtree) sliceCapacity(n int) int {
	nodeCount := int(math.Ceil(float64(n) / float64(t.nodeCapacity)))
	sliceCount := int(math.Ceil(math.Sqrt(float64(nodeCount))))
	capacity := int(math.Ceil(float64(n) / float64(sliceCount)))
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

// Query visits every item whose bounds intersect searchEnv. The tree is
// built on the first call.
func (t *STRtree) Query(searchEnv Envelope, visit func(item interface{})) {
	t.Build()
	if t.root == nil || searchEnv.IsNil() {
		return
	}
	t.root.query(searchEnv, visit)
}

// QueryAll collects matching items into a slice, for callers that don't want
// to thread a visitor.
func (t *STRtree) QueryAll(searchEnv Envelope) []interface{} {
	var items []interface{}
	t.Query(searchEnv, func(item interface{}) {
		items = append(items, item)
	})
	return items
}

func (n *strNode) query(searchEnv Envelope, visit func(item interface{})) {
	if !n.env.Intersects(searchEnv) {
		return
	}
	for _, entry := range n.entries {
		if entry.env.Intersects(searchEnv) {
			visit(entry.item)
		}
	}
	for _, child := range n.children {
		child.query(searchEnv, visit)
	}
}
