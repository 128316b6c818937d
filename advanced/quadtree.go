package advanced

import "math"

// Quadtree is a dynamic spatial index over items with envelopes. Unlike the
// STR tree it accepts interleaved inserts, removals and queries, at the cost
// of a looser structure. Node extents are powers of two anchored at the
// origin, so a node's quadrant boundaries never drift no matter what order
// items arrive in, and an item always lands in the smallest anchored cell
// that contains its envelope.
//
// Queries are conservative: they return every item whose node intersects the
// search envelope, which is a superset of the items whose own envelopes do.
// Callers filter the candidates exactly, as the noding pipeline always does.
type Quadtree struct {
	root *quadRoot

	// minExtent tracks the smallest non-zero envelope extent seen, and is
	// used to pad zero-extent envelopes so that points and horizontal or
	// vertical segments still get a cell of sensible size.
	minExtent float64
}

func NewQuadtree() *Quadtree {
	return &Quadtree{
		root:      &quadRoot{},
		minExtent: 1.0,
	}
}

// Insert adds an item with the given envelope.
func (q *Quadtree) Insert(itemEnv Envelope, item interface{}) {
	if itemEnv.IsNil() {
		fatalf("cannot insert a nil envelope into a quadtree")
	}
	q.collectStats(itemEnv)
	insertEnv := ensureExtent(itemEnv, q.minExtent)
	q.root.insert(insertEnv, item)
}

// Remove removes a single occurrence of the item, using the envelope it was
// inserted with to locate it. Reports whether the item was found.
func (q *Quadtree) Remove(itemEnv Envelope, item interface{}) bool {
	searchEnv := ensureExtent(itemEnv, q.minExtent)
	return q.root.remove(searchEnv, item)
}

// Query visits every candidate item for the search envelope.
func (q *Quadtree) Query(searchEnv Envelope, visit func(item interface{})) {
	if searchEnv.IsNil() {
		return
	}
	q.root.query(searchEnv, visit)
}

// QueryAll collects the candidates into a slice.
func (q *Quadtree) QueryAll(searchEnv Envelope) []interface{} {
	var items []interface{}
	q.Query(searchEnv, func(item interface{}) {
		items = append(items, item)
	})
	return items
}

// Size returns the number of items in the tree.
func (q *Quadtree) Size() int {
	return q.root.size()
}

// Depth returns the height of the tree.
func (q *Quadtree) Depth() int {
	return q.root.depth()
}

func (q *Quadtree) collectStats(itemEnv Envelope) {
	if w := itemEnv.Width(); w < q.minExtent && w > 0 {
		q.minExtent = w
	}
	if h := itemEnv.Height(); h < q.minExtent && h > 0 {
		q.minExtent = h
	}
}

// ensureExtent pads an envelope that is degenerate in either dimension, so
// that every stored envelope has positive width and height.
func ensureExtent(itemEnv Envelope, minExtent float64) Envelope {
	minX, maxX := itemEnv.MinX, itemEnv.MaxX
	minY, maxY := itemEnv.MinY, itemEnv.MaxY
	if minX != maxX && minY != maxY {
		return itemEnv
	}
	if minX == maxX {
		minX -= minExtent / 2
		maxX += minExtent / 2
	}
	if minY == maxY {
		minY -= minExtent / 2
		maxY += minExtent / 2
	}
	return Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// quadRoot is the root of the tree. It has no extent of its own; its four
// quadrants are anchored at the origin, and items whose envelopes straddle
// an axis live directly on the root.
type quadRoot struct {
	items    []interface{}
	subnodes [4]*quadNode
}

func (r *quadRoot) insert(itemEnv Envelope, item interface{}) {
	index := quadSubnodeIndex(itemEnv, 0, 0)
	// The envelope straddles an axis, so no origin quadrant contains it.
	if index == -1 {
		r.items = append(r.items, item)
		return
	}
	node := r.subnodes[index]
	if node == nil || !node.env.Contains(itemEnv) {
		r.subnodes[index] = createExpandedQuadNode(node, itemEnv)
	}
	insertContained(r.subnodes[index], itemEnv, item)
}

// insertContained inserts an item known to be contained in the given node,
// creating the smallest descendant cell that still contains the envelope.
// If the envelope has (near) zero width or height at the node's resolution,
// descending would recurse without bound, so the item stays at the deepest
// existing node instead.
func insertContained(tree *quadNode, itemEnv Envelope, item interface{}) {
	isZeroX := IsZeroWidth(itemEnv.MinX, itemEnv.MaxX)
	isZeroY := IsZeroWidth(itemEnv.MinY, itemEnv.MaxY)
	var node *quadNode
	if isZeroX || isZeroY {
		node = tree.find(itemEnv)
	} else {
		node = tree.getNode(itemEnv)
	}
	node.items = append(node.items, item)
}

func (r *quadRoot) remove(itemEnv Envelope, item interface{}) bool {
	index := quadSubnodeIndex(itemEnv, 0, 0)
	if index != -1 && r.subnodes[index] != nil {
		if r.subnodes[index].remove(itemEnv, item) {
			if r.subnodes[index].isPrunable() {
				r.subnodes[index] = nil
			}
			return true
		}
	}
	if i := indexOfItem(r.items, item); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
		return true
	}
	return false
}

func (r *quadRoot) query(searchEnv Envelope, visit func(item interface{})) {
	for _, item := range r.items {
		visit(item)
	}
	for _, sub := range r.subnodes {
		if sub != nil {
			sub.query(searchEnv, visit)
		}
	}
}

func (r *quadRoot) size() int {
	n := len(r.items)
	for _, sub := range r.subnodes {
		if sub != nil {
			n += sub.size()
		}
	}
	return n
}

func (r *quadRoot) depth() int {
	maxSub := 0
	for _, sub := range r.subnodes {
		if sub != nil {
			if d := sub.depth(); d > maxSub {
				maxSub = d
			}
		}
	}
	return 1 + maxSub
}

// quadNode is an anchored cell: its envelope is a square of side 2^level
// whose corners lie on multiples of 2^level.
type quadNode struct {
	items    []interface{}
	subnodes [4]*quadNode

	env     Envelope
	centreX float64
	centreY float64
	level   int
}

// newQuadNode creates the smallest anchored cell containing env.
func newQuadNode(env Envelope) *quadNode {
	level, keyEnv := quadKey(env)
	return newQuadNodeAt(keyEnv, level)
}

func newQuadNodeAt(env Envelope, level int) *quadNode {
	return &quadNode{
		env:     env,
		centreX: (env.MinX + env.MaxX) / 2,
		centreY: (env.MinY + env.MaxY) / 2,
		level:   level,
	}
}

// quadKey computes the level and envelope of the smallest origin-anchored
// power-of-two cell containing env. The initial level estimate from the
// envelope's larger dimension can be one short when the envelope straddles a
// cell boundary, so the level is bumped until the cell actually contains it.
func quadKey(env Envelope) (int, Envelope) {
	level := quadLevel(env)
	keyEnv := quadKeyEnvelope(env, level)
	for !keyEnv.Contains(env) {
		level++
		keyEnv = quadKeyEnvelope(env, level)
	}
	return level, keyEnv
}

func quadLevel(env Envelope) int {
	maxDim := math.Max(env.Width(), env.Height())
	return Exponent(maxDim) + 1
}

func quadKeyEnvelope(env Envelope, level int) Envelope {
	quadSize := PowerOf2(level)
	x := math.Floor(env.MinX/quadSize) * quadSize
	y := math.Floor(env.MinY/quadSize) * quadSize
	return Envelope{MinX: x, MinY: y, MaxX: x + quadSize, MaxY: y + quadSize}
}

// quadSubnodeIndex returns which quadrant of the centre point wholly
// contains env, or -1 if env straddles a centre line.
func quadSubnodeIndex(env Envelope, centreX, centreY float64) int {
	index := -1
	if env.MinX >= centreX {
		if env.MinY >= centreY {
			index = 3
		}
		if env.MaxY <= centreY {
			index = 1
		}
	}
	if env.MaxX <= centreX {
		if env.MinY >= centreY {
			index = 2
		}
		if env.MaxY <= centreY {
			index = 0
		}
	}
	return index
}

// createExpandedQuadNode returns a cell containing both the given node (which
// may be nil) and the envelope, re-rooting the node beneath it if needed.
func createExpandedQuadNode(node *quadNode, addEnv Envelope) *quadNode {
	expandEnv := addEnv
	if node != nil {
		expandEnv.ExpandToInclude(node.env)
	}
	largerNode := newQuadNode(expandEnv)
	if node != nil {
		largerNode.insertNode(node)
	}
	return largerNode
}

// getNode returns the smallest descendant cell containing searchEnv,
// creating intermediate cells as needed.
func (n *quadNode) getNode(searchEnv Envelope) *quadNode {
	index := quadSubnodeIndex(searchEnv, n.centreX, n.centreY)
	if index == -1 {
		return n
	}
	return n.getSubnode(index).getNode(searchEnv)
}

// find returns the deepest existing cell containing searchEnv, without
// creating anything.
func (n *quadNode) find(searchEnv Envelope) *quadNode {
	index := quadSubnodeIndex(searchEnv, n.centreX, n.centreY)
	if index == -1 || n.subnodes[index] == nil {
		return n
	}
	return n.subnodes[index].find(searchEnv)
}

func (n *quadNode) getSubnode(index int) *quadNode {
	if n.subnodes[index] == nil {
		n.subnodes[index] = n.createSubnode(index)
	}
	return n.subnodes[index]
}

func (n *quadNode) createSubnode(index int) *quadNode {
	var minX, maxX, minY, maxY float64
	switch index {
	case 0:
		minX, maxX = n.env.MinX, n.centreX
		minY, maxY = n.env.MinY, n.centreY
	case 1:
		minX, maxX = n.centreX, n.env.MaxX
		minY, maxY = n.env.MinY, n.centreY
	case 2:
		minX, maxX = n.env.MinX, n.centreX
		minY, maxY = n.centreY, n.env.MaxY
	case 3:
		minX, maxX = n.centreX, n.env.MaxX
		minY, maxY = n.centreY, n.env.MaxY
	}
	return newQuadNodeAt(Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, n.level-1)
}

// insertNode hangs an existing node below this one. Levels are absolute
// (anchored), so a node one level down slots in directly; deeper nodes get
// intermediate cells created above them.
func (n *quadNode) insertNode(node *quadNode) {
	index := quadSubnodeIndex(node.env, n.centreX, n.centreY)
	if node.level == n.level-1 {
		n.subnodes[index] = node
		return
	}
	childNode := n.createSubnode(index)
	childNode.insertNode(node)
	n.subnodes[index] = childNode
}

func (n *quadNode) remove(itemEnv Envelope, item interface{}) bool {
	if !n.env.Intersects(itemEnv) {
		return false
	}
	for i, sub := range n.subnodes {
		if sub == nil {
			continue
		}
		if sub.remove(itemEnv, item) {
			if sub.isPrunable() {
				n.subnodes[i] = nil
			}
			return true
		}
	}
	if i := indexOfItem(n.items, item); i >= 0 {
		n.items = append(n.items[:i], n.items[i+1:]...)
		return true
	}
	return false
}

func (n *quadNode) isPrunable() bool {
	if len(n.items) > 0 {
		return false
	}
	for _, sub := range n.subnodes {
		if sub != nil {
			return false
		}
	}
	return true
}

func (n *quadNode) query(searchEnv Envelope, visit func(item interface{})) {
	if !n.env.Intersects(searchEnv) {
		return
	}
	for _, item := range n.items {
		visit(item)
	}
	for _, sub := range n.subnodes {
		if sub != nil {
			sub.query(searchEnv, visit)
		}
	}
}

func (n *quadNode) size() int {
	count := len(n.items)
	for _, sub := range n.subnodes {
		if sub != nil {
			count += sub.size()
		}
	}
	return count
}

func (n *quadNode) depth() int {
	maxSub := 0
	for _, sub := range n.subnodes {
		if sub != nil {
			if d := sub.depth(); d > maxSub {
				maxSub = d
			}
		}
	}
	return 1 + maxSub
}

func indexOfItem(items []interface{}, item interface{}) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}
