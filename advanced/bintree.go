package advanced

import "math"

// Interval is a closed 1-dimensional extent.
type Interval struct {
	Min, Max float64
}

func NewInterval(min, max float64) Interval {
	return Interval{Min: math.Min(min, max), Max: math.Max(min, max)}
}

func (i Interval) Width() float64 {
	return i.Max - i.Min
}

func (i Interval) Overlaps(other Interval) bool {
	return !(other.Min > i.Max || other.Max < i.Min)
}

func (i Interval) Contains(other Interval) bool {
	return other.Min >= i.Min && other.Max <= i.Max
}

func (i *Interval) ExpandToInclude(other Interval) {
	if other.Min < i.Min {
		i.Min = other.Min
	}
	if other.Max > i.Max {
		i.Max = other.Max
	}
}

// Bintree is the 1-dimensional counterpart of Quadtree: a dynamic index over
// items with intervals, with power-of-two node extents anchored at the
// origin. It indexes the projections of geometry onto an axis, which is how
// interval-overlap queries over many segments get answered without a scan.
// Queries are conservative in the same way quadtree queries are.
type Bintree struct {
	root      *binRoot
	minExtent float64
}

func NewBintree() *Bintree {
	return &Bintree{
		root:      &binRoot{},
		minExtent: 1.0,
	}
}

// Insert adds an item with the given interval.
func (t *Bintree) Insert(itemInterval Interval, item interface{}) {
	t.collectStats(itemInterval)
	insertInterval := ensureWidth(itemInterval, t.minExtent)
	t.root.insert(insertInterval, item)
}

// Remove removes a single occurrence of the item, using the interval it was
// inserted with to locate it. Reports whether the item was found.
func (t *Bintree) Remove(itemInterval Interval, item interface{}) bool {
	searchInterval := ensureWidth(itemInterval, t.minExtent)
	return t.root.remove(searchInterval, item)
}

// Query visits every candidate item for the search interval.
func (t *Bintree) Query(searchInterval Interval, visit func(item interface{})) {
	t.root.query(searchInterval, visit)
}

// QueryAll collects the candidates into a slice.
func (t *Bintree) QueryAll(searchInterval Interval) []interface{} {
	var items []interface{}
	t.Query(searchInterval, func(item interface{}) {
		items = append(items, item)
	})
	return items
}

// Size returns the number of items in the tree.
func (t *Bintree) Size() int {
	return t.root.size()
}

// Depth returns the height of the tree.
func (t *Bintree) Depth() int {
	return t.root.depth()
}

func (t *Bintree) collectStats(itemInterval Interval) {
	if w := itemInterval.Width(); w < t.minExtent && w > 0 {
		t.minExtent = w
	}
}

// ensureWidth pads a zero-width interval so every stored interval has
// positive extent.
func ensureWidth(itemInterval Interval, minExtent float64) Interval {
	if itemInterval.Min != itemInterval.Max {
		return itemInterval
	}
	return Interval{
		Min: itemInterval.Min - minExtent/2,
		Max: itemInterval.Max + minExtent/2,
	}
}

// binRoot is the root of the tree: no extent of its own, two halves anchored
// at the origin, and items straddling the origin kept directly on it.
type binRoot struct {
	items    []interface{}
	subnodes [2]*binNode
}

func (r *binRoot) insert(itemInterval Interval, item interface{}) {
	index := binSubnodeIndex(itemInterval, 0)
	if index == -1 {
		r.items = append(r.items, item)
		return
	}
	node := r.subnodes[index]
	if node == nil || !node.interval.Contains(itemInterval) {
		r.subnodes[index] = createExpandedBinNode(node, itemInterval)
	}
	binInsertContained(r.subnodes[index], itemInterval, item)
}

// binInsertContained inserts an item known to be contained in the node,
// stopping at the existing depth when the interval is too narrow to resolve.
func binInsertContained(tree *binNode, itemInterval Interval, item interface{}) {
	var node *binNode
	if IsZeroWidth(itemInterval.Min, itemInterval.Max) {
		node = tree.find(itemInterval)
	} else {
		node = tree.getNode(itemInterval)
	}
	node.items = append(node.items, item)
}

func (r *binRoot) remove(itemInterval Interval, item interface{}) bool {
	index := binSubnodeIndex(itemInterval, 0)
	if index != -1 && r.subnodes[index] != nil {
		if r.subnodes[index].remove(itemInterval, item) {
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

func (r *binRoot) query(searchInterval Interval, visit func(item interface{})) {
	for _, item := range r.items {
		visit(item)
	}
	for _, sub := range r.subnodes {
		if sub != nil {
			sub.query(searchInterval, visit)
		}
	}
}

func (r *binRoot) size() int {
	n := len(r.items)
	for _, sub := range r.subnodes {
		if sub != nil {
			n += sub.size()
		}
	}
	return n
}

func (r *binRoot) depth() int {
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

// binNode is an anchored cell: an interval of width 2^level starting on a
// multiple of 2^level.
type binNode struct {
	items    []interface{}
	subnodes [2]*binNode

	interval Interval
	centre   float64
	level    int
}

func newBinNode(itemInterval Interval) *binNode {
	level, keyInterval := binKey(itemInterval)
	return newBinNodeAt(keyInterval, level)
}

func newBinNodeAt(interval Interval, level int) *binNode {
	return &binNode{
		interval: interval,
		centre:   (interval.Min + interval.Max) / 2,
		level:    level,
	}
}

// binKey computes the smallest origin-anchored power-of-two cell containing
// the interval, bumping the level when the first estimate straddles a cell
// boundary.
func binKey(itemInterval Interval) (int, Interval) {
	level := Exponent(itemInterval.Width()) + 1
	keyInterval := binKeyInterval(itemInterval, level)
	for !keyInterval.Contains(itemInterval) {
		level++
		keyInterval = binKeyInterval(itemInterval, level)
	}
	return level, keyInterval
}

func binKeyInterval(itemInterval Interval, level int) Interval {
	size := PowerOf2(level)
	min := math.Floor(itemInterval.Min/size) * size
	return Interval{Min: min, Max: min + size}
}

// binSubnodeIndex returns which half of the centre wholly contains the
// interval, or -1 if it straddles the centre.
func binSubnodeIndex(itemInterval Interval, centre float64) int {
	if itemInterval.Max <= centre {
		return 0
	}
	if itemInterval.Min >= centre {
		return 1
	}
	return -1
}

func createExpandedBinNode(node *binNode, addInterval Interval) *binNode {
	expandInterval := addInterval
	if node != nil {
		expandInterval.ExpandToInclude(node.interval)
	}
	largerNode := newBinNode(expandInterval)
	if node != nil {
		largerNode.insertNode(node)
	}
	return largerNode
}

func (n *binNode) getNode(searchInterval Interval) *binNode {
	index := binSubnodeIndex(searchInterval, n.centre)
	if index == -1 {
		return n
	}
	return n.getSubnode(index).getNode(searchInterval)
}

func (n *binNode) find(searchInterval Interval) *binNode {
	index := binSubnodeIndex(searchInterval, n.centre)
	if index == -1 || n.subnodes[index] == nil {
		return n
	}
	return n.subnodes[index].find(searchInterval)
}

func (n *binNode) getSubnode(index int) *binNode {
	if n.subnodes[index] == nil {
		n.subnodes[index] = n.createSubnode(index)
	}
	return n.subnodes[index]
}

func (n *binNode) createSubnode(index int) *binNode {
	var min, max float64
	if index == 0 {
		min, max = n.interval.Min, n.centre
	} else {
		min, max = n.centre, n.interval.Max
	}
	return newBinNodeAt(Interval{Min: min, Max: max}, n.level-1)
}

func (n *binNode) insertNode(node *binNode) {
	index := binSubnodeIndex(node.interval, n.centre)
	if node.level == n.level-1 {
		n.subnodes[index] = node
		return
	}
	childNode := n.createSubnode(index)
	childNode.insertNode(node)
	n.subnodes[index] = childNode
}

func (n *binNode) remove(itemInterval Interval, item interface{}) bool {
	if !n.interval.Overlaps(itemInterval) {
		return false
	}
	for i, sub := range n.subnodes {
		if sub == nil {
			continue
		}
		if sub.remove(itemInterval, item) {
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

func (n *binNode) isPrunable() bool {
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

func (n *binNode) query(searchInterval Interval, visit func(item interface{})) {
	if !n.interval.Overlaps(searchInterval) {
		return
	}
	for _, item := range n.items {
		visit(item)
	}
	for _, sub := range n.subnodes {
		if sub != nil {
			sub.query(searchInterval, visit)
		}
	}
}

func (n *binNode) size() int {
	count := len(n.items)
	for _, sub := range n.subnodes {
		if sub != nil {
			count += sub.size()
		}
	}
	return count
}

func (n *binNode) depth() int {
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
