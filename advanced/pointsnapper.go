package advanced

// MCIndexPointSnapper snaps segments to hot pixels using a prebuilt chain
// index, usually the one the MCIndexNoder constructed during its pass over
// the same strings. Sharing the index is what keeps the second phase of snap
// rounding cheap.
type MCIndexPointSnapper struct {
	index *STRtree
}

func NewMCIndexPointSnapper(index *STRtree) *MCIndexPointSnapper {
	return &MCIndexPointSnapper{index: index}
}

// Snap nodes every indexed segment passing through the hot pixel at the
// pixel centre. When the pixel was built from a vertex, parentEdge and
// hotPixelVertexIndex identify the segment owning that vertex, which must
// not snap to itself. Reports whether any node was added.
func (s *MCIndexPointSnapper) Snap(hotPixel *HotPixel, parentEdge *SegmentString, hotPixelVertexIndex int) bool {
	pixelEnv := hotPixel.SafeEnvelope()
	nodeAdded := false
	s.index.Query(pixelEnv, func(item interface{}) {
		testChain := item.(*MonotoneChain)
		testChain.Select(pixelEnv, func(segIndex int) {
			ss := testChain.SegmentString()
			if parentEdge != nil && ss == parentEdge && segIndex == hotPixelVertexIndex {
				return
			}
			if hotPixel.AddSnappedNode(ss, segIndex) {
				nodeAdded = true
			}
		})
	})
	return nodeAdded
}

// SnapPoint is Snap for a pixel built from an intersection point rather than
// a vertex, where no segment is exempt.
func (s *MCIndexPointSnapper) SnapPoint(hotPixel *HotPixel) bool {
	return s.Snap(hotPixel, nil, -1)
}
