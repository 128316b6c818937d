package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// DrawSegmentStrings renders the strings to a PNG and cats it to the
// terminal. Strings are stroked in cyan with their endpoints marked in
// yellow, so a correctly noded set shows matching endpoint dots at every
// intersection.
func DrawSegmentStrings(segStrings []*SegmentString, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, ss := range segStrings {
		for _, p := range ss.Coords() {
			minX = math.Min(minX, p[0])
			minY = math.Min(minY, p[1])
			maxX = math.Max(maxX, p[0])
			maxY = math.Max(maxY, p[1])
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, ss := range segStrings {
		pts := ss.Coords()
		c.MoveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			c.LineTo(p[0], p[1])
		}
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Endpoint dots on top of the strokes
	for _, ss := range segStrings {
		pts := ss.Coords()
		for _, p := range []Coord{pts[0], pts[len(pts)-1]} {
			c.DrawCircle(p[0], p[1], 3/scale)
		}
	}
	c.SetRGB(1, 1, 0)
	c.Fill()

	c.SavePNG("/tmp/segment_strings.png")
	imgcat.CatFile("/tmp/segment_strings.png", os.Stdout)
}
