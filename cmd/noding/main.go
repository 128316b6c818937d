package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	svgparser "github.com/JoshVarga/svgparser"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/noding"
	"github.com/osuushi/noding/advanced"
)

// Command line demo of noding. Input on stdin should be newline separated
// points in the form "x y", with each linestring separated by an extra
// newline; alternatively --svg reads the line, polyline and polygon elements
// of an SVG file. The noded edges are written back in the same "x y" form.

var (
	svgPath   = kingpin.Flag("svg", "Read input from an SVG file instead of stdin.").String()
	snapScale = kingpin.Flag("snap", "Snap-round onto a grid of this scale (e.g. 1000 keeps three decimals) instead of noding at full precision.").Default("0").Float64()
	validate  = kingpin.Flag("validate", "Check that the output is fully noded.").Bool()
	quiet     = kingpin.Flag("quiet", "Suppress the noded edge output, printing only the summary.").Short('q').Bool()
	draw      = kingpin.Flag("draw", "Draw the noded edges to the terminal (requires an imgcat-capable terminal).").Bool()
	drawScale = kingpin.Flag("draw-scale", "Pixels per coordinate unit when drawing.").Default("10").Float64()
)

func main() {
	kingpin.Parse()

	var lines [][]noding.Coord
	if *svgPath != "" {
		var err error
		lines, err = readSVG(*svgPath)
		kingpin.FatalIfError(err, "reading %s", *svgPath)
	} else {
		lines = readLines(os.Stdin)
	}
	if len(lines) == 0 {
		kingpin.Fatalf("no input lines")
	}

	var result [][]noding.Coord
	var err error
	if *snapScale > 0 {
		result, err = noding.SnapRound(*snapScale, lines...)
	} else {
		result, err = noding.Node(lines...)
	}
	kingpin.FatalIfError(err, "noding failed")

	fmt.Fprintf(os.Stderr, "Read %d lines, produced %d noded edges\n", len(lines), len(result))

	if *validate {
		kingpin.FatalIfError(noding.Validate(result...), "validation failed")
		fmt.Fprintln(os.Stderr, "Output is fully noded")
	}

	if !*quiet {
		writeLines(os.Stdout, result)
	}

	if *draw {
		segStrings := make([]*advanced.SegmentString, len(result))
		for i, line := range result {
			segStrings[i] = advanced.NewSegmentString(line, i)
		}
		advanced.DrawSegmentStrings(segStrings, *drawScale)
	}
}

func readLines(in *os.File) [][]noding.Coord {
	lines := [][]noding.Coord{}
	scanner := bufio.NewScanner(in)
	points := []noding.Coord{}
	for scanner.Scan() {
		// Read the next line
		text := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the
		// linestring
		if strings.TrimSpace(text) == "" {
			if len(points) > 0 {
				lines = append(lines, points)
				points = []noding.Coord{}
			}
			continue
		}

		points = append(points, parsePoint(text))
	}

	// Handle trailing linestring if any
	if len(points) > 0 {
		lines = append(lines, points)
	}
	return lines
}

func parsePoint(text string) noding.Coord {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		kingpin.Fatalf("cannot parse point from %q", text)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	kingpin.FatalIfError(err, "cannot parse point from %q", text)
	y, err := strconv.ParseFloat(parts[1], 64)
	kingpin.FatalIfError(err, "cannot parse point from %q", text)
	return noding.Coord{x, y}
}

func writeLines(out *os.File, lines [][]noding.Coord) {
	w := bufio.NewWriter(out)
	defer w.Flush()
	for i, line := range lines {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, p := range line {
			fmt.Fprintf(w, "%v %v\n", p[0], p[1])
		}
	}
}

// readSVG extracts the linework from an SVG file: line, polyline and polygon
// elements. Polygons are closed back to their first point. Anything else
// (paths, transforms) is out of scope for a debugging tool.
func readSVG(path string) ([][]noding.Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := svgparser.Parse(f, false)
	if err != nil {
		return nil, err
	}

	var lines [][]noding.Coord
	for _, el := range root.FindAll("line") {
		x1, err1 := strconv.ParseFloat(el.Attributes["x1"], 64)
		y1, err2 := strconv.ParseFloat(el.Attributes["y1"], 64)
		x2, err3 := strconv.ParseFloat(el.Attributes["x2"], 64)
		y2, err4 := strconv.ParseFloat(el.Attributes["y2"], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("unparseable line element in %s", path)
		}
		lines = append(lines, []noding.Coord{{x1, y1}, {x2, y2}})
	}
	for _, el := range root.FindAll("polyline") {
		points, err := parsePointsAttribute(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		lines = append(lines, points)
	}
	for _, el := range root.FindAll("polygon") {
		points, err := parsePointsAttribute(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		// Close the ring
		points = append(points, noding.Coord{points[0][0], points[0][1]})
		lines = append(lines, points)
	}
	return lines, nil
}

func parsePointsAttribute(attr string) ([]noding.Coord, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 4 || len(fields)%2 != 0 {
		return nil, fmt.Errorf("unparseable points attribute %q", attr)
	}
	points := make([]noding.Coord, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, noding.Coord{x, y})
	}
	return points, nil
}
