package mtxt

import "unicode/utf8"

// A placement is a code point resolved to absolute canvas coordinates.
// (X, Y) is the top-left corner of the glyph's line slot, with y growing
// downwards. Rasterizers are expected to draw the glyph baseline at
// Y + font ascent.
type Placement struct {
	CodePoint rune
	X, Y int
}

// Maps the given lines to absolute glyph placements within a canvas of
// the given size.
//
// The lines are stacked without any additional spacing, each taking
// exactly lineHeight pixels, and the resulting block is positioned
// vertically based on the align's vertical component. Each line is
// then positioned horizontally on its own, based on its pixel width
// and the align's horizontal component. See [Align.HorzOffset]() and
// [Align.VertOffset]() for the exact formulas.
//
// Placements are returned in line order and, within each line, in
// code point order. Empty lines don't produce placements, but they
// still take their line slot. Nothing is clipped: coordinates can be
// negative or exceed the canvas when the text doesn't fit, and it's
// up to the rasterizer to discard what's not visible.
//
// The metrics must be the same ones used to break the lines. Line
// height must be strictly positive.
func MapGlyphs(lines []string, metrics Metrics, lineHeight, canvasWidth, canvasHeight int, align Align) ([]Placement, error) {
	if lineHeight <= 0 { panic(preViolation + ": line height must be strictly positive") }

	var numCodePoints int
	for _, line := range lines {
		numCodePoints += utf8.RuneCountInString(line)
	}
	placements := make([]Placement, 0, numCodePoints)

	var advances []int
	y := align.VertOffset(canvasHeight, lineHeight*len(lines))
	for _, line := range lines {
		// gather advances and line width
		var lineWidth int
		advances = advances[ : 0]
		for _, codePoint := range line {
			advance, err := metrics.Advance(codePoint)
			if err != nil { return nil, err }
			advances = append(advances, advance)
			lineWidth += advance
		}

		// emit line placements
		x := align.HorzOffset(canvasWidth, lineWidth)
		var index int
		for _, codePoint := range line {
			placements = append(placements, Placement{ CodePoint: codePoint, X: x, Y: y })
			x += advances[index]
			index += 1
		}
		y += lineHeight
	}

	return placements, nil
}
