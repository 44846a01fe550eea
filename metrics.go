package mtxt

import "fmt"

// Metrics is the capability interface that the layout functions use
// to obtain glyph sizes. Any bitmap font backend can implement it; see
// the mtxt/font package for the ones provided out of the box.
//
// Advances are given in pixels and must already include any spacing
// the font wants between consecutive glyphs. The line height is shared
// by all the glyphs of the font and must be strictly positive.
//
// Implementations must be consistent: two calls with the same code
// point must always return the same advance. Line breaking and glyph
// mapping both rely on this to agree on line widths.
type Metrics interface {
	Advance(codePoint rune) (int, error)
	LineHeight() int
}

// Returned (wrapped in a [*GlyphError]) when a [Metrics] implementation
// can't provide an advance for a code point. Missing glyphs are never
// replaced silently, as that would make line widths diverge between
// [BreakLines]() and [MapGlyphs]().
const ErrUnsupportedGlyph errMsg = "unsupported glyph"

// Error type for code points missing from a font. Matches
// [ErrUnsupportedGlyph] through [errors.Is]().
type GlyphError struct {
	CodePoint rune
}

func (self *GlyphError) Error() string {
	return fmt.Sprintf("%s %q (%U)", string(ErrUnsupportedGlyph), self.CodePoint, self.CodePoint)
}

func (self *GlyphError) Is(target error) bool {
	return target == ErrUnsupportedGlyph
}

// Returns the width of the given line in pixels, which is simply the
// sum of the advances of all its code points.
func LineWidth(line string, metrics Metrics) (int, error) {
	var width int
	for _, codePoint := range line {
		advance, err := metrics.Advance(codePoint)
		if err != nil { return 0, err }
		width += advance
	}
	return width, nil
}
