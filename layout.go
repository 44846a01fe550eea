package mtxt

// Canvas and alignment settings for a layout operation. Configs are
// plain values owned by the caller: to change the alignment, the size
// or anything else, modify the config and lay the text out again.
type Config struct {
	Width  int // canvas width, in pixels
	Height int // canvas height, in pixels
	Align  Align
}

// Breaks the given text into lines that fit the config's canvas width
// and maps them to glyph placements. Equivalent to [LayoutWithWrap]()
// with maxLineLen = config.Width.
func Layout(text string, metrics Metrics, config Config) ([]Placement, error) {
	return LayoutWithWrap(text, metrics, config, config.Width)
}

// Like [Layout](), but wrapping lines at the given 'maxLineLen'
// instead of the canvas width.
//
// The function has no side effects and keeps no state, so calling it
// again with the same arguments will always produce the same result.
// It's also safe to call it concurrently, as long as the metrics
// implementation is.
func LayoutWithWrap(text string, metrics Metrics, config Config, maxLineLen int) ([]Placement, error) {
	lines, err := BreakLines(text, maxLineLen, metrics)
	if err != nil { return nil, err }
	return MapGlyphs(lines, metrics, metrics.LineHeight(), config.Width, config.Height, config.Align)
}

// Returns the size of the block that the given text would occupy
// after being wrapped at 'maxLineLen'. The width is the width of the
// widest line, which might exceed maxLineLen if any word does. The
// height is always at least one line height, even for empty text.
func Measure(text string, metrics Metrics, maxLineLen int) (width, height int, err error) {
	lines, err := BreakLines(text, maxLineLen, metrics)
	if err != nil { return 0, 0, err }
	for _, line := range lines {
		lineWidth, err := LineWidth(line, metrics)
		if err != nil { return 0, 0, err }
		width = max(width, lineWidth)
	}
	return width, len(lines)*metrics.LineHeight(), nil
}
