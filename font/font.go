// Package font provides bitmap font backends implementing [mtxt.Metrics].
//
// Three kinds of fonts are supported:
//  - Any [golang.org/x/image/font.Face], through [NewFace](). The
//    basic 7x13 face from x/image is available as [Basic]().
//  - BDF fonts, the classic format for LED matrices and X11 bitmap
//    fonts, through [ParseBDF]() and [LoadBDF]().
//  - ggfnt pixel art fonts, through [NewGgfnt]() and [LoadGgfnt]().
//
// All of them implement the [Font] interface, which extends the layout
// metrics with what a rasterizer needs to actually draw glyphs. For
// directories full of fonts, see [Registry].
package font

import "image"
import "path/filepath"
import "strings"

import "github.com/tinne26/mtxt"

// Fonts provide layout metrics and glyph masks. Advances include the
// font's own interspacing, so summing them gives exact line widths.
type Font interface {
	mtxt.Metrics

	// Name used to identify the font, typically its file name
	// without extension.
	Name() string

	// Distance from the top of a line slot to the baseline, in pixels.
	Ascent() int

	// Returns the mask of the given glyph, with bounds relative to the
	// pen position on the baseline (negative y values are above the
	// baseline). Glyphs without any pixels (like spaces) may return a
	// nil mask and a nil error. Unsupported code points return an
	// [*mtxt.GlyphError].
	Mask(codePoint rune) (*image.Alpha, error)
}

type errMsg string
func (self errMsg) Error() string { return string(self) }

// Returned by [Load]() when the file extension doesn't match any
// supported font format.
const ErrUnknownFormat errMsg = "unknown font format"

// Loads a font from the given path, choosing the parser based on the
// file extension (".bdf" or ".ggfnt"). The font name is the file name
// without extension.
func Load(path string) (Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bdf":
		return LoadBDF(path)
	case ".ggfnt":
		return LoadGgfnt(path)
	default:
		return nil, ErrUnknownFormat
	}
}

// Returns whether [Load]() would recognize the path's extension.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bdf", ".ggfnt": return true
	default:
		return false
	}
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
