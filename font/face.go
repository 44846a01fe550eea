package font

import "image"
import "image/draw"
import "sync"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/internal"

// Adapts a [golang.org/x/image/font.Face] to the [Font] interface.
//
// Fractional advances are rounded to whole pixels, as expected for
// bitmap fonts. Calls to the underlying face are serialized, because
// most face implementations are not safe for concurrent use.
type Face struct {
	face xfont.Face
	name string
	key uint64
	ascent int
	lineHeight int

	interspacingShiftGlyph int8
	interspacingShiftLine int8

	mutex sync.Mutex
}

// Creates a new [Face] for the given x/image face. Panics if face is nil.
func NewFace(name string, face xfont.Face) *Face {
	if face == nil { panic("nil face") }

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()
	if lineHeight <= 0 { lineHeight = metrics.Height.Ceil() }
	if lineHeight <= 0 { lineHeight = 1 }

	return &Face{
		face: face,
		name: name,
		key: internal.NewFontKey(),
		ascent: ascent,
		lineHeight: lineHeight,
	}
}

var basicFace *Face
var basicFaceOnce sync.Once

// Returns a [Face] for x/image's basicfont.Face7x13, a fixed 7x13 pixel
// font covering printable ASCII and Latin-1. Useful as a default when
// no font files are available.
func Basic() *Face {
	basicFaceOnce.Do(func() {
		basicFace = NewFace("basic7x13", basicfont.Face7x13)
	})
	return basicFace
}

func (self *Face) Name() string { return self.name }

func (self *Face) Ascent() int { return self.ascent }

// Implements [mtxt.Metrics].
func (self *Face) Advance(codePoint rune) (int, error) {
	self.mutex.Lock()
	advance, ok := self.face.GlyphAdvance(codePoint)
	self.mutex.Unlock()
	if !ok { return 0, &mtxt.GlyphError{ CodePoint: codePoint } }
	return max(0, advance.Round() + int(self.interspacingShiftGlyph)), nil
}

// Implements [mtxt.Metrics].
func (self *Face) LineHeight() int {
	return max(1, self.lineHeight + int(self.interspacingShiftLine))
}

// Implements [Font].
func (self *Face) Mask(codePoint rune) (*image.Alpha, error) {
	mask, found := internal.DefaultCache.GetGlyphMask(self.key, codePoint)
	if found { return mask, nil }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	bounds, src, srcPoint, _, ok := self.face.Glyph(fixed.Point26_6{}, codePoint)
	if !ok { return nil, &mtxt.GlyphError{ CodePoint: codePoint } }
	if src != nil && !bounds.Empty() {
		mask = image.NewAlpha(bounds)
		draw.Draw(mask, bounds, src, srcPoint, draw.Src)
	}
	internal.DefaultCache.SetGlyphMask(self.key, codePoint, mask)
	return mask, nil
}

// Returns the current glyph interspacing shift.
func (self *Face) GlyphInterspacingShift() int8 {
	return self.interspacingShiftGlyph
}

// Returns the current line interspacing shift.
func (self *Face) LineInterspacingShift() int8 {
	return self.interspacingShiftLine
}

// Modifies the current glyph interspacing shift, which is added to
// every advance. Must not be called while the face is being used for
// layout, or line widths could become inconsistent.
func (self *Face) SetGlyphInterspacingShift(value int8) {
	self.interspacingShiftGlyph = value
}

// Modifies the current line interspacing shift, which is added to the
// line height.
func (self *Face) SetLineInterspacingShift(value int8) {
	self.interspacingShiftLine = value
}
