package font

import "image"
import "os"

import "github.com/tinne26/ggfnt"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/internal"

// Adapts a [*ggfnt.Font] to the [Font] interface.
//
// Code points are mapped to glyphs with the font's default settings,
// taking the first glyph of each mapping group. Rewrite rules and
// custom glyph pickers are not applied, as layout needs one advance
// per code point. The font's horizontal interspacing is included in
// every advance.
type Ggfnt struct {
	font *ggfnt.Font
	name string
	settings *ggfnt.SettingsCache

	interspacingShiftGlyph int8
	interspacingShiftLine int8
}

// Creates a new [Ggfnt] for the given font. Panics if the font is nil.
func NewGgfnt(name string, font *ggfnt.Font) *Ggfnt {
	if font == nil { panic("nil font") }
	return &Ggfnt{
		font: font,
		name: name,
		settings: ggfnt.NewSettingsCache(font),
	}
}

// Loads a ggfnt font from the given path. The font name is the file
// name without extension.
func LoadGgfnt(path string) (*Ggfnt, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	font, err := ggfnt.Parse(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return NewGgfnt(nameFromPath(path), font), file.Close()
}

// Returns the underlying [*ggfnt.Font].
func (self *Ggfnt) Font() *ggfnt.Font { return self.font }

func (self *Ggfnt) Name() string { return self.name }

func (self *Ggfnt) Ascent() int { return int(self.font.Metrics().Ascent()) }

// Implements [mtxt.Metrics].
func (self *Ggfnt) Advance(codePoint rune) (int, error) {
	glyphIndex, err := self.glyphIndex(codePoint)
	if err != nil { return 0, err }
	advance := int(self.font.Glyphs().Advance(glyphIndex))
	interspacing := int(self.font.Metrics().HorzInterspacing()) + int(self.interspacingShiftGlyph)
	return max(0, advance + interspacing), nil
}

// Implements [mtxt.Metrics].
func (self *Ggfnt) LineHeight() int {
	return max(1, self.font.Metrics().LineHeight() + int(self.interspacingShiftLine))
}

// Implements [Font].
func (self *Ggfnt) Mask(codePoint rune) (*image.Alpha, error) {
	glyphIndex, err := self.glyphIndex(codePoint)
	if err != nil { return nil, err }

	fontKey := self.font.Header().ID()
	mask, found := internal.DefaultCache.GetGlyphMask(fontKey, codePoint)
	if found { return mask, nil }

	// mask not found, obtain and cache
	mask = self.font.Glyphs().RasterizeMask(glyphIndex)
	internal.DefaultCache.SetGlyphMask(fontKey, codePoint, mask)
	return mask, nil
}

func (self *Ggfnt) glyphIndex(codePoint rune) (ggfnt.GlyphIndex, error) {
	group, found := self.font.Mapping().Utf8(codePoint, self.settings.UnsafeSlice())
	if !found || group.Size() == 0 {
		return ggfnt.GlyphMissing, &mtxt.GlyphError{ CodePoint: codePoint }
	}
	return group.Select(0), nil
}

// Modifies the current glyph interspacing shift, which is added to
// every advance on top of the font's own interspacing.
func (self *Ggfnt) SetGlyphInterspacingShift(value int8) {
	self.interspacingShiftGlyph = value
}

// Modifies the current line interspacing shift, which is added to the
// font's line height.
func (self *Ggfnt) SetLineInterspacingShift(value int8) {
	self.interspacingShiftLine = value
}
