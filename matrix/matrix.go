// Package matrix implements a virtual LED matrix that can draw the
// glyph placements produced by mtxt.
//
// A [Matrix] owns a framebuffer, the current colors, font and brightness.
// Drawing operations only modify the framebuffer; [Matrix.Sync]() is what
// sends the frame (with brightness applied) to the registered sinks, like
// a real panel driver would:
//   panel := matrix.New(64, 32)
//   panel.AddSink(matrix.NewTermSink(os.Stdout))
//   panel.SetFgColor(matrix.Colors["Magenta"])
//   _, err := panel.Render("HELLO, MATRIX!", mtxt.Center)
//   if err != nil { return err }
//   err = panel.Sync()
package matrix

import "image"
import "image/color"
import "image/draw"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/font"

// Receives frames from [Matrix.Sync]().
//
// Frames are copies owned by the sink, already adjusted to the
// matrix brightness.
type Sink interface {
	Show(frame *image.RGBA) error
}

type Matrix struct {
	frame *image.RGBA
	font font.Font
	fg color.RGBA
	bg color.RGBA
	brightness uint8

	sinks []Sink
	afterSync func(*Matrix)
}

// Creates a new matrix with the given size in pixels (LEDs). Defaults:
//  - Foreground color white, background color black.
//  - Brightness 100.
//  - Font set to [font.Basic]().
// Non-positive sizes will make the function panic.
func New(width, height int) *Matrix {
	if width <= 0 || height <= 0 { panic("matrix size must be strictly positive") }
	return &Matrix{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
		font: font.Basic(),
		fg: color.RGBA{255, 255, 255, 255},
		bg: color.RGBA{0, 0, 0, 255},
		brightness: 100,
	}
}

func (self *Matrix) Width() int { return self.frame.Rect.Dx() }
func (self *Matrix) Height() int { return self.frame.Rect.Dy() }

// Sets the font used by [Matrix.DrawText]() and [Matrix.Render]().
// Nil fonts will make the method panic.
func (self *Matrix) SetFont(fnt font.Font) {
	if fnt == nil { panic("nil font") }
	self.font = fnt
}

// Returns the current font.
func (self *Matrix) Font() font.Font { return self.font }

func (self *Matrix) SetFgColor(rgba color.RGBA) { self.fg = opaque(rgba) }
func (self *Matrix) FgColor() color.RGBA { return self.fg }
func (self *Matrix) SetBgColor(rgba color.RGBA) { self.bg = opaque(rgba) }
func (self *Matrix) BgColor() color.RGBA { return self.bg }

// Sets the brightness as a percentage. Values above 100 are clamped.
// Brightness is only applied when syncing, the framebuffer always
// keeps the full intensity colors.
func (self *Matrix) SetBrightness(brightness uint8) {
	self.brightness = min(brightness, 100)
}

// Returns the current brightness, between 0 and 100.
func (self *Matrix) Brightness() uint8 { return self.brightness }

// Returns the framebuffer. The image must be treated as read-only;
// use the drawing methods to modify it.
func (self *Matrix) Frame() *image.RGBA { return self.frame }

// Turns all the LEDs off.
func (self *Matrix) Clear() {
	clear(self.frame.Pix)
	for i := 3; i < len(self.frame.Pix); i += 4 {
		self.frame.Pix[i] = 255
	}
}

// Fills the whole matrix with the background color.
func (self *Matrix) Fill() {
	draw.Draw(self.frame, self.frame.Rect, image.NewUniform(self.bg), image.Point{}, draw.Src)
}

// Draws the glyph for the given code point with the foreground color.
// (x, y) is the top-left corner of the glyph's line slot, as in
// [mtxt.Placement]. Pixels outside the matrix are discarded.
func (self *Matrix) DrawText(codePoint rune, x, y int) error {
	mask, err := self.font.Mask(codePoint)
	if err != nil { return err }
	if mask == nil { return nil } // nothing to draw (e.g. spaces)

	origin := image.Pt(x, y + self.font.Ascent())
	rect := mask.Rect.Add(origin)
	draw.DrawMask(self.frame, rect, image.NewUniform(self.fg), image.Point{}, mask, mask.Rect.Min, draw.Over)
	return nil
}

// Draws all the given placements. Stops at the first error.
func (self *Matrix) DrawPlacements(placements []mtxt.Placement) error {
	for _, placement := range placements {
		err := self.DrawText(placement.CodePoint, placement.X, placement.Y)
		if err != nil { return err }
	}
	return nil
}

// Clears the matrix, fills it with the background color and draws the
// given text with the current font, wrapped at the matrix width and
// aligned as requested. The placements are returned so callers can
// redraw them progressively if they want to.
//
// Sync is not called automatically.
func (self *Matrix) Render(text string, align mtxt.Align) ([]mtxt.Placement, error) {
	config := mtxt.Config{ Width: self.Width(), Height: self.Height(), Align: align }
	placements, err := mtxt.Layout(text, self.font, config)
	if err != nil { return nil, err }
	self.Clear()
	self.Fill()
	return placements, self.DrawPlacements(placements)
}

// Registers a sink to receive frames on [Matrix.Sync]().
func (self *Matrix) AddSink(sink Sink) {
	if sink == nil { panic("nil sink") }
	self.sinks = append(self.sinks, sink)
}

// Sets a function to be called after every successful sync.
// Can be set to nil to remove it.
func (self *Matrix) AfterSync(fn func(*Matrix)) {
	self.afterSync = fn
}

// Sends the current frame to all sinks, with brightness applied.
// Each sink receives its own copy. Stops at the first sink error.
func (self *Matrix) Sync() error {
	for _, sink := range self.sinks {
		err := sink.Show(self.dimmedFrame())
		if err != nil { return err }
	}
	if self.afterSync != nil { self.afterSync(self) }
	return nil
}

func (self *Matrix) dimmedFrame() *image.RGBA {
	frame := image.NewRGBA(self.frame.Rect)
	copy(frame.Pix, self.frame.Pix)
	if self.brightness == 100 { return frame }

	brightness := uint16(self.brightness)
	for i := 0; i < len(frame.Pix); i += 4 {
		frame.Pix[i + 0] = uint8(uint16(frame.Pix[i + 0])*brightness/100)
		frame.Pix[i + 1] = uint8(uint16(frame.Pix[i + 1])*brightness/100)
		frame.Pix[i + 2] = uint8(uint16(frame.Pix[i + 2])*brightness/100)
	}
	return frame
}

func opaque(rgba color.RGBA) color.RGBA {
	rgba.A = 255
	return rgba
}
