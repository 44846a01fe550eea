package matrix

import "fmt"
import "image"
import "image/color"
import "io"
import "strings"
import "sync"

import "github.com/charmbracelet/lipgloss"

const termLitLED = "●"
const termOffLED = "·"

var termOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

// A sink that renders frames as rows of colored dots, one per LED,
// using lipgloss styles. The last rendered frame is also available
// through [TermSink.Frame](), which is handy for TUIs.
type TermSink struct {
	out io.Writer
	redraw bool
	lastRows int
	frame string
	styles map[color.RGBA]lipgloss.Style
	mutex sync.Mutex
}

// Creates a terminal sink writing to the given writer. The writer
// can be nil if frames are only going to be read through
// [TermSink.Frame]().
func NewTermSink(out io.Writer) *TermSink {
	return &TermSink{ out: out, styles: make(map[color.RGBA]lipgloss.Style, 8) }
}

// When redraw is enabled, each frame is written over the previous one
// by moving the cursor up first, which allows simple animations.
func (self *TermSink) SetRedraw(redraw bool) {
	self.mutex.Lock()
	self.redraw = redraw
	self.mutex.Unlock()
}

// Returns the last rendered frame, without trailing line break.
func (self *TermSink) Frame() string {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.frame
}

// Implements [Sink].
func (self *TermSink) Show(frame *image.RGBA) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	self.frame = self.render(frame)
	if self.out == nil { return nil }
	if self.redraw && self.lastRows > 0 {
		_, err := fmt.Fprintf(self.out, "\x1b[%dA\r", self.lastRows)
		if err != nil { return err }
	}
	self.lastRows = frame.Rect.Dy()
	_, err := io.WriteString(self.out, self.frame + "\n")
	return err
}

func (self *TermSink) render(frame *image.RGBA) string {
	var builder strings.Builder
	bounds := frame.Rect
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if y > bounds.Min.Y { builder.WriteByte('\n') }
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if x > bounds.Min.X { builder.WriteByte(' ') }
			rgba := frame.RGBAAt(x, y)
			if rgba.R == 0 && rgba.G == 0 && rgba.B == 0 {
				builder.WriteString(termOffStyle.Render(termOffLED))
			} else {
				builder.WriteString(self.styleFor(rgba).Render(termLitLED))
			}
		}
	}
	return builder.String()
}

func (self *TermSink) styleFor(rgba color.RGBA) lipgloss.Style {
	style, found := self.styles[rgba]
	if !found {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(HexColor(rgba)))
		self.styles[rgba] = style
	}
	return style
}
