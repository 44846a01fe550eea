//go:build !cputext

package matrix

import "context"
import "image"
import "sync"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

// A sink that shows frames on a desktop window through Ebitengine,
// drawing each LED as a round dot. Frames can be sent from any
// goroutine, but [WindowSink.Run]() must be called from the main one.
//
// Compiling with -tags cputext removes the Ebitengine dependency,
// and [WindowSink.Run]() will then return [ErrWindowUnavailable].
type WindowSink struct {
	ctx context.Context
	scale int
	frame *image.RGBA
	mutex sync.Mutex
}

// Creates a window sink. Each LED will take scale x scale pixels
// on the window. Scale must be at least 2.
func NewWindowSink(scale int) *WindowSink {
	if scale < 2 { panic("window sink scale must be at least 2") }
	return &WindowSink{ scale: scale, ctx: context.Background() }
}

// Implements [Sink].
func (self *WindowSink) Show(frame *image.RGBA) error {
	self.mutex.Lock()
	self.frame = frame
	self.mutex.Unlock()
	return nil
}

// Opens the window and blocks until it's closed or the context is
// cancelled. At least one frame must have been shown before.
func (self *WindowSink) Run(ctx context.Context, title string) error {
	self.mutex.Lock()
	frame := self.frame
	self.ctx = ctx
	self.mutex.Unlock()
	if frame == nil { return ErrNoFrame }

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(frame.Rect.Dx()*self.scale, frame.Rect.Dy()*self.scale)
	return ebiten.RunGame(self)
}

// Implements [ebiten.Game].
func (self *WindowSink) Update() error {
	select {
	case <-self.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

// Implements [ebiten.Game].
func (self *WindowSink) Draw(screen *ebiten.Image) {
	self.mutex.Lock()
	frame := self.frame
	self.mutex.Unlock()

	radius := float32(self.scale)*0.42
	half := float32(self.scale)/2
	bounds := frame.Rect
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cx := float32((x - bounds.Min.X)*self.scale) + half
			cy := float32((y - bounds.Min.Y)*self.scale) + half
			vector.DrawFilledCircle(screen, cx, cy, radius, frame.RGBAAt(x, y), true)
		}
	}
}

// Implements [ebiten.Game].
func (self *WindowSink) Layout(_, _ int) (int, int) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.frame.Rect.Dx()*self.scale, self.frame.Rect.Dy()*self.scale
}
