//go:build cputext

package matrix

import "context"
import "image"
import "sync"

// See documentation on build_tag_gpu_window.go instead.
// This is the fallback without Ebitengine: frames are kept,
// but no window can be opened.

type WindowSink struct {
	scale int
	frame *image.RGBA
	mutex sync.Mutex
}

func NewWindowSink(scale int) *WindowSink {
	if scale < 2 { panic("window sink scale must be at least 2") }
	return &WindowSink{ scale: scale }
}

func (self *WindowSink) Show(frame *image.RGBA) error {
	self.mutex.Lock()
	self.frame = frame
	self.mutex.Unlock()
	return nil
}

func (self *WindowSink) Run(ctx context.Context, title string) error {
	self.mutex.Lock()
	frame := self.frame
	self.mutex.Unlock()
	if frame == nil { return ErrNoFrame }
	return ErrWindowUnavailable
}
