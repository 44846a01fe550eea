package matrix

import "image"
import "image/png"
import "os"

import xdraw "golang.org/x/image/draw"

// A sink that encodes every frame as a PNG file at the given path,
// overwriting the previous one. Each LED is scaled to a square of
// scale x scale pixels.
type PNGSink struct {
	path string
	scale int
	frames int
}

// Creates a PNG sink. Scale must be at least 1.
func NewPNGSink(path string, scale int) *PNGSink {
	if scale < 1 { panic("PNG sink scale must be at least 1") }
	return &PNGSink{ path: path, scale: scale }
}

// Returns the number of frames written so far.
func (self *PNGSink) Frames() int { return self.frames }

// Implements [Sink].
func (self *PNGSink) Show(frame *image.RGBA) error {
	var img image.Image = frame
	if self.scale > 1 {
		bounds := frame.Rect
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*self.scale, bounds.Dy()*self.scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Rect, frame, bounds, xdraw.Src, nil)
		img = scaled
	}

	file, err := os.Create(self.path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	self.frames += 1
	return file.Close()
}
