package font

import "fmt"
import "os"

import "github.com/zachomedia/go-bdf"

// Parses a BDF (Glyph Bitmap Distribution Format) font and wraps it
// into a [Face] with the given name.
//
// The font's DEFAULT_CHAR is ignored: code points without their own
// glyph are reported as unsupported instead of being replaced.
func ParseBDF(name string, data []byte) (*Face, error) {
	font, err := bdf.Parse(data)
	if err != nil { return nil, fmt.Errorf("parsing BDF font %q: %w", name, err) }
	font.DefaultChar = -1 // no fallback glyph, missing code points must fail
	return NewFace(name, font.NewFace()), nil
}

// Loads a BDF font from the given path. The font name is the file
// name without extension.
func LoadBDF(path string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	return ParseBDF(nameFromPath(path), data)
}
