package cli

import "errors"
import "fmt"

import "github.com/charmbracelet/log"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/font"
import "github.com/tinne26/mtxt/matrix"

// Everything commands need to draw text: the available fonts and a
// matrix configured from the settings.
type display struct {
	fonts *font.Registry
	matrix *matrix.Matrix
	align mtxt.Align
	text string
}

func newDisplay(settings Settings, logger *log.Logger) (*display, error) {
	opts, err := settings.parse()
	if err != nil { return nil, err }

	fonts, err := loadFonts(settings.FontsDir, logger)
	if err != nil { return nil, err }
	fontName := settings.Font
	if fontName == "" { fontName = font.Basic().Name() }
	fnt, found := fonts.Get(fontName)
	if !found {
		return nil, fmt.Errorf("font %q not found (available: %v)", fontName, fonts.Names())
	}

	panel := matrix.New(settings.Width, settings.Height)
	panel.SetFont(fnt)
	panel.SetFgColor(opts.fg)
	panel.SetBgColor(opts.bg)
	panel.SetBrightness(opts.brightness)
	logger.Debug("display ready", "size", fmt.Sprintf("%dx%d", settings.Width, settings.Height),
		"font", fnt.Name(), "align", opts.align.String(), "brightness", opts.brightness)

	return &display{
		fonts: fonts,
		matrix: panel,
		align: opts.align,
		text: settings.Text,
	}, nil
}

// Loads the fonts from the given directory, if any, and adds the
// built-in basic font. A directory without valid fonts is only a
// warning, but a missing directory is an error.
func loadFonts(dir string, logger *log.Logger) (*font.Registry, error) {
	if dir == "" { return font.NewRegistry(font.Basic()), nil }

	prog := newProgress(logger)
	fonts, err := font.LoadDir(dir, func(path string, err error) {
		logger.Warn("skipping font", "path", path, "err", err)
	})
	if errors.Is(err, font.ErrNoFonts) {
		logger.Warn("no fonts loaded, using the built-in font", "dir", dir)
		return font.NewRegistry(font.Basic()), nil
	}
	if err != nil { return nil, fmt.Errorf("loading fonts: %w", err) }
	prog.done(fmt.Sprintf("Loaded %d fonts from %s", fonts.Len(), dir))

	if _, found := fonts.Get(font.Basic().Name()); !found {
		fonts.Add(font.Basic())
	}
	return fonts, nil
}

// Clears the matrix and draws the current text.
func (self *display) render() ([]mtxt.Placement, error) {
	return self.matrix.Render(self.text, self.align)
}
