package cli

import "errors"
import "fmt"
import "image/color"
import "io/fs"
import "os"
import "strings"

import "github.com/BurntSushi/toml"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/matrix"

// Config file used when --config is not given. It's fine for it not
// to exist.
const defaultConfigFile = "mtxt.toml"

// Settings shared by all commands. They are read from a TOML file and
// can then be overridden through flags:
//   width = 64
//   height = 32
//   fonts_dir = "fonts"
//   font = "6x10"
//   fg = "Magenta"   # color name or "#rrggbb"
//   bg = "#000000"
//   brightness = 80
//   align = "middle-center"
//   text = "Hello, matrix!"
type Settings struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	FontsDir   string `toml:"fonts_dir"`
	Font       string `toml:"font"`
	Fg         string `toml:"fg"`
	Bg         string `toml:"bg"`
	Brightness int    `toml:"brightness"`
	Align      string `toml:"align"`
	Text       string `toml:"text"`
}

func DefaultSettings() Settings {
	return Settings{
		Width: 64,
		Height: 32,
		Fg: "Magenta",
		Bg: "Black",
		Brightness: 100,
		Align: "center",
		Text: "Hello, matrix!",
	}
}

// Loads the settings from the given TOML file on top of the defaults.
// If the file doesn't exist and mustExist is false, the defaults are
// returned as they are. Unknown keys are reported as errors.
func LoadSettings(path string, mustExist bool) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist && errors.Is(err, fs.ErrNotExist) { return settings, nil }
		return settings, err
	}

	meta, err := toml.Decode(string(data), &settings)
	if err != nil { return settings, fmt.Errorf("%s: %w", path, err) }
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded { keys[i] = key.String() }
		return settings, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return settings, nil
}

// Parsed form of the color, brightness and align settings.
type options struct {
	fg, bg color.RGBA
	brightness uint8
	align mtxt.Align
}

// Checks that all the settings are valid.
func (self *Settings) Validate() error {
	_, err := self.parse()
	return err
}

func (self *Settings) parse() (options, error) {
	var opts options
	if self.Width <= 0 || self.Height <= 0 {
		return opts, fmt.Errorf("invalid matrix size %dx%d", self.Width, self.Height)
	}
	if self.Brightness < 0 || self.Brightness > 100 {
		return opts, fmt.Errorf("brightness must be between 0 and 100, got %d", self.Brightness)
	}
	opts.brightness = uint8(self.Brightness)

	var err error
	opts.fg, err = matrix.ParseColor(self.Fg)
	if err != nil { return opts, fmt.Errorf("fg: %w", err) }
	opts.bg, err = matrix.ParseColor(self.Bg)
	if err != nil { return opts, fmt.Errorf("bg: %w", err) }
	opts.align, err = mtxt.ParseAlign(self.Align)
	if err != nil { return opts, err }
	return opts, nil
}
