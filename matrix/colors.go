package matrix

import "fmt"
import "image/color"
import "sort"
import "strconv"
import "strings"

// Named colors available for configuration files and menus.
var Colors = map[string]color.RGBA{
	"Aquamarine": {0x7f, 0xff, 0xd4, 0xff},
	"Black"     : {0x00, 0x00, 0x00, 0xff},
	"Blue"      : {0x00, 0x00, 0xff, 0xff},
	"Cyan"      : {0x00, 0xff, 0xff, 0xff},
	"Green"     : {0x00, 0xff, 0x00, 0xff},
	"Magenta"   : {0xff, 0x00, 0xff, 0xff},
	"Purple"    : {0x80, 0x00, 0x80, 0xff},
	"Red"       : {0xff, 0x00, 0x00, 0xff},
	"White"     : {0xff, 0xff, 0xff, 0xff},
	"Yellow"    : {0xff, 0xff, 0x00, 0xff},
}

// Returns the names of [Colors], sorted.
func ColorNames() []string {
	names := make([]string, 0, len(Colors))
	for name := range Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Returns the name of the given color in [Colors], or an empty
// string if it's not a named color.
func ColorName(rgba color.RGBA) string {
	rgba.A = 0xff
	for name, named := range Colors {
		if named == rgba { return name }
	}
	return ""
}

// Parses a color given either as a name from [Colors] (case
// insensitive) or as a hex value ("#ff00ff", "0xff00ff", "ff00ff").
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	for name, rgba := range Colors {
		if strings.EqualFold(name, value) { return rgba, nil }
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(value), "#"), "0x")
	if len(hex) != 6 { return color.RGBA{}, fmt.Errorf("invalid color %q", value) }
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return color.RGBA{}, fmt.Errorf("invalid color %q", value) }
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}, nil
}

// Returns the hex representation of the color ("#rrggbb").
func HexColor(rgba color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
