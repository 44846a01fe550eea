package mtxt

import "strings"

// Aligns tell [MapGlyphs]() and [Layout]() where to place a block of
// text within the canvas.
//
// An align has two independent components:
//  - Horizontal: [Left], [HorzCenter] or [Right]. Applied to each line
//    separately, so lines of different widths are aligned individually.
//  - Vertical: [Top], [VertCenter] or [Bottom]. Applied to the whole
//    block of lines at once.
//
// Both components can be combined with a bitwise OR:
//   config.Align = mtxt.Bottom | mtxt.Right
// To retrieve or compare the individual components, avoid bitwise
// operations and use [Align.Vert]() and [Align.Horz]() instead.
//
// When one of the components is missing, it's treated as centered.
type Align uint8

const (
	// Horizontal aligns
	Left       Align = 0b0010_0000
	HorzCenter Align = 0b0100_0000
	Right      Align = 0b1000_0000

	// Vertical aligns
	Top        Align = 0b0000_0001
	VertCenter Align = 0b0000_0010
	Bottom     Align = 0b0000_0100

	// Full aligns
	Center Align = HorzCenter | VertCenter

	alignVertBits Align = 0b0000_1111 // bit mask
	alignHorzBits Align = 0b1111_0000 // bit mask
)

// Returned by [ParseAlign]() for unrecognized values.
const ErrInvalidAlign errMsg = "invalid align"

// Returns the vertical component of the align. If the align
// is valid and [Align.HasVertComponent](), the result can only
// be [Top], [VertCenter] or [Bottom].
func (self Align) Vert() Align { return alignVertBits & self }

// Returns the horizontal component of the align. If the
// align is valid and [Align.HasHorzComponent]() is true,
// the result can only be [Left], [HorzCenter] or [Right].
func (self Align) Horz() Align { return alignHorzBits & self }

// Returns whether the vertical component of the align is set.
func (self Align) HasVertComponent() bool { return alignVertBits & self != 0 }

// Returns whether the horizontal component of the align is set.
func (self Align) HasHorzComponent() bool { return alignHorzBits & self != 0 }

// Returns the current align with its components replaced by the
// non-empty components of the given align. Used to merge partial
// alignment updates, like a horizontal-only change in the CLI menu.
func (self Align) Adjusted(align Align) Align {
	result := self
	if align.HasHorzComponent() { result = align.Horz() | result.Vert() }
	if align.HasVertComponent() { result = result.Horz() | align.Vert() }
	return result
}

// Returns the x at which a line of the given width has to start
// within a canvas of the given width:
//  - [Left]: zero.
//  - [Right]: canvasWidth - lineWidth.
//  - Otherwise: floor((canvasWidth - lineWidth)/2).
// The result can be negative if the line doesn't fit.
func (self Align) HorzOffset(canvasWidth, lineWidth int) int {
	switch self.Horz() {
	case Left  : return 0
	case Right : return canvasWidth - lineWidth
	default: // assume horz center even when undefined
		return halfFloor(canvasWidth - lineWidth)
	}
}

// Returns the y at which a block of the given height has to start
// within a canvas of the given height:
//  - [Top]: zero.
//  - [Bottom]: canvasHeight - blockHeight.
//  - Otherwise: floor((canvasHeight - blockHeight)/2).
// The result can be negative if the block doesn't fit.
func (self Align) VertOffset(canvasHeight, blockHeight int) int {
	switch self.Vert() {
	case Top    : return 0
	case Bottom : return canvasHeight - blockHeight
	default: // assume vert center even when undefined
		return halfFloor(canvasHeight - blockHeight)
	}
}

// Returns a textual representation of the align. Some examples:
//   (Top | Right).String() == "(Top | Right)"
//   (Right | Top).String() == "(Top | Right)"
//   Center.String() == "(VertCenter | HorzCenter)"
//   HorzCenter.String() == "(HorzCenter)"
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	if self.Vert() == 0 { return "(" + self.horzString() + ")" }
	if self.Horz() == 0 { return "(" + self.vertString() + ")" }
	return "(" + self.vertString() + " | " + self.horzString() + ")"
}

func (self Align) vertString() string {
	switch self.Vert() {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Bottom: return "Bottom"
	default:
		return "VertUnknown"
	}
}

func (self Align) horzString() string {
	switch self.Horz() {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "HorzUnknown"
	}
}

// Parses aligns written as in configuration files and command line
// flags. Accepted words are "left", "right", "top", "bottom", "middle"
// and "center", joined by '-', '|', ',' or spaces in any order:
//   "middle-center", "top left", "right", "center"
// A lone "center" means [Center]. Otherwise, "center" is the horizontal
// component and "middle" the vertical one. Casing is ignored.
func ParseAlign(value string) (Align, error) {
	words := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == '-' || r == '|' || r == ',' || r == ' ' || r == '_'
	})
	if len(words) == 1 && words[0] == "center" { return Center, nil }
	if len(words) == 0 || len(words) > 2 { return 0, invalidAlign(value) }

	var align Align
	for _, word := range words {
		var component Align
		switch word {
		case "left"  : component = Left
		case "right" : component = Right
		case "center", "horzcenter" : component = HorzCenter
		case "top"   : component = Top
		case "bottom": component = Bottom
		case "middle", "vertcenter" : component = VertCenter
		default:
			return 0, invalidAlign(value)
		}
		if align.Horz() != 0 && component.Horz() != 0 { return 0, invalidAlign(value) }
		if align.Vert() != 0 && component.Vert() != 0 { return 0, invalidAlign(value) }
		align |= component
	}
	return align, nil
}

func invalidAlign(value string) error {
	return &alignError{ value: value }
}

type alignError struct { value string }
func (self *alignError) Error() string { return string(ErrInvalidAlign) + " '" + self.value + "'" }
func (self *alignError) Is(target error) bool { return target == ErrInvalidAlign }
