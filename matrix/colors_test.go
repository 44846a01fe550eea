package matrix

import "image/color"
import "slices"
import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in string
		want color.RGBA
	}{
		{"Magenta", Colors["Magenta"]},
		{"magenta", Colors["Magenta"]},
		{" AQUAMARINE ", Colors["Aquamarine"]},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 0xff}},
		{"0xA0B0C0", color.RGBA{0xa0, 0xb0, 0xc0, 0xff}},
		{"ffffff", Colors["White"]},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if err != nil { t.Fatalf("%q: %s", test.in, err) }
		if got != test.want {
			t.Fatalf("%q: expected %v, got %v", test.in, test.want, got)
		}
	}

	for _, in := range []string{"", "pink", "#12345", "#gg0000", "#1234567"} {
		_, err := ParseColor(in)
		if err == nil { t.Fatalf("%q: expected error", in) }
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	if len(names) != len(Colors) { t.Fatalf("expected %d names, got %d", len(Colors), len(names)) }
	if !slices.IsSorted(names) { t.Fatalf("expected sorted names, got %v", names) }
	for _, name := range names {
		if ColorName(Colors[name]) != name {
			t.Fatalf("expected ColorName to return %q", name)
		}
	}
	if ColorName(color.RGBA{1, 2, 3, 255}) != "" {
		t.Fatal("expected empty name for unnamed color")
	}
}

func TestHexColor(t *testing.T) {
	if HexColor(Colors["Aquamarine"]) != "#7fffd4" {
		t.Fatalf("unexpected hex %q", HexColor(Colors["Aquamarine"]))
	}
}
