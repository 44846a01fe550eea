package cli

import "errors"
import "io/fs"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/matrix"

func TestLoadSettings(t *testing.T) {
	path := writeConfig(t, `
width = 32
height = 16
fg = "#102030"
align = "top-left"
text = "HELLO"
`)
	settings, err := LoadSettings(path, true)
	if err != nil { t.Fatal(err) }
	if settings.Width != 32 || settings.Height != 16 || settings.Text != "HELLO" {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if settings.Bg != "Black" || settings.Brightness != 100 {
		t.Fatalf("expected defaults for missing keys, got %+v", settings)
	}

	opts, err := settings.parse()
	if err != nil { t.Fatal(err) }
	if opts.align != mtxt.Top | mtxt.Left { t.Fatalf("unexpected align %s", opts.align) }
	if opts.fg.R != 0x10 || opts.fg.G != 0x20 || opts.fg.B != 0x30 {
		t.Fatalf("unexpected fg %v", opts.fg)
	}
	if opts.bg != matrix.Colors["Black"] { t.Fatalf("unexpected bg %v", opts.bg) }
}

func TestLoadSettingsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	settings, err := LoadSettings(path, false)
	if err != nil { t.Fatal(err) }
	if settings != DefaultSettings() { t.Fatalf("expected defaults, got %+v", settings) }

	_, err = LoadSettings(path, true)
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected not exist error, got %v", err) }
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(writeConfig(t, "width = \"wide\""), true)
	if err == nil { t.Fatal("expected type error") }

	_, err = LoadSettings(writeConfig(t, "colour = \"Red\""), true)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	defaults := DefaultSettings()
	err := defaults.Validate()
	if err != nil { t.Fatal(err) }

	tests := []func(*Settings){
		func(s *Settings) { s.Width = 0 },
		func(s *Settings) { s.Height = -3 },
		func(s *Settings) { s.Brightness = 101 },
		func(s *Settings) { s.Brightness = -1 },
		func(s *Settings) { s.Fg = "pink" },
		func(s *Settings) { s.Bg = "#12" },
		func(s *Settings) { s.Align = "top-bottom" },
	}
	for i, modify := range tests {
		settings := DefaultSettings()
		modify(&settings)
		if settings.Validate() == nil {
			t.Fatalf("case %d: expected error for %+v", i, settings)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mtxt.toml")
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil { t.Fatal(err) }
	return path
}
