package cli

import "bytes"
import "context"
import "errors"
import "image/png"
import "os"
import "path/filepath"
import "strings"
import "testing"
import "time"

func TestRenderTerminal(t *testing.T) {
	out, logs, err := execute(t, context.Background(), "render", "--width", "16", "--height", "13", "HI")
	if err != nil { t.Fatal(err) }
	if strings.Count(out, "\n") != 13 {
		t.Fatalf("expected 13 rows, got %d:\n%s", strings.Count(out, "\n"), out)
	}
	if !strings.Contains(out, "●") { t.Fatal("expected lit LEDs") }
	if !strings.Contains(logs, "Rendered 2 glyphs") {
		t.Fatalf("expected progress log, got %q", logs)
	}
}

func TestRenderReveal(t *testing.T) {
	setRevealDelay(t, 0)
	out, _, err := execute(t, context.Background(), "render", "--width", "16", "--height", "13", "--reveal", "HI")
	if err != nil { t.Fatal(err) }

	// one blank frame, then one frame per glyph drawn over the previous
	if strings.Count(out, "\x1b[13A") != 2 {
		t.Fatalf("expected two redraws, got output %q", out)
	}
}

func TestRenderRevealCancel(t *testing.T) {
	setRevealDelay(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := execute(t, ctx, "render", "--reveal", "HELLO")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, _, err := execute(t, context.Background(), "render", "--width", "20", "--height", "14", "--png", path, "--scale", "2", "A")
	if err != nil { t.Fatal(err) }

	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil { t.Fatal(err) }
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 28 {
		t.Fatalf("expected 40x28 image, got %v", img.Bounds())
	}
}

func TestRenderUnsupportedGlyph(t *testing.T) {
	_, _, err := execute(t, context.Background(), "render", "日本")
	if err == nil { t.Fatal("expected unsupported glyph error") }
}

func TestRenderInvalidFlags(t *testing.T) {
	_, _, err := execute(t, context.Background(), "render", "--fg", "pink")
	if err == nil { t.Fatal("expected invalid color error") }
	_, _, err = execute(t, context.Background(), "render", "--scale", "0", "--png", "x.png")
	if err == nil { t.Fatal("expected invalid scale error") }
}

func TestLayoutCommand(t *testing.T) {
	out, _, err := execute(t, context.Background(), "layout", "--width", "24", "--height", "16", "AB C")
	if err != nil { t.Fatal(err) }
	for _, expected := range []string{`"AB"`, `"C"`, "'A'  x=5 y=-5", "'C'  x=8 y=8", "14x26", "basic7x13"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, out)
		}
	}

	out, _, err = execute(t, context.Background(), "layout", "--width", "24", "--height", "16", "--wrap", "100", "--align", "top-left", "AB C")
	if err != nil { t.Fatal(err) }
	if !strings.Contains(out, `"AB C"`) || !strings.Contains(out, "'A'  x=0 y=0") {
		t.Fatalf("expected single line at the top left:\n%s", out)
	}
}

func TestConfigOverrides(t *testing.T) {
	path := writeConfig(t, "width = 40\nfg = \"Red\"\ntext = \"CONFIG\"")
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"layout", "--config", path, "--fg", "Blue", "--height", "20"})
	err := root.ExecuteContext(context.Background())
	if err != nil { t.Fatal(err) }

	settings := c.Settings()
	if settings.Width != 40 || settings.Height != 20 || settings.Fg != "Blue" || settings.Text != "CONFIG" {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestFontsCommand(t *testing.T) {
	out, _, err := execute(t, context.Background(), "fonts", "--fonts-dir", filepath.Join("..", "..", "font", "testdata"))
	if err != nil { t.Fatal(err) }
	if !strings.Contains(out, "2 fonts available") || !strings.Contains(out, "tiny") || !strings.Contains(out, "basic7x13") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "(height 13px)") {
		t.Fatalf("expected font heights:\n%s", out)
	}

	_, _, err = execute(t, context.Background(), "fonts", "--fonts-dir", filepath.Join(t.TempDir(), "missing"))
	if err == nil { t.Fatal("expected error for missing directory") }
}

func TestUnknownFont(t *testing.T) {
	_, _, err := execute(t, context.Background(), "render", "--font", "missing")
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected font not found error, got %v", err)
	}
}

// --- helpers ---

func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), logs.String(), err
}

func setRevealDelay(t *testing.T, delay time.Duration) {
	prev := revealDelay
	revealDelay = func() time.Duration { return delay }
	t.Cleanup(func() { revealDelay = prev })
}
