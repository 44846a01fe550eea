package cli

import "strings"
import "testing"

import tea "github.com/charmbracelet/bubbletea"
import "github.com/charmbracelet/log"
import "golang.org/x/image/font/basicfont"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/font"
import "github.com/tinne26/mtxt/matrix"

func TestInteractiveMenu(t *testing.T) {
	model := newTestModel(t)
	if model.mode != modeMenu { t.Fatal("expected to start on the menu") }
	if !strings.Contains(model.preview.Frame(), "●") {
		t.Fatal("expected initial text on the preview")
	}
	if !strings.Contains(model.View(), "What would you like to do?") {
		t.Fatal("expected menu prompt")
	}

	model = press(model, tea.KeyMsg{ Type: tea.KeyUp })
	if model.cursor != 0 { t.Fatalf("expected cursor to stay at 0, got %d", model.cursor) }
	for range menuEntries {
		model = press(model, tea.KeyMsg{ Type: tea.KeyDown })
	}
	if model.cursor != len(menuEntries) - 1 { t.Fatalf("expected cursor on last entry, got %d", model.cursor) }

	updated, cmd := model.Update(tea.KeyMsg{ Type: tea.KeyEnter })
	if cmd == nil || !updated.(interactiveModel).quitting {
		t.Fatal("expected exit entry to quit")
	}
	if updated.View() != "Bye!\n" { t.Fatalf("unexpected exit view %q", updated.View()) }
}

func TestInteractiveColors(t *testing.T) {
	model := newTestModel(t)
	model = selectMode(model, modeFgColor)
	if model.cursor != model.currentChoice() + 1 {
		t.Fatalf("expected cursor on current color, got %d", model.cursor)
	}
	if matrix.ColorNames()[model.cursor - 1] != "Magenta" {
		t.Fatalf("expected cursor on Magenta, got %d", model.cursor)
	}

	// colors are sorted, so Aquamarine is the first one
	for model.cursor > 1 {
		model = press(model, tea.KeyMsg{ Type: tea.KeyUp })
	}
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.mode != modeFgColor { t.Fatal("expected to stay on color selection") }
	if model.disp.matrix.FgColor() != matrix.Colors["Aquamarine"] {
		t.Fatalf("unexpected fg color %v", model.disp.matrix.FgColor())
	}

	model = press(model, tea.KeyMsg{ Type: tea.KeyEsc })
	if model.mode != modeMenu || menuEntries[model.cursor].mode != modeFgColor {
		t.Fatal("expected to go back to the menu entry")
	}
}

func TestInteractiveAlign(t *testing.T) {
	model := newTestModel(t)
	model = selectMode(model, modeHorzAlign)
	model = press(model, tea.KeyMsg{ Type: tea.KeyUp }) // Left
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	model = press(model, tea.KeyMsg{ Type: tea.KeyEsc })

	model = selectMode(model, modeVertAlign)
	model = press(model, tea.KeyMsg{ Type: tea.KeyDown }) // Bottom
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.disp.align != mtxt.Left | mtxt.Bottom {
		t.Fatalf("expected (Bottom | Left), got %s", model.disp.align)
	}

	// "go back" entry
	for model.cursor > 0 {
		model = press(model, tea.KeyMsg{ Type: tea.KeyUp })
	}
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.mode != modeMenu { t.Fatal("expected go back entry to return to the menu") }
}

func TestInteractiveAlignPartial(t *testing.T) {
	settings := DefaultSettings()
	settings.Align = "bottom"
	disp, err := newDisplay(settings, log.New(&strings.Builder{}))
	if err != nil { t.Fatal(err) }
	model := newInteractiveModel(disp)
	if model.align != mtxt.Bottom | mtxt.HorzCenter {
		t.Fatalf("expected missing horz component to be centered, got %s", model.align)
	}

	// changing one component must keep the other one
	model = selectMode(model, modeHorzAlign)
	model = press(model, tea.KeyMsg{ Type: tea.KeyDown }) // Right
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.disp.align != mtxt.Bottom | mtxt.Right {
		t.Fatalf("expected (Bottom | Right), got %s", model.disp.align)
	}
}

func TestInteractiveBrightness(t *testing.T) {
	model := newTestModel(t)
	model = selectMode(model, modeBrightness)
	model = press(model, tea.KeyMsg{ Type: tea.KeyRunes, Runes: []rune("4x0") })
	if string(model.input) != "40" { t.Fatalf("expected digits only, got %q", string(model.input)) }
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.disp.matrix.Brightness() != 40 {
		t.Fatalf("expected brightness 40, got %d", model.disp.matrix.Brightness())
	}

	model = press(model, tea.KeyMsg{ Type: tea.KeyRunes, Runes: []rune("999") })
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.status == "" || model.disp.matrix.Brightness() != 40 {
		t.Fatal("expected out of range brightness to be rejected")
	}
}

func TestInteractiveTextReveal(t *testing.T) {
	setRevealDelay(t, 0)
	model := newTestModel(t)
	model = selectMode(model, modeText)
	model = press(model, tea.KeyMsg{ Type: tea.KeyRunes, Runes: []rune("AB") })
	model = press(model, tea.KeyMsg{ Type: tea.KeySpace })
	model = press(model, tea.KeyMsg{ Type: tea.KeyRunes, Runes: []rune("Cx") })
	model = press(model, tea.KeyMsg{ Type: tea.KeyBackspace })

	updated, cmd := model.Update(tea.KeyMsg{ Type: tea.KeyEnter })
	model = updated.(interactiveModel)
	if model.disp.text != "AB C" { t.Fatalf("unexpected text %q", model.disp.text) }
	if cmd == nil || len(model.pending) != 4 { t.Fatalf("expected reveal of 4 glyphs, got %d", len(model.pending)) }
	if strings.Contains(model.preview.Frame(), "●") {
		t.Fatal("expected blank preview before the reveal")
	}

	for i := 0; i < 4; i++ {
		updated, cmd = model.Update(revealTickMsg{ generation: model.generation })
		model = updated.(interactiveModel)
	}
	if cmd != nil || len(model.pending) != 0 { t.Fatal("expected reveal to be complete") }
	if !strings.Contains(model.preview.Frame(), "●") { t.Fatal("expected revealed text") }

	// stale ticks are ignored
	updated, cmd = model.Update(revealTickMsg{ generation: model.generation - 1 })
	if cmd != nil { t.Fatal("expected stale tick to be ignored") }
}

func TestInteractiveFont(t *testing.T) {
	model := newTestModel(t)
	model.disp.fonts.Add(font.NewFace("zzz", basicfont.Face7x13))

	model = selectMode(model, modeFont)
	if !strings.Contains(model.View(), "(height 13px)") { t.Fatal("expected font heights on the list") }
	model = press(model, tea.KeyMsg{ Type: tea.KeyDown })
	model = press(model, tea.KeyMsg{ Type: tea.KeyEnter })
	if model.disp.matrix.Font().Name() != "zzz" {
		t.Fatalf("expected font zzz, got %s", model.disp.matrix.Font().Name())
	}
}

// --- helpers ---

func newTestModel(t *testing.T) interactiveModel {
	t.Helper()
	settings := DefaultSettings()
	settings.Text = "HI"
	disp, err := newDisplay(settings, log.New(&strings.Builder{}))
	if err != nil { t.Fatal(err) }
	return newInteractiveModel(disp)
}

func press(model interactiveModel, msg tea.KeyMsg) interactiveModel {
	updated, _ := model.Update(msg)
	return updated.(interactiveModel)
}

func selectMode(model interactiveModel, mode menuMode) interactiveModel {
	for i, entry := range menuEntries {
		if entry.mode == mode { model.cursor = i }
	}
	return press(model, tea.KeyMsg{ Type: tea.KeyEnter })
}
