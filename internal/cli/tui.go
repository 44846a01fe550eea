package cli

import "fmt"
import "strconv"
import "strings"
import "time"

import tea "github.com/charmbracelet/bubbletea"
import "github.com/charmbracelet/lipgloss"
import "github.com/spf13/cobra"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/matrix"

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

type menuMode int
const (
	modeMenu menuMode = iota
	modeText
	modeFont
	modeBgColor
	modeFgColor
	modeHorzAlign
	modeVertAlign
	modeBrightness
	modeExit
)

var menuEntries = []struct {
	mode menuMode
	title string
}{
	{modeText, "Render some text"},
	{modeFont, "Change the font"},
	{modeBgColor, "Pick a background color"},
	{modeFgColor, "Pick a foreground color"},
	{modeHorzAlign, "Set the horizontal alignment"},
	{modeVertAlign, "Set the vertical alignment"},
	{modeBrightness, "Set the display brightness"},
	{modeExit, "Exit"},
}

const menuGoBack = "Go back"

var horzAligns = []mtxt.Align{ mtxt.Left, mtxt.HorzCenter, mtxt.Right }
var horzAlignNames = []string{ "Left", "Center", "Right" }
var vertAligns = []mtxt.Align{ mtxt.Top, mtxt.VertCenter, mtxt.Bottom }
var vertAlignNames = []string{ "Top", "Middle", "Bottom" }

// Sent while revealing text glyph by glyph. Ticks from previous
// reveals are discarded by comparing generations.
type revealTickMsg struct { generation int }

// Bubbletea model for the interactive menu. Every change is applied to
// the display right away and shown on the preview.
type interactiveModel struct {
	disp *display
	preview *matrix.TermSink

	mode menuMode
	cursor int
	input []rune
	align mtxt.Align
	status string
	quitting bool

	pending []mtxt.Placement
	generation int
}

func newInteractiveModel(disp *display) interactiveModel {
	preview := matrix.NewTermSink(nil)
	disp.matrix.AddSink(preview)

	model := interactiveModel{
		disp: disp,
		preview: preview,
		align: mtxt.Center.Adjusted(disp.align), // missing components stay centered
	}
	model.redraw()
	return model
}

func (self interactiveModel) Init() tea.Cmd {
	return nil
}

func (self interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case revealTickMsg:
		return self.revealNext(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			self.quitting = true
			return self, tea.Quit
		}
		switch self.mode {
		case modeMenu:
			return self.updateMenu(msg)
		case modeText, modeBrightness:
			return self.updateInput(msg)
		default:
			return self.updateChoice(msg)
		}
	}
	return self, nil
}

func (self interactiveModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		self.quitting = true
		return self, tea.Quit
	case "up", "k", "shift+tab":
		if self.cursor > 0 { self.cursor-- }
	case "down", "j", "tab":
		if self.cursor < len(menuEntries) - 1 { self.cursor++ }
	case "enter":
		return self.enter(menuEntries[self.cursor].mode)
	}
	return self, nil
}

func (self interactiveModel) enter(mode menuMode) (tea.Model, tea.Cmd) {
	self.status = ""
	self.input = self.input[ : 0]
	switch mode {
	case modeExit:
		self.quitting = true
		return self, tea.Quit
	case modeText, modeBrightness:
		self.mode = mode
	default:
		self.mode = mode
		self.cursor = self.currentChoice() + 1 // index 0 is "go back"
	}
	return self, nil
}

// Goes back to the main menu with the cursor on the current mode.
func (self interactiveModel) back() (tea.Model, tea.Cmd) {
	for i, entry := range menuEntries {
		if entry.mode == self.mode { self.cursor = i }
	}
	self.mode = modeMenu
	self.input = self.input[ : 0]
	return self, nil
}

func (self interactiveModel) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := self.choices()
	switch msg.String() {
	case "esc", "q":
		return self.back()
	case "up", "k", "shift+tab":
		if self.cursor > 0 { self.cursor-- }
	case "down", "j", "tab":
		if self.cursor < len(choices) { self.cursor++ }
	case "enter":
		if self.cursor == 0 { return self.back() }
		self.apply(self.cursor - 1)
		self.redraw()
	}
	return self, nil
}

func (self interactiveModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return self.back()
	case tea.KeyBackspace:
		if len(self.input) > 0 { self.input = self.input[ : len(self.input) - 1] }
	case tea.KeySpace:
		if self.mode == modeText { self.input = append(self.input, ' ') }
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if self.mode == modeBrightness && (r < '0' || r > '9' || len(self.input) >= 3) { continue }
			self.input = append(self.input, r)
		}
	case tea.KeyEnter:
		if self.mode == modeText {
			self.disp.text = string(self.input)
			self.input = self.input[ : 0]
			return self.startReveal()
		}
		brightness, err := strconv.Atoi(string(self.input))
		if err != nil || brightness > 100 {
			self.status = "brightness must be a number between 0 and 100"
			return self, nil
		}
		self.disp.matrix.SetBrightness(uint8(brightness))
		self.input = self.input[ : 0]
		self.redraw()
	}
	return self, nil
}

// Returns the options for the current selection mode, without
// the "go back" entry.
func (self *interactiveModel) choices() []string {
	switch self.mode {
	case modeFont:
		return self.disp.fonts.Names()
	case modeBgColor, modeFgColor:
		return matrix.ColorNames()
	case modeHorzAlign:
		return horzAlignNames
	case modeVertAlign:
		return vertAlignNames
	default:
		return nil
	}
}

// Returns the index of the current value among the choices, or -1.
func (self *interactiveModel) currentChoice() int {
	var current string
	switch self.mode {
	case modeFont:
		current = self.disp.matrix.Font().Name()
	case modeBgColor:
		current = matrix.ColorName(self.disp.matrix.BgColor())
	case modeFgColor:
		current = matrix.ColorName(self.disp.matrix.FgColor())
	case modeHorzAlign:
		for i, align := range horzAligns {
			if align == self.align.Horz() { return i }
		}
	case modeVertAlign:
		for i, align := range vertAligns {
			if align == self.align.Vert() { return i }
		}
	}
	for i, choice := range self.choices() {
		if choice == current { return i }
	}
	return -1
}

func (self *interactiveModel) apply(index int) {
	name := self.choices()[index]
	switch self.mode {
	case modeFont:
		fnt, _ := self.disp.fonts.Get(name)
		self.disp.matrix.SetFont(fnt)
	case modeBgColor:
		self.disp.matrix.SetBgColor(matrix.Colors[name])
	case modeFgColor:
		self.disp.matrix.SetFgColor(matrix.Colors[name])
	case modeHorzAlign:
		self.align = self.align.Adjusted(horzAligns[index])
	case modeVertAlign:
		self.align = self.align.Adjusted(vertAligns[index])
	}
}

// Renders the whole text at once, cancelling any ongoing reveal.
func (self *interactiveModel) redraw() {
	self.generation += 1
	self.pending = nil
	self.disp.align = self.align
	_, err := self.disp.render()
	if err == nil { err = self.disp.matrix.Sync() }
	self.setError(err)
}

func (self interactiveModel) startReveal() (tea.Model, tea.Cmd) {
	self.generation += 1
	self.disp.align = self.align
	placements, err := self.disp.render()
	if err == nil {
		self.disp.matrix.Clear()
		self.disp.matrix.Fill()
		err = self.disp.matrix.Sync()
	}
	self.setError(err)
	if err != nil { return self, nil }
	self.pending = placements
	return self, self.revealTick()
}

func (self interactiveModel) revealNext(msg revealTickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != self.generation || len(self.pending) == 0 { return self, nil }
	placement := self.pending[0]
	self.pending = self.pending[1 : ]
	err := self.disp.matrix.DrawText(placement.CodePoint, placement.X, placement.Y)
	if err == nil { err = self.disp.matrix.Sync() }
	self.setError(err)
	if err != nil || len(self.pending) == 0 {
		self.pending = nil
		return self, nil
	}
	return self, self.revealTick()
}

func (self *interactiveModel) revealTick() tea.Cmd {
	generation := self.generation
	return tea.Tick(revealDelay(), func(time.Time) tea.Msg {
		return revealTickMsg{ generation: generation }
	})
}

func (self *interactiveModel) setError(err error) {
	if err != nil {
		self.status = err.Error()
	} else {
		self.status = ""
	}
}

func (self interactiveModel) View() string {
	if self.quitting { return "Bye!\n" }

	var b strings.Builder
	b.WriteString(styleTitle.Render("mtxt"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · %dx%d · %s · brightness %d%%",
		self.disp.matrix.Font().Name(), self.disp.matrix.Width(), self.disp.matrix.Height(),
		self.align.String(), self.disp.matrix.Brightness())))
	b.WriteString("\n")
	b.WriteString(previewStyle.Render(self.preview.Frame()))
	b.WriteString("\n\n")

	switch self.mode {
	case modeMenu:
		b.WriteString(listNormalStyle.Render("What would you like to do?"))
		b.WriteString("\n")
		for i, entry := range menuEntries {
			b.WriteString(self.listItem(i, entry.title))
		}
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	case modeText:
		b.WriteString(listNormalStyle.Render("Input text to display: "))
		b.WriteString(styleHighlight.Render(string(self.input) + "_"))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("⏎ render  esc go back"))
	case modeBrightness:
		b.WriteString(listNormalStyle.Render(fmt.Sprintf("Enter a brightness value (current brightness is %d%%): ",
			self.disp.matrix.Brightness())))
		b.WriteString(styleHighlight.Render(string(self.input) + "_"))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("⏎ apply  esc go back"))
	default:
		b.WriteString(listNormalStyle.Render(self.choiceTitle()))
		b.WriteString("\n")
		b.WriteString(self.listItem(0, menuGoBack))
		for i, choice := range self.choices() {
			b.WriteString(self.listItem(i + 1, self.choiceLabel(choice)))
		}
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ apply  esc go back"))
	}

	if self.status != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render(self.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (self *interactiveModel) listItem(index int, title string) string {
	if index == self.cursor {
		return listSelectedStyle.Render("▸ " + title) + "\n"
	}
	return listNormalStyle.Render("  " + title) + "\n"
}

func (self *interactiveModel) choiceTitle() string {
	switch self.mode {
	case modeFont: return "Select a font"
	case modeBgColor: return "Select a background color"
	case modeFgColor: return "Select a foreground color"
	case modeHorzAlign: return "Set the horizontal alignment"
	case modeVertAlign: return "Set the vertical alignment"
	default:
		panic("unexpected mode")
	}
}

func (self *interactiveModel) choiceLabel(choice string) string {
	if self.mode != modeFont { return choice }
	fnt, _ := self.disp.fonts.Get(choice)
	return fmt.Sprintf("%-16s (height %dpx)", choice, fnt.LineHeight())
}

func (self *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use: "interactive",
		Aliases: []string{"tui"},
		Short: "Change text, font, colors and alignment with a live preview",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			disp, err := newDisplay(self.settings, self.Logger)
			if err != nil { return err }

			ctx := cmd.Context()
			program := tea.NewProgram(newInteractiveModel(disp), tea.WithContext(ctx))
			_, err = program.Run()
			if ctx.Err() != nil { return ctx.Err() }
			return err
		},
	}
}
