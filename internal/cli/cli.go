// Package cli implements the mtxt command-line interface.
//
// Commands share a set of [Settings] loaded from a TOML file (mtxt.toml
// in the working directory, or the one given with --config) which can
// be overridden through flags. The main commands are:
//  - render: lays out and draws text on a virtual LED matrix, shown on
//    the terminal, written to a PNG or displayed on a window.
//  - layout: prints the lines and glyph placements for some text.
//  - fonts: lists the available fonts.
//  - interactive: menu to change text, font, colors, alignment and
//    brightness with a live preview.
//
// Loggers are passed to commands through context.Context.
package cli

import "fmt"
import "io"

import "github.com/charmbracelet/log"
import "github.com/spf13/cobra"

const appName = "mtxt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	overrides Settings
	settings Settings
}

// Creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		settings: DefaultSettings(),
	}
}

func (self *CLI) SetLogLevel(level log.Level) {
	self.Logger.SetLevel(level)
}

// Returns the settings resolved for the current command. Only valid
// after the root command's pre-run has been executed.
func (self *CLI) Settings() Settings { return self.settings }

// Creates the root command with all subcommands registered.
func (self *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use: appName,
		Short: "mtxt lays out and draws text on LED matrices",
		Long: `mtxt lays out text for small pixel displays like LED matrices: it wraps ` +
			`text into lines, aligns them on the matrix and draws the glyphs using bitmap fonts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := self.resolveSettings(cmd)
			if err != nil { return err }
			cmd.SetContext(withLogger(cmd.Context(), self.Logger))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&self.configPath, "config", "c", "", "config file (default " + defaultConfigFile + " if present)")
	flags.IntVar(&self.overrides.Width, "width", 0, "matrix width in pixels")
	flags.IntVar(&self.overrides.Height, "height", 0, "matrix height in pixels")
	flags.StringVar(&self.overrides.FontsDir, "fonts-dir", "", "directory with .bdf and .ggfnt fonts")
	flags.StringVar(&self.overrides.Font, "font", "", "font name (default the built-in basic7x13)")
	flags.StringVar(&self.overrides.Fg, "fg", "", "foreground color, by name or as #rrggbb")
	flags.StringVar(&self.overrides.Bg, "bg", "", "background color, by name or as #rrggbb")
	flags.IntVar(&self.overrides.Brightness, "brightness", 0, "brightness, from 0 to 100")
	flags.StringVarP(&self.overrides.Align, "align", "a", "", "alignment, like 'center', 'top-left' or 'bottom'")

	root.AddCommand(self.renderCommand())
	root.AddCommand(self.layoutCommand())
	root.AddCommand(self.fontsCommand())
	root.AddCommand(self.interactiveCommand())
	return root
}

// Loads the config file and applies the flags that were explicitly set.
func (self *CLI) resolveSettings(cmd *cobra.Command) error {
	path, mustExist := self.configPath, true
	if path == "" { path, mustExist = defaultConfigFile, false }
	settings, err := LoadSettings(path, mustExist)
	if err != nil { return err }

	flags := cmd.Flags()
	if flags.Changed("width") { settings.Width = self.overrides.Width }
	if flags.Changed("height") { settings.Height = self.overrides.Height }
	if flags.Changed("fonts-dir") { settings.FontsDir = self.overrides.FontsDir }
	if flags.Changed("font") { settings.Font = self.overrides.Font }
	if flags.Changed("fg") { settings.Fg = self.overrides.Fg }
	if flags.Changed("bg") { settings.Bg = self.overrides.Bg }
	if flags.Changed("brightness") { settings.Brightness = self.overrides.Brightness }
	if flags.Changed("align") { settings.Align = self.overrides.Align }

	err = settings.Validate()
	if err != nil { return fmt.Errorf("invalid settings: %w", err) }
	self.settings = settings
	self.Logger.Debug("settings resolved", "config", path, "width", settings.Width,
		"height", settings.Height, "font", settings.Font, "align", settings.Align)
	return nil
}

// Returns the text given as argument, or the configured text
// if there are no args.
func (self *CLI) textFromArgs(args []string) string {
	if len(args) == 0 { return self.settings.Text }
	return args[0]
}
