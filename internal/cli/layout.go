package cli

import "fmt"
import "io"

import "github.com/spf13/cobra"

import "github.com/tinne26/mtxt"

func (self *CLI) layoutCommand() *cobra.Command {
	var wrap int

	cmd := &cobra.Command{
		Use: "layout [text]",
		Short: "Print the lines and glyph placements for some text",
		Long: `Breaks the given text (or the configured one) into lines and prints the ` +
			`resulting glyph placements, without drawing anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			disp, err := newDisplay(self.settings, self.Logger)
			if err != nil { return err }
			if !cmd.Flags().Changed("wrap") { wrap = disp.matrix.Width() }
			return printLayout(cmd.OutOrStdout(), disp, self.textFromArgs(args), wrap)
		},
	}

	cmd.Flags().IntVar(&wrap, "wrap", 0, "max line width in pixels (default the matrix width)")
	return cmd
}

func printLayout(w io.Writer, disp *display, text string, wrap int) error {
	fnt := disp.matrix.Font()
	lines, err := mtxt.BreakLines(text, wrap, fnt)
	if err != nil { return err }
	blockWidth, blockHeight, err := mtxt.Measure(text, fnt, wrap)
	if err != nil { return err }
	config := mtxt.Config{ Width: disp.matrix.Width(), Height: disp.matrix.Height(), Align: disp.align }
	placements, err := mtxt.LayoutWithWrap(text, fnt, config, wrap)
	if err != nil { return err }

	printKeyValue(w, "font", fmt.Sprintf("%s (height %dpx)", fnt.Name(), fnt.LineHeight()))
	printKeyValue(w, "canvas", fmt.Sprintf("%dx%d", config.Width, config.Height))
	printKeyValue(w, "align", disp.align.String())
	printKeyValue(w, "block", fmt.Sprintf("%dx%d", blockWidth, blockHeight))
	printKeyValue(w, "lines", fmt.Sprintf("%d", len(lines)))
	for i, line := range lines {
		lineWidth, err := mtxt.LineWidth(line, fnt)
		if err != nil { return err }
		printDetail(w, "%2d  %-4d %q", i, lineWidth, line)
	}
	printKeyValue(w, "glyphs", fmt.Sprintf("%d", len(placements)))
	for _, placement := range placements {
		printDetail(w, "%q  x=%d y=%d", placement.CodePoint, placement.X, placement.Y)
	}
	return nil
}
