package cli

import "context"
import "errors"
import "fmt"
import "math/rand/v2"
import "time"

import "github.com/spf13/cobra"

import "github.com/tinne26/mtxt"
import "github.com/tinne26/mtxt/matrix"

const (
	defaultPNGScale    = 8  // pixels per LED on PNG output
	defaultWindowScale = 12 // pixels per LED on the window
)

// Delay between glyphs when revealing text. Random between 20 and
// 170 milliseconds, which looks like someone typing.
var revealDelay = func() time.Duration {
	return time.Duration(20 + rand.IntN(150))*time.Millisecond
}

type renderOpts struct {
	png string
	scale int
	window bool
	reveal bool
}

func (self *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{ scale: defaultPNGScale }

	cmd := &cobra.Command{
		Use: "render [text]",
		Short: "Draw text on the LED matrix",
		Long: `Draws the given text (or the configured one) on the LED matrix. By default ` +
			`the matrix is shown on the terminal; use --png or --window for other outputs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scale < 1 { return fmt.Errorf("invalid scale %d", opts.scale) }
			disp, err := newDisplay(self.settings, self.Logger)
			if err != nil { return err }
			disp.text = self.textFromArgs(args)

			var window *matrix.WindowSink
			switch {
			case opts.window:
				window = matrix.NewWindowSink(defaultWindowScale)
				disp.matrix.AddSink(window)
			case opts.png != "":
				disp.matrix.AddSink(matrix.NewPNGSink(opts.png, opts.scale))
			default:
				term := matrix.NewTermSink(cmd.OutOrStdout())
				term.SetRedraw(opts.reveal)
				disp.matrix.AddSink(term)
			}
			return runRender(cmd.Context(), disp, window, opts.reveal)
		},
	}

	cmd.Flags().StringVarP(&opts.png, "png", "o", "", "write the matrix to a PNG file")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixels per LED for PNG output")
	cmd.Flags().BoolVarP(&opts.window, "window", "w", false, "show the matrix on a window")
	cmd.Flags().BoolVarP(&opts.reveal, "reveal", "r", false, "reveal the text one glyph at a time")
	return cmd
}

// Draws the display's text and syncs the matrix. If window is not nil,
// the call blocks until the window is closed or the context cancelled.
func runRender(ctx context.Context, disp *display, window *matrix.WindowSink, reveal bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	placements, err := disp.render()
	if err != nil { return err }
	logger.Debug("text laid out", "glyphs", len(placements), "align", disp.align.String())

	if !reveal {
		err = disp.matrix.Sync()
		if err != nil { return err }
		prog.done(fmt.Sprintf("Rendered %d glyphs", len(placements)))
		if window == nil { return nil }
		return window.Run(ctx, appName)
	}

	// start from a blank matrix and draw glyphs one by one
	disp.matrix.Clear()
	disp.matrix.Fill()
	err = disp.matrix.Sync()
	if err != nil { return err }
	if window == nil {
		err = revealPlacements(ctx, disp.matrix, placements)
		if err != nil { return err }
		prog.done(fmt.Sprintf("Revealed %d glyphs", len(placements)))
		return nil
	}

	// the window must run on the calling goroutine, so the reveal
	// goes to the background and stops when the window is closed
	ctx, cancel := context.WithCancel(ctx)
	revealErr := make(chan error, 1)
	go func() { revealErr <- revealPlacements(ctx, disp.matrix, placements) }()
	err = window.Run(ctx, appName)
	cancel()
	if rerr := <-revealErr; err == nil && !errors.Is(rerr, context.Canceled) {
		err = rerr
	}
	return err
}

// Draws the given placements one at a time, syncing the matrix after
// each glyph and waiting [revealDelay] between them.
func revealPlacements(ctx context.Context, panel *matrix.Matrix, placements []mtxt.Placement) error {
	for _, placement := range placements {
		err := panel.DrawText(placement.CodePoint, placement.X, placement.Y)
		if err != nil { return err }
		err = panel.Sync()
		if err != nil { return err }
		err = wait(ctx, revealDelay())
		if err != nil { return err }
	}
	return nil
}

func wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
