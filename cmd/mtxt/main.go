package main

import "context"
import "errors"
import "fmt"
import "os"
import "os/signal"
import "syscall"

import "github.com/spf13/cobra"

import "github.com/tinne26/mtxt/internal/cli"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// the log level must be set before the root pre-run loads settings
	settingsPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose { level = cli.LogDebug }
		c.SetLogLevel(level)
		return settingsPreRun(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
