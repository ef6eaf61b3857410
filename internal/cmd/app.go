// Package cmd wires the textable command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
}

// NewApp constructs an App bound to the process's standard streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to Stderr
// and returned for [ExitCode].
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(a.Stderr, "Error:", err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
