package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
)

func newFormatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported source formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range textable.Formats() {
				if _, err := fmt.Fprintln(app.Stdout, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
