package cmd

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
)

func newPreviewCmd(app *App, s *session) *cobra.Command {
	var (
		formatFlag string
		borderFlag string
		maxWidth   int
	)
	cmd := &cobra.Command{
		Use:   "preview <path|->",
		Short: "Show the table a source loads into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			border, err := textable.ParseBorder(borderFlag)
			if err != nil {
				return err
			}
			req, err := buildRequest(app, s, formatFlag, args[0])
			if err != nil {
				return err
			}
			t, err := textable.Load(req)
			if err != nil {
				return err
			}
			s.logger.Debug("loaded table", "columns", len(t.Columns), "rows", len(t.Rows))

			out := termenv.NewOutput(app.Stdout)
			bold := func(cell string) string { return out.String(cell).Bold().String() }
			return textable.WritePreview(app.Stdout, t,
				textable.WithBorder(border),
				textable.WithMaxWidth(maxWidth),
				textable.WithHeaderStyle(bold),
			)
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Source format: json, csv or xlsx")
	cmd.Flags().StringVar(&borderFlag, "border", "rounded", "Border style: rounded, ascii or none")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Truncate cells wider than this (0 for no limit)")
	return cmd
}
