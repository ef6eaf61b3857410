package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/textable"
)

func newConvertCmd(app *App, s *session) *cobra.Command {
	var (
		formatFlag string
		outputFlag string
	)
	cmd := &cobra.Command{
		Use:   "convert <path|->",
		Short: "Render a table source as a LaTeX table fragment",
		Long: `Render a JSON, CSV or XLSX table as a LaTeX table fragment.

The format comes from --format, then the file extension, then the config
file. Pass "-" to read a JSON array of records from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(app, s, formatFlag, args[0])
			if err != nil {
				return err
			}
			out, err := textable.Convert(req, textable.WithLogger(s.logger))
			if err != nil {
				return err
			}

			dest := outputFlag
			if dest == "" {
				dest = s.cfg.Output
			}
			if dest == "" {
				_, err = io.WriteString(app.Stdout, out)
				return err
			}
			if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			s.logger.Info("wrote table", "source", args[0], "output", dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Source format: json, csv or xlsx")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the fragment to this file instead of stdout")
	return cmd
}
