package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bjaus/textable/internal/config"
	"github.com/bjaus/textable/internal/logging"
)

// session carries what the root command resolved for its subcommands.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(app *App) *cobra.Command {
	var (
		debugMode  bool
		logJSON    bool
		configPath string
	)
	s := &session{cfg: &config.Config{}, logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:     "textable",
		Short:   "Convert JSON, CSV and XLSX tables to LaTeX",
		Version: app.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Errors are printed once by App.Execute.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			s.cfg = cfg

			debug := debugMode || cfg.Debug
			if logJSON || cfg.LogFormat == "json" {
				s.logger = logging.SetupJSON(debug, app.Stderr)
			} else {
				s.logger = logging.Setup(debug, app.Stderr)
			}
			s.logger.Debug("configuration loaded", "config", configPath, "format", cfg.Format)
			return nil
		},
	}
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $"+config.EnvPath+")")

	rootCmd.AddCommand(
		newConvertCmd(app, s),
		newPreviewCmd(app, s),
		newFormatsCmd(app),
	)
	return rootCmd
}
