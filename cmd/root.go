package cmd

import (
	"github.com/fatih/color"
	"github.com/misterclayt0n/ftracker/internal/config"
	"github.com/misterclayt0n/ftracker/internal/logger"
	"github.com/misterclayt0n/ftracker/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	noColor    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "ftracker",
	Short:         "Fitness tracker: distance, speed and calories from sensor packages",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(verbose, logOptions...); err != nil {
			return err
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadConfigFrom(configPath)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return err
		}
		logger.Logger.Debug("config loaded", zap.String("path", configPath), zap.Bool("database", cfg.DB.ConnectionString != ""))

		if noColor || !cfg.Output.Color {
			color.NoColor = true
		}
		return nil
	},
}

// Extra options for the logger built in PersistentPreRunE.
var logOptions []zap.Option

func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func openStorage() (*storage.Storage, error) {
	return storage.Open(cfg.DB.ConnectionString)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/ftracker/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
