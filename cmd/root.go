package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/config"
	"github.com/imdyangs/past-present-future/internal/logging"
	"github.com/imdyangs/past-present-future/internal/ui"
)

var (
	configPath string
	verbose    bool
	useLocal   bool
	deckFlag   string

	cfg         *config.Config
	logger      = zap.NewNop()
	closeLogger = func() {}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ppf",
	Short: "Draw a Past · Present · Future tarot spread",
	Long: `ppf draws three distinct tarot cards for Past, Present and Future and
asks a reading service for a short reflective reading. When the service is
unreachable a local reading is composed from the card meanings instead.

Run without a subcommand for the interactive view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if useLocal {
			cfg.Origin = "localhost"
		}

		// The interactive view owns the terminal, so only log to the file there.
		interactive := cmd == cmd.Root()
		logger, closeLogger, err = logging.New(logging.Options{
			File:    cfg.LogPath(),
			Level:   cfg.LogLevel,
			Verbose: verbose,
			Console: verbose && !interactive,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %v", err)
		}
		logger.Debug("config loaded",
			zap.String("path", cfg.Path()),
			zap.String("api_base", cfg.APIBase()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
		closeLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return ui.Run(ui.Config{
			DeckName: a.deck.Name,
			Drawer:   a.drawer,
			Readings: a.readings,
			History:  a.history,
			Health:   a.client.CheckHealth,
			Logger:   logger,
		})
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ppf/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&useLocal, "local", false, "use the local reading service")
	RootCmd.PersistentFlags().StringVarP(&deckFlag, "deck", "d", "", "built-in deck id, deck library name or path to a deck")

	RootCmd.AddCommand(validateCmd)
}
