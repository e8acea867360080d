package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/ansiart"
	"github.com/imdyangs/past-present-future/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with ANSI art",
	Long: `Show displays detailed information about a tarot card with ANSI terminal art.
Use card IDs like 'maj-00' or 'min-wands-01'.

You can specify a deck using the --deck flag: a built-in deck id, a deck in
your deck library (XDG_DATA_HOME/tarot/decks) or a relative path.
If no deck is specified, the default deck from your config will be used.

Examples:
  ppf show maj-00
  ppf show --deck ./custom-deck min-cups-02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.deck.GetCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		// Art is best effort; the card details are shown either way.
		var art string
		if c.Image != "" {
			url := a.locators.Resolve(cmd.Context(), c.ID, c.Image)
			if err := a.images.Fetch(cmd.Context(), url); err != nil {
				logger.Info("card image unavailable", zap.String("card", c.ID), zap.Error(err))
			} else if imagePath, ok := a.images.Path(url); ok {
				art, err = ansiart.FromFile(imagePath, cfg.AnsiDir(), ansiart.DefaultWidth, ansiart.DefaultHeight)
				if err != nil {
					logger.Info("card art unavailable", zap.String("card", c.ID), zap.Error(err))
				}
			}
		}

		infoWidth := render.TerminalWidth(os.Stdout) - ansiart.DefaultWidth - 8
		render.SideBySide(os.Stdout, art, render.CardInfo(c, a.deck.Name, infoWidth))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
