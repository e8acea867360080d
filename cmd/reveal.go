package cmd

import (
	"fmt"
	"os"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imdyangs/past-present-future/internal/render"
	"github.com/imdyangs/past-present-future/internal/session"
)

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Draw three cards for Past, Present and Future",
	Long: `Reveal shuffles the deck, draws three distinct cards, fetches their
imagery into the local cache and records the draw in your history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		s, err := a.drawer.Reveal(cmd.Context())
		if err != nil {
			return fmt.Errorf("error drawing spread: %v", err)
		}
		render.Spread(os.Stdout, s, render.TerminalWidth(os.Stdout))
		return nil
	},
}

var readingCmd = &cobra.Command{
	Use:   "reading",
	Short: "Draw a spread and ask for its reading",
	Long: `Reading draws a new spread and requests a reading for it. If the
reading service cannot be reached, or its reply has no sections, a local
reading built from the card meanings is shown with a short notice.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		width := render.TerminalWidth(os.Stdout)
		s, err := a.drawer.Reveal(cmd.Context())
		if err != nil {
			return fmt.Errorf("error drawing spread: %v", err)
		}
		render.Spread(os.Stdout, s, width)
		fmt.Println()

		res, err := a.readings.GetReading(cmd.Context())
		if err != nil {
			return fmt.Errorf("error getting reading: %v", err)
		}

		if res.Notice != "" {
			fmt.Println(render.Notice(res.Notice))
		}
		out, err := render.Reading(res.Reading, width)
		if err != nil {
			logger.Sugar().Warnw("styled reading unavailable", "error", err)
			out = res.Reading.Markdown()
		}
		fmt.Print(out)

		if verbose {
			line := fmt.Sprintf("%s in %s", res.State, res.Elapsed.Round(time.Millisecond))
			if res.State == session.Succeeded && res.Model != "" {
				line += " · " + res.Model
			}
			colorize.New(colorize.FgHiBlack).Println(line)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your most recent draws",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		all, _ := cmd.Flags().GetBool("all")
		entries := a.history.Visible(cmd.Context())
		if all {
			entries = a.history.All(cmd.Context())
		}
		render.History(os.Stdout, entries)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(revealCmd)
	RootCmd.AddCommand(readingCmd)
	RootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Bool("all", false, "show every stored draw instead of the recent window")
}
