package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imdyangs/past-present-future/internal/config"
	"github.com/imdyangs/past-present-future/internal/deck"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage the decks you draw from",
	Long: `List the built-in decks and the custom decks in your deck library
($XDG_DATA_HOME/tarot/decks), pick the default one and create the library.`,
}

var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List built-in and library decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range deck.BuiltinIDs() {
			d, _ := deck.Builtin(id)
			printDeckLine(id, d, "built-in")
		}

		library, err := libraryDecks()
		if err != nil {
			return err
		}
		if library == nil {
			fmt.Println("\nNo deck library yet. Run 'ppf deck init' to create it.")
			return nil
		}

		names := make([]string, 0, len(library))
		for name := range library {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printDeckLine(name, library[name], "library")
		}
		return nil
	},
}

func printDeckLine(name string, d *deck.Deck, origin string) {
	marker := "  "
	if name == cfg.DefaultDeck {
		marker = colorize.GreenString("* ")
	}
	fmt.Printf("%s%-20s %s %s\n", marker, name, d.Name,
		colorize.New(colorize.FgHiBlack).Sprintf("(%s, %d cards)", origin, d.Len()))
}

// libraryDecks loads every usable deck directory in the deck library. It
// returns nil when the library does not exist.
func libraryDecks() (map[string]*deck.Deck, error) {
	libraryPath, err := filepath.EvalSymlinks(config.GetDeckLibraryPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error resolving deck library: %v", err)
	}

	entries, err := os.ReadDir(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("error reading deck library: %v", err)
	}

	decks := make(map[string]*deck.Deck, len(entries))
	for _, entry := range entries {
		// Follow symlinked deck directories
		entryPath := filepath.Join(libraryPath, entry.Name())
		if info, err := os.Stat(entryPath); err != nil || !info.IsDir() {
			continue
		}
		d, err := deck.LoadDeck(entryPath)
		if err != nil {
			logger.Sugar().Debugw("skipping unusable deck", "path", entryPath, "error", err)
			continue
		}
		decks[entry.Name()] = d
	}
	return decks, nil
}

var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck]",
	Short: "Draw from this deck unless --deck says otherwise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		d, err := resolveDeck(name)
		if err != nil {
			return fmt.Errorf("not a usable deck: %v", err)
		}
		if err := config.SetDefaultDeck(cfg.Path(), name); err != nil {
			return fmt.Errorf("error setting default deck: %v", err)
		}
		fmt.Printf("Default deck set to %s (%s)\n", name, d.Name)
		return nil
	},
}

var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the deck library directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %v", err)
		}
		fmt.Println("Deck library:", libraryPath)
		fmt.Println("Config file: ", cfg.Path())
		fmt.Println("Copy deck directories (each with a deck.toml) into the library, then run 'ppf deck ls'.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd, deckSetDefaultCmd, deckInitCmd)
}
