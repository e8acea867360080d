package cmd

import (
	"errors"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/imdyangs/past-present-future/internal/validator"
)

var strictValidation bool

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a custom deck before drawing from it",
	Long: `Validate reads <path>/deck.toml and reports problems that would stop ppf from
drawing a spread with it (errors) and gaps worth fixing (warnings), such as
missing suits or image files that are not on disk.

With --strict, warnings also fail the check.`,
	Args: cobra.ExactArgs(1),
	// Validation needs no config or logger.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]
		if info, err := os.Stat(deckPath); err != nil || !info.IsDir() {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		results, err := validator.NewValidator(deckPath).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		report(colorize.New(colorize.FgRed), "error", results.Errors)
		report(colorize.New(colorize.FgYellow), "warning", results.Warnings)

		switch {
		case !results.OK():
			return errors.New("validation failed")
		case strictValidation && len(results.Warnings) > 0:
			return errors.New("validation failed: warnings present in strict mode")
		}
		colorize.New(colorize.FgGreen).Printf("✓ %s is ready to draw from\n", deckPath)
		return nil
	},
}

func report(c *colorize.Color, kind string, items []string) {
	if len(items) == 0 {
		return
	}
	noun := kind
	if len(items) > 1 {
		noun += "s"
	}
	c.Printf("%d %s\n", len(items), noun)
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

func init() {
	validateCmd.Flags().BoolVar(&strictValidation, "strict", false, "treat warnings as errors")
}
