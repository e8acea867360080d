// Package render formats cards, spreads, readings and history for the
// terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/imdyangs/past-present-future/internal/ansiart"
	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/reading"
	"github.com/imdyangs/past-present-future/internal/spread"
)

// DefaultWidth is used when the terminal size is unknown
const DefaultWidth = 80

// TerminalWidth returns the width of f, or DefaultWidth when it is not a
// terminal
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// SuitSymbol returns the playing-card suit that corresponds to a tarot suit
func SuitSymbol(s card.Suit) string {
	switch s {
	case card.Wands:
		return "♣"
	case card.Cups:
		return "♥"
	case card.Swords:
		return "♠"
	case card.Pentacles:
		return "♦"
	default:
		return "•"
	}
}

// WrapText wraps text to a specified width
func WrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case visibleLen(currentLine)+1+visibleLen(word) <= width:
			currentLine += " " + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}
	return result
}

func visibleLen(s string) int {
	return len([]rune(ansiart.Strip(s)))
}

// CardInfo returns the labelled detail lines for a card
func CardInfo(c card.Card, deckName string, width int) []string {
	label := colorize.CyanString
	value := func(format string, a ...any) string { return colorize.HiWhiteString(format, a...) }

	lines := []string{
		label("Card: ") + value("%s", c.Name),
		label("Deck: ") + value("%s", deckName),
		label("ID:   ") + value("%s", c.ID),
	}
	if c.IsMajor() {
		lines = append(lines, label("Type: ")+value("Major Arcana · %s", c.Number))
	} else {
		lines = append(lines,
			label("Type: ")+value("Minor Arcana"),
			label("Suit: ")+value("%s · %s", c.Suit, SuitSymbol(c.Suit)),
			label("Rank: ")+value("%s", c.Number),
		)
	}
	lines = append(lines, "", label("Meaning:"))
	lines = append(lines, WrapText(c.Meaning, width)...)
	if c.Description != "" {
		lines = append(lines, "", label("Description:"))
		lines = append(lines, WrapText(c.Description, width)...)
	}
	return lines
}

// SideBySide writes art on the left and info on the right
func SideBySide(w io.Writer, art string, info []string) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if art == "" {
		artLines = nil
	}
	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, visibleLen(line))
	}

	const spacing = 4
	infoStartCol := artWidth + spacing
	if artWidth == 0 {
		infoStartCol = 0
	}

	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleLen(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// Spread writes the three cards of a spread as labelled panels
func Spread(w io.Writer, s spread.Spread, width int) {
	textWidth := max(20, width-6)
	for i, c := range s {
		pos := spread.Positions[i]
		fmt.Fprintf(w, "%s\n", colorize.New(colorize.FgHiBlack).Sprint(pos.Label()))
		fmt.Fprintf(w, "  %s\n", colorize.New(colorize.FgHiWhite, colorize.Bold).Sprint(c.Name))
		for _, line := range WrapText(c.Meaning, textWidth) {
			fmt.Fprintf(w, "  %s\n", colorize.New(colorize.FgWhite).Sprint(line))
		}
		if i < len(s)-1 {
			fmt.Fprintln(w)
		}
	}
}

// Notice formats a short, calm note shown beside a fallback reading
func Notice(text string) string {
	return colorize.New(colorize.FgYellow).Sprint("· " + text)
}

// Reading renders a reading as styled markdown
func Reading(r reading.Reading, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(r.Markdown())
	if err != nil {
		return "", fmt.Errorf("render reading: %w", err)
	}
	return out, nil
}

// HistoryLine formats one history entry
func HistoryLine(e history.Entry) string {
	names := make([]string, 0, len(e.Cards))
	for _, c := range e.Cards {
		names = append(names, c.Name)
	}
	stamp := e.Timestamp.Local().Format("2006-01-02 15:04")
	return fmt.Sprintf("%s  %s", colorize.New(colorize.FgHiBlack).Sprint(stamp), strings.Join(names, " · "))
}

// History writes the visible history entries, newest first
func History(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No draws yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(w, HistoryLine(e))
	}
}
