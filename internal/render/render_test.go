package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/history"
	"github.com/imdyangs/past-present-future/internal/reading"
	"github.com/imdyangs/past-present-future/internal/spread"
)

func init() {
	colorize.NoColor = true
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps over the lazy dog", 15)
	assert.Equal(t, []string{"the quick brown", "fox jumps over", "the lazy dog"}, lines)
	assert.Equal(t, []string{""}, WrapText("   ", 20))

	for _, line := range WrapText(strings.Repeat("word ", 50), 3) {
		assert.LessOrEqual(t, len(line), 40, "tiny widths fall back to 40")
	}
}

var fool = card.Card{ID: "maj-00", Arcana: card.Major, Number: "00", Name: "The Fool", Meaning: "Beginnings", Description: "A traveller at the edge of a cliff."}

func TestCardInfo(t *testing.T) {
	lines := CardInfo(fool, "Rider–Waite–Smith", 40)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Card: The Fool")
	assert.Contains(t, joined, "Type: Major Arcana · 00")
	assert.Contains(t, joined, "A traveller at the edge of a cliff.")

	minor := card.Card{ID: "min-cups-02", Arcana: card.Minor, Suit: card.Cups, Number: "02", Name: "Two of Cups", Meaning: "Partnership"}
	joined = strings.Join(CardInfo(minor, "x", 40), "\n")
	assert.Contains(t, joined, "Suit: Cups · ♥")
	assert.NotContains(t, joined, "Description:")
}

func TestSideBySide(t *testing.T) {
	var buf bytes.Buffer
	SideBySide(&buf, "\x1b[31mAB\x1b[0m\nCD\n", []string{"one", "two", "three"})
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "  \x1b[31mAB\x1b[0m    one", lines[1])
	assert.Equal(t, "  CD    two", lines[2])
	assert.Equal(t, "        three", lines[3])
}

func TestSpreadPanels(t *testing.T) {
	var buf bytes.Buffer
	s := spread.Spread{fool, {Name: "Two of Cups", Meaning: "Partnership"}, {Name: "The Star", Meaning: "Hope"}}
	Spread(&buf, s, 80)
	out := buf.String()
	assert.Contains(t, out, "PAST\n  The Fool\n  Beginnings\n")
	assert.Contains(t, out, "FUTURE\n  The Star\n  Hope\n")
}

func TestReadingRendersSections(t *testing.T) {
	r := reading.Reading{
		Title:    reading.Title,
		Sections: []reading.Section{{Heading: "PAST — The Fool (00)", Paragraphs: []string{"A leap."}}},
		Footer:   reading.Footer,
	}
	out, err := Reading(r, 80)
	require.NoError(t, err)
	assert.Contains(t, out, "The Fool")
	assert.Contains(t, out, "A leap.")
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, nil)
	assert.Equal(t, "No draws yet.\n", buf.String())

	buf.Reset()
	History(&buf, []history.Entry{{
		Timestamp: time.Now(),
		Cards:     []card.Card{{Name: "A"}, {Name: "B"}, {Name: "C"}},
	}})
	assert.Contains(t, buf.String(), "A · B · C")
}
