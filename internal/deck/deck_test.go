package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdyangs/past-present-future/internal/card"
)

func TestBuiltinRiderWaite(t *testing.T) {
	d, ok := Builtin(DefaultID)
	require.True(t, ok)
	assert.Equal(t, 78, d.Len())

	seen := make(map[string]bool)
	majors := 0
	for _, c := range d.Cards() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Meaning)
		assert.NotEmpty(t, c.Description, "missing description for %s", c.ID)
		assert.True(t, strings.HasPrefix(c.Image, commonsFilePath), c.Image)
		if c.IsMajor() {
			majors++
			assert.Empty(t, c.Suit)
		} else {
			assert.True(t, c.Suit.Valid(), "suit %q", c.Suit)
		}
	}
	assert.Equal(t, 22, majors)
}

func TestGetCard(t *testing.T) {
	d, _ := Builtin(DefaultID)

	fool, err := d.GetCard("maj-00")
	require.NoError(t, err)
	assert.Equal(t, "The Fool", fool.Name)
	assert.Equal(t, "00", fool.Number)
	assert.Equal(t, commonsFilePath+"RWS_Tarot_00_Fool.jpg", fool.Image)

	nine, err := d.GetCard("min-wands-09")
	require.NoError(t, err)
	assert.Equal(t, card.Wands, nine.Suit)
	assert.Equal(t, commonsFilePath+"Tarot_Nine_of_Wands.jpg", nine.Image)

	pents, err := d.GetCard("min-pentacles-01")
	require.NoError(t, err)
	assert.Equal(t, commonsFilePath+"Pents01.jpg", pents.Image)

	_, err = d.GetCard("maj-99")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCardsReturnsCopy(t *testing.T) {
	d, _ := Builtin(DefaultID)
	cards := d.Cards()
	cards[0].Name = "changed"

	again, err := d.GetCard(cards[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "The Fool", again.Name)
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, `
[deck]
id = "tiny"
name = "Tiny Deck"
image_base = "https://img.example/"

[[major_arcana]]
no = "00"
file = "fool.png"
meaning = "Start"

[[major_arcana]]
no = "01"
name = "The Maker"
file = "https://cdn.example/maker.png"
meaning = "Skill"
description = "Make it real."

[minor_arcana.cups]
cards = [
  { n = "01", meaning = "Open heart" },
]
`)

	d, err := LoadDeck(dir)
	require.NoError(t, err)
	assert.Equal(t, "tiny", d.ID)
	assert.Equal(t, dir, d.Path)
	require.Equal(t, 3, d.Len())

	fool, err := d.GetCard("maj-00")
	require.NoError(t, err)
	assert.Equal(t, "The Fool", fool.Name, "default name applied")
	assert.Equal(t, "https://img.example/fool.png", fool.Image)

	maker, err := d.GetCard("maj-01")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/maker.png", maker.Image)
	assert.Equal(t, "Make it real.", maker.Description)

	ace, err := d.GetCard("min-cups-01")
	require.NoError(t, err)
	assert.Equal(t, card.Cups, ace.Suit)
	assert.Equal(t, "Ace of Cups", ace.Name)
	assert.Equal(t, "https://img.example/Cups01.jpg", ace.Image)
}

func TestLoadDeckErrors(t *testing.T) {
	_, err := LoadDeck(t.TempDir())
	assert.ErrorContains(t, err, "deck.toml not found")

	dir := t.TempDir()
	writeDeck(t, dir, `[deck`)
	_, err = LoadDeck(dir)
	assert.ErrorContains(t, err, "error parsing deck.toml")

	empty := t.TempDir()
	writeDeck(t, empty, "[deck]\nid = \"empty\"\n")
	_, err = LoadDeck(empty)
	assert.ErrorContains(t, err, "defines no cards")
}

func TestNormalizeSuit(t *testing.T) {
	assert.Equal(t, card.Pentacles, NormalizeSuit("PENTACLES"))
	assert.Equal(t, card.Swords, NormalizeSuit(" swords "))
}

func writeDeck(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.toml"), []byte(body), 0o644))
}
