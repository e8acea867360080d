package reading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdyangs/past-present-future/internal/card"
)

func TestFallbackUsesOnlyCardNamesAndMeanings(t *testing.T) {
	past := card.Card{ID: "maj-09", Arcana: card.Major, Number: "09", Name: "The Hermit", Meaning: "Solitude, inner guidance, reflection", Description: "LANTERN-DESCRIPTION"}
	present := card.Card{ID: "min-pentacles-08", Arcana: card.Minor, Suit: card.Pentacles, Number: "08", Name: "Eight of Pentacles", Meaning: "Craft, diligence, skill-building"}
	future := card.Card{ID: "maj-17", Arcana: card.Major, Number: "17", Name: "The Star", Meaning: "Hope, renewal, faith"}

	r := Fallback(past, present, future)

	require.Len(t, r.Sections, 5)
	assert.Equal(t, Title, r.Title)
	assert.Equal(t, Footer, r.Footer)
	assert.Equal(t, "PAST — The Hermit (09)", r.Sections[0].Heading)
	assert.Equal(t, "PRESENT — Eight of Pentacles", r.Sections[1].Heading)
	assert.Equal(t, "FUTURE — The Star (17)", r.Sections[2].Heading)

	text := r.Markdown()
	assert.Contains(t, text, "solitude, inner guidance, reflection")
	assert.Contains(t, text, "craft, diligence, skill-building")
	assert.Contains(t, text, "hope, renewal, faith")
	assert.NotContains(t, text, "LANTERN-DESCRIPTION")

	for _, s := range r.Sections {
		assert.NotEmpty(t, s.Paragraphs, s.Heading)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := card.Card{Name: "Ace of Cups", Meaning: "New feelings", Arcana: card.Minor}
	b := card.Card{Name: "Two of Cups", Meaning: "Partnership", Arcana: card.Minor}
	c := card.Card{Name: "Three of Cups", Meaning: "Celebration", Arcana: card.Minor}
	assert.Equal(t, Fallback(a, b, c), Fallback(a, b, c))
	assert.True(t, strings.HasPrefix(Fallback(a, b, c).Sections[3].Paragraphs[0], "Your story moves from new feelings"))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "hope, renewal", lowerFirst("Hope, renewal."))
	assert.Equal(t, "DIY spirit", lowerFirst("DIY spirit"))
	assert.Equal(t, "", lowerFirst(""))
	assert.Equal(t, "élan", lowerFirst("Élan"))
}
