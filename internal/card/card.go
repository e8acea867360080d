package card

// Arcana distinguishes the two halves of a tarot deck
type Arcana string

const (
	Major Arcana = "Major"
	Minor Arcana = "Minor"
)

// Suit is one of the four minor arcana suits. Major arcana cards have no suit.
type Suit string

const (
	Wands     Suit = "Wands"
	Cups      Suit = "Cups"
	Swords    Suit = "Swords"
	Pentacles Suit = "Pentacles"
)

// Suits lists the minor arcana suits in deck order
var Suits = []Suit{Wands, Cups, Swords, Pentacles}

// Valid reports whether s is one of the four known suits
func (s Suit) Valid() bool {
	for _, known := range Suits {
		if s == known {
			return true
		}
	}
	return false
}

// Card represents a tarot card
type Card struct {
	ID          string `json:"id"`                    // Stable ID (e.g., maj-00, min-wands-01)
	Arcana      Arcana `json:"arcana"`                // Major or Minor
	Suit        Suit   `json:"suit,omitempty"`        // Empty for major arcana
	Number      string `json:"number"`                // Keeps leading zeros (00-21, 01-14)
	Name        string `json:"name"`                  // Display name
	Meaning     string `json:"meaning"`               // Short meaning
	Description string `json:"description,omitempty"` // Optional long-form description
	Image       string `json:"img"`                   // Image locator URL
}

// IsMajor reports whether the card belongs to the major arcana
func (c Card) IsMajor() bool {
	return c.Arcana == Major
}

// WithImage returns a copy of the card pointing at a different image URL
func (c Card) WithImage(url string) Card {
	c.Image = url
	return c
}
