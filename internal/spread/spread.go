// Package spread draws three-card Past/Present/Future spreads and preloads
// their imagery.
package spread

import (
	"errors"
	"math/rand/v2"

	"github.com/imdyangs/past-present-future/internal/card"
)

// Size is the number of cards in a spread
const Size = 3

// ErrCatalogTooSmall is returned when a deck cannot fill a spread
var ErrCatalogTooSmall = errors.New("spread: catalog has fewer than 3 cards")

// Position is the slot a card occupies in a spread
type Position int

const (
	Past Position = iota
	Present
	Future
)

// Positions lists the slots in display order
var Positions = [Size]Position{Past, Present, Future}

func (p Position) String() string {
	switch p {
	case Past:
		return "Past"
	case Present:
		return "Present"
	case Future:
		return "Future"
	}
	return "Unknown"
}

// Label is the upper-case form used in payloads and headings
func (p Position) Label() string {
	switch p {
	case Past:
		return "PAST"
	case Present:
		return "PRESENT"
	case Future:
		return "FUTURE"
	}
	return "UNKNOWN"
}

// Spread is three distinct cards bound to Past, Present and Future
type Spread [Size]card.Card

// IDs returns the card identifiers in position order
func (s Spread) IDs() []string {
	ids := make([]string, 0, Size)
	for _, c := range s {
		ids = append(ids, c.ID)
	}
	return ids
}

// Cards returns the spread as a slice
func (s Spread) Cards() []card.Card {
	return append([]card.Card(nil), s[:]...)
}

// Draw shuffles a copy of catalog and takes the first three cards. A nil rng
// uses the package-level generator.
func Draw(catalog []card.Card, rng *rand.Rand) (Spread, error) {
	var s Spread
	if len(catalog) < Size {
		return s, ErrCatalogTooSmall
	}

	shuffled := append([]card.Card(nil), catalog...)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	copy(s[:], shuffled[:Size])
	return s, nil
}
