package deck

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/imdyangs/past-present-future/internal/card"
)

// ErrCardNotFound is returned by GetCard for unknown identifiers
var ErrCardNotFound = errors.New("card not found")

// commonsFilePath is the stable Wikimedia Commons redirector. The hashed
// upload path it redirects to is resolved later by the image locator cache.
const commonsFilePath = "https://commons.wikimedia.org/wiki/Special:FilePath/"

// Deck represents a tarot deck
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string // Empty for built-in decks

	cards []card.Card
	byID  map[string]int
}

// Cards returns the deck's cards in catalog order. The slice is a copy.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// GetCard gets a card by its stable ID
func (d *Deck) GetCard(cardID string) (card.Card, error) {
	i, ok := d.byID[cardID]
	if !ok {
		return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	return d.cards[i], nil
}

var builtins = sync.OnceValue(func() map[string]*Deck {
	d := fromDefinition(riderWaite, rwsDescriptions, "")
	return map[string]*Deck{d.ID: d}
})

// Builtin returns a built-in deck by ID
func Builtin(id string) (*Deck, bool) {
	d, ok := builtins()[id]
	return d, ok
}

// BuiltinIDs lists the IDs of the built-in decks
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtins()))
	for id := range builtins() {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadDeck loads a tarot deck from a directory containing deck.toml
func LoadDeck(deckPath string) (*Deck, error) {
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	def, err := DecodeFile(deckTomlPath)
	if err != nil {
		return nil, err
	}

	d := fromDefinition(def, descriptions{}, deckPath)
	if d.ID == "" {
		d.ID = filepath.Base(deckPath)
	}
	if len(d.cards) == 0 {
		return nil, fmt.Errorf("deck %s defines no cards", d.ID)
	}
	return d, nil
}

// DecodeFile parses a deck.toml definition
func DecodeFile(path string) (Definition, error) {
	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return Definition{}, fmt.Errorf("error parsing deck.toml: %w", err)
	}
	return def, nil
}

// fromDefinition flattens a definition into the card catalog: major arcana
// first, then each suit in the canonical suit order.
func fromDefinition(def Definition, desc descriptions, path string) *Deck {
	d := &Deck{
		ID:          def.Deck.ID,
		Name:        def.Deck.Name,
		Version:     def.Deck.Version,
		Author:      def.Deck.Author,
		Description: def.Deck.Description,
		Path:        path,
		byID:        make(map[string]int),
	}

	for _, m := range def.MajorArcana {
		c := card.Card{
			ID:          "maj-" + m.No,
			Arcana:      card.Major,
			Number:      m.No,
			Name:        m.Name,
			Meaning:     m.Meaning,
			Description: firstNonEmpty(m.Description, desc.Major[m.No]),
			Image:       imageLocator(def.Deck.ImageBase, m.File),
		}
		if c.Name == "" {
			c.Name = getDefaultMajorArcanaName(m.No)
		}
		d.add(c)
	}

	for _, suitKey := range sortedSuitKeys(def.MinorArcana) {
		section := def.MinorArcana[suitKey]
		suit := NormalizeSuit(suitKey)
		prefix := section.Prefix
		if prefix == "" {
			prefix = string(suit)
		}
		for _, m := range section.Cards {
			file := m.File
			if file == "" {
				file = fmt.Sprintf("%s%s.jpg", prefix, m.N)
			}
			c := card.Card{
				ID:          fmt.Sprintf("min-%s-%s", strings.ToLower(string(suit)), m.N),
				Arcana:      card.Minor,
				Suit:        suit,
				Number:      m.N,
				Name:        m.Name,
				Meaning:     m.Meaning,
				Description: firstNonEmpty(m.Description, desc.Minor[string(suit)+":"+m.N]),
				Image:       imageLocator(def.Deck.ImageBase, file),
			}
			if c.Name == "" {
				c.Name = getDefaultMinorArcanaName(m.N, suit)
			}
			d.add(c)
		}
	}

	return d
}

func (d *Deck) add(c card.Card) {
	if _, dup := d.byID[c.ID]; dup {
		return
	}
	d.byID[c.ID] = len(d.cards)
	d.cards = append(d.cards, c)
}

// imageLocator builds the canonical image URL for a file. Absolute URLs are
// used as-is.
func imageLocator(base, file string) string {
	if file == "" {
		return ""
	}
	if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") {
		return file
	}
	if base == "" {
		base = commonsFilePath
	}
	return base + url.PathEscape(file)
}

// NormalizeSuit maps a suit key in any casing onto its canonical form
func NormalizeSuit(key string) card.Suit {
	return card.Suit(cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(key))))
}

// sortedSuitKeys orders suit keys canonically, with unknown suits last
func sortedSuitKeys(sections map[string]SuitSection) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		s := NormalizeSuit(k)
		for i, known := range card.Suits {
			if s == known {
				return i
			}
		}
		return len(card.Suits)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// getDefaultMajorArcanaName returns the default name for a major arcana card
func getDefaultMajorArcanaName(number string) string {
	names := map[string]string{
		"00": "The Fool",
		"01": "The Magician",
		"02": "The High Priestess",
		"03": "The Empress",
		"04": "The Emperor",
		"05": "The Hierophant",
		"06": "The Lovers",
		"07": "The Chariot",
		"08": "Strength",
		"09": "The Hermit",
		"10": "Wheel of Fortune",
		"11": "Justice",
		"12": "The Hanged Man",
		"13": "Death",
		"14": "Temperance",
		"15": "The Devil",
		"16": "The Tower",
		"17": "The Star",
		"18": "The Moon",
		"19": "The Sun",
		"20": "Judgement",
		"21": "The World",
	}

	if name, ok := names[number]; ok {
		return name
	}

	return fmt.Sprintf("Major Arcana %s", number)
}

// getDefaultMinorArcanaName returns the default name for a minor arcana card
func getDefaultMinorArcanaName(number string, suit card.Suit) string {
	ranks := map[string]string{
		"01": "Ace", "02": "Two", "03": "Three", "04": "Four", "05": "Five",
		"06": "Six", "07": "Seven", "08": "Eight", "09": "Nine", "10": "Ten",
		"11": "Page", "12": "Knight", "13": "Queen", "14": "King",
	}

	rank, ok := ranks[number]
	if !ok {
		rank = number
	}
	return fmt.Sprintf("%s of %s", rank, suit)
}

// Deck definition structures, shared by the built-in tables and deck.toml
type Definition struct {
	Deck        DeckSection            `toml:"deck"`
	MajorArcana []MajorEntry           `toml:"major_arcana"`
	MinorArcana map[string]SuitSection `toml:"minor_arcana"`
}

type DeckSection struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Author      string `toml:"author"`
	Description string `toml:"description"`
	ImageBase   string `toml:"image_base"`
}

type MajorEntry struct {
	No          string `toml:"no"`
	Name        string `toml:"name"`
	File        string `toml:"file"`
	Meaning     string `toml:"meaning"`
	Description string `toml:"description"`
}

type SuitSection struct {
	Prefix  string       `toml:"prefix"`
	Meaning string       `toml:"meaning"`
	Cards   []MinorEntry `toml:"cards"`
}

type MinorEntry struct {
	N           string `toml:"n"`
	Name        string `toml:"name"`
	File        string `toml:"file"`
	Meaning     string `toml:"meaning"`
	Description string `toml:"description"`
}

type descriptions struct {
	Major map[string]string
	Minor map[string]string
}
