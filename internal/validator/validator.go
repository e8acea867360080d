package validator

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/imdyangs/past-present-future/internal/deck"
	"github.com/imdyangs/past-present-future/internal/spread"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation found no errors
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	def deck.Definition
}

var twoDigits = regexp.MustCompile(`^\d{2}$`)

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck directory. The error is only set when deck.toml
// is missing or cannot be parsed; every other problem is reported in the
// results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateDeckSection()
	majors := v.validateMajorArcana()
	minors := v.validateMinorArcana()
	v.validateSpreadable(majors + minors)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() error {
	deckTomlPath := filepath.Join(v.DeckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return fmt.Errorf("deck.toml not found in %s", v.DeckPath)
	}

	def, err := deck.DecodeFile(deckTomlPath)
	if err != nil {
		return err
	}
	v.def = def
	return nil
}

func (v *Validator) validateDeckSection() {
	d := v.def.Deck
	if d.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	} else if _, builtin := deck.Builtin(d.ID); builtin {
		v.errorf("deck.id %q is reserved for a built-in deck", d.ID)
	}

	if d.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}

	if d.Version == "" {
		v.warnf("deck.version is not set")
	}

	if d.ImageBase != "" {
		u, err := url.Parse(d.ImageBase)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			v.errorf("deck.image_base must be an http(s) URL: %s", d.ImageBase)
		}
	}
}

// validateMajorArcana checks the [[major_arcana]] entries and returns how
// many usable cards they define
func (v *Validator) validateMajorArcana() int {
	seen := map[string]bool{}
	count := 0
	for i, m := range v.def.MajorArcana {
		label := fmt.Sprintf("major_arcana[%d]", i)
		if !twoDigits.MatchString(m.No) {
			v.errorf("%s.no must be two digits (00-21), got %q", label, m.No)
			continue
		}
		if m.No > "21" {
			v.errorf("%s.no %s is out of range (00-21)", label, m.No)
			continue
		}
		if seen[m.No] {
			v.errorf("duplicate major arcana card %s", m.No)
			continue
		}
		seen[m.No] = true
		count++

		if strings.TrimSpace(m.Meaning) == "" {
			v.errorf("%s (%s) has no meaning", label, m.No)
		}
		if m.File == "" {
			v.warnf("%s (%s) has no image file", label, m.No)
		}
	}

	if len(v.def.MajorArcana) > 0 {
		missing := []string{}
		for i := 0; i <= 21; i++ {
			if no := fmt.Sprintf("%02d", i); !seen[no] {
				missing = append(missing, no)
			}
		}
		if len(missing) > 0 {
			v.warnf("missing major arcana cards: %s", strings.Join(missing, ", "))
		}
	}
	return count
}

// validateMinorArcana checks the [minor_arcana.<suit>] sections and returns
// how many usable cards they define
func (v *Validator) validateMinorArcana() int {
	keys := make([]string, 0, len(v.def.MinorArcana))
	for k := range v.def.MinorArcana {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	count := 0
	suitsSeen := map[string]bool{}
	for _, key := range keys {
		suit := deck.NormalizeSuit(key)
		if !suit.Valid() {
			v.errorf("unknown suit %q in minor_arcana (expected wands, cups, swords or pentacles)", key)
			continue
		}
		if suitsSeen[string(suit)] {
			v.errorf("suit %s is defined more than once", suit)
			continue
		}
		suitsSeen[string(suit)] = true

		seen := map[string]bool{}
		for i, m := range v.def.MinorArcana[key].Cards {
			label := fmt.Sprintf("minor_arcana.%s.cards[%d]", key, i)
			if !twoDigits.MatchString(m.N) || m.N < "01" || m.N > "14" {
				v.errorf("%s.n must be two digits (01-14), got %q", label, m.N)
				continue
			}
			if seen[m.N] {
				v.errorf("duplicate %s card %s", suit, m.N)
				continue
			}
			seen[m.N] = true
			count++

			if strings.TrimSpace(m.Meaning) == "" {
				v.errorf("%s (%s %s) has no meaning", label, suit, m.N)
			}
		}

		if n := len(seen); n > 0 && n < 14 {
			v.warnf("suit %s defines %d of 14 cards", suit, n)
		}
	}

	if len(v.def.MinorArcana) > 0 {
		for _, suit := range []string{"Wands", "Cups", "Swords", "Pentacles"} {
			if !suitsSeen[suit] {
				v.warnf("missing suit: %s", strings.ToLower(suit))
			}
		}
	}
	return count
}

func (v *Validator) validateSpreadable(cards int) {
	if cards < spread.Size {
		v.errorf("deck defines %d usable cards; a spread needs at least %d", cards, spread.Size)
	}
}
