package reading

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/imdyangs/past-present-future/internal/card"
)

// Notice is shown next to a fallback reading when the oracle could not be
// used. It is never part of the reading itself.
const Notice = "The oracle is quiet right now, so here is a reading drawn from the cards alone."

// NoticeUnclear accompanies a fallback used because the oracle's reply had
// no readable sections.
const NoticeUnclear = "The oracle's reply was hard to make out, so here is a reading drawn from the cards alone."

// Fallback builds a reading from the names and meanings of the three cards,
// in Past, Present, Future order.
func Fallback(past, present, future card.Card) Reading {
	sections := []Section{
		{
			Heading: "PAST — " + headingName(past),
			Paragraphs: []string{
				fmt.Sprintf("%s sits behind you: %s.", past.Name, lowerFirst(past.Meaning)),
				"Notice what that season taught you and what you chose to carry forward from it.",
			},
		},
		{
			Heading: "PRESENT — " + headingName(present),
			Paragraphs: []string{
				fmt.Sprintf("Right now %s asks for your attention: %s.", present.Name, lowerFirst(present.Meaning)),
				"Where does that show up in the choices in front of you today?",
			},
		},
		{
			Heading: "FUTURE — " + headingName(future),
			Paragraphs: []string{
				fmt.Sprintf("Ahead, %s points toward %s.", future.Name, lowerFirst(future.Meaning)),
				"Treat it as a direction to lean into, not a destination that is fixed.",
			},
		},
		{
			Heading: "The Thread Connecting Them",
			Paragraphs: []string{
				fmt.Sprintf("Your story moves from %s (%s) → %s (%s) → %s (%s).",
					lowerFirst(past.Meaning), past.Name,
					lowerFirst(present.Meaning), present.Name,
					lowerFirst(future.Meaning), future.Name),
			},
		},
		{
			Heading: "One Question to Carry",
			Paragraphs: []string{
				fmt.Sprintf("What small act today would honor both %s and %s?",
					lowerFirst(present.Meaning), lowerFirst(future.Meaning)),
			},
		},
	}
	return Reading{Title: Title, Sections: sections, Footer: Footer}
}

// headingName appends the number of major arcana cards, e.g. "The Fool (00)"
func headingName(c card.Card) string {
	if c.IsMajor() && c.Number != "" {
		return fmt.Sprintf("%s (%s)", c.Name, c.Number)
	}
	return c.Name
}

func lowerFirst(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ".")
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Leave acronyms alone
	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}
