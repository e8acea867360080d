// Package reading holds the narrative shown for a spread: parsing the
// markdown-flavoured text returned by the oracle, and the local template
// used when no usable remote text is available.
package reading

// Section is an optional heading followed by paragraphs
type Section struct {
	Heading    string   `json:"heading,omitempty"`
	Paragraphs []string `json:"paragraphs"`
}

// Parsed is the structure extracted from oracle text
type Parsed struct {
	Sections []Section `json:"sections"`
	Footer   string    `json:"footer"`
}

// Empty reports whether parsing found no sections
func (p Parsed) Empty() bool {
	return len(p.Sections) == 0
}

// Reading is a titled narrative ready for display
type Reading struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Footer   string    `json:"footer"`
}

// Title is shown above every reading
const Title = "Past · Present · Future"

// Footer closes every reading
const Footer = "For reflection — not certainty. 🌱"

// FromParsed wraps parsed oracle text in a Reading. A missing footer is
// replaced with the standard one.
func FromParsed(p Parsed) Reading {
	footer := p.Footer
	if footer == "" {
		footer = Footer
	}
	return Reading{Title: Title, Sections: p.Sections, Footer: footer}
}
