package reading

import "strings"

// Markdown renders a reading back into the same markdown dialect Parse reads
func (r Reading) Markdown() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString("## " + r.Title + "\n\n")
	}
	for _, s := range r.Sections {
		if s.Heading != "" {
			b.WriteString(headingMarker + s.Heading + "\n\n")
		}
		for _, p := range s.Paragraphs {
			b.WriteString(p + "\n\n")
		}
	}
	if r.Footer != "" {
		b.WriteString("---\n\n" + r.Footer + "\n")
	}
	return b.String()
}
