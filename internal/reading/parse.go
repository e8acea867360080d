package reading

import "strings"

type scanState int

const (
	noSection scanState = iota
	inSection
)

const headingMarker = "### "

// scanner splits oracle text into sections. Lines before the first heading
// are dropped.
type scanner struct {
	state    scanState
	heading  string
	body     []string
	sections []Section
	footer   string
}

// Parse splits markdown-flavoured text into sections and a footer. It is
// pure: the same input always yields the same structure. Empty input yields
// an empty result.
func Parse(text string) Parsed {
	if text == "" {
		return Parsed{Sections: []Section{}}
	}

	s := &scanner{sections: []Section{}}
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		s.line(raw)
	}
	s.flush()

	return Parsed{Sections: s.sections, Footer: s.footer}
}

func (s *scanner) line(raw string) {
	line := strings.TrimSpace(raw)

	if isFooter(line) {
		s.footer = line
		return
	}

	if strings.HasPrefix(line, headingMarker) {
		s.flush()
		s.state = inSection
		s.heading = strings.TrimSpace(line[len(headingMarker):])
		return
	}

	if s.state == inSection {
		s.body = append(s.body, line)
	}
}

// flush closes the open section, if any
func (s *scanner) flush() {
	if s.state != inSection {
		return
	}

	paragraphs := []string{}
	var buf []string
	for _, line := range s.body {
		switch line {
		case "":
			if len(buf) > 0 {
				paragraphs = append(paragraphs, strings.Join(buf, "\n"))
				buf = nil
			}
		case "---":
		default:
			buf = append(buf, line)
		}
	}
	if len(buf) > 0 {
		paragraphs = append(paragraphs, strings.Join(buf, "\n"))
	}

	s.sections = append(s.sections, Section{Heading: s.heading, Paragraphs: paragraphs})
	s.state = noSection
	s.heading = ""
	s.body = nil
}

func isFooter(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "for reflection") && strings.Contains(lower, "not certainty")
}
