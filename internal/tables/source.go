package tables

import (
	"fmt"
	"regexp"
	"strings"
)

// OriginKind says what kind of post a source was read from.
type OriginKind int

const (
	OriginText OriginKind = iota // plain text handed over directly
	OriginSubmission
	OriginComment
	OriginMessage
)

func (k OriginKind) String() string {
	switch k {
	case OriginText:
		return "text"
	case OriginSubmission:
		return "submission"
	case OriginComment:
		return "comment"
	case OriginMessage:
		return "message"
	default:
		return fmt.Sprintf("OriginKind(%d)", int(k))
	}
}

// Origin identifies where a source's text came from. None of it is parsed;
// it only labels output.
type Origin struct {
	Kind        OriginKind
	ID          string
	Author      string
	Title       string // title of the thread, for comments
	Description string
}

// Via describes how a request reached us, e.g. "/u/someone via private
// message".
func (o Origin) Via() string {
	var via string
	switch o.Kind {
	case OriginComment:
		via = fmt.Sprintf("mention in %s", o.Title)
	case OriginMessage:
		via = "private message"
	case OriginSubmission:
		via = fmt.Sprintf("submission %s", o.Title)
	case OriginText:
		via = "direct text"
	default:
		via = "a mystery!"
	}
	if o.Author == "" {
		return via
	}
	return fmt.Sprintf("/u/%s via %s", o.Author, via)
}

// Source is the set of tables found in one block of text.
type Source struct {
	Origin Origin
	Tables []*Table
}

func (s *Source) String() string {
	return fmt.Sprintf("<Source from %s>", s.Origin.Description)
}

// Segment splits text into table spans. Each span starts at a header line
// and runs up to the next header line, or to the end of the text. Text
// without headers has no spans.
func Segment(text string) []string {
	lines := strings.Split(text, "\n")

	var starts []int
	for i, line := range lines {
		if _, ok := MatchHeader(line); ok {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil
	}

	spans := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		spans = append(spans, strings.Join(lines[start:end], "\n"))
	}
	return spans
}

// ParseSource finds and parses every table in text.
func (p *Parser) ParseSource(origin Origin, text string) *Source {
	s := &Source{Origin: origin}
	for _, span := range Segment(text) {
		s.Tables = append(s.Tables, p.ParseTable(span))
	}
	return s
}

// HasTables reports whether any table was found.
func (s *Source) HasTables() bool {
	return len(s.Tables) > 0
}

// Find returns the first table whose header matches pattern, ignoring case,
// or nil when none does.
func (s *Source) Find(pattern string) (*Table, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling search pattern: %w", err)
	}
	for _, t := range s.Tables {
		if re.MatchString(t.Header) {
			return t, nil
		}
	}
	return nil, nil
}

// RollAll rolls every table, leaving out the ones that cannot be rolled.
func (s *Source) RollAll(rng Rand) []*Roll {
	rolls := make([]*Roll, 0, len(s.Tables))
	for _, t := range s.Tables {
		r, err := t.Roll(rng)
		if err != nil {
			t.report(DiagRollFailed, err.Error())
			continue
		}
		rolls = append(rolls, r)
	}
	return rolls
}

// Roll rolls every table and renders the reports under a "From ..." line.
// It returns false when no table produced a roll.
func (s *Source) Roll(rng Rand) (string, bool) {
	rolls := s.RollAll(rng)
	if len(rolls) == 0 {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From %s...\n\n", s.Origin.Description)
	for _, r := range rolls {
		b.WriteString(r.Unpack())
	}
	return b.String(), true
}
