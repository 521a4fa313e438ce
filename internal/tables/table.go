package tables

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind distinguishes how a table was laid out in its source text.
type Kind int

const (
	// KindHeader is a header line followed by one row per line.
	KindHeader Kind = iota
	// KindInline is a die marker followed by rows on the same line.
	KindInline
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindInline:
		return "inline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Table is an ordered set of weighted outcomes under one die size. Tables
// are built by a Parser and not modified afterwards.
type Table struct {
	Header string
	Die    int // 0 when the header did not resolve
	Items  []*Item
	Kind   Kind

	sink Sink
}

// IsInline reports whether the table was parsed from a single line.
func (t *Table) IsInline() bool {
	return t.Kind == KindInline
}

// TotalWeight sums the weight of every item.
func (t *Table) TotalWeight() int {
	total := 0
	for _, it := range t.Items {
		total += it.Weight
	}
	return total
}

func (t *Table) String() string {
	if t.IsInline() {
		return fmt.Sprintf("<d%d inline table>", t.Die)
	}
	return fmt.Sprintf("<Table with header: %s>", t.Header)
}

func (t *Table) report(kind DiagnosticKind, msg string) {
	if t.sink == nil {
		return
	}
	t.sink.Report(Diagnostic{Kind: kind, Message: msg, Text: t.Header})
}

// ParseTable parses text whose first line is a header and whose remaining
// lines are rows. Lines that are not rows are ignored. When the first line
// is not a header the table is still returned, with no die size.
func (p *Parser) ParseTable(text string) *Table {
	lines := strings.Split(text, "\n")
	t := &Table{Kind: KindHeader, sink: p.sink}

	head, ok := MatchHeader(lines[0])
	if ok {
		t.Die = head.DieSize
		t.Header = head.Label
	} else {
		p.report(DiagUnresolvedHeader, "first line is not a table header", lines[0])
	}

	for _, line := range lines[1:] {
		if _, isRow := MatchRow(line); isRow {
			t.Items = append(t.Items, p.parseItem(line, 0, 0))
		}
	}

	// "d6 1 rain 2 sun ..." on one line: the rows live in the header.
	if ok && len(t.Items) == 0 {
		if _, isRow := MatchRow(head.Label); isRow {
			if inline, err := p.parseInline(trimTrash(lines[0]), 1); err == nil {
				t.Header = ""
				t.Items = inline.Items
			}
		}
	}
	return t
}

// Summary is the structured, JSON-ready form of a table. Each entry of
// Items is an ItemSummary or, for rows with an inline table, a Summary.
type Summary struct {
	Die    *int   `json:"die" yaml:"die"`
	Header string `json:"header" yaml:"header"`
	Items  []any  `json:"items" yaml:"items"`
}

// ItemSummary is the structured form of a plain item.
type ItemSummary struct {
	Value  string `json:"value" yaml:"value"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Summary returns the structured form of t.
func (t *Table) Summary() Summary {
	s := Summary{
		Header: t.Header,
		Items:  make([]any, 0, len(t.Items)),
	}
	if t.Die > 0 {
		die := t.Die
		s.Die = &die
	}
	for _, it := range t.Items {
		s.Items = append(s.Items, it.Summary())
	}
	return s
}

// Summary returns the structured form of the item: the inline table's
// summary when it has one, otherwise its value and weight.
func (it *Item) Summary() any {
	if it.Inline != nil {
		return it.Inline.Summary()
	}
	return ItemSummary{Value: it.Outcome, Weight: it.Weight}
}

// MarshalJSON encodes the table as its Summary.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Summary())
}
