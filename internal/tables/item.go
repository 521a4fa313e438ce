package tables

import "fmt"

// Item is one weighted outcome of a table.
type Item struct {
	Text    string // the row as written
	Outcome string // outcome text, without any inline table
	Weight  int    // die faces covered; 0 only for rows that failed to match
	Inline  *Table // table embedded in the outcome, if any
}

// Selectable reports whether the item covers at least one face.
func (it *Item) Selectable() bool {
	return it.Weight > 0
}

func (it *Item) String() string {
	if it.Inline != nil {
		return fmt.Sprintf("<Item: %s; has inline table>", it.Outcome)
	}
	return fmt.Sprintf("<Item: %s>", it.Outcome)
}

// ParseItem parses one row. A positive weight overrides the weight read from
// the row. Text that is not a row yields an item with no outcome and no
// weight.
func (p *Parser) ParseItem(text string, weight int) *Item {
	return p.parseItem(text, weight, 0)
}

func (p *Parser) parseItem(text string, weight, depth int) *Item {
	item := &Item{Text: text}
	defer func() {
		if weight > 0 {
			item.Weight = weight
		}
	}()

	row, ok := MatchRow(text)
	if !ok {
		return item
	}

	item.Outcome = trimTrash(row.Text)

	w, err := row.Weight()
	if err != nil {
		p.report(DiagBadRange, err.Error(), text)
	}
	item.Weight = w

	loc := diePattern.FindStringIndex(item.Outcome)
	if loc == nil {
		return item
	}

	sub, err := p.parseInline(item.Outcome[loc[0]:], depth+1)
	if err != nil {
		p.report(DiagInlineFailed, err.Error(), text)
	} else {
		item.Inline = sub
	}
	item.Outcome = trimTrash(item.Outcome[:loc[0]])
	return item
}
