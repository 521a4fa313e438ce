package tables

import (
	"fmt"
	"strconv"
)

// ParseInline parses a table written on a single line, such as
// "d4 1 copper 2 silver 3-4 nothing". Rows are found by scanning for
// numbers rather than line breaks. The result always holds at least one
// item: when no row can be read, a single "N/A" item covers the faces that
// are left.
func (p *Parser) ParseInline(text string) (*Table, error) {
	return p.parseInline(text, 1)
}

func (p *Parser) parseInline(text string, depth int) (*Table, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", ErrDepthExceeded, p.maxDepth)
	}

	m := inlinePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrNoDie
	}
	die, err := strconv.Atoi(m[inlinePattern.SubexpIndex("die")])
	if err != nil || die < 1 {
		return nil, fmt.Errorf("%w: %q", ErrNoDie, m[inlinePattern.SubexpIndex("die")])
	}

	t := &Table{
		Die:  die,
		Kind: KindInline,
		sink: p.sink,
	}

	complete := true
	tail := m[inlinePattern.SubexpIndex("tail")]
	for trimTrash(tail) != "" {
		row, ok := MatchRow(tail)
		if !ok {
			p.report(DiagInlineIncomplete, "inline rows stopped matching", tail)
			complete = false
			break
		}

		// The row's text runs on into the next row; split at the next number.
		body := row.Text
		tail = ""
		if loc := rowBoundary.FindStringIndex(body); loc != nil {
			tail = body[loc[0]:]
			body = body[:loc[0]]
		}

		item, err := p.inlineItem(row.prefix+body, depth)
		if err != nil {
			p.report(DiagItemSkipped, err.Error(), row.prefix+body)
			continue
		}
		t.Items = append(t.Items, item)
	}

	start := 1
	if len(t.Items) > 0 {
		if complete {
			return t, nil
		}
		start = t.TotalWeight() + 1
		if start > die {
			return t, nil
		}
	}
	t.Items = append(t.Items, p.parseItem(fmt.Sprintf("%d-%d. N/A", start, die), 0, depth))
	return t, nil
}

// inlineItem builds one inline row, converting a panic into an error so a
// single bad row cannot take down the table around it.
func (p *Parser) inlineItem(text string, depth int) (item *Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			item, err = nil, fmt.Errorf("building inline item: %v", r)
		}
	}()
	return p.parseItem(text, 0, depth), nil
}
