// Package tables recovers weighted roll tables from free-form text and
// resolves random outcomes from them.
//
// A table is a header line naming a die size ("d20 Encounters") followed by
// numbered or ranged rows ("1 goblin", "2-4 wolves"). Rows may embed a
// further table on a single line ("5 a chest, roll d4 1 gold 2 gems 3-4 dust"),
// which is parsed as an inline table owned by that row.
package tables

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// punctuation mirrors the ASCII punctuation set trimmed from lines before
// they are classified.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	headerPattern = regexp.MustCompile(`^(?P<count>\d+)?[dD](?P<die>\d+)(?P<label>.*)`)
	rowPattern    = regexp.MustCompile(`^(?P<start>\d+)(?P<end>\s*-+\s*\d+)?(?P<text>.*)`)

	// rowBoundary is rowPattern without its anchor; it finds where the next
	// row starts inside running text.
	rowBoundary = regexp.MustCompile(`\d+(\s*-+\s*\d+)?`)

	diePattern    = regexp.MustCompile(`[dD]\d+`)
	inlinePattern = regexp.MustCompile(`[dD](?P<die>\d+)(?P<tail>.*)`)
)

// Header is a matched table header line.
type Header struct {
	Count   int    // number of dice, 0 when absent
	DieSize int    // faces on the die
	Label   string // descriptive text after the die marker
}

// Row is a matched table row.
type Row struct {
	Start    int
	End      int // valid only when HasRange
	HasRange bool
	Text     string // everything after the number or range, untrimmed

	prefix string // the number or range exactly as written
	err    error
}

// isTrash reports whether r is stripped from the ends of classified lines.
func isTrash(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(punctuation, r)
}

// trimTrash strips surrounding whitespace and ASCII punctuation.
func trimTrash(s string) string {
	return strings.TrimFunc(s, isTrash)
}

// MatchHeader reports whether line is a table header such as "d20 Loot" or
// "1d6: Weather". The line is trimmed of surrounding punctuation and
// whitespace before matching, and the label is trimmed the same way.
func MatchHeader(line string) (Header, bool) {
	m := headerPattern.FindStringSubmatch(trimTrash(line))
	if m == nil {
		return Header{}, false
	}

	die, err := strconv.Atoi(m[headerPattern.SubexpIndex("die")])
	if err != nil || die < 1 {
		return Header{}, false
	}

	h := Header{
		DieSize: die,
		Label:   trimTrash(m[headerPattern.SubexpIndex("label")]),
	}
	if count := m[headerPattern.SubexpIndex("count")]; count != "" {
		// An unparsable count is ignored; nothing downstream uses it.
		h.Count, _ = strconv.Atoi(count)
	}
	return h, true
}

// MatchRow reports whether line is a table row such as "3 a rusty key" or
// "4-6: nothing". The line is trimmed before matching.
func MatchRow(line string) (Row, bool) {
	m := rowPattern.FindStringSubmatch(trimTrash(line))
	if m == nil {
		return Row{}, false
	}

	start := m[rowPattern.SubexpIndex("start")]
	end := m[rowPattern.SubexpIndex("end")]
	r := Row{
		Text:   m[rowPattern.SubexpIndex("text")],
		prefix: start + end,
	}

	var err error
	if r.Start, err = strconv.Atoi(start); err != nil {
		r.err = err
	}
	if end != "" {
		r.HasRange = true
		if r.End, err = strconv.Atoi(trimTrash(end)); err != nil {
			r.err = err
		}
	}
	return r, true
}

// Weight returns the number of die faces the row covers. A bare number
// covers one face. A range that cannot be read, or that runs backwards,
// falls back to one face and returns the reason alongside.
func (r Row) Weight() (int, error) {
	if !r.HasRange {
		return 1, nil
	}
	if r.err != nil {
		return 1, &RangeError{Text: r.prefix, Err: r.err}
	}
	if w := r.End - r.Start + 1; w >= 1 {
		return w, nil
	}
	return 1, &RangeError{Text: r.prefix, Err: ErrBackwardsRange}
}
