package tables

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Rand draws random integers. IntN returns a value in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

// IntN uses the math/rand/v2 top-level generator, which is safe for
// concurrent use.
func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewRand returns a reproducible generator seeded with seed. It is not safe
// for concurrent use; create one per goroutine.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MismatchWarning is shown above a table whose item weights do not add up
// to its die size.
const MismatchWarning = "Table roll error: parsed die did not match sum of item weights."

// Roll is one resolved roll of a table.
type Roll struct {
	Die     int
	Rolled  int // in [1, Die]
	Label   string
	Warning string // set when the table's weights disagree with its die
	Item    *Item
	Err     string // informational notes about the table's shape
	Nested  *Roll  // roll of Item.Inline, when present
}

// Header returns the table label, prefixed by the warning if there is one.
func (r *Roll) Header() string {
	if r.Warning == "" {
		return r.Label
	}
	return "[" + r.Warning + "]  \n" + r.Label
}

func (r *Roll) String() string {
	return fmt.Sprintf("<d%d roll: %s>", r.Die, r.Label)
}

// Unpack renders the roll as a plain-text report, followed by the report of
// any nested roll. It is deterministic for a given Roll.
func (r *Roll) Unpack() string {
	var b strings.Builder
	if r.Warning != "" {
		fmt.Fprintf(&b, "[%s]  \n", r.Warning)
	}
	fmt.Fprintf(&b, "%s...    \n", trimTrash(r.Label))
	fmt.Fprintf(&b, "(d%d -> %d) %s.    \n", r.Die, r.Rolled, r.Item.Outcome)
	if r.Nested != nil {
		b.WriteString("Subtable: ")
		b.WriteString(r.Nested.Unpack())
	}
	b.WriteString("\n\n")
	return b.String()
}

// Roll draws a face in [1, Die] and selects the item covering it, walking
// items in order. Inline tables on the selected item are rolled as well.
//
// Weights that disagree with the die size do not stop the roll; the result
// carries a warning instead. When the weights cover fewer faces than the
// die and the draw lands past them, the last selectable item is used.
//
// A nil rng uses the shared generator.
func (t *Table) Roll(rng Rand) (*Roll, error) {
	if rng == nil {
		rng = globalRand{}
	}
	if len(t.Items) == 0 {
		return nil, ErrNoItems
	}
	if t.Die < 1 {
		return nil, ErrUnresolvedDie
	}
	total := t.TotalWeight()
	if total < 1 {
		return nil, ErrZeroWeight
	}

	r := &Roll{Die: t.Die, Label: t.Header}
	var notes []string

	if total != t.Die {
		r.Warning = MismatchWarning
		t.report(DiagWeightMismatch, fmt.Sprintf("d%d table has item weights summing to %d", t.Die, total))
	}

	r.Rolled = rng.IntN(t.Die) + 1
	item, covered := t.pick(r.Rolled)
	r.Item = item
	if !covered {
		notes = append(notes, fmt.Sprintf("rolled %d past the %d faces covered; used last item", r.Rolled, total))
	}

	if len(t.Items) != t.Die {
		notes = append(notes, fmt.Sprintf("Expected %d items found %d", t.Die, len(t.Items)))
		t.report(DiagItemCountMismatch, notes[len(notes)-1])
	}

	if item.Inline != nil {
		nested, err := item.Inline.Roll(rng)
		if err != nil {
			notes = append(notes, fmt.Sprintf("subtable: %v", err))
		} else {
			r.Nested = nested
		}
	}

	r.Err = strings.Join(notes, "; ")
	return r, nil
}

// pick walks the items, taking each weight off a counter that starts at
// face, and returns the item that brings it to zero. If the items run out
// first it returns the last selectable item and false.
func (t *Table) pick(face int) (*Item, bool) {
	var last *Item
	scan := face
	for _, it := range t.Items {
		if !it.Selectable() {
			continue
		}
		last = it
		scan -= it.Weight
		if scan <= 0 {
			return it, true
		}
	}
	return last, false
}
