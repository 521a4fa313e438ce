package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomes(items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Outcome
	}
	return out
}

func weights(items []*Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Weight
	}
	return out
}

func TestParseItem(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		text    string
		weight  int
		outcome string
		want    int
	}{
		{name: "single", text: "1. A lone wolf.", outcome: "A lone wolf", want: 1},
		{name: "range", text: "3-5: A band of goblins", outcome: "A band of goblins", want: 3},
		{name: "override", text: "1 thing", weight: 4, outcome: "thing", want: 4},
		{name: "not a row", text: "just prose", outcome: "", want: 0},
		{name: "override on junk", text: "just prose", weight: 2, outcome: "", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := p.ParseItem(tt.text, tt.weight)
			assert.Equal(t, tt.text, it.Text)
			assert.Equal(t, tt.outcome, it.Outcome)
			assert.Equal(t, tt.want, it.Weight)
			assert.Nil(t, it.Inline)
		})
	}
}

func TestParseItem_UnmatchedIsNotSelectable(t *testing.T) {
	it := NewParser().ParseItem("nothing numeric here", 0)
	assert.False(t, it.Selectable())
}

func TestParseItem_BadRangeReported(t *testing.T) {
	var diags Collector
	it := NewParser(WithSink(&diags)).ParseItem("9-3 reversed", 0)

	assert.Equal(t, 1, it.Weight)
	assert.Equal(t, []DiagnosticKind{DiagBadRange}, diags.Kinds())
}

func TestParseItem_InlineTable(t *testing.T) {
	it := NewParser().ParseItem("4 A chest, roll d6 1 gold 2 silver 3 copper 4 gems 5 scroll 6 nothing", 0)

	assert.Equal(t, "A chest, roll", it.Outcome)
	assert.Equal(t, 1, it.Weight)
	require.NotNil(t, it.Inline)
	assert.True(t, it.Inline.IsInline())
	assert.Equal(t, 6, it.Inline.Die)
	assert.Equal(t, []string{"gold", "silver", "copper", "gems", "scroll", "nothing"}, outcomes(it.Inline.Items))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, weights(it.Inline.Items))
}

func TestParseItem_MalformedInlineFallsBack(t *testing.T) {
	var diags Collector
	it := NewParser(WithSink(&diags)).ParseItem("2 Roll a d8 for the weather", 0)

	assert.Equal(t, "Roll a", it.Outcome)
	require.NotNil(t, it.Inline)
	require.Len(t, it.Inline.Items, 1)
	assert.Equal(t, "N/A", it.Inline.Items[0].Outcome)
	assert.Equal(t, 8, it.Inline.Items[0].Weight)
	assert.Contains(t, diags.Kinds(), DiagInlineIncomplete)
}

func TestParseInline_RoundTrip(t *testing.T) {
	tbl, err := NewParser().ParseInline("d12 1 one 2 two 3 thr 4 fou 5-6 fiv/six 7 sev 8 eig 9 nin 10 ten 11 ele 12 twe")
	require.NoError(t, err)

	assert.Equal(t, 12, tbl.Die)
	assert.Equal(t, KindInline, tbl.Kind)
	assert.Equal(t,
		[]string{"one", "two", "thr", "fou", "fiv/six", "sev", "eig", "nin", "ten", "ele", "twe"},
		outcomes(tbl.Items))
	assert.Equal(t, []int{1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1}, weights(tbl.Items))
	assert.Equal(t, 12, tbl.TotalWeight())
}

func TestParseInline_NoRowsAfterDie(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "bare die", text: "d6"},
		{name: "prose after die", text: "d6 for the color of the door"},
		{name: "punctuation only", text: "d6 ...!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewParser().ParseInline(tt.text)
			require.NoError(t, err)
			require.Len(t, tbl.Items, 1)
			assert.Equal(t, "N/A", tbl.Items[0].Outcome)
			assert.Equal(t, 6, tbl.Items[0].Weight)
		})
	}
}

func TestParseInline_NoDie(t *testing.T) {
	_, err := NewParser().ParseInline("no dice here")
	assert.ErrorIs(t, err, ErrNoDie)
}

func TestParseInline_DepthLimit(t *testing.T) {
	p := NewParser(WithMaxDepth(1))

	_, err := p.parseInline("d4 1 a 2 b 3 c 4 d", 2)
	assert.ErrorIs(t, err, ErrDepthExceeded)

	tbl, err := p.parseInline("d4 1 a 2 b 3 c 4 d", 1)
	require.NoError(t, err)
	assert.Len(t, tbl.Items, 4)
}

func TestParseItem_DepthExceededTruncatesOutcome(t *testing.T) {
	var diags Collector
	p := NewParser(WithSink(&diags), WithMaxDepth(1))

	it := p.parseItem("3 a box, d4 1 a 2 b 3 c 4 d", 0, 1)

	assert.Equal(t, "a box", it.Outcome)
	assert.Nil(t, it.Inline)
	assert.Equal(t, []DiagnosticKind{DiagInlineFailed}, diags.Kinds())
}
