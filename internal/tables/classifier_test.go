package tables

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  Header
		match bool
	}{
		{name: "plain", line: "d20 Random Encounters", want: Header{DieSize: 20, Label: "Random Encounters"}, match: true},
		{name: "upper case die", line: "D8 Weather", want: Header{DieSize: 8, Label: "Weather"}, match: true},
		{name: "with count", line: "1d6: Mood", want: Header{Count: 1, DieSize: 6, Label: "Mood"}, match: true},
		{name: "markdown emphasis", line: "  **d100 Loot!**  ", want: Header{DieSize: 100, Label: "Loot"}, match: true},
		{name: "no label", line: "d12", want: Header{DieSize: 12}, match: true},
		{name: "prose", line: "Dragons are large", match: false},
		{name: "row", line: "1 goblin", match: false},
		{name: "zero die", line: "d0 nothing", match: false},
		{name: "empty", line: "", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchHeader(tt.line)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchHeader_AnyDieSize(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6, 10, 12, 20, 37, 100, 1000} {
		line := "d" + strconv.Itoa(n) + " Some label"
		got, ok := MatchHeader(line)
		require.True(t, ok, line)
		assert.Equal(t, n, got.DieSize)
		assert.Equal(t, "Some label", got.Label)
	}
}

func TestMatchRow(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		match      bool
		start      int
		end        int
		hasRange   bool
		text       string
		wantWeight int
	}{
		{name: "single", line: "1 goblin", match: true, start: 1, text: " goblin", wantWeight: 1},
		{name: "range", line: "2-4 wolves", match: true, start: 2, end: 4, hasRange: true, text: " wolves", wantWeight: 3},
		{name: "spaced dashes", line: "5 -- 10: orcs", match: true, start: 5, end: 10, hasRange: true, text: ": orcs", wantWeight: 6},
		{name: "bullet", line: "- 3. bandits", match: true, start: 3, text: ". bandits", wantWeight: 1},
		{name: "bare number", line: "7", match: true, start: 7, wantWeight: 1},
		{name: "prose", line: "goblins everywhere", match: false},
		{name: "blank", line: "   ", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchRow(tt.line)
			require.Equal(t, tt.match, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.start, got.Start)
			assert.Equal(t, tt.end, got.End)
			assert.Equal(t, tt.hasRange, got.HasRange)
			assert.Equal(t, tt.text, got.Text)

			w, err := got.Weight()
			require.NoError(t, err)
			assert.Equal(t, tt.wantWeight, w)
		})
	}
}

func TestRowWeight_RangeProperty(t *testing.T) {
	for a := 1; a <= 20; a++ {
		for b := a; b <= 20; b++ {
			row, ok := MatchRow(strconv.Itoa(a) + "-" + strconv.Itoa(b) + " text")
			require.True(t, ok)
			w, err := row.Weight()
			require.NoError(t, err)
			assert.Equal(t, b-a+1, w)
		}
	}
}

func TestRowWeight_Fallbacks(t *testing.T) {
	t.Run("backwards", func(t *testing.T) {
		row, ok := MatchRow("6-2 upside down")
		require.True(t, ok)
		w, err := row.Weight()
		assert.Equal(t, 1, w)
		assert.ErrorIs(t, err, ErrBackwardsRange)
	})

	t.Run("overflow", func(t *testing.T) {
		row, ok := MatchRow("1-99999999999999999999999 huge")
		require.True(t, ok)
		w, err := row.Weight()
		assert.Equal(t, 1, w)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.ErrorIs(t, err, strconv.ErrRange)
	})
}

func TestTrimTrash(t *testing.T) {
	assert.Equal(t, "a - b", trimTrash(" **a - b!** \t"))
	assert.Equal(t, "", trimTrash(".,;  "))
	assert.Equal(t, "fiv/six", trimTrash(" fiv/six "))
}
