package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/rollone/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `d4 Weather
1 Sun
2 Rain
3 Fog
4 Snow
d2 Coin
1 Heads
2 Tails`

func newTestRoller(t *testing.T, text string) RollerModel {
	t.Helper()
	src := tables.NewParser().ParseSource(tables.Origin{Description: "a test"}, text)
	return NewRoller(src, tables.NewRand(11), 3)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m RollerModel, msg tea.Msg) (RollerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(RollerModel)
	require.True(t, ok)
	return rm, cmd
}

func TestRoller_Navigation(t *testing.T) {
	m := newTestRoller(t, sample)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.Cursor(), "cursor stays on the last table")

	m, _ = update(t, m, runes("k"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())
}

func TestRoller_RollSelected(t *testing.T) {
	m := newTestRoller(t, sample)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.Report(), "Coin...")
	assert.Contains(t, m.Report(), "(d2 -> ")
	require.Len(t, m.Recent(), 1)
	assert.Contains(t, m.Recent()[0], "#1 Coin")
}

func TestRoller_RollAll(t *testing.T) {
	m := newTestRoller(t, sample)

	m, _ = update(t, m, runes("a"))
	assert.Contains(t, m.Report(), "Weather...")
	assert.Contains(t, m.Report(), "Coin...")
	assert.Len(t, m.Recent(), 2)
}

func TestRoller_RecentIsBounded(t *testing.T) {
	m := newTestRoller(t, sample)
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, runes("r"))
	}
	recent := m.Recent()
	require.Len(t, recent, 3)
	assert.Contains(t, recent[0], "#3 ")
	assert.Contains(t, recent[2], "#5 ")
}

func TestRoller_RollFailure(t *testing.T) {
	m := newTestRoller(t, "d6 Nothing here")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.Report(), "Could not roll this table")
	assert.Empty(t, m.Recent())
}

func TestRoller_Copy(t *testing.T) {
	m := newTestRoller(t, sample)
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := update(t, m, runes("y"))
	assert.Nil(t, cmd, "nothing to copy before a roll")
	assert.Empty(t, copied)

	m, _ = update(t, m, runes("r"))
	m, cmd = update(t, m, runes("y"))
	assert.NotNil(t, cmd)
	assert.Equal(t, m.Report(), copied)
	assert.Equal(t, "Copied to clipboard", m.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, runes("y"))
	assert.Contains(t, m.status, "no clipboard")
}

func TestRoller_Quit(t *testing.T) {
	m := newTestRoller(t, sample)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRoller_View(t *testing.T) {
	m := newTestRoller(t, sample)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Weather")
	assert.Contains(t, view, "Coin")
	assert.Contains(t, view, "From a test")

	empty := newTestRoller(t, "no tables")
	assert.Contains(t, empty.View(), "No tables found")
}
