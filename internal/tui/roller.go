package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/rollone/internal/clipboard"
	"github.com/f3rmion/rollone/internal/history"
	"github.com/f3rmion/rollone/internal/tables"
	"github.com/mattn/go-runewidth"
)

const (
	sidebarWidth = 32
	recentShown  = 5
)

// RollerModel is the Bubble Tea model for rolling the tables of one source.
type RollerModel struct {
	source *tables.Source
	rng    tables.Rand

	// Table navigation
	cursor int

	// Output
	report string
	failed bool
	rolls  int
	recent *history.Ring[string]

	// Clipboard
	copyFn func(string) error
	status string

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// clearStatusMsg is sent to clear the status line
type clearStatusMsg struct{}

// clearStatusAfter returns a command that clears the status after a duration
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// NewRoller creates a roller for src. recentSize bounds the recent rolls list.
func NewRoller(src *tables.Source, rng tables.Rand, recentSize int) RollerModel {
	return RollerModel{
		source:   src,
		rng:      rng,
		recent:   history.NewRing[string](recentSize),
		copyFn:   clipboard.Write,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(60, 12),
	}
}

// Init initializes the model.
func (m RollerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RollerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-sidebarWidth-6, 20)
		m.viewport.Height = max(msg.Height-recentShown-8, 4)
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.source.Tables)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Roll):
			m.rollSelected()
			return m, nil
		case key.Matches(msg, m.keys.RollAll):
			m.rollAll()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if m.report == "" {
				return m, nil
			}
			if err := m.copyFn(m.report); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
				return m, nil
			}
			m.status = "Copied to clipboard"
			return m, clearStatusAfter(2 * time.Second)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// rollSelected rolls the table under the cursor.
func (m *RollerModel) rollSelected() {
	if len(m.source.Tables) == 0 {
		return
	}
	t := m.source.Tables[m.cursor]
	r, err := t.Roll(m.rng)
	if err != nil {
		m.setReport(fmt.Sprintf("Could not roll this table: %v", err), true)
		return
	}
	m.remember(r)
	m.setReport(r.Unpack(), false)
}

// rollAll rolls every table in the source.
func (m *RollerModel) rollAll() {
	rolls := m.source.RollAll(m.rng)
	if len(rolls) == 0 {
		m.setReport("None of these tables could be rolled.", true)
		return
	}
	var b strings.Builder
	for _, r := range rolls {
		m.remember(r)
		b.WriteString(r.Unpack())
	}
	m.setReport(b.String(), false)
}

func (m *RollerModel) remember(r *tables.Roll) {
	m.rolls++
	label := r.Label
	if label == "" {
		label = fmt.Sprintf("d%d", r.Die)
	}
	m.recent.Add(fmt.Sprintf("#%d %s → %d %s", m.rolls, label, r.Rolled, r.Item.Outcome))
}

func (m *RollerModel) setReport(text string, failed bool) {
	m.report = text
	m.failed = failed
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
}

// Report returns the text of the last roll.
func (m RollerModel) Report() string {
	return m.report
}

// Cursor returns the index of the selected table.
func (m RollerModel) Cursor() int {
	return m.cursor
}

// Recent returns recent roll summaries, oldest first.
func (m RollerModel) Recent() []string {
	return m.recent.Items()
}

// View renders the UI.
func (m RollerModel) View() string {
	if len(m.source.Tables) == 0 {
		return EmptyStyle.Render("No tables found. Press q to quit.")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderMain())
}

func (m RollerModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString(SidebarTitleStyle.Render("Tables"))
	b.WriteString("\n")

	labelWidth := sidebarWidth - 10
	for i, t := range m.source.Tables {
		header := t.Header
		if header == "" {
			header = "(untitled)"
		}
		header = runewidth.Truncate(header, labelWidth, "…")

		die := "d?"
		if t.Die > 0 {
			die = fmt.Sprintf("d%d", t.Die)
		}

		line := fmt.Sprintf("%s %s", DieStyle.Render(fmt.Sprintf("%-5s", die)), header)
		if i == m.cursor {
			b.WriteString(SidebarItemActiveStyle.Render(line))
		} else {
			b.WriteString(SidebarItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return SidebarStyle.Width(sidebarWidth).Render(b.String())
}

func (m RollerModel) renderMain() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("From %s", m.source.Origin.Description)))
	b.WriteString("\n\n")

	if m.report == "" {
		b.WriteString(RecentItemStyle.Render("Press enter to roll the selected table."))
	} else if m.failed {
		b.WriteString(ReportStyle.Render(ErrorStyle.Render(m.viewport.View())))
	} else {
		b.WriteString(ReportStyle.Render(m.viewport.View()))
	}
	b.WriteString("\n")

	if items := m.recent.Items(); len(items) > 0 {
		b.WriteString(RecentTitleStyle.Render("Recent"))
		b.WriteString("\n")
		start := max(len(items)-recentShown, 0)
		for i := len(items) - 1; i >= start; i-- {
			b.WriteString(RecentItemStyle.Render(items[i]))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
