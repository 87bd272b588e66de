package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vitaminmoo/hexd/internal/hexdump"
)

const scrollIndicatorWidth = 20

// Model is the Bubbletea model for the dump pager.
type Model struct {
	// Data
	name    string
	size    int64
	rows    int
	content string

	// Layout
	width  int
	height int
	ready  bool

	// Components
	viewport viewport.Model
	keys     KeyMap
	help     help.Model
	scroll   ScrollIndicator
	styles   Styles
}

// NewModel creates a pager over dump, the rendered lines of a file named
// name. An empty dump shows a placeholder instead.
func NewModel(name string, size int64, rows int, dump string) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		name:    name,
		size:    size,
		rows:    rows,
		content: strings.TrimSuffix(dump, "\n"),
		keys:    DefaultKeyMap(),
		help:    h,
		scroll:  NewScrollIndicator(scrollIndicatorWidth),
		styles:  DefaultStyles(),
	}
	if m.content == "" {
		m.content = m.styles.Muted.Render("(empty file)")
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 0)
			m.viewport.SetContent(m.content)
			m.ready = true
		}
		m.resize()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}
	return m, nil
}

// resize fits the viewport between the title bar and the footer.
func (m *Model) resize() {
	height := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
}

// Offset returns the file offset of the first visible row.
func (m Model) Offset() int64 {
	return int64(m.viewport.YOffset) * hexdump.RowSize
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("hexd")
	info := fmt.Sprintf("%s  %s  %d rows", m.name, humanize.IBytes(uint64(m.size)), m.rows)
	return title + m.styles.TitleBar.Render(info)
}

func (m Model) footerView() string {
	percent := 0.0
	if m.ready {
		percent = m.viewport.ScrollPercent()
	}

	var b strings.Builder
	b.WriteString(m.styles.StatusKey.Render("offset"))
	b.WriteString(m.styles.StatusValue.Render(fmt.Sprintf("%07x", m.Offset())))
	b.WriteString(m.scroll.View(percent))
	b.WriteString(m.styles.StatusValue.Render(fmt.Sprintf(" %3.0f%%", percent*100)))

	return m.styles.StatusBar.Render(b.String()) + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}
