package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vladamatena/twisted/internal/event"
)

// maxScrollback bounds the in-memory line buffer.
const maxScrollback = 2000

type eventMsg struct {
	line string
}

var (
	systemStyle = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true).Reverse(true)

	levelStyles = map[event.Level]lipgloss.Style{
		event.LevelDebug:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		event.LevelInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		event.LevelWarn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		event.LevelError:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		event.LevelCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
	}
)

func badge(lvl event.Level) string {
	style, ok := levelStyles[lvl]
	if !ok {
		style = levelStyles[event.LevelInfo]
	}
	return style.Render(strings.ToUpper(lvl.String()))
}

type model struct {
	vp    viewport.Model
	lines []string
	ready bool
}

func newModel() model {
	return model{}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 1
		}
		m.vp.SetContent(strings.Join(m.lines, "\n"))
		m.vp.GotoBottom()

	case eventMsg:
		m.lines = append(m.lines, msg.line)
		if len(m.lines) > maxScrollback {
			m.lines = m.lines[len(m.lines)-maxScrollback:]
		}
		if m.ready {
			follow := m.vp.AtBottom()
			m.vp.SetContent(strings.Join(m.lines, "\n"))
			if follow {
				m.vp.GotoBottom()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}
	return m.vp.View() + "\n" + footerStyle.Render(" q quit · arrows scroll ")
}
