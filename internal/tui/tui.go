// Package tui shows the resolved blocks of a plan in an interactive list so
// a run can be inspected before any document is written.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"graft/pkg/span"
)

// blockItem represents one resolved block for the list.
type blockItem struct {
	name string
	desc string
}

func (b blockItem) Title() string       { return b.name }
func (b blockItem) Description() string { return b.desc }
func (b blockItem) FilterValue() string { return b.name }

// model is the Bubbletea model for the preview list.
type model struct {
	list     list.Model
	quitting bool
}

func initialModel(title string, spans []span.Span) model {
	items := make([]list.Item, len(spans))
	for i, sp := range spans {
		items[i] = blockItem{
			name: sp.Name,
			desc: fmt.Sprintf("lines %d-%d (%d lines)", sp.Start+1, sp.End, sp.Size()),
		}
	}
	l := list.New(items, list.NewDefaultDelegate(), 60, 14)
	l.Title = title
	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.NewStyle().Padding(1).Render(m.list.View())
}

// Run opens the preview list for the given resolved spans and blocks until
// the user quits.
func Run(title string, spans []span.Span) error {
	p := tea.NewProgram(initialModel(title, spans))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running preview: %w", err)
	}
	return nil
}
