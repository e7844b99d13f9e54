package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willothy/lazyline/engine"
)

// FireMsg delivers a host event onto the update loop. Timer goroutines and
// file watchers send these through the program rather than calling the
// engine directly.
type FireMsg struct {
	Event   string
	Pattern string
}

// ReloadMsg swaps in a freshly loaded configuration.
type ReloadMsg struct {
	Layout engine.Layout
}

// Model renders scrollable content above a status line driven by the
// engine.
type Model struct {
	host  *TermHost
	eng   *engine.Engine
	view  viewport.Model
	ready bool
	body  string
}

// NewModel creates the demo model. The engine must already be set up
// against host.
func NewModel(host *TermHost, eng *engine.Engine, body string) *Model {
	return &Model{host: host, eng: eng, body: body}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.host.SetViewportSize(msg.Width, msg.Height)
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-1)
			m.view.SetContent(m.body)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 1
		}

	case tea.MouseMsg:
		m.host.SetMousePosition(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			m.eng.MouseMoved()
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				if id, ok := m.eng.HitTest(msg.X, msg.Y); ok {
					m.eng.DispatchClick(id)
				}
			}
		}

	case FireMsg:
		m.host.Fire(msg.Event, msg.Pattern)

	case ReloadMsg:
		if err := m.eng.Setup(msg.Layout); err != nil {
			m.host.Warn("lazyline: reload: " + err.Error())
		}
	}

	var cmd tea.Cmd
	if m.ready {
		m.view, cmd = m.view.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model: content above, composed status line on the
// bottom row.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	line, _ := m.host.RenderLine(m.eng.Compose())
	return m.view.View() + "\n" + line
}
