// internal/tui/browser.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/distilreport/internal/report"
	"github.com/mwiater/distilreport/internal/util"
)

// viewState represents the current screen of the browser.
type viewState int

const (
	// viewGroupSelector lists the (dataset, horizon) panels.
	viewGroupSelector viewState = iota
	// viewTable shows the selected panel.
	viewTable
)

// item represents a selectable panel in the list.
type item struct {
	title string
	desc  string
	index int
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

// model is the Bubble Tea model of the report browser.
type model struct {
	page          report.Page
	status        pageStatus
	state         viewState
	groupList     list.Model
	viewport      viewport.Model
	selected      int
	width, height int
}

func newModel(page report.Page) *model {
	items := make([]list.Item, len(page.Panels))
	for i, p := range page.Panels {
		items[i] = item{title: p.Title, desc: describePanel(p), index: i}
	}
	groupList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	groupList.Title = "Select a group"

	return &model{
		page:      page,
		status:    derivePageStatus(page),
		state:     viewGroupSelector,
		groupList: groupList,
		viewport:  viewport.New(100, 20),
	}
}

func describePanel(p report.Panel) string {
	switch p.Kind {
	case report.PanelTable:
		return fmt.Sprintf("%d rows", len(p.Rows))
	default:
		return util.TruncateRunes(p.Message, 60)
	}
}

// Init is the first function that will be called.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "tab":
			if m.state == viewTable {
				m.state = viewGroupSelector
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.groupList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		if m.state == viewTable {
			m.viewport.SetContent(m.panelContent())
		}
	}

	switch m.state {
	case viewGroupSelector:
		m.groupList, cmd = m.groupList.Update(msg)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.groupList.SelectedItem().(item); ok {
				m.selected = selected.index
				m.state = viewTable
				m.viewport.SetContent(m.panelContent())
				m.viewport.GotoTop()
			}
		}
	case viewTable:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *model) panelContent() string {
	if m.selected < 0 || m.selected >= len(m.page.Panels) {
		return ""
	}
	p := m.page.Panels[m.selected]
	if p.Kind != report.PanelTable && m.width > 0 {
		p.Message = util.WrapToWidth(p.Message, m.width-8)
	}
	return RenderPanel(p)
}

// View renders the browser based on the current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewGroupSelector:
		header := titleStyle.Render(m.page.Title) + renderStatusBadge(m.status)
		return lipgloss.NewStyle().Margin(1, 2).Render(header + "\n\n" + m.groupList.View())
	case viewTable:
		footer := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("esc: back • q: quit")
		return m.viewport.View() + "\n" + footer
	default:
		return "Unknown state"
	}
}

// Browse runs the interactive browser over page until the user quits.
func Browse(page report.Page) error {
	p := tea.NewProgram(newModel(page), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
