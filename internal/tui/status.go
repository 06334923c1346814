// internal/tui/status.go
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/distilreport/internal/report"
)

// pageStatus summarizes what a report page contains.
type pageStatus string

const (
	statusTables pageStatus = "tables"
	statusInfo   pageStatus = "no data"
	statusError  pageStatus = "error"
)

// derivePageStatus reports whether page holds tables, only info messages, or an error.
func derivePageStatus(page report.Page) pageStatus {
	status := statusInfo
	for _, p := range page.Panels {
		switch p.Kind {
		case report.PanelError:
			return statusError
		case report.PanelTable:
			status = statusTables
		}
	}
	return status
}

// renderStatusBadge returns a Lipgloss-styled badge string for the page status.
func renderStatusBadge(status pageStatus) string {
	bg := lipgloss.Color("229")
	switch status {
	case statusTables:
		bg = lipgloss.Color("120")
	case statusError:
		bg = lipgloss.Color("210")
	}
	badgeStyle := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render("Data: " + string(status))
}
