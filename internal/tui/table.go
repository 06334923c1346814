// internal/tui/table.go
// Package tui renders report panels in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/distilreport/internal/report"
	"github.com/mwiater/distilreport/internal/summary"
)

var (
	green        = lipgloss.Color("#198754")
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// rankStyle mirrors the report CSS: best is bold, second underlined, third plain green.
func rankStyle(base lipgloss.Style, rank summary.Rank) lipgloss.Style {
	switch rank {
	case summary.RankBest:
		return base.Foreground(green).Bold(true)
	case summary.RankSecond:
		return base.Foreground(green).Underline(true)
	case summary.RankThird:
		return base.Foreground(green)
	}
	return base
}

// RenderPanel renders one panel: a bordered table or a styled message.
func RenderPanel(p report.Panel) string {
	switch p.Kind {
	case report.PanelError:
		return errorStyle.Render("Error: " + p.Message)
	case report.PanelInfo:
		return infoStyle.Render(p.Message)
	}

	rows := make([][]string, len(p.Rows))
	for i, row := range p.Rows {
		cells := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = c.Text
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(p.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(p.Rows) || col >= len(p.Rows[row].Cells) {
				return cellStyle
			}
			c := p.Rows[row].Cells[col]
			base := cellStyle
			if c.Numeric {
				base = numericStyle
			}
			return rankStyle(base, c.Rank)
		})

	return titleStyle.Render(p.Title) + "\n" + t.String()
}

// RenderPage renders every panel of page separated by blank lines.
func RenderPage(page report.Page) string {
	parts := []string{titleStyle.Render(page.Title)}
	for _, p := range page.Panels {
		parts = append(parts, RenderPanel(p))
	}
	return strings.Join(parts, "\n\n") + "\n"
}
