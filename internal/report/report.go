// internal/report/report.go
// Package report builds the HTML comparison report from loaded results.
package report

import (
	"fmt"
	"html/template"

	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
)

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "Model Performance Analysis"

// Panel messages shown in place of tables.
const (
	MsgLoadFailed    = "Failed to load or process data."
	MsgNoTestMetrics = "No 'test' data or no 'mae'/'mse' metrics found for summary."
	MsgNoStudentRows = "No data available for summary tables after filtering."
)

// PanelKind selects how a panel is rendered.
type PanelKind int

const (
	PanelTable PanelKind = iota
	PanelInfo
	PanelError
)

// Cell is one rendered table cell.
type Cell struct {
	Text       string
	Rank       summary.Rank
	Numeric    bool
	Comparison bool
}

// Class returns the CSS classes of the cell.
func (c Cell) Class() string {
	class := ""
	if c.Numeric {
		class = "numeric"
	}
	if c.Rank != summary.RankNone {
		if class != "" {
			class += " "
		}
		class += "rank-" + c.Rank.String()
	}
	if c.Comparison && c.Text != "" {
		class = "comparison-" + c.Text
	}
	return class
}

// Row is one rendered table row with an optional chart link.
type Row struct {
	Cells    []Cell
	ChartURL string
}

// Panel is either a titled table or an info/error message.
type Panel struct {
	Title   string
	Kind    PanelKind
	Message string
	Columns []string
	Rows    []Row
}

// Page is the view model of the report template.
type Page struct {
	Title      string
	Notes      template.HTML
	StaticBase string
	Panels     []Panel
}

// ChartLinkFunc returns the chart URL of a key, or "" for no link.
type ChartLinkFunc func(summary.Key) string

// Options controls how a Page is built.
type Options struct {
	Title       string
	MethodOrder []string
	// Notes is markdown rendered above the tables.
	Notes []byte
	// StaticBase prefixes stylesheet links, "/static" when empty.
	StaticBase string
	ChartLink  ChartLinkFunc
}

// Build turns loaded records into a Page. loadErr is the error returned by
// the loader, if any; it replaces every table with an error panel.
func Build(records []results.Record, loadErr error, opts Options) Page {
	page := Page{Title: opts.Title, StaticBase: opts.StaticBase}
	if page.Title == "" {
		page.Title = DefaultTitle
	}
	if page.StaticBase == "" {
		page.StaticBase = "/static"
	}
	if len(opts.Notes) > 0 {
		notes, err := RenderNotes(opts.Notes)
		if err != nil {
			logging.LogEvent("[report] Skipping notes: %v", err)
		} else {
			page.Notes = notes
		}
	}
	order := opts.MethodOrder
	if order == nil {
		order = results.DefaultMethodOrder
	}

	if loadErr != nil {
		logging.LogEvent("[report] %s %v", MsgLoadFailed, loadErr)
		page.Panels = []Panel{{Title: "Error", Kind: PanelError, Message: MsgLoadFailed}}
		return page
	}

	if !hasTestMetrics(records) {
		page.Panels = []Panel{{Title: "Info", Kind: PanelInfo, Message: MsgNoTestMetrics}}
		return page
	}
	if len(summary.Filter(records)) == 0 {
		page.Panels = []Panel{{Title: "Info", Kind: PanelInfo, Message: MsgNoStudentRows}}
		return page
	}

	table, err := summary.Pivot(records, order)
	if err != nil {
		logging.LogEvent("[report] Error creating pivot table: %v", err)
		page.Panels = []Panel{{
			Title:   "Error",
			Kind:    PanelError,
			Message: fmt.Sprintf("Could not generate summary tables: %v", err),
		}}
		return page
	}

	for _, group := range table.Groups() {
		page.Panels = append(page.Panels, buildPanel(table, group, opts.ChartLink))
	}
	return page
}

func hasTestMetrics(records []results.Record) bool {
	for _, rec := range records {
		if rec.Split == results.TestSplit && summary.IsSummaryMetric(rec.Metric) {
			return true
		}
	}
	return false
}

func buildPanel(table summary.Table, group summary.Group, link ChartLinkFunc) Panel {
	ranks := summary.Highlight(group.Rows, group.Methods)
	panel := Panel{Title: group.Title(), Kind: PanelTable, Columns: table.Columns()}
	for i, row := range group.Rows {
		cells := []Cell{
			{Text: row.TeacherModel},
			{Text: row.StudentModelArch},
			{Text: row.Metric},
		}
		for j, method := range group.Methods {
			cell := Cell{Numeric: true, Rank: ranks[i][j]}
			if v, ok := row.Value(method); ok {
				cell.Text = FormatValue(v)
			}
			cells = append(cells, cell)
		}
		cells = append(cells, Cell{Text: row.Comparison, Comparison: true})

		out := Row{Cells: cells}
		if link != nil {
			out.ChartURL = link(row.Key)
		}
		panel.Rows = append(panel.Rows, out)
	}
	return panel
}

// FormatValue renders a metric value with four decimals.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
