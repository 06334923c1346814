// internal/report/analysis.go
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwiater/distilreport/internal/summary"
	"github.com/mwiater/distilreport/internal/util"
)

// Analysis is the JSON form of the pivot table.
type Analysis struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Methods     []string        `json:"methods"`
	Groups      []AnalysisGroup `json:"groups"`
}

// AnalysisGroup holds the rows of one dataset and horizon.
type AnalysisGroup struct {
	Title   string             `json:"title"`
	Dataset string             `json:"dataset"`
	Horizon string             `json:"horizon"`
	Rows    []summary.PivotRow `json:"rows"`
}

// NewAnalysis groups table rows for serialization.
func NewAnalysis(table summary.Table) Analysis {
	a := Analysis{GeneratedAt: time.Now().UTC(), Methods: table.Methods}
	for _, g := range table.Groups() {
		a.Groups = append(a.Groups, AnalysisGroup{
			Title:   g.Title(),
			Dataset: g.Dataset,
			Horizon: g.Horizon,
			Rows:    g.Rows,
		})
	}
	return a
}

// WriteAnalysisJSON writes the table as indented JSON to path.
func WriteAnalysisJSON(path string, table summary.Table) error {
	data, err := json.MarshalIndent(NewAnalysis(table), "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}
