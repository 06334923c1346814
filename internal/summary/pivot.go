// internal/summary/pivot.go
// Package summary reshapes classified results into per-group comparison tables.
package summary

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/mwiater/distilreport/internal/results"
)

// Summary metrics shown in tables, in display order.
const (
	MetricMAE = "mae"
	MetricMSE = "mse"
)

// SummaryMetrics are the metrics kept by Pivot and ranked by Highlight.
var SummaryMetrics = []string{MetricMAE, MetricMSE}

// Comparison labels for RDT against TaskOnly.
const (
	Better = "Better"
	Worse  = "Worse"
	Same   = "Same"
)

// Column names of the id and comparison columns.
const (
	ColumnTeacherModel     = "teacher_model"
	ColumnStudentModelArch = "student_model_arch"
	ColumnMetric           = "metric"
	ColumnComparison       = "RDT_vs_TaskOnly"
)

// Key identifies one pivot row.
type Key struct {
	Dataset          string `json:"dataset"`
	Horizon          string `json:"horizon"`
	TeacherModel     string `json:"teacher_model"`
	StudentModelArch string `json:"student_model_arch"`
	Metric           string `json:"metric"`
}

// KeyOf returns the pivot key of a record.
func KeyOf(rec results.Record) Key {
	return Key{
		Dataset:          rec.Dataset,
		Horizon:          rec.Horizon,
		TeacherModel:     rec.TeacherModel,
		StudentModelArch: rec.StudentModelArch,
		Metric:           rec.Metric,
	}
}

// PivotRow holds one value per training method for a key.
type PivotRow struct {
	Key
	Values     map[string]float64 `json:"values"`
	Comparison string             `json:"rdt_vs_taskonly,omitempty"`
}

// Value returns the value for method and whether it is present.
func (r PivotRow) Value(method string) (float64, bool) {
	v, ok := r.Values[method]
	return v, ok
}

// Table is the pivoted summary.
type Table struct {
	Methods []string   `json:"methods"`
	Rows    []PivotRow `json:"rows"`
}

// Columns returns the display columns without dataset and horizon.
func (t Table) Columns() []string {
	cols := []string{ColumnTeacherModel, ColumnStudentModelArch, ColumnMetric}
	cols = append(cols, t.Methods...)
	return append(cols, ColumnComparison)
}

// Group is the slice of a table sharing one dataset and horizon.
type Group struct {
	Dataset string
	Horizon string
	Methods []string
	Rows    []PivotRow
}

// Title returns the heading used for the group, e.g. "ETTh1 (H=96)".
func (g Group) Title() string {
	return fmt.Sprintf("%s (H=%s)", g.Dataset, g.Horizon)
}

// Groups splits the table rows by dataset and horizon, keeping row order.
func (t Table) Groups() []Group {
	var groups []Group
	for _, row := range t.Rows {
		n := len(groups)
		if n > 0 && groups[n-1].Dataset == row.Dataset && groups[n-1].Horizon == row.Horizon {
			groups[n-1].Rows = append(groups[n-1].Rows, row)
			continue
		}
		groups = append(groups, Group{
			Dataset: row.Dataset,
			Horizon: row.Horizon,
			Methods: t.Methods,
			Rows:    []PivotRow{row},
		})
	}
	return groups
}

// IsSummaryMetric reports whether metric is shown in summary tables.
func IsSummaryMetric(metric string) bool {
	for _, m := range SummaryMetrics {
		if m == metric {
			return true
		}
	}
	return false
}

// Filter keeps test-split records of the summary metrics with a student architecture.
func Filter(records []results.Record) []results.Record {
	out := make([]results.Record, 0, len(records))
	for _, rec := range records {
		if rec.Split != results.TestSplit || !IsSummaryMetric(rec.Metric) || rec.StudentModelArch == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Pivot reshapes records into one row per Key with one column per training
// method. Several values for the same method in a group are averaged.
func Pivot(records []results.Record, methodOrder []string) (Table, error) {
	if err := validateOrder(methodOrder); err != nil {
		return Table{}, err
	}

	type accum struct {
		sum   map[string]float64
		count map[string]int
	}
	groups := make(map[Key]*accum)
	var keys []Key
	for _, rec := range Filter(records) {
		k := KeyOf(rec)
		a, ok := groups[k]
		if !ok {
			a = &accum{sum: make(map[string]float64), count: make(map[string]int)}
			groups[k] = a
			keys = append(keys, k)
		}
		a.sum[rec.TrainingMethod] += rec.Value
		a.count[rec.TrainingMethod]++
	}

	sort.SliceStable(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })

	compare := contains(methodOrder, results.MethodRDT) && contains(methodOrder, results.MethodTaskOnly)
	rows := make([]PivotRow, 0, len(keys))
	for _, k := range keys {
		a := groups[k]
		row := PivotRow{Key: k, Values: make(map[string]float64, len(a.sum))}
		for method, sum := range a.sum {
			row.Values[method] = sum / float64(a.count[method])
		}
		if compare {
			row.Comparison = Compare(row)
		}
		rows = append(rows, row)
	}

	methods := make([]string, len(methodOrder))
	copy(methods, methodOrder)
	return Table{Methods: methods, Rows: rows}, nil
}

// Compare labels RDT against TaskOnly for a row: Better when RDT is lower,
// Worse when higher, Same when equal, "" when either is missing.
func Compare(row PivotRow) string {
	rdt, okRDT := row.Value(results.MethodRDT)
	task, okTask := row.Value(results.MethodTaskOnly)
	if !okRDT || !okTask {
		return ""
	}
	switch {
	case rdt < task:
		return Better
	case rdt > task:
		return Worse
	case rdt == task:
		return Same
	}
	return ""
}

func validateOrder(order []string) error {
	if len(order) == 0 {
		return errors.New("training method order is empty")
	}
	seen := make(map[string]struct{}, len(order))
	for _, m := range order {
		if m == "" {
			return errors.New("training method order contains an empty name")
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("training method %q listed more than once", m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func keyLess(a, b Key) bool {
	if a.Dataset != b.Dataset {
		return a.Dataset < b.Dataset
	}
	if a.Horizon != b.Horizon {
		return horizonLess(a.Horizon, b.Horizon)
	}
	if a.TeacherModel != b.TeacherModel {
		return a.TeacherModel < b.TeacherModel
	}
	if a.StudentModelArch != b.StudentModelArch {
		return a.StudentModelArch < b.StudentModelArch
	}
	return a.Metric < b.Metric
}

// horizonLess orders numeric horizons by value and everything else as text.
func horizonLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil && fa != fb:
		return fa < fb
	case errA == nil && errB != nil:
		return true
	case errA != nil && errB == nil:
		return false
	}
	return a < b
}
