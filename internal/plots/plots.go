// internal/plots/plots.go
// Package plots renders per-group bar charts comparing training methods.
package plots

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
)

// ErrEmptyGroup is returned when a group has no bar to draw.
var ErrEmptyGroup = errors.New("no data for chart group")

// Chart dimensions in pixels.
const (
	Width    = 1000
	Height   = 600
	BarWidth = 80
)

// viridis is sampled at even steps for up to five methods.
var viridis = []string{"440154", "3b528b", "21918c", "5ec962", "fde725"}

var upper = cases.Upper(language.Und)

// Select returns the test-split records belonging to key.
func Select(records []results.Record, key summary.Key) []results.Record {
	var out []results.Record
	for _, rec := range records {
		if rec.Split != results.TestSplit {
			continue
		}
		if summary.KeyOf(rec) != key {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Bar is one method's height in a chart.
type Bar struct {
	Method string
	Value  float64
}

// Bars averages the records per method and returns them in methodOrder.
// Methods missing from methodOrder are left out.
func Bars(records []results.Record, methodOrder []string) []Bar {
	sum := make(map[string]float64)
	count := make(map[string]int)
	for _, rec := range records {
		sum[rec.TrainingMethod] += rec.Value
		count[rec.TrainingMethod]++
	}
	var bars []Bar
	for _, m := range methodOrder {
		if n := count[m]; n > 0 {
			bars = append(bars, Bar{Method: m, Value: sum[m] / float64(n)})
		}
	}
	return bars
}

// Title returns the chart heading for key.
func Title(key summary.Key) string {
	teacher := key.TeacherModel
	if teacher == "" {
		teacher = "No Explicit Teacher"
	}
	return fmt.Sprintf("Comparison on %s (H=%s) / Teacher: %s, Student Arch: %s - Metric: %s",
		key.Dataset, key.Horizon, teacher, key.StudentModelArch, upper.String(key.Metric))
}

// Render draws the records of one group as a PNG bar chart.
func Render(records []results.Record, key summary.Key, methodOrder []string) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyGroup
	}
	bars := Bars(records, methodOrder)
	if len(bars) == 0 {
		return nil, ErrEmptyGroup
	}

	values := make([]chart.Value, 0, len(bars))
	maxValue, minValue := 0.0, 0.0
	for i, b := range bars {
		color := drawing.ColorFromHex(viridis[i%len(viridis)])
		values = append(values, chart.Value{
			Label: b.Method,
			Value: b.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		})
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if b.Value < minValue {
			minValue = b.Value
		}
	}
	if maxValue == 0 && minValue == 0 {
		maxValue = 1
	}

	graph := chart.BarChart{
		Title:      Title(key),
		TitleStyle: chart.Style{FontSize: 11},
		Width:      Width,
		Height:     Height,
		BarWidth:   BarWidth,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Name:  upper.String(key.Metric) + " Value (Lower is Better)",
			Range: &chart.ContinuousRange{Min: minValue * 1.1, Max: maxValue * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.3f", f)
				}
				return ""
			},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %s: %w", FileName(key), err)
	}
	return buf.Bytes(), nil
}

// FileName returns the PNG file name of key's chart.
func FileName(key summary.Key) string {
	teacher := key.TeacherModel
	if teacher == "" {
		teacher = results.NoTeacher
	}
	return fmt.Sprintf("%s_H%s_T_%s_S_%s_%s.png",
		sanitize(key.Dataset), sanitize(key.Horizon), sanitize(teacher), sanitize(key.StudentModelArch), sanitize(key.Metric))
}

// URLPath returns the server route of key's chart.
func URLPath(key summary.Key) string {
	teacher := key.TeacherModel
	if teacher == "" {
		teacher = results.NoTeacher
	}
	parts := []string{"/plots", key.Dataset, key.Horizon, teacher, key.StudentModelArch, key.Metric}
	for i := 1; i < len(parts); i++ {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.Join(parts, "/")
}
