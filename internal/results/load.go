// internal/results/load.go
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mwiater/distilreport/internal/logging"
)

// ErrNotFound is returned when the results file does not exist.
var ErrNotFound = errors.New("results file not found")

// ParseError reports a file that could not be read as tabular data.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// sentinelPattern matches placeholder strings that mean "no value".
var sentinelPattern = regexp.MustCompile(`(?i)^\s*(None|N/A)\s*$`)

// IsSentinel reports whether s is a "no value" placeholder such as "None" or "N/A".
func IsSentinel(s string) bool {
	return sentinelPattern.MatchString(s)
}

// NormalizeSentinel returns "" for placeholder strings and s otherwise.
func NormalizeSentinel(s string) string {
	if IsSentinel(s) {
		return ""
	}
	return s
}

// Load reads, classifies and cleans the results CSV at path.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("unable to open results file %s: %w", path, err)
	}
	defer file.Close()

	return LoadReader(file, path)
}

// LoadReader runs the Load pipeline over r. name is used in errors and logs.
func LoadReader(r io.Reader, name string) ([]Record, error) {
	rows, err := readRows(r, name)
	if err != nil {
		return nil, err
	}

	classified := ClassifyAll(rows)
	records := make([]Record, 0, len(classified))
	fallback := make(map[string]int)
	for _, c := range classified {
		if !IsKnownMethod(c.TrainingMethod) {
			fallback[c.TrainingMethod]++
		}
		rec, ok := Clean(c)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(fallback) > 0 {
		labels := make([]string, 0, len(fallback))
		for label := range fallback {
			labels = append(labels, fmt.Sprintf("%q (%d)", label, fallback[label]))
		}
		sort.Strings(labels)
		logging.LogEvent("[loader] %s: unrecognised model_type kept as training method: %s", name, strings.Join(labels, ", "))
	}
	logging.LogEvent("[loader] Loaded %d rows → %d records (dropped %d) from %s",
		len(rows), len(records), len(rows)-len(records), name)
	return records, nil
}

// Clean coerces the value of a classified row and normalizes placeholder
// strings in every field. ok is false when the value is not numeric.
func Clean(c ClassifiedRecord) (Record, bool) {
	value, ok := parseValue(c.Value)
	if !ok {
		return Record{}, false
	}

	rec := Record{
		Dataset:          NormalizeSentinel(c.Dataset),
		Horizon:          NormalizeSentinel(c.Horizon),
		Split:            NormalizeSentinel(c.Split),
		ModelCombination: NormalizeSentinel(c.ModelCombination),
		ModelType:        NormalizeSentinel(c.ModelType),
		Metric:           NormalizeSentinel(c.Metric),
		Value:            value,
		TeacherModel:     NormalizeSentinel(c.TeacherModel),
		StudentModelArch: NormalizeSentinel(c.StudentModelArch),
		TrainingMethod:   NormalizeSentinel(c.TrainingMethod),
		EvaluatedModel:   NormalizeSentinel(c.EvaluatedModel),
	}
	if len(c.Extra) > 0 {
		rec.Extra = make(map[string]string, len(c.Extra))
		for k, v := range c.Extra {
			rec.Extra[k] = NormalizeSentinel(v)
		}
	}
	return rec, true
}

func parseValue(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// readRows parses the CSV and maps columns by header name. Missing required
// columns read as empty strings.
func readRows(r io.Reader, name string) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: name, Err: errors.New("file is empty (no header row)")}
		}
		return nil, &ParseError{Path: name, Line: 1, Err: err}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		logging.LogEvent("[loader] %s: missing columns %s; they are read as empty", name, strings.Join(missing, ", "))
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []RawRecord
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: name, Err: err}
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{Path: name, Line: line, Err: fmt.Errorf("expected %d fields, saw %d", len(header), len(record))}
		}

		row := RawRecord{
			Dataset:          field(record, ColumnDataset),
			Horizon:          field(record, ColumnHorizon),
			Split:            field(record, ColumnSplit),
			ModelCombination: field(record, ColumnModelCombination),
			ModelType:        field(record, ColumnModelType),
			Metric:           field(record, ColumnMetric),
			Value:            field(record, ColumnValue),
		}
		for i, h := range header {
			if isRequired(h) || i >= len(record) {
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[h] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isRequired(col string) bool {
	for _, c := range RequiredColumns {
		if c == col {
			return true
		}
	}
	return false
}
