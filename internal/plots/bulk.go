// internal/plots/bulk.go
package plots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
	"github.com/mwiater/distilreport/internal/util"
)

// Renderer writes one chart per group into OutputDir.
type Renderer struct {
	OutputDir   string
	MethodOrder []string
}

// Written describes one chart file produced by WriteAll.
type Written struct {
	Key  summary.Key
	Path string
}

// WriteAll renders every test-split mae/mse group and returns the files written.
// Groups without a bar in MethodOrder are skipped.
func (r Renderer) WriteAll(records []results.Record) ([]Written, error) {
	if r.OutputDir == "" {
		return nil, errors.New("plots output directory is not set")
	}
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create plots dir: %w", err)
	}

	grouped := make(map[summary.Key][]results.Record)
	var keys []summary.Key
	for _, rec := range summary.Filter(records) {
		k := summary.KeyOf(rec)
		if _, ok := grouped[k]; !ok {
			keys = append(keys, k)
		}
		grouped[k] = append(grouped[k], rec)
	}

	var written []Written
	skipped := 0
	for _, k := range keys {
		png, err := Render(grouped[k], k, r.MethodOrder)
		if errors.Is(err, ErrEmptyGroup) {
			skipped++
			continue
		}
		if err != nil {
			return written, err
		}
		path := filepath.Join(r.OutputDir, FileName(k))
		if err := util.WriteFile(path, png); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, Written{Key: k, Path: path})
	}
	logging.LogEvent("[plots] Wrote %d charts to %s (skipped %d empty groups)", len(written), r.OutputDir, skipped)
	return written, nil
}
