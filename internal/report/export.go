// internal/report/export.go
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/plots"
	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
	"github.com/mwiater/distilreport/internal/util"
)

// Exporter writes a self-contained copy of the report to disk.
type Exporter struct {
	OutputDir string
	// PlotsDir defaults to <OutputDir>/static/images/plots.
	PlotsDir string
	// Assets must contain a "static" directory.
	Assets fs.FS
	// StaticDir is an optional directory copied over the embedded assets.
	StaticDir    string
	SkipPlots    bool
	AnalysisPath string
	Options      Options
}

// ExportResult lists what Export wrote.
type ExportResult struct {
	IndexPath    string
	Charts       []plots.Written
	AnalysisPath string
}

// Export writes index.html, static assets, charts and the optional analysis
// JSON. A load error still produces a page carrying the error panel.
func (e Exporter) Export(records []results.Record, loadErr error) (ExportResult, error) {
	var res ExportResult
	if e.OutputDir == "" {
		return res, errors.New("export output directory is not set")
	}
	staticOut := filepath.Join(e.OutputDir, "static")
	if err := os.MkdirAll(staticOut, 0o755); err != nil {
		return res, fmt.Errorf("unable to create %s: %w", staticOut, err)
	}

	if e.Assets != nil {
		if err := util.CopyFS(staticOut, e.Assets, "static"); err != nil {
			return res, fmt.Errorf("copy embedded assets: %w", err)
		}
	}
	if e.StaticDir != "" {
		if info, err := os.Stat(e.StaticDir); err != nil || !info.IsDir() {
			logging.LogEvent("[export] Source static directory not found: %s", e.StaticDir)
		} else if err := util.CopyFS(staticOut, os.DirFS(e.StaticDir), "."); err != nil {
			return res, fmt.Errorf("copy static dir %s: %w", e.StaticDir, err)
		} else {
			logging.LogEvent("[export] Copied static assets from %s to %s", e.StaticDir, staticOut)
		}
	}

	opts := e.Options
	opts.StaticBase = "static"
	opts.MethodOrder = methodOrder(opts)
	if loadErr == nil && !e.SkipPlots {
		plotsDir := e.plotsDir()
		written, err := plots.Renderer{OutputDir: plotsDir, MethodOrder: opts.MethodOrder}.WriteAll(records)
		if err != nil {
			return res, err
		}
		res.Charts = written
		opts.ChartLink = e.chartLinks(written)
	}

	page := Build(records, loadErr, opts)
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		return res, err
	}
	res.IndexPath = filepath.Join(e.OutputDir, "index.html")
	if err := util.WriteFile(res.IndexPath, buf.Bytes()); err != nil {
		return res, fmt.Errorf("unable to write %s: %w", res.IndexPath, err)
	}
	logging.LogEvent("[export] Generated static index.html at %s", res.IndexPath)

	if e.AnalysisPath != "" && loadErr == nil {
		table, err := summary.Pivot(records, opts.MethodOrder)
		if err != nil {
			return res, err
		}
		if err := WriteAnalysisJSON(e.AnalysisPath, table); err != nil {
			return res, err
		}
		res.AnalysisPath = e.AnalysisPath
	}
	return res, nil
}

func (e Exporter) plotsDir() string {
	if e.PlotsDir != "" {
		return e.PlotsDir
	}
	return filepath.Join(e.OutputDir, "static", "images", "plots")
}

// chartLinks maps keys to chart paths relative to the exported index.html.
func (e Exporter) chartLinks(written []plots.Written) ChartLinkFunc {
	links := make(map[summary.Key]string, len(written))
	for _, w := range written {
		rel, err := filepath.Rel(e.OutputDir, w.Path)
		if err != nil {
			continue
		}
		links[w.Key] = filepath.ToSlash(rel)
	}
	return func(k summary.Key) string { return links[k] }
}

func methodOrder(opts Options) []string {
	if opts.MethodOrder == nil {
		return results.DefaultMethodOrder
	}
	return opts.MethodOrder
}
