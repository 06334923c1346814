package webserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/mwiater/distilreport/internal/logging"
	"github.com/mwiater/distilreport/internal/plots"
	"github.com/mwiater/distilreport/internal/report"
	"github.com/mwiater/distilreport/internal/results"
	"github.com/mwiater/distilreport/internal/summary"
)

type handlers struct {
	cfg Config
}

// registerRoutes sets up the report, chart, API and asset routes on mux.
func registerRoutes(mux *http.ServeMux, cfg Config) error {
	h := &handlers{cfg: cfg}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /plots/{dataset}/{horizon}/{teacher}/{student}/{metric}", h.handlePlot)
	mux.HandleFunc("GET /api/summary", h.handleSummary)

	static, err := staticHandler(cfg)
	if err != nil {
		return err
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", static))
	return nil
}

// handleIndex reloads the CSV and renders the report.
func (h *handlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	records, loadErr := results.Load(h.cfg.CSVPath)
	page := report.Build(records, loadErr, report.Options{
		Title:       h.cfg.Title,
		MethodOrder: h.cfg.MethodOrder,
		Notes:       h.notes(),
		ChartLink:   plots.URLPath,
	})

	var buf bytes.Buffer
	if err := report.Render(&buf, page); err != nil {
		logging.LogEvent("[server] %v", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handlePlot renders one group's chart. The teacher segment "None" selects
// rows without a teacher.
func (h *handlers) handlePlot(w http.ResponseWriter, r *http.Request) {
	key := summary.Key{
		Dataset:          r.PathValue("dataset"),
		Horizon:          r.PathValue("horizon"),
		TeacherModel:     results.NormalizeSentinel(r.PathValue("teacher")),
		StudentModelArch: r.PathValue("student"),
		Metric:           strings.TrimSuffix(r.PathValue("metric"), ".png"),
	}

	records, err := results.Load(h.cfg.CSVPath)
	if err != nil {
		logging.LogEvent("[server] Chart %s: %v", plots.FileName(key), err)
		http.Error(w, "failed to load results", http.StatusInternalServerError)
		return
	}

	png, err := plots.Render(plots.Select(records, key), key, h.cfg.MethodOrder)
	switch {
	case errors.Is(err, plots.ErrEmptyGroup):
		http.Error(w, "no data for chart", http.StatusNotFound)
		return
	case err != nil:
		logging.LogEvent("[server] %v", err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(png)))
	_, _ = w.Write(png)
}

// handleSummary returns the pivot table as JSON.
func (h *handlers) handleSummary(w http.ResponseWriter, _ *http.Request) {
	records, err := results.Load(h.cfg.CSVPath)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": report.MsgLoadFailed})
		return
	}
	table, err := summary.Pivot(records, h.cfg.MethodOrder)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report.NewAnalysis(table))
}

func (h *handlers) notes() []byte {
	if h.cfg.NotesPath == "" {
		return nil
	}
	data, err := os.ReadFile(h.cfg.NotesPath)
	if err != nil {
		logging.LogEvent("[server] Notes unavailable: %v", err)
		return nil
	}
	return data
}

// staticHandler serves files from StaticDir first and falls back to the
// embedded assets.
func staticHandler(cfg Config) (http.Handler, error) {
	var layers []fs.FS
	if cfg.StaticDir != "" {
		layers = append(layers, os.DirFS(cfg.StaticDir))
	}
	if cfg.Assets != nil {
		sub, err := fs.Sub(cfg.Assets, "static")
		if err != nil {
			return nil, fmt.Errorf("failed to create sub filesystem for static assets: %w", err)
		}
		layers = append(layers, sub)
	}
	return http.FileServerFS(overlayFS(layers)), nil
}

// overlayFS opens a name from the first layer that has it.
type overlayFS []fs.FS

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range o {
		f, err := layer.Open(path.Clean(name))
		if err == nil {
			return f, nil
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
