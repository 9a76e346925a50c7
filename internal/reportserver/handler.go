package reportserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"globebench/internal/runner"
)

// NewHandler builds the HTTP handler for the run index, per-run files and
// the DuckDB database.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New("reportserver: output dir is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveIndex(cfg.OutputDir))
	mux.Handle("/runs/", http.StripPrefix("/runs/", serveRunFiles(cfg.OutputDir)))
	mux.Handle("/data/db.duckdb", serveDatabase(filepath.Join(cfg.OutputDir, runner.DBFileName)))
	return mux, nil
}

// serveIndex lists the runs under the output directory, newest first.
func serveIndex(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		runIDs, err := listRunDirs(outputDir)
		if err != nil {
			http.Error(w, "list runs: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>Globebench Runs</title></head><body><h1>Runs</h1><ul>`)
		for _, runID := range runIDs {
			escaped := templ.EscapeString(runID)
			fmt.Fprintf(w, `<li><a href="/runs/%[1]s/report.html">%[1]s</a> (<a href="/runs/%[1]s/results.json">json</a>)</li>`, escaped)
		}
		_, _ = io.WriteString(w, `</ul><p><a href="/data/db.duckdb">run database</a></p></body></html>`)
	}
}

// serveRunFiles serves report.html and results.json from run directories.
// Anything else under a run directory stays private.
func serveRunFiles(outputDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		runID, file, ok := strings.Cut(strings.Trim(r.URL.Path, "/"), "/")
		if !ok || runID == "" || (file != "report.html" && file != "results.json") {
			http.NotFound(w, r)
			return
		}
		if strings.Contains(runID, "..") || strings.ContainsAny(runID, `/\`) {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(outputDir, runID, file))
	})
}

// serveDatabase serves the DuckDB file for browser-side processing.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}

func listRunDirs(outputDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	runIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			runIDs = append(runIDs, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(runIDs)))
	return runIDs, nil
}
