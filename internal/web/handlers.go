package web

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/OrderClean/internal/core"
	"github.com/JonMunkholm/OrderClean/internal/logging"
	"github.com/JonMunkholm/OrderClean/internal/orders"
	"github.com/JonMunkholm/OrderClean/internal/report"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// RunResponse is the JSON view of a completed run.
type RunResponse struct {
	core.RunInfo
	BytesRead int64             `json:"bytes_read"`
	Summary   report.Summary    `json:"summary"`
	Links     map[string]string `json:"links"`
}

func toRunResponse(run *core.Run) RunResponse {
	base := "/api/runs/" + run.ID
	return RunResponse{
		RunInfo:   run.Info(),
		BytesRead: run.BytesRead,
		Summary:   run.Summary,
		Links: map[string]string{
			"self":        base,
			"cleaned_csv": base + "/cleaned.csv",
			"report_txt":  base + "/report.txt",
			"report_html": "/runs/" + run.ID + "/report",
		},
	}
}

// handleClean cleans an uploaded CSV. It accepts either a multipart form
// with a "file" part or a raw CSV body, optionally named by ?name=.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)

	source, body, err := uploadSource(r, s.cfg.MaxUploadSize)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer body.Close()

	logging.FromContext(r.Context()).Info("clean requested", "source", source)

	ctx := WithRequestMetadata(r.Context(), r)
	run, err := s.service.Clean(ctx, source, body)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/runs/"+run.ID)
	writeJSON(w, r, http.StatusCreated, toRunResponse(run))
}

// uploadSource returns the upload's display name and CSV stream.
func uploadSource(r *http.Request, maxSize int64) (string, io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "upload.csv"
		}
		return filepath.Base(name), r.Body, nil
	}

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return "", nil, fmt.Errorf("parse upload: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, errNoFile
		}
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	return filepath.Base(header.Filename), file, nil
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"runs": s.service.List()})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.service.Get(chi.URLParam(r, "runID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toRunResponse(run))
}

func (s *Server) handleCleanedCSV(w http.ResponseWriter, r *http.Request) {
	run, err := s.service.Get(chi.URLParam(r, "runID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment("cleaned_"+run.Source))
	if err := orders.Encode(w, run.Cleaned); err != nil {
		logging.FromContext(r.Context()).Error("write cleaned csv", "run_id", run.ID, "error", err)
	}
}

func (s *Server) handleReportText(w http.ResponseWriter, r *http.Request) {
	run, err := s.service.Get(chi.URLParam(r, "runID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := report.WriteText(w, run.Summary); err != nil {
		logging.FromContext(r.Context()).Error("write text report", "run_id", run.ID, "error", err)
	}
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	run, err := s.service.Get(chi.URLParam(r, "runID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.HTML(core.ReportTitle(run), run.Summary).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render html report", "run_id", run.ID, "error", err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := min(parseIntParam(r, "limit", defaultHistoryLimit), maxHistoryLimit)

	records, err := s.service.History(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"runs": records})
}

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// attachment builds a Content-Disposition header for a download.
func attachment(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
	return `attachment; filename="` + name + `"`
}
