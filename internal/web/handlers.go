package web

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"csv2sql/internal/logging"

	"github.com/go-chi/chi/v5"
)

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleHealth reports liveness and whether persistence is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":         true,
		"persistent": s.service.Persistent(),
	})
}

// handleConvert runs one conversion. It accepts a multipart form with a
// "schema" text field and either a "file" upload or a "csv" text field.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Schema text, CSV payload, plus slack for multipart framing.
	maxBody := s.cfg.Convert.MaxFileBytes + int64(s.cfg.Convert.MaxSchemaBytes) + 64*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(s.cfg.Convert.MaxFileBytes); err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "file too large or invalid form")
		return
	}

	schemaText := r.FormValue("schema")
	csvText := r.FormValue("csv")

	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "failed to read file")
			return
		}
		csvText = string(data)
	}

	result, err := s.service.Convert(r.Context(), schemaText, csvText)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	logging.FromContext(r.Context()).Info("conversion complete",
		"table", result.TableName,
		"rows", result.RowCount,
		"statement_bytes", len(result.SQL),
	)
	writeJSON(w, result)
}

// handleGetSchema returns a saved schema text as text/plain.
func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := s.service.LoadSchema(r.Context(), name)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, body)
}

// handlePutSchema saves a schema text under a name. The request body is
// the raw schema text.
func (s *Server) handlePutSchema(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "missing schema name")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.Convert.MaxSchemaBytes)+1)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "schema text too large")
		return
	}

	if err := s.service.SaveSchema(r.Context(), name, string(body)); err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHistory returns the most recent conversions.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := s.service.History(r.Context(), limit)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	writeJSON(w, map[string]any{"conversions": recs})
}
