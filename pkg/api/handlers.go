package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/contamprj/pkg/prj"
	"github.com/ssargent/contamprj/pkg/storage"
)

const defaultMaxBodyBytes = 8 << 20

// Server holds the API server state
type Server struct {
	archive RecordArchive
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(archive RecordArchive, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		archive: archive,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// malformedLog collects the fields tolerated by one lenient decode
type malformedLog struct {
	fields []MalformedField
}

func (s *Server) decodeOptions(kind prj.Kind, log *malformedLog) prj.DecodeOptions {
	return prj.DecodeOptions{
		Lenient: s.config.Lenient,
		OnMalformed: func(fe *prj.FieldError) {
			s.metrics.RecordMalformedField(kind)
			s.logger.Warn("malformed numeric field",
				"record", fe.Record.String(), "field", fe.Field, "text", fe.Text, "line", fe.Line)
			log.fields = append(log.fields, MalformedField{Field: fe.Field, Text: fe.Text, Line: fe.Line})
		},
	}
}

// decodeError maps a decode failure onto the response and metrics.
func (s *Server) decodeError(w http.ResponseWriter, kind prj.Kind, err error) {
	if errors.Is(err, prj.ErrMalformedNumericField) {
		s.metrics.RecordMalformedField(kind)
	}
	s.metrics.RecordOperation(kind, "decode", false)
	sendError(w, fmt.Sprintf("Failed to decode %s: %v", kind, err), http.StatusBadRequest)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return "", false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return "", false
	}
	return string(body), true
}

func parseProject(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "project"))
	if err != nil {
		sendError(w, "Invalid project id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func parseKind(w http.ResponseWriter, r *http.Request) (prj.Kind, bool) {
	kind, err := prj.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return 0, false
	}
	return kind, true
}

func parseNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	nr, err := strconv.Atoi(chi.URLParam(r, "nr"))
	if err != nil || nr < 0 {
		sendError(w, "Invalid record number", http.StatusBadRequest)
		return 0, false
	}
	return nr, true
}

func (s *Server) storageError(w http.ResponseWriter, kind prj.Kind, operation string, err error) {
	s.metrics.RecordOperation(kind, operation, false)
	switch {
	case errors.Is(err, storage.ErrProjectNotFound), errors.Is(err, storage.ErrNotFound):
		sendError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrInvalidNumber), errors.Is(err, prj.ErrInvalidToken):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("archive operation failed", "kind", kind.String(), "operation", operation, "error", err)
		sendError(w, fmt.Sprintf("Failed to %s record: %v", operation, err), http.StatusInternalServerError)
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCreateProject godoc
//
//	@Summary		Create a project
//	@Tags			projects
//	@Produce		json
//	@Success		201	{object}	ProjectResponse
//	@Failure		500	{object}	APIResponse
//	@Router			/projects [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	id, err := s.archive.NewProject()
	if err != nil {
		s.logger.Error("create project failed", "error", err)
		sendError(w, fmt.Sprintf("Failed to create project: %v", err), http.StatusInternalServerError)
		return
	}
	s.logger.Info("project created", "project", id.String())
	sendStatus(w, ProjectResponse{ID: id.String()}, http.StatusCreated)
}

// handleListProjects godoc
//
//	@Summary		List projects
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/projects [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ids, err := s.archive.Projects()
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list projects: %v", err), http.StatusInternalServerError)
		return
	}
	projects := make([]ProjectResponse, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, ProjectResponse{ID: id.String()})
	}
	sendSuccess(w, map[string]interface{}{"projects": projects})
}

// handlePutRecord godoc
//
//	@Summary		Store a record
//	@Description	Decode one record from PRJ text and store its canonical text
//	@Tags			records
//	@Accept			plain
//	@Produce		json
//	@Param			project	path		string	true	"Project id"
//	@Param			kind	path		string	true	"Record kind"
//	@Success		200		{object}	RecordResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/projects/{project}/{kind} [put]
//	@Security		ApiKeyAuth
func (s *Server) handlePutRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProject(w, r)
	if !ok {
		return
	}
	kind, ok := parseKind(w, r)
	if !ok {
		return
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var log malformedLog
	rec, err := prj.Decode(kind, body, s.decodeOptions(kind, &log))
	if err != nil {
		s.decodeError(w, kind, err)
		return
	}
	s.metrics.RecordOperation(kind, "decode", true)

	if err := s.archive.Put(id, rec); err != nil {
		s.storageError(w, kind, "store", err)
		return
	}
	s.metrics.RecordOperation(kind, "store", true)

	sendSuccess(w, RecordResponse{
		Kind:      kind.String(),
		Nr:        rec.Number(),
		Text:      rec.Write(),
		Malformed: log.fields,
	})
}

// handleGetRecord godoc
//
//	@Summary		Get a record
//	@Description	Returns the stored record. Use ?format=text for raw PRJ text.
//	@Tags			records
//	@Produce		json,plain
//	@Param			project	path		string	true	"Project id"
//	@Param			kind	path		string	true	"Record kind"
//	@Param			nr		path		int		true	"Record number"
//	@Param			format	query		string	false	"json (default) or text"
//	@Success		200		{object}	RecordResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/projects/{project}/{kind}/{nr} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProject(w, r)
	if !ok {
		return
	}
	kind, ok := parseKind(w, r)
	if !ok {
		return
	}
	nr, ok := parseNumber(w, r)
	if !ok {
		return
	}

	text, err := s.archive.GetText(id, kind, nr)
	if err != nil {
		s.storageError(w, kind, "fetch", err)
		return
	}
	s.metrics.RecordOperation(kind, "fetch", true)

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, text)
		return
	}
	sendSuccess(w, RecordResponse{Kind: kind.String(), Nr: nr, Text: text})
}

// handleListRecords godoc
//
//	@Summary		List records of one kind
//	@Description	Returns records ordered by number. Use ?format=text for a PRJ section.
//	@Tags			records
//	@Produce		json,plain
//	@Param			project	path		string	true	"Project id"
//	@Param			kind	path		string	true	"Record kind"
//	@Success		200		{object}	APIResponse
//	@Router			/projects/{project}/{kind} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProject(w, r)
	if !ok {
		return
	}
	kind, ok := parseKind(w, r)
	if !ok {
		return
	}

	records, err := s.archive.List(id, kind)
	if err != nil {
		s.storageError(w, kind, "list", err)
		return
	}
	s.metrics.RecordOperation(kind, "list", true)

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if kind == prj.KindRunControl {
			for _, rec := range records {
				_, _ = io.WriteString(w, rec.Write())
			}
			return
		}
		_, _ = io.WriteString(w, prj.WriteSection(records))
		return
	}

	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, RecordResponse{Kind: kind.String(), Nr: rec.Number(), Text: rec.Write()})
	}
	sendSuccess(w, map[string]interface{}{"records": out})
}

// handleDeleteRecord godoc
//
//	@Summary		Delete a record
//	@Tags			records
//	@Produce		json
//	@Param			project	path		string	true	"Project id"
//	@Param			kind	path		string	true	"Record kind"
//	@Param			nr		path		int		true	"Record number"
//	@Success		200		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Router			/projects/{project}/{kind}/{nr} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProject(w, r)
	if !ok {
		return
	}
	kind, ok := parseKind(w, r)
	if !ok {
		return
	}
	nr, ok := parseNumber(w, r)
	if !ok {
		return
	}

	if err := s.archive.Delete(id, kind, nr); err != nil {
		s.storageError(w, kind, "delete", err)
		return
	}
	s.metrics.RecordOperation(kind, "delete", true)
	sendSuccess(w, map[string]string{"message": "Record deleted successfully"})
}

// handleCheck godoc
//
//	@Summary		Check PRJ text
//	@Description	Decode a counted section, or a single run control record, without storing it
//	@Tags			records
//	@Accept			plain
//	@Produce		json
//	@Param			kind	path		string	true	"Record kind"
//	@Success		200		{object}	CheckResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/check/{kind} [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(w, r)
	if !ok {
		return
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var log malformedLog
	opts := s.decodeOptions(kind, &log)

	var resp CheckResponse
	if kind == prj.KindRunControl {
		rec, err := prj.Decode(kind, body, opts)
		if err != nil {
			s.decodeError(w, kind, err)
			return
		}
		resp = CheckResponse{Kind: kind.String(), Count: 1, Text: rec.Write()}
	} else {
		records, err := prj.ReadSection(prj.NewStringReader(body), kind, opts)
		if err != nil {
			s.decodeError(w, kind, err)
			return
		}
		resp = CheckResponse{Kind: kind.String(), Count: len(records), Text: prj.WriteSection(records)}
	}
	s.metrics.RecordOperation(kind, "decode", true)

	resp.Malformed = log.fields
	sendSuccess(w, resp)
}
