// Package server exposes the checker over HTTP.
//
// The API accepts the JSON problem document (see pkg/io) and returns the
// run verdict. One endpoint does the work:
//
//	POST /v1/check   run a problem document, respond with the verdict
//	GET  /healthz    liveness probe
//
// Responses are JSON. Error responses carry the machine-readable error
// code from pkg/errors so clients can distinguish bad input from server
// faults.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/grouptools/transversal/pkg/errors"
	pkgio "github.com/grouptools/transversal/pkg/io"
	"github.com/grouptools/transversal/pkg/observability"
	"github.com/grouptools/transversal/pkg/protocol"
	"github.com/grouptools/transversal/pkg/runner"
)

// MaxBodySize bounds the accepted problem document size.
const MaxBodySize = 8 << 20 // 8 MiB

// Server serves the checker API.
type Server struct {
	runner *runner.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around the given runner.
func New(r *runner.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: r, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Get("/healthz", s.handleHealth)
	router.Post("/v1/check", s.handleCheck)

	s.router = router
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// checkResponse is the body of a successful POST /v1/check.
type checkResponse struct {
	Result     bool   `json:"result"`
	Trials     int    `json:"trials"`
	RunID      string `json:"run_id"`
	Cached     bool   `json:"cached"`
	DurationMS int64  `json:"duration_ms"`
}

// errorResponse is the body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(body) > MaxBodySize {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", MaxBodySize))
		return
	}

	problem, err := pkgio.ReadJSON(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Run(r.Context(), problem, protocol.Trials(problem.Trials), runner.Options{
		ProblemText: body,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Result:     result.Answer,
		Trials:     result.Trials,
		RunID:      result.RunID,
		Cached:     result.CacheHit,
		DurationMS: result.Stats.CheckTime.Milliseconds(),
	})
}

// writeError maps an error code to an HTTP status and writes the JSON
// error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidSequence, errors.ErrCodeInvalidTrial,
		errors.ErrCodeInvalidProblem, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// logRequests emits one key-value line per served request and feeds the
// HTTP observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", duration)
	})
}
