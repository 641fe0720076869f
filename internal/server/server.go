// SPDX-License-Identifier: MIT

// Package server exposes trace production over HTTP.
//
// Routes:
//
//	POST /v1/traces                      compute (or reuse) a trace
//	GET  /v1/traces/{id}                 a cached trace
//	GET  /v1/traces/{id}/steps/{index}   one step, with its rendered text
//	GET  /healthz                        liveness
//	GET  /metrics                        Prometheus
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/internal/cache"
	"github.com/katalvlaran/rowtrace/internal/logging"
	"github.com/katalvlaran/rowtrace/internal/metrics"
	"github.com/katalvlaran/rowtrace/internal/problem"
	"github.com/katalvlaran/rowtrace/internal/render"
	"github.com/katalvlaran/rowtrace/step"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// Server holds the shared state of the handlers.
type Server struct {
	Cache   *cache.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	// MaxDim bounds accepted matrices; 0 disables the check.
	MaxDim int
	// Timeout bounds one trace computation; 0 means none.
	Timeout time.Duration
}

// TraceResponse is the body of trace endpoints.
type TraceResponse struct {
	ID        string             `json:"id"`
	Operation rowtrace.Operation `json:"operation"`
	Cached    bool               `json:"cached"`
	Length    int                `json:"length"`
	Steps     *step.Trace        `json:"steps"`
}

// StepResponse is the body of the single-step endpoint.
type StepResponse struct {
	Index int       `json:"index"`
	Total int       `json:"total"`
	Text  string    `json:"text"`
	Step  step.Step `json:"step"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds the router for s.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Route("/v1/traces", func(r chi.Router) {
		r.Post("/", s.createTrace)
		r.Get("/{id}", s.getTrace)
		r.Get("/{id}/steps/{index}", s.getStep)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}

	return s.Logger
}

// createTrace handles POST /v1/traces.
func (s *Server) createTrace(w http.ResponseWriter, r *http.Request) {
	var p problem.Problem
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&p); err != nil {
		s.observe(label(p.Operation), metrics.OutcomeInvalid, 0)
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	op, m, err := p.Build(s.MaxDim)
	if err != nil {
		s.observe(label(p.Operation), metrics.OutcomeInvalid, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	id := cache.Key(op, m.Data(), p.Constants)
	if s.Cache != nil {
		e, ok := s.Cache.Get(id)
		if s.Metrics != nil {
			s.Metrics.Cache(ok)
		}
		if ok {
			s.observe(op.String(), metrics.OutcomeOK, e.Trace.Len())
			s.writeJSON(w, http.StatusOK, TraceResponse{ID: id, Operation: op, Cached: true, Length: e.Trace.Len(), Steps: e.Trace})
			return
		}
	}

	ctx := r.Context()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	tr, err := rowtrace.Run(op, m, p.Constants, step.WithContext(ctx), step.WithLogger(s.logger()))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.observe(op.String(), metrics.OutcomeCancelled, 0)
			s.writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		s.observe(op.String(), metrics.OutcomeInvalid, 0)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if s.Cache != nil {
		s.Cache.Add(cache.Entry{ID: id, Operation: op, Trace: tr})
	}
	s.observe(op.String(), metrics.OutcomeOK, tr.Len())
	s.writeJSON(w, http.StatusCreated, TraceResponse{ID: id, Operation: op, Length: tr.Len(), Steps: tr})
}

// getTrace handles GET /v1/traces/{id}.
func (s *Server) getTrace(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, TraceResponse{ID: e.ID, Operation: e.Operation, Cached: true, Length: e.Trace.Len(), Steps: e.Trace})
}

// getStep handles GET /v1/traces/{id}/steps/{index}.
func (s *Server) getStep(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("index: %w", err))
		return
	}
	st, err := e.Trace.At(idx)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, StepResponse{Index: idx, Total: e.Trace.Len(), Text: render.Describe(st), Step: st})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (cache.Entry, bool) {
	id := chi.URLParam(r, "id")
	if s.Cache == nil {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("trace %q not found", id))
		return cache.Entry{}, false
	}
	e, ok := s.Cache.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("trace %q not found", id))
		return cache.Entry{}, false
	}

	return e, true
}

func (s *Server) observe(operation, outcome string, steps int) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.Observe(operation, outcome, steps)
}

// label maps a raw operation string to a bounded metric label.
func label(raw string) string {
	op, err := rowtrace.ParseOperation(raw)
	if err != nil {
		return "unknown"
	}

	return op.String()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger().Warn("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
