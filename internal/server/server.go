package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/nqueens/internal/errors"
	"github.com/agbru/nqueens/internal/logging"
	"github.com/agbru/nqueens/internal/orchestration"
	"github.com/agbru/nqueens/internal/partition"
	"github.com/agbru/nqueens/internal/search"
)

const (
	// ReadHeaderTimeout bounds header parsing to mitigate slowloris clients.
	ReadHeaderTimeout = 5 * time.Second
	// ShutdownTimeout bounds graceful shutdown on context cancellation.
	ShutdownTimeout = 10 * time.Second
	// SolveTimeout bounds a single solve request.
	SolveTimeout = 2 * time.Minute
)

// Server exposes the solver over HTTP.
type Server struct {
	addr     string
	logger   logging.Logger
	engine   *orchestration.Engine
	metrics  *Metrics
	security SecurityConfig
}

// NewServer creates a Server bound to addr. A nil logger falls back to the
// no-op logger.
func NewServer(addr string, logger logging.Logger, engine *orchestration.Engine) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		addr:     addr,
		logger:   logger,
		engine:   engine,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
	}
}

// Handler builds the route table with security and metrics middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.handleMetrics))
	mux.HandleFunc("/api/v1/solve", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleSolve)))
	return mux
}

// Run starts the HTTP server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// metricsMiddleware tracks request counts and in-flight requests.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleMetrics serves Prometheus metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// solveResponse is the JSON body returned by the solve API.
type solveResponse struct {
	RunID          string  `json:"run_id"`
	BoardSize      int     `json:"board_size"`
	SolutionsFound int     `json:"solutions_found"`
	StatesExplored uint64  `json:"states_explored"`
	WorkersUsed    int     `json:"workers_used"`
	DurationMs     float64 `json:"duration_ms"`
	Stopped        bool    `json:"stopped"`
	Solutions      [][]int `json:"solutions,omitempty"`
}

// errorResponse is the JSON body returned on request failures.
type errorResponse struct {
	Error string `json:"error"`
}

// handleSolve runs a search for the requested board size and returns the
// result as JSON.
//
// Query parameters:
//   - n: board size (required, 1..MaxBoardSize)
//   - workers: worker-count policy, "auto" or "max" (default "auto")
//   - policy: termination policy, "exhaustive" or "first" (default "exhaustive")
//   - boards: include solution boards in the response when "true"
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "parameter n must be an integer")
		return
	}
	if n < 1 || n > s.security.MaxBoardSize {
		s.writeError(w, http.StatusBadRequest, "parameter n out of range")
		return
	}

	workers := partition.Auto
	if raw := r.URL.Query().Get("workers"); raw != "" {
		workers, err = partition.ParseWorkerCountPolicy(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "unknown workers policy")
			return
		}
	}

	termination := search.Exhaustive
	if raw := r.URL.Query().Get("policy"); raw != "" {
		termination, err = search.ParseTerminationPolicy(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "unknown termination policy")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), SolveTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.engine.Solve(ctx, orchestration.Options{
		BoardSize:   n,
		Workers:     workers,
		Termination: termination,
	})
	if err != nil {
		s.logger.Error("solve request failed",
			logging.Int("n", n), logging.Err(err))
		status := http.StatusInternalServerError
		var validationErr apperrors.ValidationError
		if errors.As(err, &validationErr) {
			status = http.StatusBadRequest
		}
		if apperrors.IsContextError(err) {
			status = http.StatusGatewayTimeout
		}
		s.writeError(w, status, err.Error())
		return
	}

	s.metrics.ObserveSolve(time.Since(start).Seconds(),
		result.Stats.SolutionsFound, result.Stats.StatesExplored)

	resp := solveResponse{
		RunID:          result.RunID,
		BoardSize:      result.Stats.BoardSize,
		SolutionsFound: result.Stats.SolutionsFound,
		StatesExplored: result.Stats.StatesExplored,
		WorkersUsed:    result.Stats.WorkersUsed,
		DurationMs:     float64(result.Stats.Duration.Microseconds()) / 1000,
		Stopped:        result.Stopped,
	}
	if r.URL.Query().Get("boards") == "true" {
		resp.Solutions = make([][]int, len(result.Solutions))
		for i, sol := range result.Solutions {
			resp.Solutions[i] = sol
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode solve response", logging.Err(err))
	}
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("method not allowed",
		logging.String("method", r.Method), logging.String("path", r.URL.Path))
	s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
