// Package server exposes the dispatcher, the record store, and the tool
// registry over HTTP. The three endpoint families let a deployment split the
// record store or the tool layer into separate processes without changing
// the core.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	dispatcherx "github.com/tanpawarit/bank-front-desk/agent/dispatcher"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
	toolx "github.com/tanpawarit/bank-front-desk/agent/tool"
)

// Config holds the HTTP listener settings.
type Config struct {
	ListenAddr     string        `envconfig:"LISTEN_ADDR" split_words:"true" default:":5000"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" split_words:"true" default:"30s"`
}

// Server wires the HTTP routes to the core components.
type Server struct {
	dispatcher *dispatcherx.Dispatcher
	store      storex.Store
	registry   *toolx.Registry
	timeout    time.Duration
}

func New(d *dispatcherx.Dispatcher, st storex.Store, registry *toolx.Registry, cfg Config) (*Server, error) {
	if d == nil {
		return nil, errors.New("dispatcher is required")
	}
	if st == nil {
		return nil, errors.New("record store is required")
	}
	if registry == nil {
		return nil, errors.New("tool registry is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Server{
		dispatcher: d,
		store:      st,
		registry:   registry,
		timeout:    timeout,
	}, nil
}

// Handler returns the route table wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /query", s.handleQuery)

	mux.HandleFunc("GET /account/{id}", s.handleGetAccount)
	mux.HandleFunc("GET /loan/{code}", s.handleGetLoan)
	mux.HandleFunc("POST /appointment", s.handleCreateAppointment)

	mux.HandleFunc("POST /tools/{tool}", s.handleTool)

	return s.logRequests(mux)
}

// ListenAndServe blocks serving HTTP until the listener fails or ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	resp := s.dispatcher.HandleQuery(ctx, req.Text)
	status := http.StatusOK
	if resp.Status == contractx.StatusError {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, queryResponse{Response: resp.Text})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	account, err := s.store.GetAccount(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, contractx.ErrNotFound) {
			writeStoreError(w, "Account not found")
			return
		}
		log.Error().Err(err).Msg("account lookup fault")
		writeDetail(w, http.StatusServiceUnavailable, "record store unavailable")
		return
	}
	writeStoreSuccess(w, account)
}

func (s *Server) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	loan, err := s.store.GetLoanProduct(ctx, r.PathValue("code"))
	if err != nil {
		if errors.Is(err, contractx.ErrNotFound) {
			writeStoreError(w, "Loan type not found")
			return
		}
		log.Error().Err(err).Msg("loan lookup fault")
		writeDetail(w, http.StatusServiceUnavailable, "record store unavailable")
		return
	}
	writeStoreSuccess(w, loan)
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string `json:"account_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	appt, err := s.store.CreateAppointment(ctx, req.AccountID, req.Date, req.Time)
	if err != nil {
		log.Error().Err(err).Msg("appointment creation fault")
		writeDetail(w, http.StatusServiceUnavailable, "record store unavailable")
		return
	}
	writeStoreSuccess(w, appt)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("tool")
	t, err := s.registry.Lookup(name)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "unknown tool")
		return
	}

	params := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	result, err := t.Execute(ctx, params)
	switch {
	case err == nil:
		writeToolResult(w, result)
	case errors.Is(err, contractx.ErrNotFound):
		writeDetail(w, http.StatusNotFound, notFoundDetail(name))
	case errors.Is(err, contractx.ErrInvalidArgument):
		writeDetail(w, http.StatusBadRequest, "invalid tool arguments")
	default:
		log.Error().Err(err).Str("tool", name).Msg("tool endpoint fault")
		writeDetail(w, http.StatusServiceUnavailable, "record store unavailable")
	}
}

func notFoundDetail(toolName string) string {
	switch toolName {
	case contractx.ToolAccountBalance:
		return "Account not found"
	case contractx.ToolLoanDetails:
		return "Loan type not found"
	default:
		return "Record not found"
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
