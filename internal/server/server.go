// Package server exposes the assistant and the recruitment catalog over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-assistant/internal/assistant"
	"github.com/spigell/cv-assistant/internal/logger"
	"github.com/spigell/cv-assistant/internal/recruitment"
)

const (
	APIPrefix = "/api/v1"

	DefaultAddr = ":8000"

	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

type Config struct {
	Addr string
}

type Deps struct {
	Assistant *assistant.Service
	Store     *recruitment.Store
	Logger    *zap.Logger
}

// Server owns the HTTP listener. Handlers only read shared state.
type Server struct {
	assistant *assistant.Service
	store     *recruitment.Store
	logger    *zap.Logger
	validate  *validator.Validate
	http      *http.Server
}

func New(cfg Config, deps Deps) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		assistant: deps.Assistant,
		store:     deps.Store,
		logger:    logger.OrNop(deps.Logger),
		validate:  validator.New(),
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Model calls may take up to the assistant timeout.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST "+APIPrefix+"/ai-tools/analyze-cv", s.handleAnalyzeCV)
	mux.HandleFunc("POST "+APIPrefix+"/ai-tools/match-jobs", s.handleMatchJobs)
	mux.HandleFunc("POST "+APIPrefix+"/ai-tools/generate-email", s.handleGenerateEmail)
	mux.HandleFunc("GET "+APIPrefix+"/ai-tools/email-templates", s.handleEmailTemplates)
	mux.HandleFunc("GET "+APIPrefix+"/ai-tools/candidates/{id}/email-context", s.handleEmailContext)

	mux.HandleFunc("GET "+APIPrefix+"/jobs", s.handleListJobs)
	mux.HandleFunc("GET "+APIPrefix+"/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("GET "+APIPrefix+"/candidates", s.handleListCandidates)
	mux.HandleFunc("GET "+APIPrefix+"/candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("GET "+APIPrefix+"/companies", s.handleListCompanies)
	mux.HandleFunc("GET "+APIPrefix+"/companies/{id}", s.handleGetCompany)
	mux.HandleFunc("GET "+APIPrefix+"/skills", s.handleListSkills)
	mux.HandleFunc("GET "+APIPrefix+"/skills/{id}", s.handleGetSkill)
	mux.HandleFunc("GET "+APIPrefix+"/users", s.handleListUsers)
	mux.HandleFunc("GET "+APIPrefix+"/users/{id}", s.handleGetUser)
	mux.HandleFunc("POST "+APIPrefix+"/users/login", s.handleLogin)

	return s.withRequestID(s.withLogging(s.withRecover(mux)))
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"assisted": s.assistant.Assisted(),
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

// decode reads a JSON body into dst and runs struct validation.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &requestError{msg: "invalid request body: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		return &requestError{msg: validationMessage(err)}
	}
	return nil
}
