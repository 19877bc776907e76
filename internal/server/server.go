package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/eligibility"
	"github.com/plan4you/plan-advisor/internal/recommend"
	"github.com/plan4you/plan-advisor/internal/types"
)

// Store is the document-store capability the server depends on.
type Store interface {
	FindBenefitsByState(ctx context.Context, state string) ([]types.BenefitRecord, error)
	ListBenefits(ctx context.Context, state string, limit int) ([]types.BenefitRecord, error)
	GetEligibilityLevels(ctx context.Context, state string) (*eligibility.Thresholds, error)
	ListEligibilityLevels(ctx context.Context) ([]eligibility.Thresholds, error)
	Ping(ctx context.Context) error
}

// Recommender is the orchestration capability the server depends on.
type Recommender interface {
	Recommend(ctx context.Context, profile types.UserProfile, plans []types.Plan) (*recommend.Result, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       Store
	classifier  *eligibility.Classifier
	recommender Recommender
	logger      *zap.Logger
	cfg         config.ServerConfig
	dbTimeout   time.Duration
}

// New creates a new server instance around injected capability handles.
func New(cfg *config.Config, store Store, recommender Recommender, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		store:       store,
		classifier:  eligibility.NewClassifier(cfg.Poverty, logger),
		recommender: recommender,
		logger:      logger,
		cfg:         cfg.Server,
		dbTimeout:   cfg.Database.QueryTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /api/benefits", s.handleListBenefits)
	mux.HandleFunc("GET /api/eligibility", s.handleListEligibility)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
// In-flight generator calls are abandoned once the shutdown grace period
// expires; they must not block process exit.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// jsonResponse writes a JSON payload with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes the error envelope from §6 of the API contract.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string, details string) {
	payload := map[string]any{
		"status":  "error",
		"message": message,
	}
	if details != "" {
		payload["details"] = details
	}
	s.jsonResponse(w, status, payload)
}
