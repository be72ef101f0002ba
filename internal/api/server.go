// Package api provides the HTTP API server for the Sui DeFi advisor.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sui-advisor/internal/advisor"
	"github.com/sui-advisor/internal/logging"
	"github.com/sui-advisor/internal/storage"
)

// AdvisorService defines the advisor operations the API exposes, for
// dependency injection and testing
type AdvisorService interface {
	AnalyzePortfolio(ctx context.Context, address string) (*advisor.PortfolioAnalysis, error)
	GetStakingOpportunities(ctx context.Context) (*advisor.StakingOpportunities, error)
	DetectPlatforms(ctx context.Context, address string) (*advisor.PlatformDetection, error)
	GenerateReport(ctx context.Context, address string) (string, error)
}

// Server represents the HTTP API server.
type Server struct {
	router     *mux.Router
	httpServer *http.Server
	advisor    AdvisorService
	cache      *storage.AnalysisCache
	config     *ServerConfig
	logger     *logging.Logger
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	FreeTierRPS     int
	PaidTierRPS     int
}

// NewServer creates a new API server instance. The cache is optional; a
// nil cache disables response caching.
func NewServer(config *ServerConfig, advisorService AdvisorService, cache *storage.AnalysisCache, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	s := &Server{
		router:  mux.NewRouter(),
		advisor: advisorService,
		cache:   cache,
		config:  config,
		logger:  logger,
	}

	s.setupRouter()

	return s
}

// setupRouter configures the router with middleware and routes
func (s *Server) setupRouter() {
	rateLimiter := NewRateLimiter(s.config.FreeTierRPS, s.config.PaidTierRPS)

	// Middleware order matters
	s.router.Use(RequestIDMiddleware)
	s.router.Use(LoggingMiddleware)
	s.router.Use(RecoveryMiddleware)
	s.router.Use(CORSMiddleware)
	s.router.Use(RateLimitMiddleware(rateLimiter))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/addresses/{address}/portfolio", s.handleGetPortfolio).Methods("GET")
	api.HandleFunc("/addresses/{address}/platforms", s.handleGetPlatforms).Methods("GET")
	api.HandleFunc("/addresses/{address}/report", s.handleGetReport).Methods("GET")
	api.HandleFunc("/staking/opportunities", s.handleGetStakingOpportunities).Methods("GET")
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sui-advisor",
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.httpServer.Addr).Info("starting API server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
