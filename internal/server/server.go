// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kmorton/resume-tailor/internal/config"
	"github.com/kmorton/resume-tailor/internal/db"
	"github.com/kmorton/resume-tailor/internal/extract"
	"github.com/kmorton/resume-tailor/internal/llm"
	"github.com/kmorton/resume-tailor/internal/render"
	"github.com/kmorton/resume-tailor/internal/server/middleware"
	"github.com/kmorton/resume-tailor/internal/server/ratelimit"
	"github.com/kmorton/resume-tailor/internal/tailoring"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	extractor   *extract.Extractor
	tailor      *tailoring.Orchestrator
	llmClient   llm.Client
	renderer    render.Renderer
	jwtService  *JWTService
	rateLimiter *ratelimit.Limiter
	// browserSem bounds concurrent headless browser launches; each one costs
	// hundreds of MB of memory.
	browserSem *semaphore.Weighted
	verbose    bool
}

// Config holds server configuration
type Config struct {
	ListenAddr            string
	DatabaseURL           string
	APIKey                string
	Model                 string
	ChromePath            string
	RenderServiceURL      string
	ExtractTimeoutSeconds int
	MaxConcurrentBrowsers int
	Verbose               bool
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	extractOpts := extract.DefaultOptions()
	extractOpts.ChromePath = cfg.ChromePath
	extractOpts.Verbose = cfg.Verbose
	if cfg.ExtractTimeoutSeconds > 0 {
		extractOpts.Timeout = time.Duration(cfg.ExtractTimeoutSeconds) * time.Second
	}

	maxBrowsers := cfg.MaxConcurrentBrowsers
	if maxBrowsers <= 0 {
		maxBrowsers = 2
	}

	// Local pdflatex first; fall back to the remote compile service when the
	// local attempt fails retryably or pdflatex is absent but a service URL
	// is configured.
	renderers := []render.Renderer{render.NewLocal()}
	if cfg.RenderServiceURL != "" {
		renderers = append(renderers, render.NewRemote(cfg.RenderServiceURL))
	}

	s := &Server{
		db:         database,
		extractor:  extract.New(extractOpts),
		tailor:     tailoring.New(llmClient).WithVerbose(cfg.Verbose),
		llmClient:  llmClient,
		renderer:   &render.Fallback{Renderers: renderers},
		browserSem: semaphore.NewWeighted(int64(maxBrowsers)),
		verbose:    cfg.Verbose,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("POST /api/extract", authed(http.HandlerFunc(s.handleExtract)))
	mux.Handle("POST /api/tailor", authed(http.HandlerFunc(s.handleTailor)))
	mux.Handle("PUT /api/resume/master", authed(http.HandlerFunc(s.handlePutMasterResume)))
	mux.Handle("GET /api/resume/master", authed(http.HandlerFunc(s.handleGetMasterResume)))
	mux.Handle("GET /api/resume/tailored", authed(http.HandlerFunc(s.handleListTailored)))
	mux.Handle("GET /api/resume/tailored/{id}", authed(http.HandlerFunc(s.handleGetTailored)))

	addr := cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for extract+tailor+compile runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if err := s.llmClient.Close(); err != nil {
		log.Printf("Error closing LLM client: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is caller-controlled.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
