package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"forecast/internal/cache"
	"forecast/internal/forecast"
	"forecast/internal/middleware/ratelimit"
	"forecast/internal/middleware/trace"
)

type Server struct {
	http.Server
	reports *forecast.Service

	// LRU cache for built reports, keyed by project id and flags
	reportCache  *cache.LRUCache[*forecast.Report]
	cacheManager *cache.Manager
	rateLimiter  *ratelimit.Limiter

	shutdownOnce sync.Once
}

// CacheConfig sizes the report cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// NewServer configures routes and the report cache, returning a ready-to-run http.Server.
func NewServer(addr string, reports *forecast.Service, cacheCfg CacheConfig) *Server {
	mux := http.NewServeMux()

	if cacheCfg.Size <= 0 {
		cacheCfg.Size = 64
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = 2 * time.Minute
	}

	s := &Server{
		reports:      reports,
		reportCache:  cache.NewLRUCache[*forecast.Report](cacheCfg.Size, cacheCfg.TTL),
		cacheManager: cache.NewManager(),
		rateLimiter:  ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	s.cacheManager.Register(s.reportCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Report builds are throttled per client; cheap endpoints are not.
	limited := s.rateLimiter.Middleware(extractClientIP)
	mux.Handle("GET /api/projects/{id}/forecast", limited(http.HandlerFunc(s.handleProjectForecast)))
	mux.HandleFunc("GET /api/forecast/headers", s.handleHeaders)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	s.Server = http.Server{
		Addr:    addr,
		Handler: trace.Middleware(mux),
	}

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// extractClientIP resolves the client address, honoring proxy headers
func extractClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); ip != "" {
		if comma := strings.IndexByte(ip, ','); comma >= 0 {
			ip = strings.TrimSpace(ip[:comma])
		}
		return ip
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
