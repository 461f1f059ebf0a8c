package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hardware-ai-orchestrator/config"
	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/metrics"
	"hardware-ai-orchestrator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Query domain
	store     *catalog.Store
	retriever knowledge.Retriever
	exporter  *metrics.Exporter
	tracker   *metrics.AccuracyTracker
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Store     *catalog.Store
	Retriever knowledge.Retriever
	Exporter  *metrics.Exporter
	Tracker   *metrics.AccuracyTracker
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		store:       cfg.Store,
		retriever:   cfg.Retriever,
		exporter:    cfg.Exporter,
		tracker:     cfg.Tracker,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("catalog store is required")
	}
	if srv.tracker == nil {
		return errors.New("accuracy tracker is required")
	}
	return nil
}
