package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"memo-manager/internal/memo/repository"
	"memo-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	gatherer       prometheus.Gatherer

	// Memo domain
	remote      repository.RemoteRepository
	fallback    repository.FallbackRepository
	sessionSize int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer

	// Memo domain
	Remote      repository.RemoteRepository
	Fallback    repository.FallbackRepository
	SessionSize int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		gatherer:       cfg.Gatherer,
		remote:         cfg.Remote,
		fallback:       cfg.Fallback,
		sessionSize:    cfg.SessionSize,
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.remote == nil {
		return errors.New("remote repository is required")
	}
	if srv.fallback == nil {
		return errors.New("fallback repository is required")
	}
	return nil
}
