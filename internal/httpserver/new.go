package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"item-service/internal/item"
	"item-service/pkg/log"
	"item-service/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	db *sql.DB

	// Item domain
	jwtManager   scope.Manager
	validator    *item.Validator
	rateLimitMin int
	cacheSize    int
	cacheTTL     time.Duration
	workers      int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB *sql.DB

	// JWTManager may be nil, which leaves the API unauthenticated.
	JWTManager   scope.Manager
	Validator    *item.Validator
	RateLimitMin int
	CacheSize    int
	CacheTTL     time.Duration
	Workers      int
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		jwtManager:      cfg.JWTManager,
		validator:       cfg.Validator,
		rateLimitMin:    cfg.RateLimitMin,
		cacheSize:       cfg.CacheSize,
		cacheTTL:        cfg.CacheTTL,
		workers:         cfg.Workers,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.db == nil {
		return errors.New("db is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
