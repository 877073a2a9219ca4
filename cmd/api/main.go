package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-service/config"
	_ "item-service/docs" // Swagger docs
	"item-service/internal/httpserver"
	"item-service/internal/item"
	"item-service/pkg/log"
	"item-service/pkg/mysql"
	"item-service/pkg/scope"
	"item-service/pkg/sqlite"
)

// @title       Item Service API
// @description CRUD and batch processing for validated Item records.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Item Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (driver: %s)", cfg.Database.Driver)

	// 4. Auth (optional)
	var jwtManager scope.Manager
	if cfg.JWT.Secret != "" {
		jwtManager, err = scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
			return
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		JWTManager:      jwtManager,
		Validator:       item.NewValidator(),
		RateLimitMin:    cfg.RateLimit.PerMin,
		CacheSize:       cfg.Cache.Size,
		CacheTTL:        cfg.Cache.TTL,
		Workers:         cfg.Processing.Workers,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err := mysql.Open(ctx, mysql.Config{
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			Name:     cfg.MySQL.Name,
		})
		if err != nil {
			return nil, err
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}
