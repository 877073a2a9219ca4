package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"item-service/internal/model"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Item service specifics
	JWT        JWTConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	Processing ProcessingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver string
	SQLite SQLiteConfig
	MySQL  MySQLConfig
}

type SQLiteConfig struct {
	Path string
}

type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// JWTConfig configures bearer token auth. An empty secret disables auth.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type ProcessingConfig struct {
	Workers int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = strings.ToLower(v.GetString("environment.name"))
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Driver = strings.ToLower(v.GetString("database.driver"))
	cfg.Database.SQLite.Path = v.GetString("database.sqlite.path")
	cfg.Database.MySQL.Host = v.GetString("database.mysql.host")
	cfg.Database.MySQL.Port = v.GetInt("database.mysql.port")
	cfg.Database.MySQL.User = v.GetString("database.mysql.user")
	cfg.Database.MySQL.Password = v.GetString("database.mysql.password")
	cfg.Database.MySQL.Name = v.GetString("database.mysql.name")
	if pw := v.GetString("mysql_password"); pw != "" {
		cfg.Database.MySQL.Password = pw
	}

	// Auth
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if secret := v.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.TTL = v.GetDuration("jwt.ttl")

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")
	cfg.Processing.Workers = v.GetInt("processing.workers")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.sqlite.path", "items.db")
	v.SetDefault("database.mysql.host", "localhost")
	v.SetDefault("database.mysql.port", 3306)

	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("rate_limit.per_min", 600)
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", "1m")
	v.SetDefault("processing.workers", 10)
}

func (cfg *Config) validate() error {
	switch model.Environment(cfg.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		return fmt.Errorf("unsupported environment.name %q", cfg.Environment.Name)
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.SQLite.Path == "" {
			return fmt.Errorf("database.sqlite.path is required")
		}
	case DriverMySQL:
		if cfg.Database.MySQL.Name == "" {
			return fmt.Errorf("database.mysql.name is required")
		}
		if cfg.Database.MySQL.User == "" {
			return fmt.Errorf("database.mysql.user is required")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}

	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Processing.Workers <= 0 {
		return fmt.Errorf("processing.workers must be positive")
	}
	return nil
}
