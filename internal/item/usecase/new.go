package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"item-service/internal/item"
	"item-service/internal/item/repository"
	"item-service/pkg/log"
)

const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = time.Minute
	DefaultWorkers   = 10
)

// Config tunes the use case. Zero values fall back to the defaults above.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Workers   int
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	validator *item.Validator
	cache     *expirable.LRU[int64, item.Item]
	workers   int

	// cacheMu orders cache fills on the read path against invalidations.
	// cacheGen advances on every write.
	cacheMu  sync.Mutex
	cacheGen uint64
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger, v *item.Validator, cfg Config) *implUseCase {
	if v == nil {
		v = item.NewValidator()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	return &implUseCase{
		repo:      repo,
		l:         l,
		validator: v,
		cache:     expirable.NewLRU[int64, item.Item](cfg.CacheSize, nil, cfg.CacheTTL),
		workers:   cfg.Workers,
	}
}
