package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// coalesce returns the first non-empty string. Used by partial updates.
// If new value is provided, use it; otherwise fall back to the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// getItem serves id from the cache, loading it from the store on a miss.
func (uc *implUseCase) getItem(ctx context.Context, id int64) (item.Item, error) {
	if id <= 0 {
		return item.Item{}, item.ErrInvalidID
	}
	if it, ok := uc.cache.Get(id); ok {
		return it, nil
	}

	gen := uc.cacheGeneration()
	it, err := uc.loadItem(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	uc.fillCache(gen, it)
	return it, nil
}

// loadItem reads id from the store, bypassing the cache.
func (uc *implUseCase) loadItem(ctx context.Context, id int64) (item.Item, error) {
	if id <= 0 {
		return item.Item{}, item.ErrInvalidID
	}
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		return item.Item{}, err
	}
	if it.ID == 0 {
		return item.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

func (uc *implUseCase) cacheGeneration() uint64 {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	return uc.cacheGen
}

// fillCache caches a row read at generation gen. A write committed since then
// may have made it stale, so it is dropped instead.
func (uc *implUseCase) fillCache(gen uint64, it item.Item) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	if uc.cacheGen == gen {
		uc.cache.Add(it.ID, it)
	}
}

// invalidate evicts id after a write to the store.
func (uc *implUseCase) invalidate(id int64) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	uc.cacheGen++
	uc.cache.Remove(id)
}
