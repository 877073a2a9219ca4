package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// Process marks every stored Item as processed, at most uc.workers at a time.
// The first failure cancels the remaining work and is returned. Items removed
// while the batch runs are skipped. Results are in ascending ID order.
func (uc *implUseCase) Process(ctx context.Context) (item.ProcessItemsOutput, error) {
	ids, err := uc.repo.ListAllIDs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process ListAllIDs: %v", err)
		return item.ProcessItemsOutput{}, err
	}

	results := make([]item.Item, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i, id := range ids {
		g.Go(func() error {
			it, err := uc.processOne(gctx, id)
			if err != nil {
				return err
			}
			results[i] = it
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Process: %v", err)
		return item.ProcessItemsOutput{}, err
	}

	processed := make([]item.Item, 0, len(results))
	for _, it := range results {
		if it.ID != 0 {
			processed = append(processed, it)
		}
	}

	uc.l.Infof(ctx, "uc.Process: processed %d of %d items", len(processed), len(ids))
	return item.ProcessItemsOutput{Items: processed}, nil
}

// processOne writes only the status, so edits committed concurrently through
// Update are kept. A zero Item means id was deleted meanwhile.
func (uc *implUseCase) processOne(ctx context.Context, id int64) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}

	updated, err := uc.repo.UpdateItemStatus(ctx, repo.UpdateItemStatusOptions{
		ID:     id,
		Status: item.StatusProcessed,
	})
	uc.invalidate(id)
	if err != nil {
		return item.Item{}, err
	}
	return updated, nil
}
