package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns a paginated list of Items.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := max(input.Offset, 0)

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status:  input.Status,
		Limit:   limit,
		Offset:  offset,
		OrderBy: input.Sort,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
