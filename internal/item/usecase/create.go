package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// Create validates and persists a new Item. The store assigns its ID.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	candidate := item.New(input.Name, input.Description, input.Status, input.Email)
	if err := uc.validator.Validate(candidate); err != nil {
		return item.CreateItemOutput{}, err
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        candidate.Name,
		Description: candidate.Description,
		Status:      candidate.Status,
		Email:       candidate.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	uc.cache.Add(created.ID, created)
	return item.CreateItemOutput{Item: created}, nil
}
