package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	it, err := uc.getItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail getItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing Item. Returns ErrItemNotFound when not found.
// The ID is never changed.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.loadItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update loadItem: %v", err)
		return item.UpdateItemOutput{}, err
	}

	merged := existing
	merged.Name = uc.coalesce(input.Name, existing.Name)
	if input.Description != nil {
		merged.Description = *input.Description
	}
	merged.Status = uc.coalesce(input.Status, existing.Status)
	merged.Email = uc.coalesce(input.Email, existing.Email)
	if err := uc.validator.Validate(merged); err != nil {
		return item.UpdateItemOutput{}, err
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        merged.Name,
		Description: merged.Description,
		Status:      merged.Status,
		Email:       merged.Email,
	})
	uc.invalidate(existing.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if updated.ID == 0 {
		// deleted concurrently
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.loadItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete loadItem: %v", err)
		return err
	}

	err := uc.repo.DeleteItem(ctx, id)
	uc.invalidate(id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
