package repository

import (
	"context"

	"item-service/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	ListAllIDs(ctx context.Context) ([]int64, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	UpdateItemStatus(ctx context.Context, opt UpdateItemStatusOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
