package item

import "time"

// --- Item Domain Model ---

// StatusProcessed is the status Process assigns to every item it handles.
const StatusProcessed = "PROCESSED"

// Item is the core domain entity managed by this module.
//
// The zero value is an empty, unsaved item. ID is assigned by the store on
// first save and is never changed afterwards.
type Item struct {
	ID          int64
	Name        string `validate:"required"`
	Description string
	Status      string `validate:"required"`
	Email       string `validate:"required,item_email"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New returns an unsaved Item with every user-supplied field set.
func New(name, description, status, email string) Item {
	return Item{
		Name:        name,
		Description: description,
		Status:      status,
		Email:       email,
	}
}

// IsSaved reports whether the store has assigned an ID.
func (i Item) IsSaved() bool {
	return i.ID > 0
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Status      string
	Email       string
}

// ListItemsInput filters and pages a listing. Sort is one of id, name or
// created_at, prefixed with "-" for descending; empty means newest first.
type ListItemsInput struct {
	Status string
	Sort   string
	Limit  int
	Offset int
}

// UpdateItemInput carries a partial update. Empty required fields keep their
// value; a nil Description keeps it and a non-nil one replaces it, so ""
// clears it.
type UpdateItemInput struct {
	ID          int64
	Name        string
	Description *string
	Status      string
	Email       string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type ProcessItemsOutput struct {
	Items []Item
}
