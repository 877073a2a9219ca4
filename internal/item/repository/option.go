package repository

// CreateItemOptions holds parameters for inserting a new Item.
// The store assigns the ID.
type CreateItemOptions struct {
	Name        string
	Description string
	Status      string
	Email       string
}

// GetOneItemOptions selects a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
type ListItemsOptions struct {
	Status  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateItemStatusOptions sets only the status of an existing Item.
type UpdateItemStatusOptions struct {
	ID     int64
	Status string
}

// UpdateItemOptions holds parameters for updating an existing Item.
// ID selects the row and is never written.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Status      string
	Email       string
}
