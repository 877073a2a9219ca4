package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
	pkgErrors "item-service/pkg/errors"
)

const itemColumns = `id, name, description, status, email, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (item.Item, error) {
	var (
		it   item.Item
		desc sql.NullString
	)
	if err := s.Scan(&it.ID, &it.Name, &desc, &it.Status, &it.Email, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return item.Item{}, err
	}
	it.Description = desc.String
	return it, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (name, description, status, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := r.timestamp()
	res, err := r.db.ExecContext(ctx, query, opt.Name, nullable(opt.Description), opt.Status, opt.Email, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s LastInsertId: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	return item.Item{
		ID:          id,
		Name:        opt.Name,
		Description: opt.Description,
		Status:      opt.Status,
		Email:       opt.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == 0) when not found; not-found is not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items WHERE %s LIMIT 1", itemColumns, mods)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, pkgErrors.Wrapf(repo.ErrFailedToGet, "item %d", opt.ID)
	}
	return it, nil
}

// ListItems returns a paginated list of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items %s", itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// ListAllIDs returns the id of every stored Item in ascending order.
func (r *implRepository) ListAllIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM items ORDER BY id ASC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAllIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAllIDs"), err)
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAllIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

// UpdateItem updates an Item by ID and returns the updated entity.
// Returns zero-value Item when no row has that ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `
		UPDATE items
		SET name = ?, description = ?, status = ?, email = ?, updated_at = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		opt.Name, nullable(opt.Description), opt.Status, opt.Email, r.timestamp(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, pkgErrors.Wrapf(repo.ErrFailedToUpdate, "item %d", opt.ID)
	}

	// MySQL reports zero affected rows for no-op updates, so read back instead.
	it, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
	if err != nil {
		return item.Item{}, pkgErrors.Wrapf(repo.ErrFailedToUpdate, "item %d", opt.ID)
	}
	return it, nil
}

// UpdateItemStatus writes only the status column, leaving every other field
// as it is in the row. Returns zero-value Item when no row has that ID.
func (r *implRepository) UpdateItemStatus(ctx context.Context, opt repo.UpdateItemStatusOptions) (item.Item, error) {
	const query = `UPDATE items SET status = ?, updated_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, opt.Status, r.timestamp(), opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItemStatus"), err)
		return item.Item{}, pkgErrors.Wrapf(repo.ErrFailedToUpdate, "item %d", opt.ID)
	}

	it, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
	if err != nil {
		return item.Item{}, pkgErrors.Wrapf(repo.ErrFailedToUpdate, "item %d", opt.ID)
	}
	return it, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return pkgErrors.Wrapf(repo.ErrFailedToDelete, "item %d", id)
	}
	return nil
}
