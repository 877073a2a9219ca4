package sqlstore

import (
	"fmt"
	"math"
	"strings"

	repo "item-service/internal/item/repository"
)

const defaultOrderBy = "created_at DESC, id DESC"

// orderings is the set of ORDER BY clauses ListItems accepts.
var orderings = map[string]string{
	"id":          "id ASC",
	"-id":         "id DESC",
	"name":        "name ASC, id ASC",
	"-name":       "name DESC, id DESC",
	"created_at":  "created_at ASC, id ASC",
	"-created_at": defaultOrderBy,
}

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Items (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var args []any

	// Filters
	if opt.Status != "" {
		parts = append(parts, "WHERE status = ?")
		args = append(args, opt.Status)
	}

	// Sorting
	orderBy, ok := orderings[opt.OrderBy]
	if !ok {
		orderBy = defaultOrderBy
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination. Both backends need a LIMIT before OFFSET.
	limit := opt.Limit
	if limit <= 0 && opt.Offset > 0 {
		limit = math.MaxInt
	}
	if limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
