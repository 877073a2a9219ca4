package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"item-service/internal/item/repository"
	"item-service/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a database/sql backed Repository for the item domain.
// Queries use '?' placeholders and LastInsertId, so db may be SQLite or MySQL.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Ping reports whether the database is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlstore.%s", method)
}

// timestamp is the current time at the precision every supported backend keeps.
func (r *implRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}
