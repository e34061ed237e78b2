package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/creatorhub/creatorhub-be/internal/database"
)

// openTestDB opens a migrated in-memory database. In-memory SQLite gives a
// fresh database per connection, so the pool is pinned to one.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}
