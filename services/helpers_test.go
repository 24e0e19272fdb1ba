package services

import (
	"path/filepath"
	"testing"

	"cricket-club-site/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated SQLite database that lives for the duration of t.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite://" + filepath.Join(t.TempDir(), "club.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

func ptr[T any](v T) *T {
	return &v
}
