package database

import (
	"path/filepath"
	"testing"

	"cricket-club-site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(sqlitePrefix + filepath.Join(t.TempDir(), "club.db"))
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&models.SocialInteraction{}, "idx_social_content"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(sqlitePrefix + filepath.Join(t.TempDir(), "club.db"))
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
