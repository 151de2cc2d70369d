package pg_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/pg"
)

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(pg.Migrations, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := fs.ReadFile(pg.Migrations, entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS kv_store")
}
