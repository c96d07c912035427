package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add invoice tables")
	require.NoError(t, err)

	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
	assert.Contains(t, mf.UpPath, "add_invoice_tables.up.sql")
	assert.Contains(t, mf.DownPath, "add_invoice_tables.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(up), "add invoice tables"))
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add invoice tables", "add_invoice_tables"},
		{"Add-Products", "add_products"},
		{"weird!!chars##", "weirdchars"},
		{"trailing space ", "trailing_space"},
		{"double  space", "double_space"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "first")
}

func TestListMigrationsMissingDir(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
