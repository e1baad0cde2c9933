package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quarry/internal/roster"
)

func TestOpen_AppliesSchema(t *testing.T) {
	s := createTestStore(t)

	version, err := s.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, version)

	ids, err := s.QueryIDs(context.Background(), "SELECT id FROM employees ORDER BY ord")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quarry.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Load(context.Background(), roster.Sample()))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	ds, err := s2.ReadDataset(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Employees, 12)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quarry.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestOpen_StoresAreIsolated(t *testing.T) {
	a := loadedStore(t)
	b := createTestStore(t)

	ids, err := a.QueryIDs(context.Background(), "SELECT id FROM employees ORDER BY ord")
	require.NoError(t, err)
	assert.Len(t, ids, 12)

	ids, err = b.QueryIDs(context.Background(), "SELECT id FROM employees ORDER BY ord")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestClose_NilDB(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())
}
