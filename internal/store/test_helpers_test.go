package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/quarry/internal/roster"
)

// createTestStore opens an in-memory store and closes it with the test.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// loadedStore returns an in-memory store holding the sample dataset.
func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := createTestStore(t)
	require.NoError(t, s.Load(context.Background(), roster.Sample()))
	return s
}
