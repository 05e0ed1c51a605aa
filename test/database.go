package test

import (
	"path/filepath"
	"testing"

	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/ascent-finance/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Ledger returns a ledger backed by a fresh temporary database.
func Ledger(t *testing.T) *ledger.Ledger {
	kv, err := storage.Open(TmpFile(t))
	require.Nil(t, err, "database could not be opened")
	t.Cleanup(func() { _ = kv.Close() })

	l := ledger.New(kv)
	require.Nil(t, l.Load(), "ledger could not be loaded")

	return l
}
