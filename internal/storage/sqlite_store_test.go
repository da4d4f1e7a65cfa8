package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.EnsureSchema())
	return s
}

func TestSQLiteStore_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "a", []byte(`{"x":1}`)))
	require.NoError(t, s.Put(ctx, "a", []byte(`{"x":2}`)))

	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"x":2}`, string(v))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.PutMany(ctx, map[string][]byte{"c": []byte(`1`), "b": []byte(`2`)}))
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	_, err = s.Delete(ctx, "b")
	require.NoError(t, err)
	_, err = s.Delete(ctx, "c")
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSQLiteStore_EnsureSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureSchema())
	require.NoError(t, s.Ping(context.Background()))
}

func TestLoadSelectionsFromFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "sel.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"communication_honesty":"very_negative"}`), 0o600))

	sel, err := LoadSelectionsFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, domain.Selections{"communication_honesty": domain.VeryNegative}, sel)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"communication_honesty":"awful"}`), 0o600))
	_, err = LoadSelectionsFromFile(bad)
	assert.Error(t, err)
}

func TestLoadExportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"traitProfiles":{"Default":{},"Riley":{"trust_reliability":"positive"}}}`), 0o600))

	exp, err := LoadExportFromFile(path)
	require.NoError(t, err)
	assert.Len(t, exp.TraitProfiles, 2)
	assert.Equal(t, domain.Positive, exp.TraitProfiles["Riley"]["trust_reliability"])
}
