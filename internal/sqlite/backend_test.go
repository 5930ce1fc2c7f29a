package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func attached(t *testing.T, dir string) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()
	b := attached(t, tmpDir)

	_, err := os.Stat(filepath.Join(tmpDir, dbFileName))
	require.NoError(t, err, "database file should exist")

	err = b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: tmpDir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "Detach should be idempotent")

	_, err := b.Get(types.LootDataKey)
	assert.ErrorIs(t, err, types.ErrStorageDetached)
	assert.ErrorIs(t, b.Set(types.LootDataKey, "{}"), types.ErrStorageDetached)
	assert.ErrorIs(t, b.SetAll(map[string]string{"a": "b"}), types.ErrStorageDetached)
	_, err = b.All()
	assert.ErrorIs(t, err, types.ErrStorageDetached)
	assert.ErrorIs(t, b.Clear(), types.ErrStorageDetached)
}

func TestBackend_GetSet(t *testing.T) {
	b := attached(t, t.TempDir())

	_, err := b.Get(types.LootDataKey)
	assert.ErrorIs(t, err, types.ErrKeyNotFound)

	require.NoError(t, b.Set(types.LootDataKey, `{"Stone":["Basic"]}`))
	got, err := b.Get(types.LootDataKey)
	require.NoError(t, err)
	assert.Equal(t, `{"Stone":["Basic"]}`, got)

	require.NoError(t, b.Set(types.LootDataKey, `{}`))
	got, err = b.Get(types.LootDataKey)
	require.NoError(t, err)
	assert.Equal(t, `{}`, got, "Set should overwrite")
}

func TestBackend_SetAllAndAll(t *testing.T) {
	b := attached(t, t.TempDir())

	require.NoError(t, b.Set("extra", "kept"))
	require.NoError(t, b.SetAll(map[string]string{
		types.LootDataKey:   `{}`,
		types.PlayerDataKey: `[]`,
	}))

	all, err := b.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"extra":             "kept",
		types.LootDataKey:   `{}`,
		types.PlayerDataKey: `[]`,
	}, all)
}

func TestBackend_Clear(t *testing.T) {
	b := attached(t, t.TempDir())

	require.NoError(t, b.Set(types.LootDataKey, `{}`))
	require.NoError(t, b.Clear())

	all, err := b.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBackend_PersistsAcrossAttach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: tmpDir}))
	require.NoError(t, b.Set(types.PlayerDataKey, `[{"id":1,"name":"Ana"}]`))
	require.NoError(t, b.Detach())

	reopened := attached(t, tmpDir)
	got, err := reopened.Get(types.PlayerDataKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"name":"Ana"}]`, got)
}
