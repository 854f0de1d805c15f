package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diffsync/internal/config"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
	"github.com/MKhiriev/go-diffsync/models"
)

func TestLocalTodoRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalTodoRepository(newTestSQLite(t), logger.Nop())

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// order is kept, unsaved todos share id 0
	todos := []models.Todo{
		{ID: 0, Description: "second"},
		{ID: 4, Description: "first", Complete: true},
		{ID: 0, Description: "third"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, todos))

	got, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, todos, got)

	require.NoError(t, repo.ReplaceAll(ctx, todos[1:2]))
	got, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, todos[1:2], got)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	got, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalCredentialsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalCredentialsRepository(newTestSQLite(t), logger.Nop())

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrCredentialsNotFound)

	require.NoError(t, repo.Save(ctx, models.Credentials{NodeID: "n1", Token: "t1"}))
	require.NoError(t, repo.Save(ctx, models.Credentials{NodeID: "n2", Token: "t2"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{NodeID: "n2", Token: "t2"}, got)
}

func TestLocalPendingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalPendingRepository(newTestSQLite(t), logger.Nop())

	got, err := repo.List(ctx, "todos")
	require.NoError(t, err)
	assert.Empty(t, got)

	add := diffsync.VersionedPatch{
		Patch:         patch.Patch{patch.Add{Path: "/0", Value: models.Todo{Description: "milk"}}},
		ServerVersion: 0,
		ClientVersion: 1,
	}
	require.NoError(t, repo.Append(ctx, "todos", diffsync.VersionedPatch{Patch: patch.Patch{}, ServerVersion: 1, ClientVersion: 1}))
	require.NoError(t, repo.Append(ctx, "todos", add))
	require.NoError(t, repo.Append(ctx, "notes", add))

	got, err = repo.List(ctx, "todos")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(0), got[0].ServerVersion)
	assert.Equal(t, int64(1), got[0].ClientVersion)
	require.Equal(t, 1, got[0].Patch.Size())
	assert.Equal(t, patch.OpAdd, got[0].Patch[0].Op())
	assert.Equal(t, int64(1), got[1].ServerVersion)
	assert.Equal(t, 0, got[1].Patch.Size())

	// the stored patch still applies after the round trip
	applied, err := patch.ApplyTo(got[0].Patch, []models.Todo{})
	require.NoError(t, err)
	assert.Equal(t, []models.Todo{{Description: "milk"}}, applied)

	// same server version overwrites
	require.NoError(t, repo.Append(ctx, "todos", diffsync.VersionedPatch{Patch: patch.Patch{}, ServerVersion: 0, ClientVersion: 2}))
	got, err = repo.List(ctx, "todos")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ClientVersion)

	require.NoError(t, repo.Acknowledge(ctx, "todos", 1))
	got, err = repo.List(ctx, "todos")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ServerVersion)

	require.NoError(t, repo.Clear(ctx, "todos"))
	got, err = repo.List(ctx, "todos")
	require.NoError(t, err)
	assert.Empty(t, got)

	// other resources are untouched
	got, err = repo.List(ctx, "notes")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNewClientStorages(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.TodoRepository.ReplaceAll(ctx, []models.Todo{{Description: "keep"}}))
	require.NoError(t, storages.ShadowStore.PutShadow(ctx, "shadow/TodoList", models.StoredShadow{Resource: []byte(`[]`)}))
	require.NoError(t, storages.Close())

	// reopening the same file keeps the data
	storages, err = NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	todos, err := storages.TodoRepository.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Todo{{Description: "keep"}}, todos)

	_, ok, err := storages.ShadowStore.GetShadow(ctx, "shadow/TodoList")
	require.NoError(t, err)
	assert.True(t, ok)
}
