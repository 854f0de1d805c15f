// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diffsync/internal/adapter"
	"github.com/MKhiriev/go-diffsync/internal/diffsync"
	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/mock"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

// serverTodos — серверный репозиторий в памяти, id назначаются по порядку
type serverTodos struct {
	mu     sync.Mutex
	items  map[int64]models.Todo
	nextID int64
}

func newServerTodos() *serverTodos {
	return &serverTodos{items: make(map[int64]models.Todo)}
}

func (s *serverTodos) FindAll(context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]models.Todo, 0, len(s.items))
	for _, todo := range s.items {
		todos = append(todos, todo)
	}
	slices.SortFunc(todos, func(a, b models.Todo) int { return cmp.Compare(a.ID, b.ID) })
	return todos, nil
}

func (s *serverTodos) FindOne(_ context.Context, id int64) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.items[id]
	if !ok {
		return models.Todo{}, store.ErrTodoNotFound
	}
	return todo, nil
}

func (s *serverTodos) Save(_ context.Context, todo models.Todo) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(todo), nil
}

func (s *serverTodos) SaveAndDelete(_ context.Context, save, remove []models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, todo := range save {
		s.save(todo)
	}
	for _, todo := range remove {
		delete(s.items, todo.ID)
	}
	return nil
}

func (s *serverTodos) save(todo models.Todo) models.Todo {
	if todo.ID == 0 {
		s.nextID++
		todo.ID = s.nextID
	}
	s.items[todo.ID] = todo
	return todo
}

type localTodos struct {
	items []models.Todo
}

func (l *localTodos) FindAll(context.Context) ([]models.Todo, error) {
	return append(make([]models.Todo, 0, len(l.items)), l.items...), nil
}

func (l *localTodos) ReplaceAll(_ context.Context, todos []models.Todo) error {
	l.items = append([]models.Todo(nil), todos...)
	return nil
}

type memoryPending struct {
	envelopes map[string][]diffsync.VersionedPatch
}

func newMemoryPending() *memoryPending {
	return &memoryPending{envelopes: make(map[string][]diffsync.VersionedPatch)}
}

func (m *memoryPending) Append(_ context.Context, resource string, envelope diffsync.VersionedPatch) error {
	list := slices.DeleteFunc(m.envelopes[resource], func(v diffsync.VersionedPatch) bool {
		return v.ServerVersion == envelope.ServerVersion
	})
	list = append(list, envelope)
	slices.SortFunc(list, func(a, b diffsync.VersionedPatch) int { return cmp.Compare(a.ServerVersion, b.ServerVersion) })
	m.envelopes[resource] = list
	return nil
}

func (m *memoryPending) List(_ context.Context, resource string) ([]diffsync.VersionedPatch, error) {
	return append([]diffsync.VersionedPatch(nil), m.envelopes[resource]...), nil
}

func (m *memoryPending) Acknowledge(_ context.Context, resource string, upTo int64) error {
	m.envelopes[resource] = slices.DeleteFunc(m.envelopes[resource], func(v diffsync.VersionedPatch) bool {
		return v.ServerVersion < upTo
	})
	return nil
}

func (m *memoryPending) Clear(_ context.Context, resource string) error {
	delete(m.envelopes, resource)
	return nil
}

type memoryCredentials struct {
	saved *models.Credentials
}

func (m *memoryCredentials) Save(_ context.Context, credentials models.Credentials) error {
	m.saved = &credentials
	return nil
}

func (m *memoryCredentials) Get(context.Context) (models.Credentials, error) {
	if m.saved == nil {
		return models.Credentials{}, store.ErrCredentialsNotFound
	}
	return *m.saved, nil
}

var errDropped = errors.New("connection reset by peer")

// loopback передаёт запросы клиента серверному SyncService через JSON,
// как это делает настоящий транспорт
type loopback struct {
	server SyncService
	name   string

	nodes  int
	nodeID string
	token  string

	dropResponses  int
	rejectToken    int
	fetches, syncs int
}

func (l *loopback) SetToken(token string) { l.token = token }
func (l *loopback) Token() string         { return l.token }

func (l *loopback) RegisterNode(context.Context) (models.Credentials, error) {
	l.nodes++
	l.nodeID = fmt.Sprintf("%s-%d", l.name, l.nodes)
	return models.Credentials{NodeID: l.nodeID, Token: "token-" + l.nodeID}, nil
}

func (l *loopback) Fetch(ctx context.Context, resource string, out any) error {
	l.fetches++

	items, err := l.server.Fetch(ctx, l.nodeID, resource)
	if err != nil {
		return wireError(err)
	}
	body, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (l *loopback) Sync(ctx context.Context, resource string, envelopes []diffsync.VersionedPatch) (diffsync.VersionedPatch, error) {
	l.syncs++

	if l.rejectToken > 0 {
		l.rejectToken--
		return diffsync.VersionedPatch{}, fmt.Errorf("%w: token is expired or invalid", adapter.ErrUnauthorized)
	}

	body, err := json.Marshal(envelopes)
	if err != nil {
		return diffsync.VersionedPatch{}, err
	}
	var wire []diffsync.VersionedPatch
	if err = json.Unmarshal(body, &wire); err != nil {
		return diffsync.VersionedPatch{}, err
	}

	patches := make([]diffsync.Patch, 0, len(wire))
	for _, envelope := range wire {
		patches = append(patches, envelope)
	}

	response, err := l.server.SyncList(ctx, l.nodeID, resource, patches)
	if err != nil {
		return diffsync.VersionedPatch{}, wireError(err)
	}

	if l.dropResponses > 0 {
		l.dropResponses--
		return diffsync.VersionedPatch{}, errDropped
	}

	if body, err = json.Marshal(response); err != nil {
		return diffsync.VersionedPatch{}, err
	}
	var out diffsync.VersionedPatch
	err = json.Unmarshal(body, &out)
	return out, err
}

func (l *loopback) GetServerVersion(context.Context) (string, error) { return "v-test", nil }

func wireError(err error) error {
	switch {
	case errors.Is(err, ErrPatchConflict), errors.Is(err, ErrShadowMissing):
		return fmt.Errorf("%w: %s", adapter.ErrConflict, err)
	case errors.Is(err, ErrUnknownResource):
		return fmt.Errorf("%w: %s", adapter.ErrNotFound, err)
	}
	return err
}

type testClient struct {
	todos   *localTodos
	pending *memoryPending
	shadows diffsync.ShadowStore
	wire    *loopback
	auth    ClientAuthService
	svc     ClientSyncService
	edit    ClientTodoService
}

func newTestClient(t *testing.T, server SyncService, name string) *testClient {
	t.Helper()

	var mu sync.Mutex
	c := &testClient{
		todos:   &localTodos{},
		pending: newMemoryPending(),
		shadows: store.NewMemoryShadowStore(),
		wire:    &loopback{server: server, name: name},
	}
	c.auth = NewClientAuthService(&memoryCredentials{}, c.wire, logger.Nop())
	_, err := c.auth.EnsureRegistered(context.Background())
	require.NoError(t, err)

	c.svc = NewClientSyncService(c.todos, c.pending, c.shadows, c.wire, c.auth, &mu, logger.Nop())
	c.edit = NewClientTodoService(c.todos, &mu)
	return c
}

func newTestServer(t *testing.T, repo store.TodoRepository) SyncService {
	t.Helper()
	return newTestSyncService(t, repo, store.NewMemoryShadowStore())
}

// ─────────────────────────────────────────────────────────────────────────────
// Sync against a server
// ─────────────────────────────────────────────────────────────────────────────

func TestClientSyncService_TwoClientsConverge(t *testing.T) {
	ctx := context.Background()
	repo := newServerTodos()
	server := newTestServer(t, repo)

	a := newTestClient(t, server, "a")
	b := newTestClient(t, server, "b")

	_, err := a.edit.Add(ctx, "milk")
	require.NoError(t, err)
	require.NoError(t, a.svc.Sync(ctx))

	// сервер назначил id, и он вернулся клиенту
	assert.Equal(t, []models.Todo{{ID: 1, Description: "milk"}}, a.todos.items)

	require.NoError(t, b.svc.Sync(ctx))
	assert.Equal(t, []models.Todo{{ID: 1, Description: "milk"}}, b.todos.items)

	_, err = b.edit.Toggle(ctx, 0)
	require.NoError(t, err)
	_, err = b.edit.Add(ctx, "eggs")
	require.NoError(t, err)
	require.NoError(t, b.svc.Sync(ctx))

	require.NoError(t, a.svc.Sync(ctx))

	want := []models.Todo{
		{ID: 1, Description: "milk", Complete: true},
		{ID: 2, Description: "eggs"},
	}
	assert.Equal(t, want, a.todos.items)
	assert.Equal(t, want, b.todos.items)

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stored)

	assert.Equal(t, 1, a.wire.fetches, "fetch only once")
	assert.Empty(t, a.pending.envelopes["todos"], "everything acknowledged")
}

func TestClientSyncService_LostResponseIsNotDuplicated(t *testing.T) {
	ctx := context.Background()
	repo := newServerTodos()
	a := newTestClient(t, newTestServer(t, repo), "a")

	_, err := a.edit.Add(ctx, "eggs")
	require.NoError(t, err)

	a.wire.dropResponses = 1
	err = a.svc.Sync(ctx)
	require.ErrorIs(t, err, errDropped)
	require.Len(t, a.pending.envelopes["todos"], 1)

	require.NoError(t, a.svc.Sync(ctx))

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Todo{{ID: 1, Description: "eggs"}}, stored)
	assert.Equal(t, stored, a.todos.items)
	assert.Empty(t, a.pending.envelopes["todos"])
	assert.Equal(t, 1, a.wire.fetches)
}

func TestClientSyncService_ServerLostShadows(t *testing.T) {
	ctx := context.Background()
	repo := newServerTodos()
	a := newTestClient(t, newTestServer(t, repo), "a")

	_, err := a.edit.Add(ctx, "milk")
	require.NoError(t, err)
	require.NoError(t, a.svc.Sync(ctx))
	require.NoError(t, a.svc.Sync(ctx))

	// перезапуск сервера с хранилищем теней в памяти
	a.wire.server = newTestServer(t, repo)

	_, err = a.edit.Add(ctx, "bread")
	require.NoError(t, err)
	require.NoError(t, a.svc.Sync(ctx))

	want := []models.Todo{{ID: 1, Description: "milk"}, {ID: 2, Description: "bread"}}
	assert.Equal(t, want, a.todos.items)

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stored)
	assert.Equal(t, 2, a.wire.fetches)
}

func TestClientSyncService_RejectedTokenRegistersAgain(t *testing.T) {
	ctx := context.Background()
	repo := newServerTodos()
	a := newTestClient(t, newTestServer(t, repo), "a")
	require.Equal(t, "a-1", a.wire.nodeID)

	require.NoError(t, a.svc.Sync(ctx))

	_, err := a.edit.Add(ctx, "tea")
	require.NoError(t, err)

	a.wire.rejectToken = 1
	require.NoError(t, a.svc.Sync(ctx))

	assert.Equal(t, "a-2", a.wire.nodeID)
	assert.Equal(t, "token-a-2", a.wire.Token())
	assert.Equal(t, []models.Todo{{ID: 1, Description: "tea"}}, a.todos.items)
}

func TestClientSyncService_ServerVersion(t *testing.T) {
	a := newTestClient(t, newTestServer(t, newServerTodos()), "a")

	got, err := a.svc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v-test", got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sync errors
// ─────────────────────────────────────────────────────────────────────────────

func TestClientSyncService_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, a *mock.MockServerAdapter)
		want  error
	}{
		{
			name: "fetch unknown resource",
			setup: func(ctx context.Context, a *mock.MockServerAdapter) {
				a.EXPECT().Fetch(ctx, "todos", gomock.Any()).Return(fmt.Errorf("%w: unknown resource", adapter.ErrNotFound))
			},
			want: ErrUnknownResource,
		},
		{
			name: "server down",
			setup: func(ctx context.Context, a *mock.MockServerAdapter) {
				a.EXPECT().Fetch(ctx, "todos", gomock.Any()).Return(nil)
				a.EXPECT().Sync(ctx, "todos", gomock.Any()).Return(diffsync.VersionedPatch{}, adapter.ErrBadGateway)
			},
			want: ErrServerUnavailable,
		},
		{
			name: "conflict after fetch",
			setup: func(ctx context.Context, a *mock.MockServerAdapter) {
				a.EXPECT().Fetch(ctx, "todos", gomock.Any()).Return(nil).Times(2)
				a.EXPECT().Sync(ctx, "todos", gomock.Any()).Return(diffsync.VersionedPatch{}, adapter.ErrConflict).Times(2)
			},
			want: ErrPatchConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			ctx := context.Background()
			tt.setup(ctx, serverAdapter)

			var mu sync.Mutex
			svc := NewClientSyncService(&localTodos{}, newMemoryPending(), store.NewMemoryShadowStore(),
				serverAdapter, NewClientAuthService(&memoryCredentials{}, serverAdapter, logger.Nop()), &mu, logger.Nop())

			assert.ErrorIs(t, svc.Sync(ctx), tt.want)
		})
	}
}

func TestClientSyncService_SendsMirroredEnvelopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	todos := &localTodos{items: []models.Todo{{Description: "milk"}}}
	pending := newMemoryPending()
	shadows := store.NewMemoryShadowStore()

	engine := diffsync.New[[]models.Todo](shadows)
	require.NoError(t, engine.Reset(ctx, []models.Todo{}))

	serverAdapter.EXPECT().Sync(ctx, "todos", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, envelopes []diffsync.VersionedPatch) (diffsync.VersionedPatch, error) {
			require.Len(t, envelopes, 1)
			assert.Equal(t, 1, envelopes[0].Patch.Size())
			// ответ сервера в его системе отсчёта: он получил один патч
			return diffsync.VersionedPatch{ServerVersion: 0, ClientVersion: 1}, nil
		})

	var mu sync.Mutex
	svc := NewClientSyncService(todos, pending, shadows, serverAdapter, nil, &mu, logger.Nop())
	require.NoError(t, svc.Sync(ctx))

	shadow, err := engine.Shadow(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), shadow.ServerVersion)
	assert.Equal(t, int64(1), shadow.ClientVersion)
	assert.Empty(t, pending.envelopes["todos"])
}

func TestClientSyncService_Status(t *testing.T) {
	ctx := context.Background()
	a := newTestClient(t, newTestServer(t, newServerTodos()), "a")

	status, err := a.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncStatus{Unsynced: true}, status, "до первой загрузки")

	_, err = a.edit.Add(ctx, "milk")
	require.NoError(t, err)
	require.NoError(t, a.svc.Sync(ctx))

	status, err = a.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncStatus{Initialized: true, ServerVersion: 1, ClientVersion: 1}, status)

	_, err = a.edit.Toggle(ctx, 0)
	require.NoError(t, err)

	status, err = a.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Unsynced, "локальная правка")
	assert.Zero(t, status.Pending)

	// тень уже продвинулась, но ответ потерян: патч ждёт подтверждения
	a.wire.dropResponses = 1
	require.ErrorIs(t, a.svc.Sync(ctx), errDropped)

	status, err = a.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Unsynced)
	assert.Equal(t, 1, status.Pending)

	require.NoError(t, a.svc.Sync(ctx))

	status, err = a.svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Unsynced)
	assert.Zero(t, status.Pending)
}

// ─────────────────────────────────────────────────────────────────────────────
// mapAdapterError
// ─────────────────────────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{in: adapter.ErrUnauthorized, want: ErrTokenIsExpiredOrInvalid},
		{in: adapter.ErrMissingToken, want: ErrTokenIsExpiredOrInvalid},
		{in: adapter.ErrConflict, want: ErrPatchConflict},
		{in: adapter.ErrNotFound, want: ErrUnknownResource},
		{in: adapter.ErrBadGateway, want: ErrServerUnavailable},
		{in: adapter.ErrInternalServerError, want: ErrServerUnavailable},
		{in: adapter.ErrBadRequest, want: ErrSyncWithServer},
		{in: adapter.ErrInvalidResponseHash, want: ErrSyncWithServer},
	}

	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			got := mapAdapterError(fmt.Errorf("%w: details", tt.in))
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	assert.Equal(t, errDropped, mapAdapterError(errDropped))
}
