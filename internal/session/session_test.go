package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"examadmin/internal/model"
)

// MockStore is a mock implementation of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestNew_RestoresPersistedToken(t *testing.T) {
	store := new(MockStore)
	store.On("Load", mock.Anything).Return("persisted-token", nil)

	s, err := New(context.Background(), store)

	assert.NoError(t, err)
	assert.Equal(t, "persisted-token", s.Token())
	assert.True(t, s.Authenticated())
	assert.Nil(t, s.User())
	store.AssertExpectations(t)
}

func TestNew_StoreError(t *testing.T) {
	store := new(MockStore)
	store.On("Load", mock.Anything).Return("", errors.New("disk gone"))

	s, err := New(context.Background(), store)

	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s, err := New(ctx, store)
	assert.NoError(t, err)
	assert.False(t, s.Authenticated())

	admin := &model.User{ID: "1", Name: "Admin", Role: model.RoleAdmin}
	assert.NoError(t, s.Login(ctx, "abc", admin))
	assert.Equal(t, "abc", s.Token())
	assert.Equal(t, "Admin", s.User().Name)

	persisted, _ := store.Load(ctx)
	assert.Equal(t, "abc", persisted)

	assert.NoError(t, s.Logout(ctx))
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	persisted, _ = store.Load(ctx)
	assert.Empty(t, persisted)
}

func TestLogin_StoreFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("Load", mock.Anything).Return("old", nil)
	store.On("Save", mock.Anything, "new").Return(errors.New("read-only"))

	s, _ := New(ctx, store)
	err := s.Login(ctx, "new", &model.User{Role: model.RoleAdmin})

	assert.Error(t, err)
	assert.Equal(t, "old", s.Token())
	store.AssertExpectations(t)
}

func TestNilSessionToken(t *testing.T) {
	var s *Session
	assert.Empty(t, s.Token())
}
