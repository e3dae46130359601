package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachtlabs/git-nacht/internal/adapter/auth"
	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, port.ErrUserNotFound
}

func (f *fakeUserStore) CreateUser(_ context.Context, u *domain.User) (*domain.User, error) {
	created := *u
	created.ID = f.nextID
	f.nextID++
	f.users[u.Email] = &created
	return &created, nil
}

func TestAuthLoginRoundTrip(t *testing.T) {
	store := newFakeUserStore()
	authSvc := NewAuth(store, auth.NewBcryptHasher())
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "dev@example.com", "Dev", "hunter2", "user")
	require.NoError(t, err)
	assert.Equal(t, "bcrypt", user.PasswordAlgo)

	identity, err := authSvc.Login(ctx, "dev@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "dev@example.com", identity.Email)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	authSvc := NewAuth(store, auth.NewBcryptHasher())
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "dev@example.com", "Dev", "hunter2", "user")
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, "dev@example.com", "wrong")
	assert.ErrorIs(t, err, port.ErrAuthFailure)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	authSvc := NewAuth(newFakeUserStore(), auth.NewBcryptHasher())

	_, err := authSvc.Login(context.Background(), "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, port.ErrAuthFailure, "unknown email reports the same failure as a bad password")
}
