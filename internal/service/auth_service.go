package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// UserStore is the slice of the persistence gateway the auth service needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Auth resolves credentials to a user identity against the shared store.
type Auth struct {
	store  UserStore
	hasher port.PasswordHasher
}

// NewAuth creates an authentication service.
func NewAuth(store UserStore, hasher port.PasswordHasher) *Auth {
	return &Auth{store: store, hasher: hasher}
}

// Login verifies credentials and returns the authenticated identity.
// An unknown email reports the same ErrAuthFailure as a bad password.
func (a *Auth) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return nil, port.ErrAuthFailure
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := a.hasher.Verify(user.PasswordHash, user.PasswordAlgo, password); err != nil {
		return nil, err
	}

	return &domain.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Register creates a user with a freshly hashed credential and the explicit
// algorithm tag stored alongside it.
func (a *Auth) Register(ctx context.Context, email, name, password, role string) (*domain.User, error) {
	hash, algo, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return a.store.CreateUser(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		PasswordAlgo: algo,
		Role:         role,
	})
}
