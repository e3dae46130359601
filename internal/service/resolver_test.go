package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachtlabs/git-nacht/internal/domain"
	"github.com/nachtlabs/git-nacht/internal/port"
)

// fakeProjectStore records calls and simulates the URL-keyed get-or-create.
type fakeProjectStore struct {
	projects   map[string]*domain.Project
	nextID     int64
	findCalls  int
	createdNum int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]*domain.Project{}, nextID: 10}
}

func (f *fakeProjectStore) FindProjectByURL(_ context.Context, url string, _ int64) (*domain.Project, error) {
	f.findCalls++
	if p, ok := f.projects[url]; ok {
		return p, nil
	}
	return nil, port.ErrProjectNotFound
}

func (f *fakeProjectStore) CreateProject(_ context.Context, p *domain.Project) (*domain.Project, error) {
	f.createdNum++
	created := *p
	created.ID = f.nextID
	f.nextID++
	f.projects[p.RepositoryURL] = &created
	return &created, nil
}

func TestResolveEmptyURLUsesDefaultWithoutStoreAccess(t *testing.T) {
	store := newFakeProjectStore()
	resolver := NewProjectResolver(store, 1, 1)

	id, err := resolver.Resolve(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Zero(t, store.findCalls)
	assert.Zero(t, store.createdNum)
}

func TestResolveCreatesProjectOnFirstSight(t *testing.T) {
	store := newFakeProjectStore()
	resolver := NewProjectResolver(store, 1, 1)

	id, err := resolver.Resolve(context.Background(), "git@host:org/myrepo.git", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.Equal(t, 1, store.createdNum)
	assert.Equal(t, "myrepo", store.projects["git@host:org/myrepo.git"].Name)
}

func TestResolveIsIdempotentAfterFirstCreation(t *testing.T) {
	store := newFakeProjectStore()
	resolver := NewProjectResolver(store, 1, 1)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, "https://github.com/org/myrepo.git", nil)
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, "https://github.com/org/myrepo.git", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.createdNum, "second resolve must not insert again")
}

func TestResolveUsesIdentityAsOwner(t *testing.T) {
	store := newFakeProjectStore()
	resolver := NewProjectResolver(store, 1, 1)

	_, err := resolver.Resolve(context.Background(), "https://github.com/org/owned.git", &domain.Identity{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(42), store.projects["https://github.com/org/owned.git"].UserID)
}
