package repository

import (
	"context"
	"testing"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	users     map[uint]*model.User
	findCalls int
}

func (s *stubUserRepo) Create(_ context.Context, u *model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	s.findCalls++
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := s.FindByUsername(ctx, username)
	return u != nil, err
}

func (s *stubUserRepo) List(_ context.Context, _ UserFilter, p pagination.Params) (*pagination.Page[model.User], error) {
	return pagination.NewPage[model.User](nil, 0, p.Normalize()), nil
}

func (s *stubUserRepo) Update(_ context.Context, id uint, _ UserPatch) (*model.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) Delete(_ context.Context, id uint) error {
	delete(s.users, id)
	return nil
}

// A cache-hit read carries no credential material; only the store-backed
// username lookup can serve a password check.
func TestCachedUserFindByIDSnapshotIsCredentialFree(t *testing.T) {
	ctx := context.Background()
	u := &model.User{ID: 1, Username: "mgarcia", Role: model.RoleUser}
	require.NoError(t, u.SetPassword("Sup3r$ecret!"))

	stub := &stubUserRepo{users: map[uint]*model.User{1: u}}
	repo := NewCachedUserRepo(stub, cache.NewMemory(), zap.NewNop())

	first, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, first.PasswordHash, "store read keeps the hash")
	assert.Equal(t, 1, stub.findCalls)

	cached, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.findCalls, "second read is a cache hit")
	assert.Empty(t, cached.PasswordHash)
	assert.False(t, cached.CheckPassword("Sup3r$ecret!"))

	byName, err := repo.FindByUsername(ctx, "mgarcia")
	require.NoError(t, err)
	assert.True(t, byName.CheckPassword("Sup3r$ecret!"))
}
