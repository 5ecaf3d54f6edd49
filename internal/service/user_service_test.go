package service

import (
	"context"
	"testing"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := m.FindByUsername(ctx, username)
	return u != nil, err
}

func (m *mockUserRepo) List(_ context.Context, _ repository.UserFilter, p pagination.Params) (*pagination.Page[model.User], error) {
	return pagination.NewPage[model.User](nil, 0, p.Normalize()), nil
}

func (m *mockUserRepo) Update(_ context.Context, id uint, patch repository.UserPatch) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.EmployeeID != nil {
		u.EmployeeID = patch.EmployeeID
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

func validCreate() CreateUserInput {
	return CreateUserInput{Username: "mgarcia", Password: "Sup3r$ecret!", Role: model.RoleUser}
}

func TestCreateUserPasswordPolicy(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"all classes present", "Sup3r$ecret!", true},
		{"too short", "Ab1$xyz", false},
		{"missing upper", "sup3r$ecret!", false},
		{"missing lower", "SUP3R$ECRET!", false},
		{"missing digit", "Super$ecret!", false},
		{"missing special", "Sup3rSecret9", false},
		{"exactly ten chars", "Abcdef12$x", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewUserService(newMockUserRepo())
			in := validCreate()
			in.Password = tc.password
			u, err := svc.Create(context.Background(), in)
			if tc.wantOK {
				require.NoError(t, err)
				assert.NotEmpty(t, u.PasswordHash)
				return
			}
			require.Error(t, err)
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
		})
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newMockUserRepo())
	in := validCreate()
	u, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, in.Password, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreate())
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "username already exists", appErr.Message)
}

func TestCreateUserInvalidRole(t *testing.T) {
	svc := NewUserService(newMockUserRepo())
	in := validCreate()
	in.Role = "superadmin"
	_, err := svc.Create(context.Background(), in)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestUpdateUserUsernameUniqueness(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateUserInput{Username: "jperez", Password: "Sup3r$ecret!", Role: model.RoleAdmin})
	require.NoError(t, err)

	// Taking an existing name is rejected.
	taken := first.Username
	_, err = svc.Update(ctx, second.ID, UpdateUserInput{Username: &taken})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)

	// Re-submitting your own name is not a conflict.
	own := second.Username
	u, err := svc.Update(ctx, second.ID, UpdateUserInput{Username: &own})
	require.NoError(t, err)
	assert.Equal(t, "jperez", u.Username)
}

func TestUpdateUserWeakPasswordRejected(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	weak := "short"
	_, err = svc.Update(ctx, u.ID, UpdateUserInput{Password: &weak})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	oldHash := repo.users[u.ID].PasswordHash

	newPass := "An0ther$ecret!"
	_, err = svc.Update(ctx, u.ID, UpdateUserInput{Password: &newPass})
	require.NoError(t, err)

	newHash := repo.users[u.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(newPass)))
}
