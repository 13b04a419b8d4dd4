package service

import (
	"testing"

	"bloodlink/internal/models"
	"bloodlink/internal/password"
	"bloodlink/internal/repository"
	"bloodlink/internal/token"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users  []*models.User
	nextID int64
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(id int64, passwordHash string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrNotFound
}

func newAuthFixture() (AuthService, *fakeUserRepo, *token.Manager) {
	repo := &fakeUserRepo{}
	tokens := token.NewManager("test-secret")
	return NewAuthService(repo, tokens, zap.NewNop()), repo, tokens
}

func TestRegisterForcesUserRole(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	user, err := svc.Register("A", "a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.Len(t, repo.users, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	_, err := svc.Register("A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register("B", "a@x.com", "different")
	require.ErrorIs(t, err, ErrEmailExists)
	require.Len(t, repo.users, 1)
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register("A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, errUnknown := svc.Login("nobody@x.com", "secret1")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)

	_, _, errWrongPassword := svc.Login("a@x.com", "wrong")
	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)

	// Same sentinel for both: no user enumeration through error shape.
	require.Equal(t, errUnknown, errWrongPassword)
}

func TestLoginIssuesTokenWithIdentity(t *testing.T) {
	svc, _, tokens := newAuthFixture()

	registered, err := svc.Register("A", "a@x.com", "secret1")
	require.NoError(t, err)

	signed, user, err := svc.Login("a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.ID)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginAdminRoleInToken(t *testing.T) {
	svc, repo, tokens := newAuthFixture()

	hash, err := password.Hash("Admin123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.User{
		Name:         "Administrator",
		Email:        "admin@gmail.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}))

	signed, _, err := svc.Login("admin@gmail.com", "Admin123")
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, claims.Role)
}
