package services

import (
	"errors"
	"testing"

	"points-ledger/app/hash"
	"points-ledger/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byUsername map[string]*models.User
	byEmail    map[string]*models.User
	created    []*models.User

	findErr   error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*models.User{}, byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	return f.byUsername[username] != nil || f.byEmail[email] != nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uint(len(f.created) + 1)
	f.byUsername[u.Username] = u
	f.byEmail[u.Email] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) add(t *testing.T, username, password, email, role string, active bool) *models.User {
	t.Helper()
	h, err := hash.SHA256{}.Hash(password)
	require.NoError(t, err)
	u := &models.User{Username: username, PasswordHash: h, Email: email, Role: role, IsActive: active}
	require.NoError(t, f.Create(u))
	return u
}

func TestValidateCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "alice", "pw1", "alice@example.com", models.RoleUser, true)
	svc := NewUserService(repo, hash.SHA256{})

	u, err := svc.ValidateCredentials("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.ValidateCredentials("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ValidateCredentials("nobody", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentialsInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "ghost", "pw1", "ghost@example.com", models.RoleUser, false)
	svc := NewUserService(repo, hash.SHA256{})

	_, err := svc.ValidateCredentials("ghost", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterAlwaysAssignsUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, hash.SHA256{})

	u, err := svc.Register("mallory", "pw", "mallory@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.True(t, u.IsActive)
}

func TestRegisterConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "alice", "pw1", "alice@example.com", models.RoleUser, true)
	svc := NewUserService(repo, hash.SHA256{})

	// same username, different email
	_, err := svc.Register("alice", "pw", "other@example.com")
	assert.ErrorIs(t, err, ErrConflict)

	// same email, different username
	_, err = svc.Register("alice2", "pw", "alice@example.com")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, hash.SHA256{})

	u, err := svc.Register("bob", "pw", "bob@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.True(t, hash.SHA256{}.Verify("pw", u.PasswordHash))
}

func TestEnsureAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, hash.SHA256{})

	require.NoError(t, svc.EnsureAdmin("admin", "admin123"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.RoleAdmin, repo.created[0].Role)

	// second call is a no-op
	require.NoError(t, svc.EnsureAdmin("admin", "admin123"))
	assert.Len(t, repo.created, 1)
}

func TestValidateCredentialsRepoFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("db down")
	svc := NewUserService(repo, hash.SHA256{})

	_, err := svc.ValidateCredentials("alice", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
