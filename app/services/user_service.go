package services

import (
	"errors"

	"points-ledger/app/hash"
	"points-ledger/app/models"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown username,
	// wrong password, deactivated account. Callers must not reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict signals a duplicate username or email at registration.
	ErrConflict = errors.New("username or email already taken")
)

// UserRepo is the slice of the credential store the service needs.
type UserRepo interface {
	FindByUsername(username string) (*models.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Create(u *models.User) error
}

type UserService struct {
	users  UserRepo
	hasher hash.Hasher
}

func NewUserService(users UserRepo, hasher hash.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// EnsureAdmin seeds the bootstrap admin account once.
func (s *UserService) EnsureAdmin(username, password string) error {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return err
	}
	if u != nil {
		return nil
	}
	h, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username:     username,
		PasswordHash: h,
		Email:        username + "@localhost",
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
}

// Register creates a regular account. The role is always "user" no matter
// what the caller sends.
func (s *UserService) Register(username, password, email string) (*models.User, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}
	h, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		PasswordHash: h,
		Email:        email,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateCredentials returns the user for a correct, active login and
// ErrInvalidCredentials for everything else.
func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
