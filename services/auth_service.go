//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chatbox-lab/auth"
	"chatbox-lab/contract"
	"chatbox-lab/domain"
	"chatbox-lab/errors"
	"chatbox-lab/keymutex"
)

type IAuthService interface {
	Register(username, password string, isAdmin bool) (domain.User, error)
	Login(username, password string) (domain.User, string, error)
	Resume(token string) (domain.User, error)
	Logout(userID domain.UserID) error
	ResetPassword(userID domain.UserID, newPassword string) error
	Ban(userID domain.UserID) error
	Unban(userID domain.UserID) error
	DeleteUser(userID domain.UserID) error
	Get(userID domain.UserID) (domain.User, error)
	ListUsers() ([]domain.User, error)
}

// AuthService owns the user aggregates: registration, credential checks,
// online/banned state and the admin-side user mutations. Every mutation
// of one user record is serialized with its persistence write under a
// per-user-id locker.
type AuthService struct {
	users  contract.IUserRepository
	locks  keymutex.KeyMutex
	tokens *auth.TokenIssuer
	log    *slog.Logger
}

func NewAuthService(users contract.IUserRepository, locks keymutex.KeyMutex,
	tokens *auth.TokenIssuer, log *slog.Logger) *AuthService {
	return &AuthService{users: users, locks: locks, tokens: tokens, log: log}
}

func (s *AuthService) Register(username, password string, isAdmin bool) (domain.User, error) {
	valReq := auth.RegisterRequest{
		Username: username,
		Password: password,
	}

	// Business rules first, before any expensive cryptographic work
	if err := auth.ValidateRegister(valReq); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing failed: %w", err)
	}

	id, err := s.users.NextID()
	if err != nil {
		return domain.User{}, err
	}

	roles := []string{domain.RoleUser}
	if isAdmin {
		roles = append(roles, domain.RoleAdmin)
	}
	user := domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}

	// Create is transactional: a concurrent registration of the same
	// username loses with ErrDuplicateUsername
	if err := s.users.Create(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login validates credentials, flips the online flag and issues a resume
// token. The user record is persisted before success is reported.
func (s *AuthService) Login(username, password string) (domain.User, string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return domain.User{}, "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return domain.User{}, "", errors.ErrInvalidCredentials
	}

	if user.Banned {
		return domain.User{}, "", errors.ErrBanned
	}

	locker := s.locks.Get(int64(user.ID))
	locker.Lock()
	defer locker.Unlock()

	user, err = s.users.Get(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	// A ban landing between the unlocked lookup and here must still
	// refuse the login.
	if user.Banned {
		return domain.User{}, "", errors.ErrBanned
	}
	user.Online = true
	if err := s.users.Store(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Roles)
	if err != nil {
		return domain.User{}, "", errors.ErrTokenGeneration
	}
	return user, token, nil
}

// Resume re-authenticates a fresh connection from a token issued at
// login time.
func (s *AuthService) Resume(token string) (domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return domain.User{}, errors.ErrInvalidCredentials
	}

	locker := s.locks.Get(int64(claims.UserID))
	locker.Lock()
	defer locker.Unlock()

	user, err := s.users.Get(claims.UserID)
	if err != nil {
		return domain.User{}, errors.ErrInvalidCredentials
	}
	if user.Banned {
		return domain.User{}, errors.ErrBanned
	}
	user.Online = true
	if err := s.users.Store(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Logout clears the online flag. Logging out an already-offline user is
// a no-op, not an error.
func (s *AuthService) Logout(userID domain.UserID) error {
	locker := s.locks.Get(int64(userID))
	locker.Lock()
	defer locker.Unlock()

	user, err := s.users.Get(userID)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil
		}
		return err
	}
	if !user.Online {
		return nil
	}
	user.Online = false
	return s.users.Store(user)
}

func (s *AuthService) ResetPassword(userID domain.UserID, newPassword string) error {
	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	locker := s.locks.Get(int64(userID))
	locker.Lock()
	defer locker.Unlock()

	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}
	user.PasswordHash = hashedPassword
	return s.users.Store(user)
}

func (s *AuthService) Ban(userID domain.UserID) error {
	return s.setBanned(userID, true)
}

// Unban on an already-unbanned user fails with ErrNoop and changes
// nothing.
func (s *AuthService) Unban(userID domain.UserID) error {
	return s.setBanned(userID, false)
}

func (s *AuthService) setBanned(userID domain.UserID, banned bool) error {
	locker := s.locks.Get(int64(userID))
	locker.Lock()
	defer locker.Unlock()

	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}
	if user.Banned == banned {
		return errors.ErrNoop
	}
	user.Banned = banned
	return s.users.Store(user)
}

// DeleteUser removes the record. Chatboxes keep referencing the id;
// readers tolerate the dangling reference.
func (s *AuthService) DeleteUser(userID domain.UserID) error {
	locker := s.locks.Get(int64(userID))
	locker.Lock()
	defer locker.Unlock()

	return s.users.Delete(userID)
}

func (s *AuthService) Get(userID domain.UserID) (domain.User, error) {
	return s.users.Get(userID)
}

func (s *AuthService) ListUsers() ([]domain.User, error) {
	return s.users.List()
}
