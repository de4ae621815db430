package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatbox-lab/auth"
	"chatbox-lab/domain"
	"chatbox-lab/errors"
	"chatbox-lab/keymutex"
	"chatbox-lab/mocks"
)

func newAuthServiceForTest(repo *mocks.MockIUserRepository) *AuthService {
	issuer := auth.NewTokenIssuer([]byte("test-signing-key"), time.Hour)
	return NewAuthService(repo, keymutex.New(16), issuer, slog.Default())
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newAuthServiceForTest(mockRepo)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().NextID().Return(domain.UserID(1), nil).Times(1)
		mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				req.Equal("alice", user.Username)
				// Never the plain password
				req.NotEqual("ComplexPass123!", user.PasswordHash)
				req.Equal([]string{domain.RoleUser}, user.Roles)
				return nil
			}).
			Times(1)

		user, err := svc.Register("alice", "ComplexPass123!", false)

		req.NoError(err)
		req.Equal(domain.UserID(1), user.ID)
		req.False(user.IsAdmin())
	})

	t.Run("should grant admin role when flagged", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().NextID().Return(domain.UserID(2), nil).Times(1)
		mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		user, err := svc.Register("admin", "ComplexPass123!", true)

		req.NoError(err)
		req.True(user.IsAdmin())
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().Create(gomock.Any()).Times(0)

		_, err := svc.Register("alice", "simple", false)

		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should fail when username is already taken", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().NextID().Return(domain.UserID(3), nil).Times(1)
		mockRepo.EXPECT().Create(gomock.Any()).Return(errors.ErrDuplicateUsername).Times(1)

		_, err := svc.Register("alice", "ComplexPass123!", false)

		req.ErrorIs(err, errors.ErrDuplicateUsername)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newAuthServiceForTest(mockRepo)

	hash, err := auth.HashPassword("ComplexPass123!")
	require.NoError(t, err)

	stored := domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
	}

	t.Run("should login, set online and issue a token", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetByUsername("alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().Get(domain.UserID(1)).Return(stored, nil).Times(1)
		mockRepo.EXPECT().
			Store(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				req.True(user.Online)
				return nil
			}).
			Times(1)

		user, token, err := svc.Login("alice", "ComplexPass123!")

		req.NoError(err)
		req.True(user.Online)
		req.NotEmpty(token)
	})

	t.Run("should fail with invalid credentials on wrong password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetByUsername("alice").Return(stored, nil).Times(1)

		_, _, err := svc.Login("alice", "WrongPass123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should fail with invalid credentials on unknown username", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetByUsername("ghost").Return(domain.User{}, errors.ErrNotFound).Times(1)

		_, _, err := svc.Login("ghost", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should refuse a banned user even with valid credentials", func(t *testing.T) {
		req := require.New(t)

		banned := stored
		banned.Banned = true
		mockRepo.EXPECT().GetByUsername("alice").Return(banned, nil).Times(1)

		_, _, err := svc.Login("alice", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrBanned)
	})

	t.Run("should refuse when the ban lands during the login", func(t *testing.T) {
		req := require.New(t)

		// Lookup sees the user unbanned, the locked re-read does not
		banned := stored
		banned.Banned = true
		mockRepo.EXPECT().GetByUsername("alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().Get(domain.UserID(1)).Return(banned, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).Times(0)

		_, _, err := svc.Login("alice", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrBanned)
	})
}

func TestAuthService_Resume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newAuthServiceForTest(mockRepo)

	hash, err := auth.HashPassword("ComplexPass123!")
	require.NoError(t, err)
	stored := domain.User{ID: 1, Username: "alice", PasswordHash: hash, Roles: []string{domain.RoleUser}}

	t.Run("should resume from a token issued at login", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetByUsername("alice").Return(stored, nil).Times(1)
		mockRepo.EXPECT().Get(domain.UserID(1)).Return(stored, nil).Times(2)
		mockRepo.EXPECT().Store(gomock.Any()).Return(nil).Times(2)

		_, token, err := svc.Login("alice", "ComplexPass123!")
		req.NoError(err)

		user, err := svc.Resume(token)
		req.NoError(err)
		req.Equal(domain.UserID(1), user.ID)
		req.True(user.Online)
	})

	t.Run("should reject a garbage token", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Resume("not-a-jwt")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newAuthServiceForTest(mockRepo)

	t.Run("should clear the online flag", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Online: true}, nil).Times(1)
		mockRepo.EXPECT().
			Store(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				req.False(user.Online)
				return nil
			}).
			Times(1)

		req.NoError(svc.Logout(1))
	})

	t.Run("should be a no-op when already offline", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Online: false}, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).Times(0)

		req.NoError(svc.Logout(1))
	})

	t.Run("should be a no-op for an unknown user", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(42)).
			Return(domain.User{}, errors.ErrNotFound).Times(1)

		req.NoError(svc.Logout(42))
	})
}

func TestAuthService_BanUnban(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := newAuthServiceForTest(mockRepo)

	t.Run("should ban then unban restoring the original state", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Banned: false}, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				req.True(user.Banned)
				return nil
			}).Times(1)
		req.NoError(svc.Ban(1))

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Banned: true}, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				req.False(user.Banned)
				return nil
			}).Times(1)
		req.NoError(svc.Unban(1))
	})

	t.Run("should fail NOOP when unbanning a user who is not banned", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Banned: false}, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(svc.Unban(1), errors.ErrNoop)
	})

	t.Run("should fail NOOP when banning an already banned user", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get(domain.UserID(1)).
			Return(domain.User{ID: 1, Banned: true}, nil).Times(1)
		mockRepo.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(svc.Ban(1), errors.ErrNoop)
	})
}
