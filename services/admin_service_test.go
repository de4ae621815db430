package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
	"chatbox-lab/mocks"
	"chatbox-lab/protocol/response"
)

func TestAdminService_SendSystemMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockIAuthService(ctrl)
	mockChats := mocks.NewMockIChatService(ctrl)
	mockUsers := mocks.NewMockIUserRepository(ctrl)
	mockRegistry := mocks.NewMockISessionRegistry(ctrl)
	svc := NewAdminService(mockAuth, mockChats, mockUsers, mockRegistry, slog.Default())

	t.Run("should notify connected users only and survive a dropped sink", func(t *testing.T) {
		req := require.New(t)

		mockUsers.EXPECT().List().Return([]domain.User{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "bob"},
			{ID: 3, Username: "carol"},
		}, nil).Times(1)

		healthy := mocks.NewMockResponseSink(ctrl)
		healthy.EXPECT().
			Consume(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r response.Response) error {
				notification, ok := r.(response.Notification)
				req.True(ok)
				req.Equal("maintenance at noon", notification.Text)
				return nil
			}).
			Times(1)
		full := mocks.NewMockResponseSink(ctrl)
		full.EXPECT().Consume(gomock.Any(), gomock.Any()).
			Return(errors.ErrSessionClosed).Times(1)

		mockRegistry.EXPECT().Sink(domain.UserID(1)).Return(healthy, true).Times(1)
		mockRegistry.EXPECT().Sink(domain.UserID(2)).Return(full, true).Times(1)
		mockRegistry.EXPECT().Sink(domain.UserID(3)).Return(nil, false).Times(1)

		err := svc.SendSystemMessage(context.Background(), "maintenance at noon")

		req.NoError(err)
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockIAuthService(ctrl)
	mockChats := mocks.NewMockIChatService(ctrl)
	mockUsers := mocks.NewMockIUserRepository(ctrl)
	mockRegistry := mocks.NewMockISessionRegistry(ctrl)
	svc := NewAdminService(mockAuth, mockChats, mockUsers, mockRegistry, slog.Default())

	t.Run("should delete the account and detach any live session", func(t *testing.T) {
		req := require.New(t)

		mockAuth.EXPECT().DeleteUser(domain.UserID(1)).Return(nil).Times(1)
		mockRegistry.EXPECT().Detach(domain.UserID(1)).Times(1)

		req.NoError(svc.DeleteUser(1))
	})

	t.Run("should keep the session when deletion fails", func(t *testing.T) {
		req := require.New(t)

		mockAuth.EXPECT().DeleteUser(domain.UserID(42)).Return(errors.ErrNotFound).Times(1)
		mockRegistry.EXPECT().Detach(gomock.Any()).Times(0)

		req.ErrorIs(svc.DeleteUser(42), errors.ErrNotFound)
	})
}
