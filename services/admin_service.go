//go:generate go run go.uber.org/mock/mockgen -source=admin_service.go -destination=../mocks/mock_admin_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"chatbox-lab/contract"
	"chatbox-lab/domain"
	"chatbox-lab/protocol/response"
)

type IAdminService interface {
	BanUser(userID domain.UserID) error
	UnbanUser(userID domain.UserID) error
	DeleteUser(userID domain.UserID) error
	ResetPassword(userID domain.UserID, newPassword string) error
	HideChatBox(boxID domain.ChatBoxID) error
	UnhideChatBox(boxID domain.ChatBoxID) error
	HideMessage(boxID domain.ChatBoxID, messageID domain.MessageID) error
	SendSystemMessage(ctx context.Context, text string) error
}

// AdminService is a thin facade over the registry and router operations
// reserved for admins. Authorization is checked at the session boundary;
// a non-admin never reaches these methods.
type AdminService struct {
	auth     IAuthService
	chats    IChatService
	users    contract.IUserRepository
	registry contract.ISessionRegistry
	log      *slog.Logger
}

func NewAdminService(auth IAuthService, chats IChatService, users contract.IUserRepository,
	registry contract.ISessionRegistry, log *slog.Logger) *AdminService {
	return &AdminService{
		auth:     auth,
		chats:    chats,
		users:    users,
		registry: registry,
		log:      log,
	}
}

func (s *AdminService) BanUser(userID domain.UserID) error {
	return s.auth.Ban(userID)
}

func (s *AdminService) UnbanUser(userID domain.UserID) error {
	return s.auth.Unban(userID)
}

// DeleteUser removes the account. Chat logs keep referring to the
// dangling id; no chatbox is touched.
func (s *AdminService) DeleteUser(userID domain.UserID) error {
	if err := s.auth.DeleteUser(userID); err != nil {
		return err
	}
	s.registry.Detach(userID)
	return nil
}

func (s *AdminService) ResetPassword(userID domain.UserID, newPassword string) error {
	return s.auth.ResetPassword(userID, newPassword)
}

func (s *AdminService) HideChatBox(boxID domain.ChatBoxID) error {
	return s.chats.HideChatBox(boxID)
}

func (s *AdminService) UnhideChatBox(boxID domain.ChatBoxID) error {
	return s.chats.UnhideChatBox(boxID)
}

func (s *AdminService) HideMessage(boxID domain.ChatBoxID, messageID domain.MessageID) error {
	return s.chats.HideMessage(boxID, messageID)
}

// SendSystemMessage pushes a broadcast notification to every live
// session, best effort. It traverses connected users only and never
// lands in any chat log.
func (s *AdminService) SendSystemMessage(ctx context.Context, text string) error {
	users, err := s.users.List()
	if err != nil {
		return err
	}

	notification := response.Notification{Text: text}
	delivered := 0
	for _, user := range users {
		sink, ok := s.registry.Sink(user.ID)
		if !ok {
			continue
		}
		if err := sink.Consume(ctx, notification); err != nil {
			s.log.Warn("System message dropped", "user_id", user.ID, "error", err)
			continue
		}
		delivered++
	}
	if delivered == 0 && len(users) > 0 {
		s.log.Info("System message reached nobody")
	}
	return nil
}
