// Package session holds the per-connection state machine and the
// dispatcher that turns inbound requests into service calls and outbound
// responses.
package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"chatbox-lab/contract"
	"chatbox-lab/domain"
	"chatbox-lab/errors"
	"chatbox-lab/observability"
	"chatbox-lab/protocol/request"
	"chatbox-lab/protocol/response"
	"chatbox-lab/services"
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateClosed
)

// Session is one live connection. It starts unauthenticated, becomes
// authenticated on a successful Login, CreateUser or Resume, and closes
// exactly once. While unauthenticated every other request is refused
// with a Notification and the state does not move.
type Session struct {
	ID uuid.UUID

	auth     services.IAuthService
	chats    services.IChatService
	admin    services.IAdminService
	registry contract.ISessionRegistry
	sink     *BufferedSink
	stats    *observability.StatsManager
	log      *slog.Logger

	mu    sync.Mutex
	state State
	user  domain.User
}

func New(auth services.IAuthService, chats services.IChatService, admin services.IAdminService,
	registry contract.ISessionRegistry, stats *observability.StatsManager,
	bufferSize int, log *slog.Logger) *Session {
	id := uuid.New()
	stats.SessionOpened()
	return &Session{
		ID:       id,
		auth:     auth,
		chats:    chats,
		admin:    admin,
		registry: registry,
		sink:     NewBufferedSink(bufferSize),
		stats:    stats,
		log:      log.With("session_id", id.String()),
	}
}

// Deliveries exposes the asynchronous fan-out channel; the transport's
// write pump drains it alongside the direct replies from Handle.
func (s *Session) Deliveries() <-chan response.Response {
	return s.sink.Deliveries()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) UserID() (domain.UserID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return 0, false
	}
	return s.user.ID, true
}

// Cap on SearchChatLog results, fixed here rather than exposed on the
// wire.
const searchLimit = 50

// Handle dispatches one inbound request and returns the direct reply.
// Business failures come back as Notifications; they never close the
// session.
func (s *Session) Handle(ctx context.Context, req request.Request) response.Response {
	s.mu.Lock()
	state := s.state
	user := s.user
	s.mu.Unlock()

	if state == StateClosed {
		return response.Notification{Text: "session is closed"}
	}

	if state == StateUnauthenticated {
		switch r := req.(type) {
		case request.Login:
			return s.login(r)
		case request.CreateUser:
			return s.createUser(r)
		case request.Resume:
			return s.resume(r)
		default:
			return response.Notification{Text: "please log in first"}
		}
	}

	switch r := req.(type) {
	case request.Login, request.CreateUser, request.Resume:
		return response.Notification{Text: "already logged in"}
	case request.Logout:
		s.Close()
		return response.LogoutResponse{}
	case request.AskChatBoxList:
		return s.askChatBoxList(user)
	case request.AskChatBox:
		return s.askChatBox(r, user)
	case request.AskChatLog:
		return s.askChatLog(r, user)
	case request.SearchChatLog:
		return s.searchChatLog(ctx, r)
	case request.AskUserList:
		return s.askUserList()
	case request.CreateChat:
		return s.createChat(r, user)
	case request.SendMessage:
		return s.sendMessage(ctx, r, user)
	case request.HideChatBox:
		return s.adminOp(user, "chatbox hidden", func() error {
			return s.admin.HideChatBox(r.ChatBoxID)
		})
	case request.UnhideChatBox:
		return s.adminOp(user, "chatbox visible again", func() error {
			return s.admin.UnhideChatBox(r.ChatBoxID)
		})
	case request.HideMessage:
		return s.adminOp(user, "message hidden", func() error {
			return s.admin.HideMessage(r.ChatBoxID, r.MessageID)
		})
	case request.BanUser:
		return s.adminOp(user, fmt.Sprintf("user %d banned", r.UserID), func() error {
			return s.admin.BanUser(r.UserID)
		})
	case request.UnbanUser:
		return s.adminOp(user, fmt.Sprintf("user %d unbanned", r.UserID), func() error {
			return s.admin.UnbanUser(r.UserID)
		})
	case request.DeleteUser:
		return s.adminOp(user, fmt.Sprintf("user %d deleted", r.UserID), func() error {
			return s.admin.DeleteUser(r.UserID)
		})
	case request.ResetPassword:
		return s.adminOp(user, "password reset", func() error {
			return s.admin.ResetPassword(r.UserID, r.NewPassword)
		})
	case request.SendSystemMessage:
		return s.adminOp(user, "broadcast sent", func() error {
			return s.admin.SendSystemMessage(ctx, r.Text)
		})
	default:
		return response.Notification{Text: "unknown request"}
	}
}

// Close is idempotent. It deregisters synchronously before flipping the
// online flag, so no fan-out can target this session afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	prev := s.state
	user := s.user
	s.state = StateClosed
	s.mu.Unlock()

	if prev == StateAuthenticated {
		// A later login may have replaced our registry entry; only the
		// current owner may evict it and flip the user offline.
		if s.registry.Release(user.ID, s.sink) {
			if err := s.auth.Logout(user.ID); err != nil {
				s.log.Error("Logout on close failed", "user_id", user.ID, "error", err)
			}
		}
	}
	s.sink.Close()
	s.stats.SessionClosed()
	s.log.Info("Session closed")
}

func (s *Session) login(r request.Login) response.Response {
	user, token, err := s.auth.Login(r.Username, r.Password)
	if err != nil {
		s.log.Warn("Login refused", "username", r.Username, "error", err)
		return response.LoginResponse{}
	}
	return s.authenticated(user, token)
}

// createUser registers and immediately authenticates, so a fresh client
// needs a single round trip.
func (s *Session) createUser(r request.CreateUser) response.Response {
	if _, err := s.auth.Register(r.Username, r.Password, r.IsAdmin); err != nil {
		return notify(err)
	}
	user, token, err := s.auth.Login(r.Username, r.Password)
	if err != nil {
		return notify(err)
	}
	return s.authenticated(user, token)
}

func (s *Session) resume(r request.Resume) response.Response {
	user, err := s.auth.Resume(r.Token)
	if err != nil {
		return response.LoginResponse{}
	}
	return s.authenticated(user, "")
}

func (s *Session) authenticated(user domain.User, token string) response.Response {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()

	// A second login for the same user replaces the previous sink
	s.registry.Attach(user.ID, s.sink)
	s.log.Info("Session authenticated", "user_id", user.ID, "username", user.Username)

	list, err := s.chats.ListVisible()
	if err != nil {
		s.log.Error("Chatbox list unavailable at login", "error", err)
	}
	return response.LoginResponse{
		User:        lo.ToPtr(toProfile(user)),
		ChatBoxList: list,
		Token:       token,
	}
}

func (s *Session) askChatBoxList(user domain.User) response.Response {
	list, err := s.chats.ListVisible()
	if err != nil {
		return notify(err)
	}
	return response.SendChatBoxList{List: list}
}

func (s *Session) askChatBox(r request.AskChatBox, user domain.User) response.Response {
	snapshot, err := s.chats.GetChatBox(r.ChatBoxID, user.IsAdmin())
	if err != nil {
		return notify(err)
	}
	return response.SendChatBox{ChatBox: snapshot}
}

func (s *Session) askChatLog(r request.AskChatLog, user domain.User) response.Response {
	text, err := s.chats.ChatLog(r.ChatBoxID, user.IsAdmin())
	if err != nil {
		return notify(err)
	}
	return response.SendChatLog{Text: text}
}

func (s *Session) searchChatLog(ctx context.Context, r request.SearchChatLog) response.Response {
	matches, err := s.chats.Search(ctx, r.ChatBoxID, r.Query, searchLimit)
	if err != nil {
		return notify(err)
	}
	return response.SearchResult{ChatBoxID: r.ChatBoxID, Query: r.Query, Messages: matches}
}

func (s *Session) askUserList() response.Response {
	users, err := s.auth.ListUsers()
	if err != nil {
		return notify(err)
	}
	return response.SendUserList{List: lo.Map(users, func(u domain.User, _ int) response.UserProfile {
		return toProfile(u)
	})}
}

// createChat always includes the creator, whether or not the client
// listed it.
func (s *Session) createChat(r request.CreateChat, user domain.User) response.Response {
	participants := r.ParticipantIDs
	if !lo.Contains(participants, user.ID) {
		participants = append(participants, user.ID)
	}
	summary, err := s.chats.CreateChatBox(participants, r.Name)
	if err != nil {
		return notify(err)
	}
	return response.SendChatBoxList{List: []domain.Summary{summary}}
}

func (s *Session) sendMessage(ctx context.Context, r request.SendMessage, user domain.User) response.Response {
	message, err := s.chats.SendMessage(ctx, r.ChatBoxID, user.ID, r.Content)
	if err != nil {
		return notify(err)
	}
	return response.SendMessage{Message: message, ChatBoxID: r.ChatBoxID}
}

func (s *Session) adminOp(user domain.User, okText string, op func() error) response.Response {
	if !user.IsAdmin() {
		return notify(errors.ErrUnauthorized)
	}
	if err := op(); err != nil {
		return notify(err)
	}
	return response.Notification{Text: okText}
}

// notify maps a service error onto the client-facing taxonomy. Anything
// unrecognized is a persistence or transport failure.
func notify(err error) response.Notification {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		return response.Notification{Text: "not found"}
	case stderrors.Is(err, errors.ErrDuplicateUsername):
		return response.Notification{Text: "username already taken"}
	case stderrors.Is(err, errors.ErrInvalidPassword):
		return response.Notification{Text: "password does not meet complexity rules"}
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return response.Notification{Text: "invalid credentials"}
	case stderrors.Is(err, errors.ErrBanned):
		return response.Notification{Text: "account is banned"}
	case stderrors.Is(err, errors.ErrUnauthorized):
		return response.Notification{Text: "operation not allowed"}
	case stderrors.Is(err, errors.ErrNoop):
		return response.Notification{Text: "nothing to do"}
	default:
		return response.Notification{Text: "internal failure, try again"}
	}
}

func toProfile(user domain.User) response.UserProfile {
	return response.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Online:   user.Online,
		Banned:   user.Banned,
		Roles:    user.Roles,
	}
}
