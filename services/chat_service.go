//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"chatbox-lab/contract"
	"chatbox-lab/domain"
	"chatbox-lab/errors"
	"chatbox-lab/keymutex"
	"chatbox-lab/moderation"
	"chatbox-lab/observability"
	"chatbox-lab/protocol/response"
)

type IChatService interface {
	CreateChatBox(participantIDs []domain.UserID, name string) (domain.Summary, error)
	GetChatBox(id domain.ChatBoxID, includeHidden bool) (response.ChatBoxSnapshot, error)
	ListVisible() ([]domain.Summary, error)
	SendMessage(ctx context.Context, boxID domain.ChatBoxID, senderID domain.UserID, content string) (domain.Message, error)
	AddParticipant(boxID domain.ChatBoxID, userID domain.UserID) error
	RemoveParticipant(boxID domain.ChatBoxID, userID domain.UserID) error
	HideChatBox(boxID domain.ChatBoxID) error
	UnhideChatBox(boxID domain.ChatBoxID) error
	HideMessage(boxID domain.ChatBoxID, messageID domain.MessageID) error
	ChatLog(boxID domain.ChatBoxID, includeHidden bool) (string, error)
	Search(ctx context.Context, boxID domain.ChatBoxID, query string, limit int) ([]domain.Message, error)
}

// ChatService owns the chatbox aggregates: an in-memory write-through
// cache over the repository, plus the routing that fans a committed
// message out to the connected participants. Mutations of one chatbox
// are serialized with their persistence write under a per-box locker;
// unrelated chatboxes proceed fully in parallel.
type ChatService struct {
	boxes     contract.IChatBoxRepository
	registry  contract.ISessionRegistry
	locks     keymutex.KeyMutex
	moderator moderation.Moderator
	index     contract.IMessageIndex
	stats     *observability.StatsManager
	log       *slog.Logger

	cacheMu sync.RWMutex
	cache   map[domain.ChatBoxID]*domain.ChatBox
}

func NewChatService(boxes contract.IChatBoxRepository, registry contract.ISessionRegistry,
	locks keymutex.KeyMutex, moderator moderation.Moderator, index contract.IMessageIndex,
	stats *observability.StatsManager, log *slog.Logger) *ChatService {
	return &ChatService{
		boxes:     boxes,
		registry:  registry,
		locks:     locks,
		moderator: moderator,
		index:     index,
		stats:     stats,
		log:       log,
		cache:     make(map[domain.ChatBoxID]*domain.ChatBox),
	}
}

// CreateChatBox allocates a new id and persists the aggregate.
// Participant ids are not validated against the user registry: unknown
// ids are tolerated, they simply can never be delivered to.
func (s *ChatService) CreateChatBox(participantIDs []domain.UserID, name string) (domain.Summary, error) {
	id, err := s.boxes.NextID()
	if err != nil {
		return domain.Summary{}, err
	}
	box := domain.NewChatBox(id, name, participantIDs)

	locker := s.locks.Get(int64(id))
	locker.Lock()
	defer locker.Unlock()

	if err := s.boxes.Store(box); err != nil {
		return domain.Summary{}, err
	}
	s.cachePut(box)
	return box.Summary(), nil
}

// GetChatBox serves from the cache, falls back to the store on a miss,
// and only then reports NOT_FOUND. The returned snapshot is a copy; the
// live aggregate never leaves the service.
func (s *ChatService) GetChatBox(id domain.ChatBoxID, includeHidden bool) (response.ChatBoxSnapshot, error) {
	locker := s.locks.Get(int64(id))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(id)
	if err != nil {
		return response.ChatBoxSnapshot{}, err
	}

	messages := box.Messages
	if !includeHidden {
		messages = box.VisibleMessages()
	}
	summary := box.Summary()
	return response.ChatBoxSnapshot{
		ID:           box.ID,
		Name:         box.Name,
		Participants: summary.Participants,
		Messages:     append([]domain.Message(nil), messages...),
		Hidden:       box.Hidden,
	}, nil
}

// ListVisible excludes hidden chatboxes; hiding is a read-time filter,
// the aggregate stays stored and retrievable by id.
func (s *ChatService) ListVisible() ([]domain.Summary, error) {
	boxes, err := s.boxes.List()
	if err != nil {
		return nil, err
	}

	var visible []domain.Summary
	for _, box := range boxes {
		summary, hidden := s.liveSummary(box)
		if hidden {
			continue
		}
		visible = append(visible, summary)
	}
	return visible, nil
}

// liveSummary prefers the cached aggregate over the stored row and reads
// it under the box locker; membership writes hold the same locker, so
// the participant set is never iterated mid-mutation.
func (s *ChatService) liveSummary(box *domain.ChatBox) (domain.Summary, bool) {
	locker := s.locks.Get(int64(box.ID))
	locker.Lock()
	defer locker.Unlock()

	if cached, ok := s.cacheGet(box.ID); ok {
		box = cached
	}
	return box.Summary(), box.Hidden
}

// SendMessage stamps the authoritative order (server-side id and
// timestamp), censors, appends, persists, and only then pushes one
// delivery to every participant with a live session. Holding the box
// locker through the pushes keeps deliveries in router-issued order.
// Once persisted a send is irrevocable.
func (s *ChatService) SendMessage(ctx context.Context, boxID domain.ChatBoxID,
	senderID domain.UserID, content string) (domain.Message, error) {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return domain.Message{}, err
	}
	if !box.HasParticipant(senderID) {
		return domain.Message{}, errors.ErrUnauthorized
	}

	id, err := s.boxes.NextMessageID()
	if err != nil {
		return domain.Message{}, err
	}

	censored, wasCensored := s.moderator.Censor(content)
	if wasCensored {
		s.log.Info("Message censored", "box_id", boxID, "sender_id", senderID)
	}

	message := domain.Message{
		ID:        id,
		SenderID:  senderID,
		Content:   censored,
		Lang:      moderation.DetectLang(content),
		CreatedAt: time.Now().UTC(),
	}

	box.Append(message)
	// The cached aggregate already holds the append; a failed write is
	// surfaced, not rolled back.
	if err := s.boxes.Store(box); err != nil {
		return domain.Message{}, err
	}
	s.stats.MessageRouted()

	if err := s.index.Index(boxID, message); err != nil {
		s.log.Error("Failed indexing message", "box_id", boxID, "message_id", id, "error", err)
	}

	s.fanOut(ctx, box, message)
	return message, nil
}

// fanOut pushes exactly one delivery per connected participant.
// Participants without a live session receive nothing retroactively.
func (s *ChatService) fanOut(ctx context.Context, box *domain.ChatBox, message domain.Message) {
	delivery := response.SendMessage{Message: message, ChatBoxID: box.ID}
	for participantID := range box.Participants {
		sink, ok := s.registry.Sink(participantID)
		if !ok {
			continue
		}
		if err := sink.Consume(ctx, delivery); err != nil {
			s.stats.DeliveryDropped()
			s.log.Warn("Delivery dropped",
				"box_id", box.ID,
				"user_id", participantID,
				"error", err)
			continue
		}
		s.stats.DeliveryPushed()
	}
}

// AddParticipant is idempotent: adding an existing participant is a
// no-op success and writes nothing.
func (s *ChatService) AddParticipant(boxID domain.ChatBoxID, userID domain.UserID) error {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return err
	}
	if !box.AddParticipant(userID) {
		return nil
	}
	return s.boxes.Store(box)
}

func (s *ChatService) RemoveParticipant(boxID domain.ChatBoxID, userID domain.UserID) error {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return err
	}
	if !box.RemoveParticipant(userID) {
		return errors.ErrNoop
	}
	return s.boxes.Store(box)
}

func (s *ChatService) HideChatBox(boxID domain.ChatBoxID) error {
	return s.setHidden(boxID, true)
}

func (s *ChatService) UnhideChatBox(boxID domain.ChatBoxID) error {
	return s.setHidden(boxID, false)
}

func (s *ChatService) setHidden(boxID domain.ChatBoxID, hidden bool) error {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return err
	}
	box.Hidden = hidden
	return s.boxes.Store(box)
}

func (s *ChatService) HideMessage(boxID domain.ChatBoxID, messageID domain.MessageID) error {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return err
	}
	if !box.HideMessage(messageID) {
		return errors.ErrNotFound
	}
	return s.boxes.Store(box)
}

// ChatLog renders the ordered log as text. Senders are referenced by id
// only; a deleted user shows up as its dangling id.
func (s *ChatService) ChatLog(boxID domain.ChatBoxID, includeHidden bool) (string, error) {
	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return "", err
	}

	messages := box.Messages
	if !includeHidden {
		messages = box.VisibleMessages()
	}

	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "[%s] user#%d: %s\n",
			m.CreatedAt.Format(time.DateTime), m.SenderID, m.Content)
	}
	return b.String(), nil
}

// Search resolves index hits against the aggregate, preserving log order
// and skipping hidden messages.
func (s *ChatService) Search(ctx context.Context, boxID domain.ChatBoxID, query string, limit int) ([]domain.Message, error) {
	ids, err := s.index.Search(ctx, boxID, query, limit)
	if err != nil {
		return nil, err
	}
	hits := lo.SliceToMap(ids, func(id domain.MessageID) (domain.MessageID, struct{}) {
		return id, struct{}{}
	})

	locker := s.locks.Get(int64(boxID))
	locker.Lock()
	defer locker.Unlock()

	box, err := s.loadLocked(boxID)
	if err != nil {
		return nil, err
	}

	var matches []domain.Message
	for _, m := range box.VisibleMessages() {
		if _, ok := hits[m.ID]; ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// loadLocked resolves an aggregate while its locker is held: cache
// first, storage on a miss.
func (s *ChatService) loadLocked(id domain.ChatBoxID) (*domain.ChatBox, error) {
	if box, ok := s.cacheGet(id); ok {
		return box, nil
	}
	box, err := s.boxes.Get(id)
	if err != nil {
		return nil, err
	}
	s.cachePut(box)
	return box, nil
}

func (s *ChatService) cacheGet(id domain.ChatBoxID) (*domain.ChatBox, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	box, ok := s.cache[id]
	return box, ok
}

func (s *ChatService) cachePut(box *domain.ChatBox) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache[box.ID] = box
}
