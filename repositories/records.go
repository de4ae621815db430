package repositories

import (
	"time"

	"github.com/samber/lo"

	"chatbox-lab/domain"
)

// Disk-level shapes of the persisted aggregates. Each durable record
// holds the aggregate's full current state; mutations rewrite the record.
type userRecord struct {
	ID           int64
	Username     string
	PasswordHash string
	Roles        []string
	Online       bool
	Banned       bool
	CreatedAt    int64
}

type messageRecord struct {
	ID       int64
	SenderID int64
	Content  string
	Lang     string
	At       int64
	Hidden   bool
}

type chatBoxRecord struct {
	ID           int64
	Name         string
	Participants []int64
	Messages     []messageRecord
	Hidden       bool
}

func fromUser(user domain.User) userRecord {
	return userRecord{
		ID:           int64(user.ID),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Roles:        user.Roles,
		Online:       user.Online,
		Banned:       user.Banned,
		CreatedAt:    user.CreatedAt.UnixNano(),
	}
}

func toUser(record userRecord) domain.User {
	return domain.User{
		ID:           domain.UserID(record.ID),
		Username:     record.Username,
		PasswordHash: record.PasswordHash,
		Roles:        record.Roles,
		Online:       record.Online,
		Banned:       record.Banned,
		CreatedAt:    time.Unix(0, record.CreatedAt).UTC(),
	}
}

func fromChatBox(box *domain.ChatBox) chatBoxRecord {
	participants := make([]int64, 0, len(box.Participants))
	for id := range box.Participants {
		participants = append(participants, int64(id))
	}
	return chatBoxRecord{
		ID:           int64(box.ID),
		Name:         box.Name,
		Participants: participants,
		Messages:     lo.Map(box.Messages, func(m domain.Message, _ int) messageRecord { return fromMessage(m) }),
		Hidden:       box.Hidden,
	}
}

func toChatBox(record chatBoxRecord) *domain.ChatBox {
	box := domain.NewChatBox(
		domain.ChatBoxID(record.ID),
		record.Name,
		lo.Map(record.Participants, func(id int64, _ int) domain.UserID { return domain.UserID(id) }),
	)
	box.Hidden = record.Hidden
	box.Messages = lo.Map(record.Messages, func(m messageRecord, _ int) domain.Message { return toMessage(m) })
	return box
}

func fromMessage(m domain.Message) messageRecord {
	return messageRecord{
		ID:       int64(m.ID),
		SenderID: int64(m.SenderID),
		Content:  m.Content,
		Lang:     m.Lang,
		At:       m.CreatedAt.UnixNano(),
		Hidden:   m.Hidden,
	}
}

func toMessage(record messageRecord) domain.Message {
	return domain.Message{
		ID:        domain.MessageID(record.ID),
		SenderID:  domain.UserID(record.SenderID),
		Content:   record.Content,
		Lang:      record.Lang,
		CreatedAt: time.Unix(0, record.At).UTC(),
		Hidden:    record.Hidden,
	}
}
