package domain

import (
	"sort"
)

type ChatBoxID int64

// ChatBox is a named conversation aggregate: a participant set and an
// append-only message log totally ordered by (timestamp, message id).
// The id is immutable for the aggregate's lifetime.
type ChatBox struct {
	ID           ChatBoxID
	Name         string
	Participants map[UserID]struct{}
	Messages     []Message
	Hidden       bool
}

func NewChatBox(id ChatBoxID, name string, participants []UserID) *ChatBox {
	set := make(map[UserID]struct{}, len(participants))
	for _, p := range participants {
		set[p] = struct{}{}
	}
	return &ChatBox{
		ID:           id,
		Name:         name,
		Participants: set,
		Messages:     nil,
	}
}

// Summary is the lightweight projection sent to clients when the full
// message log is not needed.
type Summary struct {
	ID           ChatBoxID
	Name         string
	Participants []UserID
	Hidden       bool
}

func (c *ChatBox) Summary() Summary {
	ids := make([]UserID, 0, len(c.Participants))
	for p := range c.Participants {
		ids = append(ids, p)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return Summary{ID: c.ID, Name: c.Name, Participants: ids, Hidden: c.Hidden}
}

// Append inserts a message respecting the total log order. The common
// case is a plain append since the router stamps timestamps itself.
func (c *ChatBox) Append(m Message) {
	n := len(c.Messages)
	if n == 0 || c.Messages[n-1].Before(m) {
		c.Messages = append(c.Messages, m)
		return
	}
	i := sort.Search(n, func(i int) bool { return m.Before(c.Messages[i]) })
	c.Messages = append(c.Messages, Message{})
	copy(c.Messages[i+1:], c.Messages[i:])
	c.Messages[i] = m
}

// AddParticipant reports whether the set actually changed.
func (c *ChatBox) AddParticipant(id UserID) bool {
	if _, ok := c.Participants[id]; ok {
		return false
	}
	c.Participants[id] = struct{}{}
	return true
}

func (c *ChatBox) RemoveParticipant(id UserID) bool {
	if _, ok := c.Participants[id]; !ok {
		return false
	}
	delete(c.Participants, id)
	return true
}

func (c *ChatBox) HasParticipant(id UserID) bool {
	_, ok := c.Participants[id]
	return ok
}

// HideMessage flips the hidden flag of one message. Hidden messages stay
// in the log; filtering happens at read time.
func (c *ChatBox) HideMessage(id MessageID) bool {
	for i := range c.Messages {
		if c.Messages[i].ID == id {
			c.Messages[i].Hidden = true
			return true
		}
	}
	return false
}

// VisibleMessages returns the log without hidden entries.
func (c *ChatBox) VisibleMessages() []Message {
	visible := make([]Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		if m.Hidden {
			continue
		}
		visible = append(visible, m)
	}
	return visible
}
