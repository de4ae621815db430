package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_ChatBox_Append_Keeps_Total_Order(t *testing.T) {
	req := require.New(t)
	box := NewChatBox(1, "General", []UserID{1, 2})
	at := time.Now().UTC()

	box.Append(Message{ID: 2, SenderID: 1, Content: "second", CreatedAt: at.Add(time.Second)})
	box.Append(Message{ID: 1, SenderID: 2, Content: "first", CreatedAt: at})
	// Same timestamp: the id breaks the tie
	box.Append(Message{ID: 4, SenderID: 1, Content: "fourth", CreatedAt: at.Add(2 * time.Second)})
	box.Append(Message{ID: 3, SenderID: 2, Content: "third", CreatedAt: at.Add(2 * time.Second)})

	req.Len(box.Messages, 4)
	for i, want := range []MessageID{1, 2, 3, 4} {
		req.Equal(want, box.Messages[i].ID)
	}
}

func Test_ChatBox_Participants_Are_A_Set(t *testing.T) {
	req := require.New(t)
	box := NewChatBox(1, "General", []UserID{1, 2, 2})

	req.Len(box.Participants, 2)
	req.False(box.AddParticipant(1))
	req.True(box.AddParticipant(3))
	req.True(box.RemoveParticipant(3))
	req.False(box.RemoveParticipant(3))
}

func Test_ChatBox_HideMessage_Is_A_Read_Time_Filter(t *testing.T) {
	req := require.New(t)
	box := NewChatBox(1, "General", []UserID{1})
	at := time.Now().UTC()
	box.Append(Message{ID: 1, SenderID: 1, Content: "keep", CreatedAt: at})
	box.Append(Message{ID: 2, SenderID: 1, Content: "hide", CreatedAt: at.Add(time.Second)})

	req.True(box.HideMessage(2))
	req.False(box.HideMessage(99))

	// Still stored, only filtered from the visible view
	req.Len(box.Messages, 2)
	visible := box.VisibleMessages()
	req.Len(visible, 1)
	req.Equal(MessageID(1), visible[0].ID)
}

func Test_ChatBox_Summary_Has_No_Messages(t *testing.T) {
	req := require.New(t)
	box := NewChatBox(7, "Support", []UserID{3, 1, 2})
	box.Append(Message{ID: 1, SenderID: 1, Content: "hello", CreatedAt: time.Now().UTC()})

	summary := box.Summary()
	req.Equal(ChatBoxID(7), summary.ID)
	req.Equal("Support", summary.Name)
	req.Equal([]UserID{1, 2, 3}, summary.Participants)
	req.False(summary.Hidden)
}
