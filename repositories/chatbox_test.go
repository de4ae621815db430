package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
)

func Test_ChatBoxRepository_Roundtrip(t *testing.T) {
	req := require.New(t)
	repo, err := NewChatBoxRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	id, err := repo.NextID()
	req.NoError(err)
	req.Equal(domain.ChatBoxID(1), id)

	box := domain.NewChatBox(id, "General", []domain.UserID{1, 2})
	at := time.Now().UTC()
	box.Append(domain.Message{ID: 1, SenderID: 1, Content: "hi", Lang: "en", CreatedAt: at})
	box.Append(domain.Message{ID: 2, SenderID: 2, Content: "hello", Lang: "en", CreatedAt: at.Add(time.Second)})
	req.NoError(repo.Store(box))

	fetched, err := repo.Get(id)
	req.NoError(err)
	req.Equal(box.Name, fetched.Name)
	req.Len(fetched.Participants, 2)
	req.True(fetched.HasParticipant(1))
	req.True(fetched.HasParticipant(2))
	req.Len(fetched.Messages, 2)
	req.Equal("hi", fetched.Messages[0].Content)
	req.True(fetched.Messages[0].CreatedAt.Equal(at))
}

func Test_ChatBoxRepository_Get_Unknown_Id(t *testing.T) {
	req := require.New(t)
	repo, err := NewChatBoxRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	_, err = repo.Get(999)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_ChatBoxRepository_Rewrite_Replaces_Full_State(t *testing.T) {
	req := require.New(t)
	repo, err := NewChatBoxRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	box := domain.NewChatBox(1, "General", []domain.UserID{1})
	req.NoError(repo.Store(box))

	box.Hidden = true
	box.AddParticipant(2)
	box.Append(domain.Message{ID: 1, SenderID: 1, Content: "later", CreatedAt: time.Now().UTC()})
	req.NoError(repo.Store(box))

	fetched, err := repo.Get(1)
	req.NoError(err)
	req.True(fetched.Hidden)
	req.Len(fetched.Participants, 2)
	req.Len(fetched.Messages, 1)
}

func Test_ChatBoxRepository_List(t *testing.T) {
	req := require.New(t)
	repo, err := NewChatBoxRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	req.NoError(repo.Store(domain.NewChatBox(1, "General", nil)))
	req.NoError(repo.Store(domain.NewChatBox(2, "Random", nil)))

	boxes, err := repo.List()
	req.NoError(err)
	req.Len(boxes, 2)
	req.Equal("General", boxes[0].Name)
	req.Equal("Random", boxes[1].Name)
}

func Test_ChatBoxRepository_Message_Ids_Are_Global(t *testing.T) {
	req := require.New(t)
	repo, err := NewChatBoxRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	first, err := repo.NextMessageID()
	req.NoError(err)
	second, err := repo.NextMessageID()
	req.NoError(err)
	req.Greater(second, first)
}
