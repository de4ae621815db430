package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	"chatbox-lab/domain"
)

func openTestIndex(t *testing.T) *MessageIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	index := NewMessageIndex(writer, slog.Default())
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func Test_MessageIndex_Search_Scopes_To_One_ChatBox(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)
	ctx := context.Background()
	at := time.Now().UTC()

	req.NoError(index.Index(1, domain.Message{ID: 1, SenderID: 1, Content: "migrating to badger next sprint", CreatedAt: at}))
	req.NoError(index.Index(1, domain.Message{ID: 2, SenderID: 2, Content: "lunch anyone", CreatedAt: at}))
	req.NoError(index.Index(2, domain.Message{ID: 3, SenderID: 1, Content: "badger looks great", CreatedAt: at}))

	ids, err := index.Search(ctx, 1, "badger", 10)
	req.NoError(err)
	req.Equal([]domain.MessageID{1}, ids)
}

func Test_MessageIndex_Search_No_Match(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	req.NoError(index.Index(1, domain.Message{ID: 1, SenderID: 1, Content: "hello world", CreatedAt: time.Now().UTC()}))

	ids, err := index.Search(context.Background(), 1, "kubernetes", 10)
	req.NoError(err)
	req.Empty(ids)
}

func Test_MessageIndex_Reindex_Same_Message_Is_An_Update(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)
	at := time.Now().UTC()

	req.NoError(index.Index(1, domain.Message{ID: 1, SenderID: 1, Content: "draft wording", CreatedAt: at}))
	req.NoError(index.Index(1, domain.Message{ID: 1, SenderID: 1, Content: "final wording", CreatedAt: at}))

	ids, err := index.Search(context.Background(), 1, "wording", 10)
	req.NoError(err)
	req.Len(ids, 1)
}
