package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
)

// MessageIndex maintains a bluge full-text index over message content,
// fed on the send path. Searching never touches BadgerDB; hits return
// message ids and the caller resolves them against the aggregate.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

func (m *MessageIndex) Close() error {
	return m.writer.Close()
}

// Index adds one message to the search index. The document id combines
// chatbox and message id so re-indexing the same message is an update,
// not a duplicate.
func (m *MessageIndex) Index(boxID domain.ChatBoxID, message domain.Message) error {
	doc := bluge.NewDocument(fmt.Sprintf("%d:%d", boxID, message.ID)).
		AddField(bluge.NewTextField("content", message.Content)).
		AddField(bluge.NewKeywordField("box", strconv.FormatInt(int64(boxID), 10))).
		AddField(bluge.NewStoredOnlyField("msg_id", []byte(strconv.FormatInt(int64(message.ID), 10))))

	if err := m.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

// Search returns the ids of the best-matching messages of one chatbox.
func (m *MessageIndex) Search(ctx context.Context, boxID domain.ChatBoxID, query string, limit int) ([]domain.MessageID, error) {
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.log.Error("failed closing index reader", "error", err)
		}
	}()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query).SetField("content")).
		AddMust(bluge.NewTermQuery(strconv.FormatInt(int64(boxID), 10)).SetField("box"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, boolean))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	var ids []domain.MessageID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "msg_id" {
				if id, parseErr := strconv.ParseInt(string(value), 10, 64); parseErr == nil {
					ids = append(ids, domain.MessageID(id))
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
		}
	}
	return ids, nil
}
