package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v4"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
)

// ChatBoxRepository persists chatbox aggregates in BadgerDB.
// The key is formatted as "box:{id_padded}" with 19-digit zero padding so
// a prefix scan returns chatboxes in creation order. The value holds the
// aggregate's full current state; every mutation rewrites it.
type ChatBoxRepository struct {
	db     *badger.DB
	boxSeq *badger.Sequence
	msgSeq *badger.Sequence
	log    *slog.Logger
}

func NewChatBoxRepository(db *badger.DB, log *slog.Logger) (*ChatBoxRepository, error) {
	boxSeq, err := db.GetSequence([]byte("seq:box"), 100)
	if err != nil {
		return nil, fmt.Errorf("chatbox sequence: %w", err)
	}
	msgSeq, err := db.GetSequence([]byte("seq:msg"), 100)
	if err != nil {
		return nil, fmt.Errorf("message sequence: %w", err)
	}
	return &ChatBoxRepository{db: db, boxSeq: boxSeq, msgSeq: msgSeq, log: log}, nil
}

func (r *ChatBoxRepository) Close() error {
	if err := r.boxSeq.Release(); err != nil {
		return err
	}
	return r.msgSeq.Release()
}

func (r *ChatBoxRepository) NextID() (domain.ChatBoxID, error) {
	n, err := r.boxSeq.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return domain.ChatBoxID(n + 1), nil
}

// NextMessageID allocates message ids from one global sequence; ids are
// unique across chatboxes and monotonic within each.
func (r *ChatBoxRepository) NextMessageID() (domain.MessageID, error) {
	n, err := r.msgSeq.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return domain.MessageID(n + 1), nil
}

func (r *ChatBoxRepository) Store(box *domain.ChatBox) error {
	data, err := msgpack.Marshal(fromChatBox(box))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(boxKey(box.ID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func (r *ChatBoxRepository) Get(id domain.ChatBoxID) (*domain.ChatBox, error) {
	var record chatBoxRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(boxKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return toChatBox(record), nil
}

func (r *ChatBoxRepository) List() ([]*domain.ChatBox, error) {
	var boxes []*domain.ChatBox
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("box:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record chatBoxRecord
			err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			boxes = append(boxes, toChatBox(record))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return boxes, nil
}

func boxKey(id domain.ChatBoxID) []byte {
	return []byte(fmt.Sprintf("box:%019d", id))
}
