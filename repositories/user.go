package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v4"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
)

// UserRepository persists user records in BadgerDB.
// Keys are formatted as "user:{id_padded}" with 19-digit zero padding so a
// prefix scan lists users in id order. A secondary "idx:username:{name}"
// entry maps the unique username to its id for login lookups.
type UserRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) (*UserRepository, error) {
	seq, err := db.GetSequence([]byte("seq:user"), 100)
	if err != nil {
		return nil, fmt.Errorf("user sequence: %w", err)
	}
	return &UserRepository{db: db, seq: seq, log: log}, nil
}

// Close releases the id sequence lease.
func (r *UserRepository) Close() error {
	return r.seq.Release()
}

// NextID allocates a monotonic user id. Ids start at 1; gaps after a
// restart are fine, reuse is not.
func (r *UserRepository) NextID() (domain.UserID, error) {
	n, err := r.seq.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return domain.UserID(n + 1), nil
}

// Create persists a new user and its username index entry in a single
// transaction. The duplicate check and both writes are atomic.
func (r *UserRepository) Create(user domain.User) error {
	data, err := msgpack.Marshal(fromUser(user))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		idxKey := usernameKey(user.Username)
		if _, err := txn.Get(idxKey); err == nil {
			return errors.ErrDuplicateUsername
		}
		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(idxKey, []byte(fmt.Sprintf("%d", user.ID)))
	})
	if err == nil || err == errors.ErrDuplicateUsername {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrStorage, err)
}

// Store rewrites the full record of an existing user. Usernames are
// immutable, so the index entry is left untouched.
func (r *UserRepository) Store(user domain.User) error {
	data, err := msgpack.Marshal(fromUser(user))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func (r *UserRepository) Get(id domain.UserID) (domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return toUser(record), nil
}

func (r *UserRepository) GetByUsername(username string) (domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return err
		}
		var id domain.UserID
		if err := item.Value(func(val []byte) error {
			_, scanErr := fmt.Sscanf(string(val), "%d", &id)
			return scanErr
		}); err != nil {
			return err
		}
		userItem, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		return userItem.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return toUser(record), nil
}

// List returns all users ordered by id, thanks to the padded keys.
func (r *UserRepository) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record userRecord
			err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			users = append(users, toUser(record))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return users, nil
}

// Delete removes the record and its username index entry. Chatboxes may
// still reference the id; readers tolerate the dangling reference.
func (r *UserRepository) Delete(id domain.UserID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err != nil {
			return err
		}
		var record userRecord
		if err := item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &record)
		}); err != nil {
			return err
		}
		if err := txn.Delete(usernameKey(record.Username)); err != nil {
			return err
		}
		return txn.Delete(userKey(id))
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func userKey(id domain.UserID) []byte {
	return []byte(fmt.Sprintf("user:%019d", id))
}

func usernameKey(username string) []byte {
	return []byte("idx:username:" + username)
}
