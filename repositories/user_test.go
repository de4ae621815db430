package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chatbox-lab/domain"
	"chatbox-lab/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_UserRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repo, err := NewUserRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	id, err := repo.NextID()
	req.NoError(err)
	req.Equal(domain.UserID(1), id)

	user := domain.User{
		ID:        id,
		Username:  "alice",
		Roles:     []string{domain.RoleUser},
		CreatedAt: time.Now().UTC(),
	}
	req.NoError(repo.Create(user))

	fetched, err := repo.Get(id)
	req.NoError(err)
	req.Equal(user.Username, fetched.Username)
	req.Equal(user.Roles, fetched.Roles)

	byName, err := repo.GetByUsername("alice")
	req.NoError(err)
	req.Equal(id, byName.ID)
}

func Test_UserRepository_Duplicate_Username(t *testing.T) {
	req := require.New(t)
	repo, err := NewUserRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	req.NoError(repo.Create(domain.User{ID: 1, Username: "bob"}))
	err = repo.Create(domain.User{ID: 2, Username: "bob"})
	req.ErrorIs(err, errors.ErrDuplicateUsername)

	// The loser left no record behind
	_, err = repo.Get(2)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_UserRepository_Ids_Are_Monotonic(t *testing.T) {
	req := require.New(t)
	repo, err := NewUserRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	previous := domain.UserID(0)
	for i := 0; i < 10; i++ {
		id, err := repo.NextID()
		req.NoError(err)
		req.Greater(id, previous)
		previous = id
	}
}

func Test_UserRepository_Delete_Frees_The_Username(t *testing.T) {
	req := require.New(t)
	repo, err := NewUserRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	req.NoError(repo.Create(domain.User{ID: 1, Username: "carol"}))
	req.NoError(repo.Delete(1))

	_, err = repo.Get(1)
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = repo.GetByUsername("carol")
	req.ErrorIs(err, errors.ErrNotFound)

	req.ErrorIs(repo.Delete(1), errors.ErrNotFound)
}

func Test_UserRepository_List_Is_Ordered_By_Id(t *testing.T) {
	req := require.New(t)
	repo, err := NewUserRepository(openTestDB(t), slog.Default())
	req.NoError(err)
	defer repo.Close()

	for i, name := range []string{"alice", "bob", "carol"} {
		req.NoError(repo.Create(domain.User{ID: domain.UserID(i + 1), Username: name}))
	}

	users, err := repo.List()
	req.NoError(err)
	req.Len(users, 3)
	req.Equal("alice", users[0].Username)
	req.Equal("carol", users[2].Username)
}
