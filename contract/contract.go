//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chatbox-lab/domain"
	"chatbox-lab/protocol/response"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Logging and supervision only; never used for dispatch.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ResponseSink is one connected client's outbound channel. The router
// pushes deliveries through it; delivery order per sink is the order of
// the Consume calls.
type ResponseSink interface {
	Consume(ctx context.Context, r response.Response) error
}

// ISessionRegistry maps authenticated user ids to live session sinks.
// Entries are removed synchronously when a session closes, so a lookup
// never returns a stale sink.
type ISessionRegistry interface {
	Attach(userID domain.UserID, sink ResponseSink)
	// Detach removes whatever entry the user has; Release removes it
	// only when it still points at sink and reports whether it did.
	Detach(userID domain.UserID)
	Release(userID domain.UserID, sink ResponseSink) bool
	Sink(userID domain.UserID) (ResponseSink, bool)
	Count() int
}

type IUserRepository interface {
	NextID() (domain.UserID, error)
	// Create fails with ErrDuplicateUsername inside one transaction, so
	// two concurrent registrations can never both win.
	Create(user domain.User) error
	Store(user domain.User) error
	Get(id domain.UserID) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
	List() ([]domain.User, error)
	Delete(id domain.UserID) error
}

type IChatBoxRepository interface {
	NextID() (domain.ChatBoxID, error)
	NextMessageID() (domain.MessageID, error)
	Store(box *domain.ChatBox) error
	Get(id domain.ChatBoxID) (*domain.ChatBox, error)
	List() ([]*domain.ChatBox, error)
}

// IMessageIndex is the full-text index over message content, fed on the
// send path and queried by chat log search.
type IMessageIndex interface {
	Index(boxID domain.ChatBoxID, message domain.Message) error
	Search(ctx context.Context, boxID domain.ChatBoxID, query string, limit int) ([]domain.MessageID, error)
	Close() error
}
