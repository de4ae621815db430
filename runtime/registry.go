// Package runtime holds the shared infrastructure the router and the
// sessions operate against: the live-session registry and the supervised
// background workers.
package runtime

import (
	"sync"

	"chatbox-lab/contract"
	"chatbox-lab/domain"
)

// Registry maps authenticated user ids to their live session sinks.
// The router consults it at fan-out time; a user absent from the
// registry simply receives nothing.
type Registry struct {
	mu    sync.RWMutex
	sinks map[domain.UserID]contract.ResponseSink
}

func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[domain.UserID]contract.ResponseSink),
	}
}

// Attach registers a user's live connection. A second login for the same
// user replaces the previous sink; the old session keeps draining what it
// already buffered but receives nothing new.
func (r *Registry) Attach(userID domain.UserID, sink contract.ResponseSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[userID] = sink
}

// Detach removes the entry synchronously, so no delivery after this call
// can target the closed session.
func (r *Registry) Detach(userID domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, userID)
}

// Release removes the entry only when it still belongs to sink. A
// session closing after a second login replaced its entry must not evict
// the live one; the caller learns from the return whether it still owned
// the registration.
func (r *Registry) Release(userID domain.UserID, sink contract.ResponseSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.sinks[userID]
	if !ok || current != sink {
		return false
	}
	delete(r.sinks, userID)
	return true
}

func (r *Registry) Sink(userID domain.UserID) (contract.ResponseSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[userID]
	return sink, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}
