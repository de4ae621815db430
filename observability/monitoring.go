// Package observability aggregates runtime counters for logging and the
// debug inspector. Counters are atomic; snapshots are cheap.
package observability

import (
	"sync/atomic"
)

type Stats struct {
	MessagesRouted    uint64 `json:"messages_routed"`
	DeliveriesPushed  uint64 `json:"deliveries_pushed"`
	DeliveriesDropped uint64 `json:"deliveries_dropped"`
	SessionsOpened    uint64 `json:"sessions_opened"`
	SessionsClosed    uint64 `json:"sessions_closed"`
	LiveSessions      int    `json:"live_sessions"`
}

type StatsManager struct {
	messagesRouted    atomic.Uint64
	deliveriesPushed  atomic.Uint64
	deliveriesDropped atomic.Uint64
	sessionsOpened    atomic.Uint64
	sessionsClosed    atomic.Uint64
}

func NewStatsManager() *StatsManager {
	return &StatsManager{}
}

func (s *StatsManager) MessageRouted()   { s.messagesRouted.Add(1) }
func (s *StatsManager) DeliveryPushed()  { s.deliveriesPushed.Add(1) }
func (s *StatsManager) DeliveryDropped() { s.deliveriesDropped.Add(1) }
func (s *StatsManager) SessionOpened()   { s.sessionsOpened.Add(1) }
func (s *StatsManager) SessionClosed()   { s.sessionsClosed.Add(1) }

func (s *StatsManager) Snapshot(liveSessions int) Stats {
	return Stats{
		MessagesRouted:    s.messagesRouted.Load(),
		DeliveriesPushed:  s.deliveriesPushed.Load(),
		DeliveriesDropped: s.deliveriesDropped.Load(),
		SessionsOpened:    s.sessionsOpened.Load(),
		SessionsClosed:    s.sessionsClosed.Load(),
		LiveSessions:      liveSessions,
	}
}
