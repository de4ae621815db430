package session

import (
	"context"
	"sync"

	"chatbox-lab/errors"
	"chatbox-lab/protocol/response"
)

// BufferedSink is a session's outbound channel. The router pushes
// deliveries into the buffer; the session's write pump drains it onto
// the wire. A full buffer drops the delivery instead of blocking the
// router behind one slow consumer.
type BufferedSink struct {
	deliveries chan response.Response

	mu     sync.Mutex
	closed bool
}

func NewBufferedSink(bufferSize int) *BufferedSink {
	return &BufferedSink{deliveries: make(chan response.Response, bufferSize)}
}

func (s *BufferedSink) Consume(ctx context.Context, r response.Response) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.ErrSessionClosed
	}
	defer s.mu.Unlock()

	select {
	case s.deliveries <- r:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSlowConsumer
	}
}

// Deliveries is drained by the session's write pump.
func (s *BufferedSink) Deliveries() <-chan response.Response {
	return s.deliveries
}

// Close makes further Consume calls fail and lets the write pump finish
// the remaining buffer.
func (s *BufferedSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.deliveries)
}
