package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"chatbox-lab/observability"
	"chatbox-lab/protocol/response"
	"chatbox-lab/session"
)

func TestConnection_ReaderStopsWhenWriterIsGone(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	readerDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		c := &connection{
			conn:       conn,
			session:    session.New(nil, nil, nil, nil, observability.NewStatsManager(), 1, log),
			replies:    make(chan response.Response, 2),
			writerDone: make(chan struct{}),
			log:        log,
		}
		// The writer exited on a wire error before draining anything
		close(c.writerDone)
		c.readPump(r.Context())
		close(readerDone)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.NoError(err)
	defer conn.Close()

	// More frames than the reply buffer holds; each yields a direct
	// reply nobody drains
	for i := 0; i < 5; i++ {
		req.NoError(conn.WriteMessage(websocket.BinaryMessage, []byte("not msgpack")))
	}

	select {
	case <-readerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("reader still blocked on a dead writer")
	}
}
