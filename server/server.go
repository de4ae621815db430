// Package server is the websocket transport. Each accepted connection
// gets one session, one reader goroutine and one writer goroutine; the
// core never touches the wire directly.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"chatbox-lab/contract"
	"chatbox-lab/observability"
	"chatbox-lab/protocol"
	"chatbox-lab/protocol/response"
	"chatbox-lab/session"
	"chatbox-lab/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 64 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type Server struct {
	auth     services.IAuthService
	chats    services.IChatService
	admin    services.IAdminService
	registry contract.ISessionRegistry
	stats    *observability.StatsManager
	log      *slog.Logger

	sinkBufferSize int
	httpServer     *http.Server
}

func NewServer(addr string, auth services.IAuthService, chats services.IChatService,
	admin services.IAdminService, registry contract.ISessionRegistry,
	stats *observability.StatsManager, sinkBufferSize int, log *slog.Logger) *Server {
	s := &Server{
		auth:           auth,
		chats:          chats,
		admin:          admin,
		registry:       registry,
		stats:          stats,
		log:            log,
		sinkBufferSize: sinkBufferSize,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe blocks until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.log.Info("Websocket server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the mux so tests can mount it on their own listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprintf(w, "ok, %d live sessions\n", s.registry.Count())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	sess := session.New(s.auth, s.chats, s.admin, s.registry, s.stats, s.sinkBufferSize, s.log)
	c := &connection{
		conn:       conn,
		session:    sess,
		replies:    make(chan response.Response, 16),
		writerDone: make(chan struct{}),
		log:        s.log.With("remote", r.RemoteAddr),
	}

	go c.writePump()
	// The handler goroutine is the read pump; returning would cancel
	// the request context under the session's feet
	c.readPump(r.Context())
}

// connection ties one websocket to one session. The reader is the only
// goroutine calling Handle; the writer is the only goroutine touching
// the wire for output, merging direct replies with router deliveries.
type connection struct {
	conn       *websocket.Conn
	session    *session.Session
	replies    chan response.Response
	writerDone chan struct{}
	log        *slog.Logger
}

// reply hands a direct response to the writer. A dead writer means the
// connection is going away; blocking on a full buffer would leak the
// reader.
func (c *connection) reply(r response.Response) bool {
	select {
	case c.replies <- r:
		return true
	case <-c.writerDone:
		return false
	}
}

// readPump drives the session until the client goes away. Any read
// failure is fatal to this session only.
func (c *connection) readPump(ctx context.Context) {
	defer func() {
		c.session.Close()
		close(c.replies)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("Websocket read failed", "error", err)
			}
			return
		}

		req, err := protocol.DecodeRequest(data)
		if err != nil {
			c.log.Warn("Undecodable request", "error", err)
			if !c.reply(response.Notification{Text: "malformed request"}) {
				return
			}
			continue
		}

		if !c.reply(c.session.Handle(ctx, req)) {
			return
		}

		// A Logout made the session terminal; let the writer flush
		// the LogoutResponse and stop reading
		if c.session.State() == session.StateClosed {
			return
		}
	}
}

// writePump is the single wire writer: direct replies first, then
// asynchronous deliveries, plus keepalive pings.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(c.writerDone)
		ticker.Stop()
		_ = c.conn.Close()
	}()

	deliveries := c.session.Deliveries()
	for {
		select {
		case r, ok := <-c.replies:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			if !c.write(r) {
				return
			}
		case r, ok := <-deliveries:
			if !ok {
				// Session closed; keep serving direct replies until the
				// reader shuts the channel
				deliveries = nil
				continue
			}
			if !c.write(r) {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) write(r response.Response) bool {
	data, err := protocol.EncodeResponse(r)
	if err != nil {
		c.log.Error("Unencodable response", "kind", r.Kind(), "error", err)
		return true
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		c.log.Warn("Websocket write failed", "error", err)
		return false
	}
	return true
}
