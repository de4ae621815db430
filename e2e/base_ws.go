package e2e

import (
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"chatbox-lab/auth"
	"chatbox-lab/client"
	"chatbox-lab/keymutex"
	"chatbox-lab/moderation"
	"chatbox-lab/observability"
	"chatbox-lab/repositories"
	"chatbox-lab/runtime"
	"chatbox-lab/server"
	"chatbox-lab/services"
)

const callTimeout = 3 * time.Second

// BaseWsSuite drives a real server over real websockets. With
// SERVER_ADDR set it targets that deployment; otherwise it boots the
// full stack in-process on a test listener.
type BaseWsSuite struct {
	suite.Suite
	Config Config

	wsURL    string
	testSrv  *httptest.Server
	cleanups []func()
}

func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerAddr != "" {
		s.wsURL = fmt.Sprintf("ws://%s/ws", s.Config.ServerAddr)
		return
	}
	s.startInProcess()
}

func (s *BaseWsSuite) TearDownSuite() {
	if s.testSrv != nil {
		s.testSrv.Close()
	}
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
}

func (s *BaseWsSuite) startInProcess() {
	req := s.Require()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	s.cleanups = append(s.cleanups, func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(s.T().TempDir()))
	req.NoError(err)

	users, err := repositories.NewUserRepository(db, log)
	req.NoError(err)
	s.cleanups = append(s.cleanups, func() { _ = users.Close() })

	boxes, err := repositories.NewChatBoxRepository(db, log)
	req.NoError(err)
	s.cleanups = append(s.cleanups, func() { _ = boxes.Close() })

	index := repositories.NewMessageIndex(writer, log)
	s.cleanups = append(s.cleanups, func() { _ = index.Close() })

	moderator, err := moderation.NewModerator([]string{"stupid"}, '*')
	req.NoError(err)

	stats := observability.NewStatsManager()
	registry := runtime.NewRegistry()
	issuer := auth.NewTokenIssuer([]byte("e2e-key"), time.Hour)

	authService := services.NewAuthService(users, keymutex.New(64), issuer, log)
	chatService := services.NewChatService(boxes, registry, keymutex.New(64), moderator, index, stats, log)
	adminService := services.NewAdminService(authService, chatService, users, registry, log)

	srv := server.NewServer("unused", authService, chatService, adminService, registry, stats, 64, log)
	s.testSrv = httptest.NewServer(srv.Handler())
	s.wsURL = "ws" + strings.TrimPrefix(s.testSrv.URL, "http") + "/ws"
}

// Dial opens a fresh client connection with a colorized log header.
func (s *BaseWsSuite) Dial(t *testing.T, name string) *client.Client {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	c, err := client.Dial(s.wsURL)
	s.Require().NoError(err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}
