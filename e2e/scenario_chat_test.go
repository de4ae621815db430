package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"chatbox-lab/domain"
	"chatbox-lab/protocol/request"
	"chatbox-lab/protocol/response"
)

type ChatScenarioSuite struct {
	BaseWsSuite
}

func TestChatScenarioSuite(t *testing.T) {
	suite.Run(t, new(ChatScenarioSuite))
}

// TestTwoClientsExchangeAMessage is the wire-level variant of the core
// scenario: register two clients over websockets, share a chatbox, send
// one message and watch it arrive on the other socket.
func (s *ChatScenarioSuite) TestTwoClientsExchangeAMessage() {
	t := s.T()
	req := s.Require()

	alice := s.Dial(t, "alice")
	bob := s.Dial(t, "bob")

	resp, err := alice.Call(request.CreateUser{Username: "wire_alice", Password: "ComplexPass123!"}, callTimeout)
	req.NoError(err)
	aliceLogin, ok := resp.(response.LoginResponse)
	req.True(ok)
	req.NotNil(aliceLogin.User)
	aliceID := aliceLogin.User.ID

	resp, err = bob.Call(request.CreateUser{Username: "wire_bob", Password: "ComplexPass123!"}, callTimeout)
	req.NoError(err)
	bobLogin, ok := resp.(response.LoginResponse)
	req.True(ok)
	bobID := bobLogin.User.ID

	resp, err = alice.Call(request.CreateChat{
		ParticipantIDs: []domain.UserID{aliceID, bobID},
		Name:           "wire-general",
	}, callTimeout)
	req.NoError(err)
	created, ok := resp.(response.SendChatBoxList)
	req.True(ok)
	req.Len(created.List, 1)
	boxID := created.List[0].ID

	resp, err = alice.Call(request.SendMessage{ChatBoxID: boxID, Content: "hello over the wire"}, callTimeout)
	req.NoError(err)
	sent, ok := resp.(response.SendMessage)
	req.True(ok)
	req.Equal("hello over the wire", sent.Message.Content)

	// Bob's socket gets the delivery without asking
	delivered, err := bob.Receive(callTimeout)
	req.NoError(err)
	delivery, ok := delivered.(response.SendMessage)
	req.True(ok)
	req.Equal(boxID, delivery.ChatBoxID)
	req.Equal(sent.Message.ID, delivery.Message.ID)
}

// TestUnauthenticatedRequestsAreRefused checks the session gate across
// the wire.
func (s *ChatScenarioSuite) TestUnauthenticatedRequestsAreRefused() {
	t := s.T()
	req := s.Require()

	c := s.Dial(t, "stranger")

	resp, err := c.Call(request.AskUserList{}, callTimeout)
	req.NoError(err)
	notification, ok := resp.(response.Notification)
	req.True(ok)
	req.Equal("please log in first", notification.Text)
}

// TestLogoutClosesTheStream verifies a clean goodbye: LogoutResponse,
// then the server closes the socket.
func (s *ChatScenarioSuite) TestLogoutClosesTheStream() {
	t := s.T()
	req := s.Require()

	c := s.Dial(t, "short_lived")

	resp, err := c.Call(request.CreateUser{Username: "wire_carol", Password: "ComplexPass123!"}, callTimeout)
	req.NoError(err)
	_, ok := resp.(response.LoginResponse)
	req.True(ok)

	resp, err = c.Call(request.Logout{}, callTimeout)
	req.NoError(err)
	_, ok = resp.(response.LogoutResponse)
	req.True(ok)

	_, err = c.Receive(500 * time.Millisecond)
	req.Error(err)
}
