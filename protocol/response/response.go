// Package response defines the closed set of outbound variants pushed to
// clients. A Session's sink consumes these in router-issued order.
package response

import (
	"chatbox-lab/domain"
)

type Response interface {
	Kind() string
	isResponse()
}

// UserProfile is what a user record looks like on the wire. The password
// hash never leaves the server.
type UserProfile struct {
	ID       domain.UserID
	Username string
	Online   bool
	Banned   bool
	Roles    []string
}

// ChatBoxSnapshot carries the full aggregate, hidden messages already
// filtered for the requesting client.
type ChatBoxSnapshot struct {
	ID           domain.ChatBoxID
	Name         string
	Participants []domain.UserID
	Messages     []domain.Message
	Hidden       bool
}

type LoginResponse struct {
	// User is absent when the login failed
	User        *UserProfile
	ChatBoxList []domain.Summary
	Token       string
}

type Notification struct {
	Text string
}

type SendChatBox struct {
	ChatBox ChatBoxSnapshot
}

type SendChatBoxList struct {
	List []domain.Summary
}

type SendUserList struct {
	List []UserProfile
}

type SendMessage struct {
	Message   domain.Message
	ChatBoxID domain.ChatBoxID
}

type SendChatLog struct {
	Text string
}

type SearchResult struct {
	ChatBoxID domain.ChatBoxID
	Query     string
	Messages  []domain.Message
}

type LogoutResponse struct{}

func (LoginResponse) Kind() string    { return "LoginResponse" }
func (Notification) Kind() string     { return "Notification" }
func (SendChatBox) Kind() string      { return "SendChatBox" }
func (SendChatBoxList) Kind() string  { return "SendChatBoxList" }
func (SendUserList) Kind() string     { return "SendUserList" }
func (SendMessage) Kind() string      { return "SendMessage" }
func (SendChatLog) Kind() string      { return "SendChatLog" }
func (SearchResult) Kind() string     { return "SearchResult" }
func (LogoutResponse) Kind() string   { return "LogoutResponse" }

func (LoginResponse) isResponse()   {}
func (Notification) isResponse()    {}
func (SendChatBox) isResponse()     {}
func (SendChatBoxList) isResponse() {}
func (SendUserList) isResponse()    {}
func (SendMessage) isResponse()     {}
func (SendChatLog) isResponse()     {}
func (SearchResult) isResponse()    {}
func (LogoutResponse) isResponse()  {}
