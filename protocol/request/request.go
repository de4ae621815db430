// Package request defines the closed set of inbound variants a client can
// send. Dispatch happens on a plain type switch, never on reflection.
package request

import (
	"chatbox-lab/domain"
)

type Request interface {
	Kind() string
	isRequest()
}

type Login struct {
	Username string
	Password string
}

type CreateUser struct {
	Username string
	Password string
	IsAdmin  bool
}

type Resume struct {
	Token string
}

type Logout struct{}

type AskChatBoxList struct{}

type AskChatBox struct {
	ChatBoxID domain.ChatBoxID
}

type AskChatLog struct {
	ChatBoxID domain.ChatBoxID
}

type SearchChatLog struct {
	ChatBoxID domain.ChatBoxID
	Query     string
}

type AskUserList struct{}

type CreateChat struct {
	ParticipantIDs []domain.UserID
	Name           string
}

type SendMessage struct {
	ChatBoxID domain.ChatBoxID
	Content   string
}

type HideChatBox struct {
	ChatBoxID domain.ChatBoxID
}

type UnhideChatBox struct {
	ChatBoxID domain.ChatBoxID
}

type HideMessage struct {
	ChatBoxID domain.ChatBoxID
	MessageID domain.MessageID
}

type BanUser struct {
	UserID domain.UserID
}

type UnbanUser struct {
	UserID domain.UserID
}

type DeleteUser struct {
	UserID domain.UserID
}

type ResetPassword struct {
	UserID      domain.UserID
	NewPassword string
}

type SendSystemMessage struct {
	Text string
}

func (Login) Kind() string             { return "Login" }
func (CreateUser) Kind() string        { return "CreateUser" }
func (Resume) Kind() string            { return "Resume" }
func (Logout) Kind() string            { return "Logout" }
func (AskChatBoxList) Kind() string    { return "AskChatBoxList" }
func (AskChatBox) Kind() string        { return "AskChatBox" }
func (AskChatLog) Kind() string        { return "AskChatLog" }
func (SearchChatLog) Kind() string     { return "SearchChatLog" }
func (AskUserList) Kind() string       { return "AskUserList" }
func (CreateChat) Kind() string        { return "CreateChat" }
func (SendMessage) Kind() string       { return "SendMessage" }
func (HideChatBox) Kind() string       { return "HideChatBox" }
func (UnhideChatBox) Kind() string     { return "UnhideChatBox" }
func (HideMessage) Kind() string       { return "HideMessage" }
func (BanUser) Kind() string           { return "BanUser" }
func (UnbanUser) Kind() string         { return "UnbanUser" }
func (DeleteUser) Kind() string        { return "DeleteUser" }
func (ResetPassword) Kind() string     { return "ResetPassword" }
func (SendSystemMessage) Kind() string { return "SendSystemMessage" }

func (Login) isRequest()             {}
func (CreateUser) isRequest()        {}
func (Resume) isRequest()            {}
func (Logout) isRequest()            {}
func (AskChatBoxList) isRequest()    {}
func (AskChatBox) isRequest()        {}
func (AskChatLog) isRequest()        {}
func (SearchChatLog) isRequest()     {}
func (AskUserList) isRequest()       {}
func (CreateChat) isRequest()        {}
func (SendMessage) isRequest()       {}
func (HideChatBox) isRequest()       {}
func (UnhideChatBox) isRequest()     {}
func (HideMessage) isRequest()       {}
func (BanUser) isRequest()           {}
func (UnbanUser) isRequest()         {}
func (DeleteUser) isRequest()        {}
func (ResetPassword) isRequest()     {}
func (SendSystemMessage) isRequest() {}
