// Package protocol implements the wire encoding of request and response
// variants: a msgpack stream holding the variant kind first, the payload
// second. Encoding the kind separately lets the decoder pick the concrete
// struct before parsing the payload.
package protocol

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"

	"chatbox-lab/protocol/request"
	"chatbox-lab/protocol/response"
)

func EncodeRequest(r request.Request) ([]byte, error) {
	return encode(r.Kind(), r)
}

func EncodeResponse(r response.Response) ([]byte, error) {
	return encode(r.Kind(), r)
}

func encode(kind string, payload interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	if err := encoder.Encode(kind); err != nil {
		return nil, fmt.Errorf("failed encoding kind: %w", err)
	}
	if err := encoder.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed encoding %s payload: %w", kind, err)
	}
	return buf.Bytes(), nil
}

func DecodeRequest(data []byte) (request.Request, error) {
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	var kind string
	if err := decoder.Decode(&kind); err != nil {
		return nil, fmt.Errorf("failed decoding request kind: %w", err)
	}

	switch kind {
	case "Login":
		return decodeInto[request.Login](decoder, kind)
	case "CreateUser":
		return decodeInto[request.CreateUser](decoder, kind)
	case "Resume":
		return decodeInto[request.Resume](decoder, kind)
	case "Logout":
		return decodeInto[request.Logout](decoder, kind)
	case "AskChatBoxList":
		return decodeInto[request.AskChatBoxList](decoder, kind)
	case "AskChatBox":
		return decodeInto[request.AskChatBox](decoder, kind)
	case "AskChatLog":
		return decodeInto[request.AskChatLog](decoder, kind)
	case "SearchChatLog":
		return decodeInto[request.SearchChatLog](decoder, kind)
	case "AskUserList":
		return decodeInto[request.AskUserList](decoder, kind)
	case "CreateChat":
		return decodeInto[request.CreateChat](decoder, kind)
	case "SendMessage":
		return decodeInto[request.SendMessage](decoder, kind)
	case "HideChatBox":
		return decodeInto[request.HideChatBox](decoder, kind)
	case "UnhideChatBox":
		return decodeInto[request.UnhideChatBox](decoder, kind)
	case "HideMessage":
		return decodeInto[request.HideMessage](decoder, kind)
	case "BanUser":
		return decodeInto[request.BanUser](decoder, kind)
	case "UnbanUser":
		return decodeInto[request.UnbanUser](decoder, kind)
	case "DeleteUser":
		return decodeInto[request.DeleteUser](decoder, kind)
	case "ResetPassword":
		return decodeInto[request.ResetPassword](decoder, kind)
	case "SendSystemMessage":
		return decodeInto[request.SendSystemMessage](decoder, kind)
	default:
		return nil, fmt.Errorf("unknown request kind %q", kind)
	}
}

func DecodeResponse(data []byte) (response.Response, error) {
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	var kind string
	if err := decoder.Decode(&kind); err != nil {
		return nil, fmt.Errorf("failed decoding response kind: %w", err)
	}

	switch kind {
	case "LoginResponse":
		return decodeInto[response.LoginResponse](decoder, kind)
	case "Notification":
		return decodeInto[response.Notification](decoder, kind)
	case "SendChatBox":
		return decodeInto[response.SendChatBox](decoder, kind)
	case "SendChatBoxList":
		return decodeInto[response.SendChatBoxList](decoder, kind)
	case "SendUserList":
		return decodeInto[response.SendUserList](decoder, kind)
	case "SendMessage":
		return decodeInto[response.SendMessage](decoder, kind)
	case "SendChatLog":
		return decodeInto[response.SendChatLog](decoder, kind)
	case "SearchResult":
		return decodeInto[response.SearchResult](decoder, kind)
	case "LogoutResponse":
		return decodeInto[response.LogoutResponse](decoder, kind)
	default:
		return nil, fmt.Errorf("unknown response kind %q", kind)
	}
}

func decodeInto[T any](decoder *msgpack.Decoder, kind string) (T, error) {
	var v T
	if err := decoder.Decode(&v); err != nil {
		return v, fmt.Errorf("failed decoding %s payload: %w", kind, err)
	}
	return v, nil
}
