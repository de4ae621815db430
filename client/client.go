// Package client is a minimal websocket client for exercising the
// server from tests and tooling. It is not the graphical client.
package client

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"chatbox-lab/protocol"
	"chatbox-lab/protocol/request"
	"chatbox-lab/protocol/response"
)

type Client struct {
	conn *websocket.Conn

	// Inbound traffic demultiplexed by the reader goroutine
	responses chan response.Response
	errs      chan error
}

// Dial connects to a running server, e.g. "ws://127.0.0.1:8080/ws".
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}

	c := &Client{
		conn:      conn,
		responses: make(chan response.Response, 64),
		errs:      make(chan error, 1),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.responses)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case c.errs <- err:
			default:
			}
			return
		}
		r, err := protocol.DecodeResponse(data)
		if err != nil {
			select {
			case c.errs <- err:
			default:
			}
			return
		}
		c.responses <- r
	}
}

func (c *Client) Send(r request.Request) error {
	data, err := protocol.EncodeRequest(r)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

// Receive blocks for the next response, direct reply or fan-out
// delivery alike.
func (c *Client) Receive(timeout time.Duration) (response.Response, error) {
	select {
	case r, ok := <-c.responses:
		if !ok {
			return nil, fmt.Errorf("connection closed")
		}
		return r, nil
	case err := <-c.errs:
		return nil, err
	case <-time.After(timeout):
		return nil, fmt.Errorf("no response within %v", timeout)
	}
}

// Call sends a request and waits for one response.
func (c *Client) Call(r request.Request, timeout time.Duration) (response.Response, error) {
	if err := c.Send(r); err != nil {
		return nil, err
	}
	return c.Receive(timeout)
}

func (c *Client) Close() error {
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	return c.conn.Close()
}
