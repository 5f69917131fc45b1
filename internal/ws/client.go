package ws

import (
	"time"

	"citadel_backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one websocket subscriber to the event stream.
type Client struct {
	IdentityID string
	// Filter narrows the stream to one resource id; empty means all.
	Filter string
	Conn   *websocket.Conn
	Send   chan []byte

	hub *Hub
}

func NewClient(identityID string, conn *websocket.Conn, hub *Hub, filter string) *Client {
	return &Client{
		IdentityID: identityID,
		Filter:     filter,
		Conn:       conn,
		Send:       make(chan []byte, 256),
		hub:        hub,
	}
}

// Run registers the client and drives both pumps until disconnect.
func (c *Client) Run() {
	c.hub.register(c)
	go c.writePump()
	c.readPump()
}

// readPump drains inbound frames. The stream is one-way; inbound data is
// ignored, but the pump keeps ping/pong alive and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(1024)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			logger.Debug("ws client read closed", "identity", c.IdentityID, "error", err)
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
