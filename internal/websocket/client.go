package websocket

import (
	"context"
	"encoding/json"
	"time"

	"shop-assistant-be/internal/dto"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// MessageHandler answers one chat message for a conversation.
type MessageHandler func(ctx context.Context, conversationID, text string) (dto.WsChatResponse, error)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	ConversationID string

	// Buffered channel of outbound messages.
	Send chan []byte
}

// readPump reads chat frames, answers them and fans the reply out through the hub.
func (c *Client) readPump(handle MessageHandler) {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	// in-flight replies are abandoned when the hub shuts down
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-c.Hub.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("WebSocket", "Unexpected close", map[string]interface{}{
					"session_id": c.ConversationID,
					"error":      err.Error(),
				})
			}
			break
		}

		var req dto.WsChatRequest
		if err := json.Unmarshal(raw, &req); err != nil || req.Message == "" {
			continue
		}

		reply, err := handle(ctx, c.ConversationID, req.Message)
		if err != nil {
			c.Hub.logger.Error("WebSocket", "Failed to handle message", map[string]interface{}{
				"session_id": c.ConversationID,
				"error":      err.Error(),
			})
			continue
		}
		c.Hub.Deliver(c.ConversationID, reply)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// one frame per reply; clients parse each frame as a JSON object
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.Hub.Done():
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}
