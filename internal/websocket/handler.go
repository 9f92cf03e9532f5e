package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a web chat connection to its conversation and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, conversationID string, handle MessageHandler) {
	client := &Client{Hub: hub, Conn: c, ConversationID: conversationID, Send: make(chan []byte, 64)}
	if !hub.Register(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump(handle)
}
