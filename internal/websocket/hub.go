package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"shop-assistant-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "shop-assistant:chat_events"

// Hub tracks web chat connections per conversation and fans replies out to
// every open tab, across instances when Redis is available.
type Hub struct {
	// Registered clients map: conversation ID -> clients (multi-tab)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	// closed once Run returns
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

type clusterEnvelope struct {
	Origin         string          `json:"origin"`
	ConversationID string          `json:"conversation_id"`
	Message        json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationID] = append(h.clients[client.ConversationID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.ConversationID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// Done is closed when the hub stops running.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Register attaches a client. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister detaches a client; a no-op after the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.ConversationID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.ConversationID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.ConversationID]) == 0 {
		delete(h.clients, client.ConversationID)
		h.logger.Info("Hub", "Conversation has no open clients", map[string]interface{}{"session_id": client.ConversationID})
	}
}

// Connected reports how many local clients are attached to a conversation.
func (h *Hub) Connected(conversationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[conversationID])
}

// Deliver sends a frame to every client of a conversation, locally and on other instances.
func (h *Hub) Deliver(conversationID string, frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode frame", map[string]interface{}{
			"session_id": conversationID,
			"error":      err.Error(),
		})
		return
	}

	h.deliverLocal(conversationID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterEnvelope{
			Origin:         h.instanceID,
			ConversationID: conversationID,
			Message:        data,
		})
		if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to publish to cluster", map[string]interface{}{
				"session_id": conversationID,
				"error":      err.Error(),
			})
		}
	}
}

func (h *Hub) deliverLocal(conversationID string, data []byte) {
	// sends happen under the read lock so remove cannot close a channel mid-send
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[conversationID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"session_id": conversationID})
			go h.Unregister(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.deliverCluster(msg.Payload)
		}
	}
}

func (h *Hub) deliverCluster(payload string) {
	var env clusterEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		h.logger.Warn("Hub", "Dropping malformed cluster message", map[string]interface{}{"error": err.Error()})
		return
	}
	if env.Origin == h.instanceID {
		return
	}
	h.deliverLocal(env.ConversationID, env.Message)
}
