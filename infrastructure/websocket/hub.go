package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/pkg/logger"
)

// conn is the subset of *websocket.Conn the hub uses.
type conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// client pairs a connection with a write lock. The underlying websocket
// allows only one concurrent writer, and Push runs on request goroutines.
type client struct {
	mu   sync.Mutex
	conn conn
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks one live connection per user and pushes notifications to it.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*client
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*client),
	}
}

// Register binds a connection to a user. An existing connection for the same
// user is closed first so each user holds at most one.
func (h *Hub) Register(userID uuid.UUID, c *websocket.Conn) {
	h.add(userID, c)
	logger.Debug("WebSocket client connected", "user_id", userID)
}

func (h *Hub) add(userID uuid.UUID, c conn) {
	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		old.conn.Close()
	}
	h.clients[userID] = &client{conn: c}
	h.mu.Unlock()
}

// Unregister removes a connection, but only if it is still the current one.
func (h *Hub) Unregister(userID uuid.UUID, c *websocket.Conn) {
	h.remove(userID, c)
	logger.Debug("WebSocket client disconnected", "user_id", userID)
}

func (h *Hub) remove(userID uuid.UUID, c conn) {
	h.mu.Lock()
	if current, ok := h.clients[userID]; ok && current.conn == c {
		delete(h.clients, userID)
	}
	h.mu.Unlock()
}

// Push sends a notification to the user's connection if one is open. Writes
// are serialized per connection; concurrent pushes to the same user queue on
// the client's write lock.
func (h *Hub) Push(userID uuid.UUID, notification *models.Notification) {
	h.mu.RLock()
	cl, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	msg := Message{
		Type: "notification",
		Data: dto.NotificationToResponse(notification),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to marshal websocket message", "error", err)
		return
	}

	if err := cl.write(data); err != nil {
		logger.Warn("Failed to push notification", "user_id", userID, "error", err)
	}
}
