// Package events pushes moderation decisions to connected dashboards over
// websockets, so open tabs see approvals and rejections without refetching.
// Delivery is best effort: a client that cannot be written to is dropped.
package events

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is one moderation decision.
type Event struct {
	Kind   string    `json:"kind"`
	ID     string    `json:"id"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

const (
	AdApproved           = "ad_approved"
	AdRejected           = "ad_rejected"
	VerificationApproved = "verification_approved"
	VerificationRejected = "verification_rejected"
	UserSuspended        = "user_suspended"
	UserDeleted          = "user_deleted"
)

type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
	log         *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
		log:         log,
	}
}

func (h *Hub) register(id string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[id] = conn
}

func (h *Hub) unregister(id string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

// Broadcast sends the event to every connected dashboard. Write failures
// drop the client, never the caller.
func (h *Hub) Broadcast(kind, id, reason string) {
	ev := Event{Kind: kind, ID: id, Reason: reason, At: time.Now()}

	h.mutex.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for cid, conn := range h.connections {
		conns[cid] = conn
	}
	h.mutex.RUnlock()

	for cid, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.log.Debug("dropping feed client", zap.String("client", cid), zap.Error(err))
			h.unregister(cid)
		}
	}
}

// ClientCount reports how many dashboards are listening.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

// Close disconnects everyone, used on shutdown.
func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// same-origin policy is handled by the CORS allowlist upstream of this
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. The feed is one-way; inbound frames are drained only to
// detect disconnects.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	h.register(id, conn)
	h.log.Info("feed client connected", zap.String("client", id))

	go func() {
		defer h.unregister(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
