package hub

import (
	"sync"
	"time"

	"homehub/internal/logger"
	"homehub/internal/metrics"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// wsConn is the slice of *websocket.Conn the hub needs; tests fake it.
type wsConn interface {
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
}

// Conn serializes writes to one websocket connection. Gorilla permits a
// single concurrent writer, and both the fan-out and the ping loop write.
type Conn struct {
	mu sync.Mutex
	ws wsConn
}

func NewConn(ws wsConn) *Conn {
	return &Conn{ws: ws}
}

// SendJSON writes one JSON frame under the write deadline.
func (c *Conn) SendJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// Ping writes a ping control frame under the write deadline.
func (c *Conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}

// Hub is the registry of currently connected listeners. Connections are
// added on upgrade and removed when their reader detects closure; fan-out
// walks a defensive snapshot so listeners can drop mid-broadcast.
type Hub struct {
	mu    sync.Mutex
	conns map[*Conn]struct{}
	log   *logger.Logger
}

func New(log *logger.Logger) *Hub {
	return &Hub{
		conns: make(map[*Conn]struct{}),
		log:   log,
	}
}

// Add registers a listener.
func (h *Hub) Add(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
	metrics.WSConnections.Set(float64(len(h.conns)))
}

// Remove drops a listener. Safe to call for connections never added.
func (h *Hub) Remove(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
	metrics.WSConnections.Set(float64(len(h.conns)))
}

// Count returns the number of registered listeners.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast writes one JSON frame to every listener registered at call
// time and reports how many writes succeeded. Delivery is best-effort: a
// closed or errored connection is skipped, never retried, and never
// surfaces an error to the caller.
func (h *Hub) Broadcast(v any) int {
	h.mu.Lock()
	snapshot := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		snapshot = append(snapshot, c)
	}
	h.mu.Unlock()

	delivered := 0
	for _, c := range snapshot {
		if err := c.SendJSON(v); err != nil {
			if h.log != nil {
				h.log.Infow("ws_broadcast_skip", "err", err)
			}
			metrics.BroadcastsDropped.Inc()
			continue
		}
		delivered++
	}
	metrics.BroadcastsSent.Add(float64(delivered))
	return delivered
}
