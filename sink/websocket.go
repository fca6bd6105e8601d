package sink

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/hupe1980/agentblend/core"
)

// WebSocket delivers frames over a websocket connection. Writes are
// mutex-guarded; gorilla connections support at most one concurrent writer.
type WebSocket struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWebSocket wraps an established connection. The caller keeps ownership
// of the connection lifecycle: the read side, pings, and close.
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	return &WebSocket{conn: conn}
}

// Send implements core.Sink.
func (s *WebSocket) Send(ev core.StatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn.WriteJSON(NewFrame(ev))
}
