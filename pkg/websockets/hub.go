package websockets

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultWriteTimeout bounds how long a publish waits on one local socket.
const DefaultWriteTimeout = 5 * time.Second

type localConn struct {
	userID string
	conn   *websocket.Conn
	mu     sync.Mutex // gorilla allows one concurrent writer
}

// Hub keeps WebSocket connections opened against the local server in memory.
// It is both the connection registry and the publisher when the service runs
// outside API Gateway.
type Hub struct {
	mu           sync.RWMutex
	conns        map[string]*localConn
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewHub creates an empty Hub with DefaultWriteTimeout.
func NewHub(logger *slog.Logger) *Hub {
	return NewHubWithWriteTimeout(logger, DefaultWriteTimeout)
}

// NewHubWithWriteTimeout creates an empty Hub whose writes give up on a
// socket after timeout.
func NewHubWithWriteTimeout(logger *slog.Logger, timeout time.Duration) *Hub {
	return &Hub{conns: map[string]*localConn{}, writeTimeout: timeout, logger: logger}
}

// Attach registers a live socket for userID.
func (h *Hub) Attach(connectionID, userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[connectionID] = &localConn{userID: userID, conn: conn}
}

// AddConnection registers a connection without a socket to write to.
func (h *Hub) AddConnection(ctx context.Context, connectionID, userID string) error {
	h.Attach(connectionID, userID, nil)
	return nil
}

// RemoveConnection forgets a connection.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, connectionID)
	return nil
}

// GetUserConnections lists the connection IDs registered for userID.
func (h *Hub) GetUserConnections(ctx context.Context, userID string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var ids []string
	for id, c := range h.conns {
		if c.userID == userID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Publish writes message to every live socket of userID. Sockets that fail
// to accept the write within the write timeout are closed and dropped.
func (h *Hub) Publish(ctx context.Context, userID string, message Message) error {
	h.mu.RLock()
	targets := map[string]*localConn{}
	for id, c := range h.conns {
		if c.userID == userID && c.conn != nil {
			targets[id] = c
		}
	}
	h.mu.RUnlock()

	for id, c := range targets {
		c.mu.Lock()
		err := c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err == nil {
			err = c.conn.WriteJSON(message)
		}
		c.mu.Unlock()
		if err != nil {
			h.logger.Info("dropping local connection after failed write", "connectionId", id, "error", err)
			_ = c.conn.Close()
			_ = h.RemoveConnection(ctx, id)
		}
	}
	return nil
}
