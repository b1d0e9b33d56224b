package websockets

import (
	"context"
)

// ConnectionManager defines the interface for managing WebSocket connections.
// Each connection belongs to the user who opened it.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID, userID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetUserConnections(ctx context.Context, userID string) ([]string, error)
}

// Publisher defines the interface for publishing messages to a user's WebSocket clients.
type Publisher interface {
	Publish(ctx context.Context, userID string, message Message) error
}

// NoOpPublisher discards every message.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, userID string, message Message) error {
	return nil
}
