package storage

import "context"

// WebSocketManager defines the interface for storing and retrieving WebSocket connection IDs.
// Connections are registered against the user they were opened for.
type WebSocketManager interface {
	AddConnection(ctx context.Context, connectionID, userID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetUserConnections(ctx context.Context, userID string) ([]string, error)
}
