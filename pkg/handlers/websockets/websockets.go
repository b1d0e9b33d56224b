package websockets

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/washflow/pkg/handlers/respond"
	"github.com/chris/washflow/pkg/identity"
	"github.com/chris/washflow/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// TokenResolver turns a bearer token into an identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*identity.Identity, error)
}

// Handler handles API Gateway WebSocket route events.
type Handler struct {
	connManager websockets.ConnectionManager
	resolver    TokenResolver
	logger      *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager, resolver TokenResolver, logger *slog.Logger) *Handler {
	return &Handler{
		connManager: connManager,
		resolver:    resolver,
		logger:      logger,
	}
}

// HandleConnect authenticates the client and records which user owns the
// connection. Browsers cannot set headers on a websocket upgrade, so the
// token may also arrive as the access_token query parameter.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID

	token := request.QueryStringParameters["access_token"]
	if auth := headerValue(request.Headers, "Authorization"); auth != "" {
		token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token == "" {
		h.logger.Info("rejected anonymous websocket connection", "connectionId", connectionID)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized}, nil
	}

	id, err := h.resolver.Resolve(ctx, token)
	if err != nil {
		h.logger.Info("rejected websocket token", "connectionId", connectionID, "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized}, nil
	}

	if err := h.connManager.AddConnection(ctx, connectionID, id.ID); err != nil {
		h.logger.Error("failed to save connection ID", "connectionId", connectionID, "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	h.logger.Info("client connected", "connectionId", connectionID, "user_id", id.ID)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDisconnect handles client disconnections.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID
	h.logger.Info("client disconnected", "connectionId", connectionID)

	if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
		h.logger.Error("failed to delete connection ID", "connectionId", connectionID, "error", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDefault handles messages sent from a client. Clients only listen.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Debug("received message", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// Route dispatches an event by its route key.
func (h *Handler) Route(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return h.HandleConnect(ctx, request)
	case "$disconnect":
		return h.HandleDisconnect(ctx, request)
	default:
		return h.HandleDefault(ctx, request)
	}
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origins are enforced by the CORS layer in front of the router.
		return true
	},
}

// Attacher is the in-memory registry of local sockets.
type Attacher interface {
	Attach(connectionID, userID string, conn *websocket.Conn)
	RemoveConnection(ctx context.Context, connectionID string) error
}

// LocalHandler serves WebSockets from the local development server. The
// caller must already be authenticated.
type LocalHandler struct {
	hub    Attacher
	logger *slog.Logger
}

// NewLocalHandler creates a new LocalHandler.
func NewLocalHandler(hub Attacher, logger *slog.Logger) *LocalHandler {
	return &LocalHandler{hub: hub, logger: logger}
}

// ServeHTTP upgrades the request and keeps the socket registered until the
// client goes away.
func (h *LocalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	h.hub.Attach(connectionID, caller.ID, conn)
	h.logger.Info("client connected locally", "connectionId", connectionID, "user_id", caller.ID)

	defer func() {
		h.logger.Info("client disconnected locally", "connectionId", connectionID)
		if err := h.hub.RemoveConnection(context.Background(), connectionID); err != nil {
			h.logger.Error("failed to delete local connection ID", "error", err)
		}
	}()

	// Reading is what detects the client closing the socket.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("unexpected close error", "error", err)
			}
			break
		}
	}
}
