package websockets

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/washflow/pkg/identity"
	"github.com/chris/washflow/pkg/websockets"
	"github.com/chris/washflow/pkg/websockets/mocks"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(ctx context.Context, token string) (*identity.Identity, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (*identity.Identity, error) {
	return f(ctx, token)
}

var tokens = resolverFunc(func(_ context.Context, token string) (*identity.Identity, error) {
	if token == "user-token" {
		return &identity.Identity{ID: "user1", Role: identity.RoleUser}, nil
	}
	return nil, identity.ErrInvalidToken
})

func connectEvent(query, headers map[string]string) events.APIGatewayWebsocketProxyRequest {
	return events.APIGatewayWebsocketProxyRequest{
		QueryStringParameters: query,
		Headers:               headers,
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{
			ConnectionID: "conn1",
			RouteKey:     "$connect",
		},
	}
}

func TestHandleConnect(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("Query Token", func(t *testing.T) {
		conns := mocks.NewConnectionManager(t)
		conns.On("AddConnection", ctx, "conn1", "user1").Return(nil)

		resp, err := NewHandler(conns, tokens, logger).Route(ctx, connectEvent(map[string]string{"access_token": "user-token"}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Header Token", func(t *testing.T) {
		conns := mocks.NewConnectionManager(t)
		conns.On("AddConnection", ctx, "conn1", "user1").Return(nil)

		resp, err := NewHandler(conns, tokens, logger).HandleConnect(ctx, connectEvent(nil, map[string]string{"authorization": "Bearer user-token"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Missing Or Invalid Token", func(t *testing.T) {
		conns := mocks.NewConnectionManager(t)
		h := NewHandler(conns, tokens, logger)

		resp, err := h.HandleConnect(ctx, connectEvent(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, err = h.HandleConnect(ctx, connectEvent(map[string]string{"access_token": "forged"}, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		conns := mocks.NewConnectionManager(t)
		conns.On("AddConnection", ctx, "conn1", "user1").Return(errors.New("throttled"))

		resp, err := NewHandler(conns, tokens, logger).HandleConnect(ctx, connectEvent(map[string]string{"access_token": "user-token"}, nil))

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHandleDisconnect(t *testing.T) {
	ctx := context.Background()
	conns := mocks.NewConnectionManager(t)
	conns.On("RemoveConnection", ctx, "conn1").Return(nil)

	event := connectEvent(nil, nil)
	event.RequestContext.RouteKey = "$disconnect"
	resp, err := NewHandler(conns, tokens, slog.New(slog.DiscardHandler)).Route(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLocalHandler(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	hub := websockets.NewHub(logger)
	local := NewLocalHandler(hub, logger)

	authed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") == "user-token" {
			r = r.WithContext(identity.WithIdentity(r.Context(), &identity.Identity{ID: "user1", Role: identity.RoleUser}))
		}
		local.ServeHTTP(w, r)
	})
	server := httptest.NewServer(authed)
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	t.Run("Anonymous Is Refused", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)

		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Registers Until Closed", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(url+"?access_token=user-token", nil)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			ids, _ := hub.GetUserConnections(context.Background(), "user1")
			return len(ids) == 1
		}, time.Second, 10*time.Millisecond)

		conn.Close()

		assert.Eventually(t, func() bool {
			ids, _ := hub.GetUserConnections(context.Background(), "user1")
			return len(ids) == 0
		}, time.Second, 10*time.Millisecond)
	})
}
