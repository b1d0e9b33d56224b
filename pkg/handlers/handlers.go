package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/handlers/respond"
	"github.com/chris/washflow/pkg/handlers/transactions"
	"github.com/chris/washflow/pkg/handlers/washrequests"
	"github.com/chris/washflow/pkg/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ApiHandler implements the generated server interface by delegating to the
// payment and wash request handlers.
type ApiHandler struct {
	*transactions.TransactionsHandler
	*washrequests.WashRequestsHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(tx *transactions.TransactionsHandler, wr *washrequests.WashRequestsHandler) *ApiHandler {
	return &ApiHandler{TransactionsHandler: tx, WashRequestsHandler: wr}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// RouterConfig carries what NewRouter needs besides the API handler.
type RouterConfig struct {
	Resolver       middleware.TokenResolver
	AllowedOrigins []string
	// WebSocket serves /ws when set.
	WebSocket http.Handler
	Logger    *slog.Logger
}

// NewRouter mounts the API, the gateway webhook and the health check.
// Authentication runs for every route; the roles each API operation
// requires are enforced from its declared scopes.
func NewRouter(h *ApiHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Authenticate(cfg.Resolver, cfg.Logger))
	r.Use(middleware.NewStructuredLogger(cfg.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/payments/paystack/webhook", h.PaystackWebhook)
	if cfg.WebSocket != nil {
		r.With(middleware.RequireRole()).Handle("/ws", cfg.WebSocket)
	}

	return api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{middleware.RequireScopes},
		ErrorHandlerFunc: respond.BadParam,
	})
}
