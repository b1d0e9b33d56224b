package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/washflow/pkg/config"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/handlers"
	"github.com/chris/washflow/pkg/handlers/transactions"
	"github.com/chris/washflow/pkg/handlers/washrequests"
	wshandlers "github.com/chris/washflow/pkg/handlers/websockets"
	"github.com/chris/washflow/pkg/identity"
	"github.com/chris/washflow/pkg/logging"
	"github.com/chris/washflow/pkg/payments"
	"github.com/chris/washflow/pkg/reviews"
	dydbstore "github.com/chris/washflow/pkg/storage/dynamodb"
	washsvc "github.com/chris/washflow/pkg/washrequests"
	"github.com/chris/washflow/pkg/websockets"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := cfg.ValidateAPI(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Transactions:         cfg.TransactionsTable,
		WashRequests:         cfg.WashRequestsTable,
		Outlets:              cfg.OutletsTable,
		Vehicles:             cfg.VehiclesTable,
		WebsocketConnections: cfg.ConnectionsTable,
	})

	// Status updates go through API Gateway when it is configured and to
	// sockets held by this process otherwise.
	var publisher websockets.Publisher
	var wsHandler http.Handler
	if cfg.WebSocketAPIEndpoint != "" && cfg.ConnectionsTable != "" {
		publisher, err = websockets.NewPublisher(ctx, store, cfg.WebSocketAPIEndpoint, logger)
		if err != nil {
			return err
		}
	} else {
		hub := websockets.NewHub(logger)
		publisher = hub
		wsHandler = wshandlers.NewLocalHandler(hub, logger)
	}

	var cache identity.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer client.Close()
		cache = identity.NewRedisCache(client)
	}
	resolver := identity.NewResolver(cfg.JWTSecret, cache, cfg.IdentityCacheTTL, logger)

	gw := gateway.NewClient(gateway.Config{
		SecretKey: cfg.PaystackSecretKey,
		BaseURL:   cfg.PaystackBaseURL,
		Timeout:   cfg.PaystackTimeout,
	})
	ledger := payments.NewLedgerWriter(store, logger, cfg.LedgerRetryDelay, cfg.LedgerMaxRetries)
	checkout := payments.NewCheckout(gw, ledger, logger)
	requests := washsvc.NewService(store, store, store, checkout, publisher, logger)
	reconciler := payments.NewReconciler(store, requests, logger)
	paymentSvc := payments.NewService(gw, reconciler, store, cfg.PaystackSecretKey, logger)
	reviewSvc := reviews.NewService(store, store, logger)

	api := handlers.NewApiHandler(
		transactions.NewTransactionsHandler(checkout, paymentSvc, logger),
		washrequests.NewWashRequestsHandler(requests, reviewSvc, logger),
	)
	router := handlers.NewRouter(api, handlers.RouterConfig{
		Resolver:       resolver,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		WebSocket:      wsHandler,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.HTTPPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)

	// Ledger writes still in flight belong to checkouts already answered.
	ledger.Wait()
	return err
}
