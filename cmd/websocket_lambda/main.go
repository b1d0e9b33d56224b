package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/washflow/pkg/config"
	wshandlers "github.com/chris/washflow/pkg/handlers/websockets"
	"github.com/chris/washflow/pkg/identity"
	"github.com/chris/washflow/pkg/logging"
	dydbstore "github.com/chris/washflow/pkg/storage/dynamodb"
	"github.com/redis/go-redis/v9"
)

var handler *wshandlers.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	if err := cfg.ValidateWebSocket(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}
	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		WebsocketConnections: cfg.ConnectionsTable,
	})

	var cache identity.Cache
	if cfg.RedisAddr != "" {
		cache = identity.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}))
	}
	resolver := identity.NewResolver(cfg.JWTSecret, cache, cfg.IdentityCacheTTL, logger)

	handler = wshandlers.NewHandler(store, resolver, logger)
}

func main() {
	lambda.Start(handler.Route)
}
