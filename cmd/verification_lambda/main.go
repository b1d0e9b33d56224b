package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/washflow/pkg/config"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/logging"
	"github.com/chris/washflow/pkg/payments"
	dydbstore "github.com/chris/washflow/pkg/storage/dynamodb"
	"github.com/chris/washflow/pkg/washrequests"
	"github.com/chris/washflow/pkg/websockets"
)

var consumer *payments.VerificationConsumer

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	if err := cfg.ValidateVerification(); err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Transactions:         cfg.TransactionsTable,
		WashRequests:         cfg.WashRequestsTable,
		WebsocketConnections: cfg.ConnectionsTable,
	})

	var publisher websockets.Publisher
	if cfg.WebSocketAPIEndpoint != "" && cfg.ConnectionsTable != "" {
		publisher, err = websockets.NewPublisher(context.TODO(), store, cfg.WebSocketAPIEndpoint, logger)
		if err != nil {
			log.Fatal(err)
		}
	}

	gw := gateway.NewClient(gateway.Config{
		SecretKey: cfg.PaystackSecretKey,
		BaseURL:   cfg.PaystackBaseURL,
		Timeout:   cfg.PaystackTimeout,
	})
	granter := washrequests.NewService(store, nil, nil, nil, publisher, logger)
	reconciler := payments.NewReconciler(store, granter, logger)
	service := payments.NewService(gw, reconciler, store, cfg.PaystackSecretKey, logger)

	consumer = payments.NewVerificationConsumer(service, logger)
}

func main() {
	lambda.Start(consumer.HandleSQSEvent)
}
