package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/washflow/pkg/config"
	"github.com/chris/washflow/pkg/logging"
	"github.com/chris/washflow/pkg/payments"
	"github.com/chris/washflow/pkg/scheduler"
	dydbstore "github.com/chris/washflow/pkg/storage/dynamodb"
	"github.com/chris/washflow/pkg/washrequests"
	"github.com/chris/washflow/pkg/websockets"
)

var sweeper *payments.Sweeper

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}
	if err := cfg.ValidateReconciliation(); err != nil {
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

	// Granting only touches the wash request table, so booking
	// dependencies are left unset.
	granter := washrequests.NewService(store, nil, nil, nil, publisher, logger)
	reconciler := payments.NewReconciler(store, granter, logger)
	sqsScheduler := scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)

	sweeper = payments.NewSweeper(store, sqsScheduler, reconciler, cfg.StuckTransactionThreshold, logger)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	_, err := sweeper.Run(ctx)
	return err
}

func main() {
	lambda.Start(HandleRequest)
}
