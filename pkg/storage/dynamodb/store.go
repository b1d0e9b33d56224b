package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables holds the table names the Store reads and writes.
type Tables struct {
	Transactions         string
	WashRequests         string
	Outlets              string
	Vehicles             string
	WebsocketConnections string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                        DynamoDBAPI
	TransactionsTableName         string
	WashRequestsTableName         string
	OutletsTableName              string
	VehiclesTableName             string
	WebsocketConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:                        client,
		TransactionsTableName:         tables.Transactions,
		WashRequestsTableName:         tables.WashRequests,
		OutletsTableName:              tables.Outlets,
		VehiclesTableName:             tables.Vehicles,
		WebsocketConnectionsTableName: tables.WebsocketConnections,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// isConditionFailed reports whether err is a failed condition expression on a single-item write.
func isConditionFailed(err error) bool {
	var condCheckFailed *types.ConditionalCheckFailedException
	return errors.As(err, &condCheckFailed)
}

// cancelledAt returns the indexes of the transaction items whose condition check failed.
func cancelledAt(err error) []int {
	var txCanceled *types.TransactionCanceledException
	if !errors.As(err, &txCanceled) {
		return nil
	}
	var idx []int
	for i, reason := range txCanceled.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			idx = append(idx, i)
		}
	}
	return idx
}

func contains(idx []int, i int) bool {
	for _, v := range idx {
		if v == i {
			return true
		}
	}
	return false
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

// queryItems follows LastEvaluatedKey until the query is exhausted or limit
// items have been collected. A limit of 0 collects every page.
func queryItems[T any](ctx context.Context, client DynamoDBAPI, input *dynamodb.QueryInput, limit int) ([]T, error) {
	var items []T
	for {
		result, err := client.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		var page []T
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal query results: %w", err)
		}
		items = append(items, page...)

		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}
