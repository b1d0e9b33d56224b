package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
)

const (
	transactionStatusGSI = "status-created_at-index"
	transactionUserGSI   = "user_id-index"
)

// GetTransaction retrieves a transaction from DynamoDB by its reference.
func (s *Store) GetTransaction(ctx context.Context, reference string) (*models.Transaction, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.TransactionsTableName),
		Key:            stringKey("reference", reference),
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("transaction with reference %s: %w", reference, storage.ErrNotFound)
	}

	var tx models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &tx, nil
}

// CreateTransaction records a new transaction in the 'initiated' state.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	now := time.Now().UTC()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now
	tx.Status = models.INITIATED
	tx.Granted = false

	item, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(reference)"), // One record per reference.
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("transaction %s: %w", tx.Reference, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create transaction in DynamoDB: %w", err)
	}

	return tx, nil
}

// CompleteTransaction atomically moves a transaction from 'initiated' to 'completed'.
func (s *Store) CompleteTransaction(ctx context.Context, reference string, paidAt time.Time) error {
	paidAtAV, err := attributevalue.Marshal(paidAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to marshal paid_at: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Key:                 stringKey("reference", reference),
		UpdateExpression:    aws.String("SET #status = :completed_status, paid_at = :paid_at, updated_at = :paid_at"),
		ConditionExpression: aws.String("#status = :initiated_status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed_status": &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
			":initiated_status": &types.AttributeValueMemberS{Value: string(models.INITIATED)},
			":paid_at":          paidAtAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return storage.ErrConditionFailed
		}
		return fmt.Errorf("failed to update transaction status to completed: %w", err)
	}

	return nil
}

// CancelTransaction atomically moves a transaction from 'initiated' to 'cancelled'.
func (s *Store) CancelTransaction(ctx context.Context, reference string) error {
	nowAV, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for cancellation: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Key:                 stringKey("reference", reference),
		UpdateExpression:    aws.String("SET #status = :cancelled_status, updated_at = :now"),
		ConditionExpression: aws.String("#status = :initiated_status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled_status": &types.AttributeValueMemberS{Value: string(models.CANCELLED)},
			":initiated_status": &types.AttributeValueMemberS{Value: string(models.INITIATED)},
			":now":              nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return storage.ErrConditionFailed
		}
		return fmt.Errorf("failed to update transaction status to cancelled: %w", err)
	}

	return nil
}

// GetStuckTransactions returns 'initiated' transactions created before now-maxAge.
func (s *Store) GetStuckTransactions(ctx context.Context, maxAge time.Duration) ([]models.Transaction, error) {
	cutoffTimeStr, err := time.Now().UTC().Add(-maxAge).MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(transactionStatusGSI),
		KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.INITIATED)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	transactions, err := queryItems[models.Transaction](ctx, s.Client, input, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck transactions: %w", err)
	}
	return transactions, nil
}

// GetUngrantedTransactions returns completed transactions whose grant has not been applied.
func (s *Store) GetUngrantedTransactions(ctx context.Context) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(transactionStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("attribute_not_exists(granted) OR granted = :false"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
			":false":  &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	transactions, err := queryItems[models.Transaction](ctx, s.Client, input, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query for ungranted transactions: %w", err)
	}
	return transactions, nil
}

// ListTransactionsByUserID returns all transactions recorded for a user.
func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(transactionUserGSI),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	transactions, err := queryItems[models.Transaction](ctx, s.Client, input, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query for transactions by user ID: %w", err)
	}
	return transactions, nil
}
