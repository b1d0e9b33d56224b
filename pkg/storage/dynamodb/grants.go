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
)

// ClaimGrant atomically flips granted to true on a completed transaction.
// Exactly one concurrent caller observes true; every other caller, including
// retries after a successful claim, observes false.
func (s *Store) ClaimGrant(ctx context.Context, reference string) (bool, error) {
	nowAV, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to marshal timestamp for grant: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Key:                 stringKey("reference", reference),
		UpdateExpression:    aws.String("SET granted = :true, updated_at = :now"),
		ConditionExpression: aws.String("#status = :completed_status AND (attribute_not_exists(granted) OR granted = :false)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed_status": &types.AttributeValueMemberS{Value: string(models.COMPLETED)},
			":true":             &types.AttributeValueMemberBOOL{Value: true},
			":false":            &types.AttributeValueMemberBOOL{Value: false},
			":now":              nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			// Already granted, or not completed.
			return false, nil
		}
		return false, fmt.Errorf("failed to claim grant: %w", err)
	}

	return true, nil
}

// ReleaseGrant reverts a claim made by ClaimGrant.
func (s *Store) ReleaseGrant(ctx context.Context, reference string) error {
	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Key:                 stringKey("reference", reference),
		UpdateExpression:    aws.String("SET granted = :false"),
		ConditionExpression: aws.String("granted = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return nil
		}
		return fmt.Errorf("failed to release grant: %w", err)
	}

	return nil
}
