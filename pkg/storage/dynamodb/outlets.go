package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
)

// GetOutlet retrieves an outlet by its ID.
func (s *Store) GetOutlet(ctx context.Context, id string) (*models.Outlet, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.OutletsTableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get outlet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("outlet %s: %w", id, storage.ErrNotFound)
	}

	var outlet models.Outlet
	if err := attributevalue.UnmarshalMap(result.Item, &outlet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outlet: %w", err)
	}

	return &outlet, nil
}

// SetOutletRating writes the derived rating while rating_count is unchanged.
func (s *Store) SetOutletRating(ctx context.Context, id string, rating float64, observedCount int64) error {
	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.OutletsTableName),
		Key:                 stringKey("id", id),
		UpdateExpression:    aws.String("SET rating = :rating"),
		ConditionExpression: aws.String("rating_count = :count"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rating": &types.AttributeValueMemberN{Value: strconv.FormatFloat(rating, 'f', 1, 64)},
			":count":  &types.AttributeValueMemberN{Value: strconv.FormatInt(observedCount, 10)},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return storage.ErrConditionFailed
		}
		return fmt.Errorf("failed to update outlet rating: %w", err)
	}

	return nil
}

// GetVehicle retrieves a vehicle by its ID.
func (s *Store) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.VehiclesTableName),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("vehicle %s: %w", id, storage.ErrNotFound)
	}

	var vehicle models.Vehicle
	if err := attributevalue.UnmarshalMap(result.Item, &vehicle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle: %w", err)
	}

	return &vehicle, nil
}
