package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
)

const (
	washCodeGSI         = "wash_code-created_at-index"
	washReferenceGSI    = "transaction_reference-index"
	washUserGSI         = "user_id-created_at-index"
	washCodeGuardPrefix = "washcode#"
)

// washCodeGuard reserves a wash code for a live request. It lives in the wash
// requests table under a prefixed id so the code is unique via attribute_not_exists.
type washCodeGuard struct {
	Id            string `dynamodbav:"id"`
	ReservedCode  string `dynamodbav:"reserved_code"`
	WashRequestId string `dynamodbav:"wash_request_id"`
}

func guardID(washCode string) string {
	return washCodeGuardPrefix + washCode
}

// CreateWashRequest stores a new wash request together with its wash code guard.
func (s *Store) CreateWashRequest(ctx context.Context, req *models.WashRequest) (*models.WashRequest, error) {
	reqAV, err := attributevalue.MarshalMap(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wash request: %w", err)
	}
	guardAV, err := attributevalue.MarshalMap(washCodeGuard{
		Id:            guardID(req.WashCode),
		ReservedCode:  req.WashCode,
		WashRequestId: req.Id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wash code guard: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the wash request.
				Put: &types.Put{
					TableName:           aws.String(s.WashRequestsTableName),
					Item:                reqAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Reserve the wash code.
				Put: &types.Put{
					TableName:           aws.String(s.WashRequestsTableName),
					Item:                guardAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		failed := cancelledAt(err)
		switch {
		case contains(failed, 1):
			return nil, fmt.Errorf("wash code %s: %w", req.WashCode, storage.ErrWashCodeTaken)
		case contains(failed, 0):
			return nil, fmt.Errorf("wash request %s: %w", req.Id, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to execute wash request creation: %w", err)
	}

	return req, nil
}

// GetWashRequest retrieves a wash request by its ID.
func (s *Store) GetWashRequest(ctx context.Context, id string) (*models.WashRequest, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.WashRequestsTableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wash request from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("wash request %s: %w", id, storage.ErrNotFound)
	}

	var req models.WashRequest
	if err := attributevalue.UnmarshalMap(result.Item, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wash request: %w", err)
	}

	return &req, nil
}

// GetWashRequestByCode resolves a wash code through its guard, falling back to
// the most recent request that used the code once it has been released.
func (s *Store) GetWashRequestByCode(ctx context.Context, washCode string) (*models.WashRequest, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.WashRequestsTableName),
		Key:            stringKey("id", guardID(washCode)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wash code guard: %w", err)
	}

	if result.Item != nil {
		var guard washCodeGuard
		if err := attributevalue.UnmarshalMap(result.Item, &guard); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wash code guard: %w", err)
		}
		return s.GetWashRequest(ctx, guard.WashRequestId)
	}

	requests, err := queryItems[models.WashRequest](ctx, s.Client, &dynamodb.QueryInput{
		TableName:              aws.String(s.WashRequestsTableName),
		IndexName:              aws.String(washCodeGSI),
		KeyConditionExpression: aws.String("wash_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: washCode},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query wash requests by code: %w", err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("wash code %s: %w", washCode, storage.ErrNotFound)
	}

	return &requests[0], nil
}

// GetWashRequestByReference retrieves the wash request linked to a payment reference.
func (s *Store) GetWashRequestByReference(ctx context.Context, reference string) (*models.WashRequest, error) {
	requests, err := queryItems[models.WashRequest](ctx, s.Client, &dynamodb.QueryInput{
		TableName:              aws.String(s.WashRequestsTableName),
		IndexName:              aws.String(washReferenceGSI),
		KeyConditionExpression: aws.String("transaction_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
	}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query wash requests by reference: %w", err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("wash request for reference %s: %w", reference, storage.ErrNotFound)
	}

	// The index is eventually consistent; re-read the item itself.
	return s.GetWashRequest(ctx, requests[0].Id)
}

// ListWashRequestsByUserID retrieves a user's wash requests, newest first.
func (s *Store) ListWashRequestsByUserID(ctx context.Context, userID string) ([]models.WashRequest, error) {
	requests, err := queryItems[models.WashRequest](ctx, s.Client, &dynamodb.QueryInput{
		TableName:              aws.String(s.WashRequestsTableName),
		IndexName:              aws.String(washUserGSI),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to query wash requests by user ID: %w", err)
	}
	return requests, nil
}

// TransitionWashRequest conditionally persists a status change and appends its timeline entry.
func (s *Store) TransitionWashRequest(ctx context.Context, req *models.WashRequest, from models.WashStatus) error {
	if len(req.StatusTimeline) == 0 {
		return fmt.Errorf("wash request %s has no timeline entry to append", req.Id)
	}
	entryAV, err := attributevalue.Marshal([]models.TimelineEntry{req.StatusTimeline[len(req.StatusTimeline)-1]})
	if err != nil {
		return fmt.Errorf("failed to marshal timeline entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp for transition: %w", err)
	}

	updateExpr := "SET #status = :to_status, current_step = :step, payment_status = :payment_status, updated_at = :now, " +
		"status_timeline = list_append(if_not_exists(status_timeline, :empty), :entry)"
	values := map[string]types.AttributeValue{
		":to_status":      &types.AttributeValueMemberS{Value: string(req.Status)},
		":from_status":    &types.AttributeValueMemberS{Value: string(from)},
		":step":           &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", req.CurrentStep)},
		":payment_status": &types.AttributeValueMemberS{Value: string(req.PaymentStatus)},
		":now":            nowAV,
		":entry":          entryAV,
		":empty":          &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	if req.CompletedAt != nil {
		av, err := attributevalue.Marshal(*req.CompletedAt)
		if err != nil {
			return fmt.Errorf("failed to marshal completed_at: %w", err)
		}
		updateExpr += ", completed_at = :completed_at"
		values[":completed_at"] = av
	}
	if req.CancelledAt != nil {
		av, err := attributevalue.Marshal(*req.CancelledAt)
		if err != nil {
			return fmt.Errorf("failed to marshal cancelled_at: %w", err)
		}
		updateExpr += ", cancelled_at = :cancelled_at"
		values[":cancelled_at"] = av
	}

	update := &types.Update{
		TableName:           aws.String(s.WashRequestsTableName),
		Key:                 stringKey("id", req.Id),
		UpdateExpression:    aws.String(updateExpr),
		ConditionExpression: aws.String("#status = :from_status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
	}

	if !req.Status.IsTerminal() {
		_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 update.TableName,
			Key:                       update.Key,
			UpdateExpression:          update.UpdateExpression,
			ConditionExpression:       update.ConditionExpression,
			ExpressionAttributeNames:  update.ExpressionAttributeNames,
			ExpressionAttributeValues: update.ExpressionAttributeValues,
		})
		if err != nil {
			if isConditionFailed(err) {
				return storage.ErrConditionFailed
			}
			return fmt.Errorf("failed to update wash request status: %w", err)
		}
		return nil
	}

	// Terminal statuses release the wash code in the same transaction.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: update},
			{
				Delete: &types.Delete{
					TableName:           aws.String(s.WashRequestsTableName),
					Key:                 stringKey("id", guardID(req.WashCode)),
					ConditionExpression: aws.String("attribute_not_exists(id) OR wash_request_id = :request_id"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":request_id": &types.AttributeValueMemberS{Value: req.Id},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if contains(cancelledAt(err), 0) {
			return storage.ErrConditionFailed
		}
		return fmt.Errorf("failed to execute terminal wash request transition: %w", err)
	}

	return nil
}

// SubmitReview stores the review and adds the rating to the outlet tally atomically.
func (s *Store) SubmitReview(ctx context.Context, req *models.WashRequest) (*models.Outlet, error) {
	if req.UserRating == nil || req.ReviewedAt == nil {
		return nil, fmt.Errorf("wash request %s has no review to store", req.Id)
	}
	reviewedAtAV, err := attributevalue.Marshal(*req.ReviewedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reviewed_at: %w", err)
	}
	ratingAV := &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", *req.UserRating)}

	updateExpr := "SET user_rating = :rating, reviewed_at = :reviewed_at, updated_at = :reviewed_at"
	values := map[string]types.AttributeValue{
		":rating":           ratingAV,
		":reviewed_at":      reviewedAtAV,
		":completed_status": &types.AttributeValueMemberS{Value: string(models.StatusCompleted)},
	}
	if req.UserReview != nil {
		updateExpr += ", user_review = :review"
		values[":review"] = &types.AttributeValueMemberS{Value: *req.UserReview}
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Record the review, once, on a completed request.
				Update: &types.Update{
					TableName:           aws.String(s.WashRequestsTableName),
					Key:                 stringKey("id", req.Id),
					UpdateExpression:    aws.String(updateExpr),
					ConditionExpression: aws.String("#status = :completed_status AND attribute_not_exists(user_rating)"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: values,
				},
			},
			{
				// Operation 2: Add the rating to the outlet's running tally.
				Update: &types.Update{
					TableName:           aws.String(s.OutletsTableName),
					Key:                 stringKey("id", req.OutletId),
					UpdateExpression:    aws.String("ADD rating_sum :rating, rating_count :one"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":rating": ratingAV,
						":one":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		failed := cancelledAt(err)
		switch {
		case contains(failed, 0):
			return nil, fmt.Errorf("wash request %s: %w", req.Id, storage.ErrAlreadyReviewed)
		case contains(failed, 1):
			return nil, fmt.Errorf("outlet %s: %w", req.OutletId, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to execute review transaction: %w", err)
	}

	return s.GetOutlet(ctx, req.OutletId)
}
