package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
	"github.com/chris/washflow/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func canceledAt(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	return &types.TransactionCanceledException{Message: aws.String("Transaction cancelled"), CancellationReasons: reasons}
}

func newWashRequest() *models.WashRequest {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &models.WashRequest{
		Id:                   "wr_1",
		UserId:               "user1",
		OutletId:             "outlet1",
		TransactionReference: "ref_123",
		WashCode:             "48213",
		Status:               models.StatusInitiated,
		PaymentStatus:        models.PaymentPending,
		StatusTimeline: []models.TimelineEntry{
			{Status: models.StatusInitiated, Timestamp: createdAt, UpdatedBy: models.ActorUser},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestCreateWashRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 2 {
				return false
			}
			guardID := in.TransactItems[1].Put.Item["id"].(*types.AttributeValueMemberS)
			return guardID.Value == "washcode#48213"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		req := newWashRequest()
		result, err := store.CreateWashRequest(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, req, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Wash Code Taken", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledAt("None", "ConditionalCheckFailed"))

		_, err := store.CreateWashRequest(context.Background(), newWashRequest())

		assert.ErrorIs(t, err, storage.ErrWashCodeTaken)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledAt("ConditionalCheckFailed", "None"))

		_, err := store.CreateWashRequest(context.Background(), newWashRequest())

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		mockClient.AssertExpectations(t)
	})
}

func TestGetWashRequestByCode(t *testing.T) {
	req := newWashRequest()
	reqAV, _ := attributevalue.MarshalMap(req)

	t.Run("Live Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		guardAV, _ := attributevalue.MarshalMap(washCodeGuard{Id: "washcode#48213", ReservedCode: "48213", WashRequestId: "wr_1"})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: guardAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: reqAV}, nil)

		result, err := store.GetWashRequestByCode(context.Background(), "48213")

		assert.NoError(t, err)
		assert.Equal(t, req, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Released Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return aws.ToString(in.IndexName) == washCodeGSI && !aws.ToBool(in.ScanIndexForward)
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{reqAV}}, nil)

		result, err := store.GetWashRequestByCode(context.Background(), "48213")

		assert.NoError(t, err)
		assert.Equal(t, req, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

		_, err := store.GetWashRequestByCode(context.Background(), "99999")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestTransitionWashRequest(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	advanced := func(to models.WashStatus) *models.WashRequest {
		req := newWashRequest()
		req.Status = to
		req.CurrentStep = to.Index()
		req.UpdatedAt = at
		req.StatusTimeline = append(req.StatusTimeline, models.TimelineEntry{Status: to, Timestamp: at, UpdatedBy: models.ActorOutlet})
		return req
	}

	t.Run("Non Terminal Uses Conditional Update", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
			from := in.ExpressionAttributeValues[":from_status"].(*types.AttributeValueMemberS)
			entry := in.ExpressionAttributeValues[":entry"].(*types.AttributeValueMemberL)
			return from.Value == "scheduled" && len(entry.Value) == 1
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.TransitionWashRequest(context.Background(), advanced(models.StatusOrderReceived), models.StatusScheduled)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.TransitionWashRequest(context.Background(), advanced(models.StatusOrderReceived), models.StatusScheduled)

		assert.ErrorIs(t, err, storage.ErrConditionFailed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Terminal Releases Wash Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			if len(in.TransactItems) != 2 || in.TransactItems[1].Delete == nil {
				return false
			}
			key := in.TransactItems[1].Delete.Key["id"].(*types.AttributeValueMemberS)
			return key.Value == "washcode#48213"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		req := advanced(models.StatusCompleted)
		req.CompletedAt = &at
		err := store.TransitionWashRequest(context.Background(), req, models.StatusReadyForPickup)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Terminal Lost Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledAt("ConditionalCheckFailed", "None"))

		req := advanced(models.StatusCancelled)
		req.CancelledAt = &at
		err := store.TransitionWashRequest(context.Background(), req, models.StatusScheduled)

		assert.ErrorIs(t, err, storage.ErrConditionFailed)
		mockClient.AssertExpectations(t)
	})
}

func TestSubmitReview(t *testing.T) {
	reviewedAt := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	rating := 4

	reviewed := func() *models.WashRequest {
		req := newWashRequest()
		req.Status = models.StatusCompleted
		req.UserRating = &rating
		req.ReviewedAt = &reviewedAt
		return req
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests", OutletsTableName: "outlets"}

		outlet := &models.Outlet{Id: "outlet1", Name: "Lekki", RatingSum: 9, RatingCount: 2}
		outletAV, _ := attributevalue.MarshalMap(outlet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: outletAV}, nil)

		result, err := store.SubmitReview(context.Background(), reviewed())

		assert.NoError(t, err)
		assert.Equal(t, outlet, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests", OutletsTableName: "outlets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledAt("ConditionalCheckFailed", "None"))

		_, err := store.SubmitReview(context.Background(), reviewed())

		assert.ErrorIs(t, err, storage.ErrAlreadyReviewed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Outlet Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests", OutletsTableName: "outlets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledAt("None", "ConditionalCheckFailed"))

		_, err := store.SubmitReview(context.Background(), reviewed())

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, WashRequestsTableName: "wash_requests", OutletsTableName: "outlets"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := store.SubmitReview(context.Background(), reviewed())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute review transaction")
		mockClient.AssertExpectations(t)
	})
}
