package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
	"github.com/chris/washflow/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetOutlet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, OutletsTableName: "outlets"}

		outlet := &models.Outlet{Id: "outlet1", Name: "Lekki", Location: "Lagos", Rating: 4.5, RatingSum: 9, RatingCount: 2, IsActive: true}
		outletAV, _ := attributevalue.MarshalMap(outlet)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: outletAV}, nil)

		result, err := store.GetOutlet(context.Background(), "outlet1")

		assert.NoError(t, err)
		assert.Equal(t, outlet, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, OutletsTableName: "outlets"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetOutlet(context.Background(), "outlet1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestSetOutletRating(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, OutletsTableName: "outlets"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
			rating := in.ExpressionAttributeValues[":rating"].(*types.AttributeValueMemberN)
			count := in.ExpressionAttributeValues[":count"].(*types.AttributeValueMemberN)
			return rating.Value == "4.3" && count.Value == "3"
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		assert.NoError(t, store.SetOutletRating(context.Background(), "outlet1", 4.3, 3))
		mockClient.AssertExpectations(t)
	})

	t.Run("Newer Tally Wins", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, OutletsTableName: "outlets"}

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(nil, &types.ConditionalCheckFailedException{})

		assert.ErrorIs(t, store.SetOutletRating(context.Background(), "outlet1", 4.3, 3), storage.ErrConditionFailed)
		mockClient.AssertExpectations(t)
	})
}

func TestGetUserConnections(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, WebsocketConnectionsTableName: "connections"}

	a, _ := attributevalue.MarshalMap(WebSocketConnection{ConnectionID: "conn-a"})
	b, _ := attributevalue.MarshalMap(WebSocketConnection{ConnectionID: "conn-b"})
	mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{a, b}}, nil)

	result, err := store.GetUserConnections(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"conn-a", "conn-b"}, result)
	mockClient.AssertExpectations(t)
}
