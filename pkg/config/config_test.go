package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, "https://api.paystack.co", c.PaystackBaseURL)
	assert.Equal(t, 10*time.Second, c.PaystackTimeout)
	assert.Equal(t, 5*time.Minute, c.IdentityCacheTTL)
	assert.Equal(t, 20*time.Minute, c.StuckTransactionThreshold)
	assert.Equal(t, time.Second, c.LedgerRetryDelay)
	assert.Equal(t, 2, c.LedgerMaxRetries)
	assert.Equal(t, []string{"*"}, c.CORSAllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DYNAMODB_TRANSACTIONS_TABLE_NAME", "transactions")
	t.Setenv("PAYSTACK_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "transactions", c.TransactionsTable)
	assert.Equal(t, 3*time.Second, c.PaystackTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, c.CORSAllowedOrigins)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("LEDGER_MAX_RETRIES", "many")

	_, err := Load()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Config{TransactionsTable: "transactions", WashRequestsTable: "wash_requests"}

	err := c.ValidateReconciliation()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQS_QUEUE_URL")
	assert.NotContains(t, err.Error(), "DYNAMODB_TRANSACTIONS_TABLE_NAME")

	c.SQSQueueURL = "https://sqs.eu-west-1.amazonaws.com/1/verify"
	assert.NoError(t, c.ValidateReconciliation())

	err = c.ValidateAPI()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "PAYSTACK_SECRET_KEY")
}
