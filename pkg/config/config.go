// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is shared by every binary. Each binary validates the subset it uses.
type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// DynamoDB
	TransactionsTable string `envconfig:"DYNAMODB_TRANSACTIONS_TABLE_NAME"`
	WashRequestsTable string `envconfig:"DYNAMODB_WASH_REQUESTS_TABLE_NAME"`
	OutletsTable      string `envconfig:"DYNAMODB_OUTLETS_TABLE_NAME"`
	VehiclesTable     string `envconfig:"DYNAMODB_VEHICLES_TABLE_NAME"`
	ConnectionsTable  string `envconfig:"DYNAMODB_CONNECTIONS_TABLE_NAME"`

	SQSQueueURL string `envconfig:"SQS_QUEUE_URL"`

	// Paystack
	PaystackSecretKey string        `envconfig:"PAYSTACK_SECRET_KEY"`
	PaystackBaseURL   string        `envconfig:"PAYSTACK_BASE_URL" default:"https://api.paystack.co"`
	PaystackTimeout   time.Duration `envconfig:"PAYSTACK_TIMEOUT" default:"10s"`

	// Identity
	JWTSecret        string        `envconfig:"JWT_SECRET"`
	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	IdentityCacheTTL time.Duration `envconfig:"IDENTITY_CACHE_TTL" default:"5m"`

	WebSocketAPIEndpoint string   `envconfig:"WEBSOCKET_API_ENDPOINT"`
	CORSAllowedOrigins   []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Background work
	StuckTransactionThreshold time.Duration `envconfig:"STUCK_TRANSACTION_THRESHOLD" default:"20m"`
	LedgerRetryDelay          time.Duration `envconfig:"LEDGER_RETRY_DELAY" default:"1s"`
	LedgerMaxRetries          int           `envconfig:"LEDGER_MAX_RETRIES" default:"2"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return c, nil
}

// ValidateAPI checks the settings the HTTP server needs.
func (c Config) ValidateAPI() error {
	return missing(
		"DYNAMODB_TRANSACTIONS_TABLE_NAME", c.TransactionsTable,
		"DYNAMODB_WASH_REQUESTS_TABLE_NAME", c.WashRequestsTable,
		"DYNAMODB_OUTLETS_TABLE_NAME", c.OutletsTable,
		"DYNAMODB_VEHICLES_TABLE_NAME", c.VehiclesTable,
		"PAYSTACK_SECRET_KEY", c.PaystackSecretKey,
		"JWT_SECRET", c.JWTSecret,
	)
}

// ValidateReconciliation checks the settings the sweeper needs.
func (c Config) ValidateReconciliation() error {
	return missing(
		"DYNAMODB_TRANSACTIONS_TABLE_NAME", c.TransactionsTable,
		"DYNAMODB_WASH_REQUESTS_TABLE_NAME", c.WashRequestsTable,
		"SQS_QUEUE_URL", c.SQSQueueURL,
	)
}

// ValidateVerification checks the settings the verification consumer needs.
func (c Config) ValidateVerification() error {
	return missing(
		"DYNAMODB_TRANSACTIONS_TABLE_NAME", c.TransactionsTable,
		"DYNAMODB_WASH_REQUESTS_TABLE_NAME", c.WashRequestsTable,
		"PAYSTACK_SECRET_KEY", c.PaystackSecretKey,
	)
}

// ValidateWebSocket checks the settings the websocket connection handler needs.
func (c Config) ValidateWebSocket() error {
	return missing(
		"DYNAMODB_CONNECTIONS_TABLE_NAME", c.ConnectionsTable,
		"JWT_SECRET", c.JWTSecret,
	)
}

// missing takes name, value pairs and reports every name whose value is empty.
func missing(pairs ...string) error {
	var names []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			names = append(names, pairs[i])
		}
	}
	if len(names) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(names, ", "))
	}
	return nil
}
