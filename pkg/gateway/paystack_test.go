package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{SecretKey: "sk_test", BaseURL: server.URL, Timeout: time.Second})
	client.newReference = func() string { return "ref-fixed" }
	return client
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    int64
		wantErr bool
	}{
		{"whole naira", "5000", 500000, false},
		{"kobo precision", "12.34", 1234, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"sub kobo", "1.005", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(500000), body["amount"])
			assert.Equal(t, "ref-fixed", body["reference"])

			w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref-fixed"}}`))
		})

		init, err := client.Initialize(context.Background(), "ada@example.com", decimal.NewFromInt(5000))

		require.NoError(t, err)
		assert.Equal(t, "ref-fixed", init.Reference)
		assert.Equal(t, "https://checkout.paystack.com/abc", init.AuthorizationURL)
		assert.Equal(t, "abc", init.AccessCode)
		assert.Equal(t, int64(500000), init.AmountMinor)
	})

	t.Run("Gateway Says No", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
		})

		_, err := client.Initialize(context.Background(), "ada@example.com", decimal.NewFromInt(5000))

		assert.ErrorIs(t, err, apperr.ErrGateway)
		assert.Contains(t, err.Error(), "Invalid key")
	})

	t.Run("Invalid Amount Never Calls Gateway", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("gateway should not be called")
		})

		_, err := client.Initialize(context.Background(), "ada@example.com", decimal.Zero)

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestVerifyByReference(t *testing.T) {
	t.Run("Successful Charge", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/R1", r.URL.Path)
			w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"reference":"R1","status":"success","amount":500000,"paid_at":"2025-03-01T09:05:00.000Z"}}`))
		})

		v, err := client.VerifyByReference(context.Background(), "R1")

		require.NoError(t, err)
		assert.True(t, v.Success)
		assert.Equal(t, int64(500000), v.PaidAmount)
		require.NotNil(t, v.PaidAt)
		assert.Equal(t, time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC), v.PaidAt.UTC())
		assert.NotEmpty(t, v.Raw)
	})

	t.Run("Abandoned Charge Is Not An Error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":true,"data":{"reference":"R1","status":"abandoned","amount":500000}}`))
		})

		v, err := client.VerifyByReference(context.Background(), "R1")

		require.NoError(t, err)
		assert.False(t, v.Success)
		assert.Equal(t, "abandoned", v.Status)
	})

	t.Run("Unknown Reference", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
		})

		_, err := client.VerifyByReference(context.Background(), "nope")

		assert.True(t, IsRejected(err))
		assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	})

	t.Run("Upstream Outage", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := client.VerifyByReference(context.Background(), "R1")

		assert.ErrorIs(t, err, apperr.ErrGateway)
		assert.False(t, IsRejected(err))
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()
		client := NewClient(Config{SecretKey: "sk_test", BaseURL: server.URL, Timeout: 20 * time.Millisecond})

		_, err := client.VerifyByReference(context.Background(), "R1")

		assert.ErrorIs(t, err, apperr.ErrGateway)
	})
}
