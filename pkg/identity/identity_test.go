package identity

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "jwt-secret"

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type memCache struct {
	mu   sync.Mutex
	ids  map[string]*Identity
	ttls map[string]time.Duration
	gets int
}

func newMemCache() *memCache {
	return &memCache{ids: map[string]*Identity{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string) (*Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.ids[key], nil
}

func (c *memCache) Set(_ context.Context, key string, id *Identity, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[key] = id
	c.ttls[key] = ttl
	return nil
}

func sign(t *testing.T, claims Claims, method jwt.SigningMethod, key any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(id, role string, expiresIn time.Duration) Claims {
	return Claims{
		UserID: id,
		Email:  id + "@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func newTestResolver(cache Cache) *Resolver {
	r := NewResolver(testSecret, cache, 5*time.Minute, slog.New(slog.DiscardHandler))
	r.now = func() time.Time { return now }
	return r
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("User Token", func(t *testing.T) {
		token := sign(t, claimsFor("user1", "user", time.Hour), jwt.SigningMethodHS256, []byte(testSecret))

		id, err := newTestResolver(nil).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, &Identity{ID: "user1", Email: "user1@example.com", Role: RoleUser}, id)
	})

	t.Run("Outlet Owns Itself", func(t *testing.T) {
		token := sign(t, claimsFor("outlet1", "outlet", time.Hour), jwt.SigningMethodHS256, []byte(testSecret))

		id, err := newTestResolver(nil).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "outlet1", id.OutletID)
	})

	t.Run("Agent Acts For Its Outlet", func(t *testing.T) {
		claims := claimsFor("agent1", "agent", time.Hour)
		claims.OutletID = "outlet1"
		token := sign(t, claims, jwt.SigningMethodHS256, []byte(testSecret))

		id, err := newTestResolver(nil).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, RoleAgent, id.Role)
		assert.Equal(t, "outlet1", id.OutletID)
	})

	t.Run("Missing Role Defaults To User", func(t *testing.T) {
		token := sign(t, claimsFor("user1", "", time.Hour), jwt.SigningMethodHS256, []byte(testSecret))

		id, err := newTestResolver(nil).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, RoleUser, id.Role)
	})

	rejected := map[string]string{
		"Empty":        "",
		"Garbage":      "not-a-jwt",
		"Wrong Key":    sign(t, claimsFor("user1", "user", time.Hour), jwt.SigningMethodHS256, []byte("other")),
		"Expired":      sign(t, claimsFor("user1", "user", -time.Minute), jwt.SigningMethodHS256, []byte(testSecret)),
		"Unknown Role": sign(t, claimsFor("user1", "root", time.Hour), jwt.SigningMethodHS256, []byte(testSecret)),
		"No Subject":   sign(t, claimsFor("", "user", time.Hour), jwt.SigningMethodHS256, []byte(testSecret)),
		"Wrong Method": sign(t, claimsFor("user1", "user", time.Hour), jwt.SigningMethodHS512, []byte(testSecret)),
	}
	for name, token := range rejected {
		t.Run("Rejects "+name, func(t *testing.T) {
			_, err := newTestResolver(nil).Resolve(ctx, token)

			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestResolveCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Resolve Is Served From Cache", func(t *testing.T) {
		cache := newMemCache()
		r := newTestResolver(cache)
		token := sign(t, claimsFor("user1", "user", time.Hour), jwt.SigningMethodHS256, []byte(testSecret))

		first, err := r.Resolve(ctx, token)
		require.NoError(t, err)

		r.secret = []byte("rotated")
		second, err := r.Resolve(ctx, token)

		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 5*time.Minute, cache.ttls[cacheKey(token)])
		assert.NotContains(t, cache.ids, token, "raw tokens are not used as keys")
	})

	t.Run("Entry Does Not Outlive Token", func(t *testing.T) {
		cache := newMemCache()
		token := sign(t, claimsFor("user1", "user", 90*time.Second), jwt.SigningMethodHS256, []byte(testSecret))

		_, err := newTestResolver(cache).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cache.ttls[cacheKey(token)])
	})

	t.Run("Unreachable Redis Falls Back To Verification", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer client.Close()
		token := sign(t, claimsFor("user1", "user", time.Hour), jwt.SigningMethodHS256, []byte(testSecret))

		id, err := newTestResolver(NewRedisCache(client)).Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "user1", id.ID)
	})
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	want := &Identity{ID: "user1", Role: RoleUser}
	got, ok := FromContext(WithIdentity(context.Background(), want))
	require.True(t, ok)
	assert.Same(t, want, got)
	assert.True(t, got.HasRole(RoleAdmin, RoleUser))
	assert.False(t, got.HasRole(RoleOutlet))
}
