// Package identity resolves bearer tokens into the caller's identity and
// carries it through the request context.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the account type of a caller.
type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleOutlet Role = "outlet"
	RoleAgent  Role = "agent"
)

func (r Role) valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOutlet, RoleAgent:
		return true
	}
	return false
}

// ErrInvalidToken is returned for tokens that are missing, malformed, expired
// or signed with another key.
var ErrInvalidToken = errors.New("invalid token")

// Identity is a resolved caller. OutletID is set for outlets and their agents.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	OutletID string `json:"outlet_id,omitempty"`
}

// HasRole reports whether the identity holds one of roles.
func (i *Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Claims are the token claims issued by the auth service.
type Claims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	OutletID string `json:"outlet_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) identity() *Identity {
	id := &Identity{
		ID:    c.UserID,
		Email: c.Email,
		Role:  Role(c.Role),
	}
	if id.ID == "" {
		id.ID = c.Subject
	}
	if id.Role == "" {
		id.Role = RoleUser
	}
	switch id.Role {
	case RoleOutlet:
		id.OutletID = id.ID
	case RoleAgent:
		id.OutletID = c.OutletID
	}
	return id
}

// Cache stores resolved identities for a bounded time.
type Cache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key string) (*Identity, error)
	Set(ctx context.Context, key string, id *Identity, ttl time.Duration) error
}

// Resolver verifies HS256 tokens and caches the result.
type Resolver struct {
	secret []byte
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver creates a new Resolver. cache may be nil.
func NewResolver(secret string, cache Cache, ttl time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		secret: []byte(secret),
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve returns the identity behind token.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	key := cacheKey(token)

	if r.cache != nil {
		id, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Warn("identity cache read failed", "error", err)
		} else if id != nil {
			return id, nil
		}
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(r.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id := claims.identity()
	if id.ID == "" || !id.Role.valid() {
		return nil, fmt.Errorf("%w: missing subject or unknown role", ErrInvalidToken)
	}

	if r.cache != nil {
		ttl := r.ttl
		if claims.ExpiresAt != nil {
			if left := claims.ExpiresAt.Sub(r.now()); left < ttl {
				ttl = left
			}
		}
		if ttl > 0 {
			if err := r.cache.Set(ctx, key, id, ttl); err != nil {
				r.logger.Warn("identity cache write failed", "error", err)
			}
		}
	}
	return id, nil
}

// cacheKey keeps raw tokens out of the cache.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}
