package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedIdentity struct {
	identity  Identity
	expiresAt time.Time
}

// CachingVerifier memoizes successful verifications in a bounded LRU.
// Entries live for ttl, never past the token's own expiry. Failures are not cached.
type CachingVerifier struct {
	next   Verifier
	cache  *lru.Cache[string, cachedIdentity]
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewCachingVerifier wraps next with an LRU of the given size
func NewCachingVerifier(next Verifier, size int, ttl time.Duration, logger *slog.Logger) (*CachingVerifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, cachedIdentity](size)
	if err != nil {
		return nil, err
	}
	return &CachingVerifier{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Verify returns a cached identity when one is still fresh, otherwise delegates
func (c *CachingVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	key := tokenKey(stripBearerPrefix(tokenString))
	now := c.now()

	if entry, ok := c.cache.Get(key); ok {
		if now.Before(entry.expiresAt) {
			id := entry.identity
			return &id, nil
		}
		c.cache.Remove(key)
	}

	id, err := c.next.Verify(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(c.ttl)
	if !id.ExpiresAt.IsZero() && id.ExpiresAt.Before(expiresAt) {
		expiresAt = id.ExpiresAt
	}
	c.cache.Add(key, cachedIdentity{identity: *id, expiresAt: expiresAt})

	c.logger.Debug("identity cached", "user", id.UserID, "expires_at", expiresAt)
	return id, nil
}

// Len reports the number of cached identities
func (c *CachingVerifier) Len() int {
	return c.cache.Len()
}

// tokenKey avoids holding raw bearer tokens in memory as map keys
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
