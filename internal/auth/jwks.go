package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// JWKSVerifier verifies asymmetric (RS*/ES*) tokens against a JWK set.
// Tokens must carry a 'kid' that is present in the set.
type JWKSVerifier struct {
	keys   jwk.Set
	issuer string
}

// NewJWKSVerifier creates a verifier over a fixed key set
func NewJWKSVerifier(keys jwk.Set, issuer string) *JWKSVerifier {
	return &JWKSVerifier{keys: keys, issuer: issuer}
}

// NewRemoteJWKSVerifier fetches the identity provider's JWKS and keeps it
// refreshed in the background for the lifetime of ctx.
func NewRemoteJWKSVerifier(ctx context.Context, jwksURL, issuer string, refresh time.Duration) (*JWKSVerifier, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(refresh)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS URL: %w", err)
	}

	// Fail fast at startup if the key set is unreachable
	if _, err := cache.Refresh(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", jwksURL, err)
	}

	return NewJWKSVerifier(jwk.NewCachedSet(cache, jwksURL), issuer), nil
}

// Verify checks the signature against the key set and extracts the identity
func (v *JWKSVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	opts := []jwt.ParseOption{
		jwt.WithKeySet(v.keys, jws.WithInferAlgorithmFromKey(true)),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(30 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse([]byte(stripBearerPrefix(tokenString)), opts...)
	if err != nil {
		return nil, fmt.Errorf("asymmetric verification failed: %w", err)
	}

	claims := &Claims{Nickname: stringClaim(token, "nickname"), UserID: stringClaim(token, "userId")}
	claims.Subject = token.Subject()

	id, err := claims.identity()
	if err != nil {
		return nil, err
	}
	id.ExpiresAt = token.Expiration()
	return id, nil
}

func stringClaim(token jwt.Token, name string) string {
	v, ok := token.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
