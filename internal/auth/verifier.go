package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// routingVerifier picks the verification method from the token header.
// A token with a 'kid' MUST use asymmetric verification; only tokens without
// one may fall back to the shared HS256 secret. This blocks algorithm
// confusion where a public key is replayed as an HMAC secret.
type routingVerifier struct {
	hmac Verifier
	jwks Verifier
}

// NewVerifier combines the configured verifiers. Either may be nil, not both.
func NewVerifier(hmac, jwks Verifier) (Verifier, error) {
	if hmac == nil && jwks == nil {
		return nil, ErrNoVerifier
	}
	return &routingVerifier{hmac: hmac, jwks: jwks}, nil
}

func (v *routingVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	tokenString = stripBearerPrefix(tokenString)

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	unverified, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	kid, _ := unverified.Header["kid"].(string)
	alg, _ := unverified.Header["alg"].(string)

	if kid != "" {
		if v.jwks == nil {
			return nil, fmt.Errorf("token has kid %q but no JWKS is configured", kid)
		}
		return v.jwks.Verify(ctx, tokenString)
	}

	if alg != AlgorithmHS256 {
		return nil, fmt.Errorf("token without kid must use HS256, got %s", alg)
	}
	if v.hmac == nil {
		return nil, fmt.Errorf("HS256 token received but no shared secret is configured")
	}
	return v.hmac.Verify(ctx, tokenString)
}
