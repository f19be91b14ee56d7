package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AlgorithmHS256 is the only algorithm accepted by HMACVerifier
const AlgorithmHS256 = "HS256"

// Claims are the token claims the service relies on.
// 'userId' is accepted as a fallback subject for tokens minted by older issuers.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

// HMACVerifier verifies HS256 tokens signed with a shared secret
type HMACVerifier struct {
	secret []byte
	issuer string
}

// NewHMACVerifier creates a verifier for HS256 tokens.
// issuer is optional; when set, the 'iss' claim must match it.
func NewHMACVerifier(secret []byte, issuer string) *HMACVerifier {
	return &HMACVerifier{secret: secret, issuer: issuer}
}

// Verify checks the signature and time claims and extracts the identity
func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("HS256 verification failed: secret not configured")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{AlgorithmHS256})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(stripBearerPrefix(tokenString), &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("HS256 verification failed: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("HS256 verification failed: invalid claims")
	}

	return claims.identity()
}

func (c *Claims) identity() (*Identity, error) {
	userID := c.Subject
	if userID == "" {
		userID = c.UserID
	}
	if userID == "" {
		return nil, ErrMissingSubject
	}
	if c.Nickname == "" {
		return nil, ErrMissingNickname
	}

	id := &Identity{UserID: userID, Nickname: c.Nickname}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id, nil
}

// stripBearerPrefix removes the "Bearer " prefix from a token string
func stripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return strings.TrimSpace(tokenString)
}
