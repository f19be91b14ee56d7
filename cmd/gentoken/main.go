package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"Postboard/internal/auth"
)

// gentoken mints a development identity token.
//
// With AUTH_SIGNING_JWK set (see cmd/genjwks) it signs ES256 with the key's kid,
// otherwise HS256 with AUTH_JWT_SECRET.
//
// Usage:
//
//	AUTH_JWT_SECRET=dev go run ./cmd/gentoken -sub user-1 -nickname alice
func main() {
	sub := flag.String("sub", "", "user id placed in the 'sub' claim")
	nickname := flag.String("nickname", "", "display name placed in the 'nickname' claim")
	issuer := flag.String("iss", os.Getenv("AUTH_ISSUER"), "issuer claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" || *nickname == "" {
		flag.Usage()
		os.Exit(2)
	}

	now := time.Now()
	jti := uuid.NewString()

	var (
		token string
		err   error
	)
	if signingJWK := os.Getenv("AUTH_SIGNING_JWK"); signingJWK != "" {
		token, err = signES256(signingJWK, *sub, *nickname, *issuer, jti, now, *ttl)
	} else {
		secret := os.Getenv("AUTH_JWT_SECRET")
		if secret == "" {
			log.Fatal("AUTH_SIGNING_JWK or AUTH_JWT_SECRET must be set")
		}
		token, err = signHS256([]byte(secret), *sub, *nickname, *issuer, jti, now, *ttl)
	}
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}

func signHS256(secret []byte, sub, nickname, issuer, jti string, now time.Time, ttl time.Duration) (string, error) {
	claims := auth.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    issuer,
			ID:        jti,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
		Nickname: nickname,
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(secret)
}

func signES256(rawKey, sub, nickname, issuer, jti string, now time.Time, ttl time.Duration) (string, error) {
	key, err := jwk.ParseKey([]byte(rawKey))
	if err != nil {
		return "", fmt.Errorf("failed to parse AUTH_SIGNING_JWK: %w", err)
	}
	if key.KeyID() == "" {
		return "", fmt.Errorf("AUTH_SIGNING_JWK has no kid")
	}

	builder := jwt.NewBuilder().
		Subject(sub).
		JwtID(jti).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("nickname", nickname)
	if issuer != "" {
		builder = builder.Issuer(issuer)
	}
	tok, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	headers := jws.NewHeaders()
	if err := headers.Set(jws.KeyIDKey, key.KeyID()); err != nil {
		return "", err
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.ES256, key, jws.WithProtectedHeaders(headers)))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}
