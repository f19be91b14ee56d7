package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-do-not-use")

// createHS256Token signs a token with the test secret
func createHS256Token(t *testing.T, claims Claims) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

// validClaims returns claims for user-1/alice expiring in an hour
func validClaims() Claims {
	return Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "https://id.test",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
		},
		Nickname: "alice",
	}
}

type testKeyPair struct {
	private jwk.Key
	public  jwk.Set
}

// generateES256KeyPair creates a signing key and the public set that verifies it
func generateES256KeyPair(t *testing.T, kid string) *testKeyPair {
	t.Helper()

	raw, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	priv, err := jwk.FromRaw(raw)
	require.NoError(t, err)
	require.NoError(t, priv.Set(jwk.KeyIDKey, kid))
	require.NoError(t, priv.Set(jwk.AlgorithmKey, jwa.ES256))

	pub, err := jwk.PublicKeyOf(priv)
	require.NoError(t, err)
	require.NoError(t, pub.Set(jwk.KeyIDKey, kid))
	require.NoError(t, pub.Set(jwk.AlgorithmKey, jwa.ES256))

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(pub))

	return &testKeyPair{private: priv, public: set}
}

// signES256 signs a token carrying the given claims with kp's private key
func signES256(t *testing.T, kp *testKeyPair, kid string, claims map[string]interface{}) string {
	t.Helper()

	tok := jwt.New()
	for k, v := range claims {
		require.NoError(t, tok.Set(k, v))
	}

	hdrs := jws.NewHeaders()
	require.NoError(t, hdrs.Set(jws.KeyIDKey, kid))

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.ES256, kp.private, jws.WithProtectedHeaders(hdrs)))
	require.NoError(t, err)
	return string(signed)
}
