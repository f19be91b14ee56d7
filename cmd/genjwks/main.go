package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// genjwks generates an ES256 keypair for signing identity tokens.
// The private key goes to the token issuer (AUTH_SIGNING_JWK for cmd/gentoken);
// the public JWKS is what AUTH_JWKS_URL must serve.
//
// Usage:
//
//	go run ./cmd/genjwks -kid dev-key-1
//	go run ./cmd/genjwks -kid dev-key-1 -save
func main() {
	kid := flag.String("kid", "postboard-dev-key", "key id placed in the token header")
	save := flag.Bool("save", false, "write signing-key.json and jwks.json to the working directory")
	flag.Parse()

	// Generate ES256 (NIST P-256) private key
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate private key: %v", err)
	}

	jwkKey, err := jwk.FromRaw(privateKey)
	if err != nil {
		log.Fatalf("Failed to create JWK from private key: %v", err)
	}

	if err := jwkKey.Set(jwk.KeyIDKey, *kid); err != nil {
		log.Fatalf("Failed to set kid: %v", err)
	}
	if err := jwkKey.Set(jwk.AlgorithmKey, jwa.ES256); err != nil {
		log.Fatalf("Failed to set alg: %v", err)
	}
	if err := jwkKey.Set(jwk.KeyUsageKey, "sig"); err != nil {
		log.Fatalf("Failed to set use: %v", err)
	}

	publicKey, err := jwk.PublicKeyOf(jwkKey)
	if err != nil {
		log.Fatalf("Failed to derive public key: %v", err)
	}
	set := jwk.NewSet()
	if err := set.AddKey(publicKey); err != nil {
		log.Fatalf("Failed to build JWKS: %v", err)
	}

	privateJSON, err := json.Marshal(jwkKey)
	if err != nil {
		log.Fatalf("Failed to marshal JWK: %v", err)
	}
	publicJSON, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal JWKS: %v", err)
	}

	fmt.Println("AUTH_SIGNING_JWK='" + string(privateJSON) + "'")
	fmt.Println()
	fmt.Println("# Serve this at AUTH_JWKS_URL:")
	fmt.Println(string(publicJSON))

	if *save {
		if err := os.WriteFile("signing-key.json", privateJSON, 0o600); err != nil {
			log.Fatalf("Failed to write signing key: %v", err)
		}
		if err := os.WriteFile("jwks.json", publicJSON, 0o644); err != nil {
			log.Fatalf("Failed to write JWKS: %v", err)
		}
		fmt.Fprintln(os.Stderr, "wrote signing-key.json (keep secret) and jwks.json")
	}
}
