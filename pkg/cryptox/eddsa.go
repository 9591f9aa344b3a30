package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// GenerateEd25519Key creates a fresh Ed25519 signing key together with a
// stable key id derived from its public half.
func GenerateEd25519Key() (ed25519.PrivateKey, string, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, "", fmt.Errorf("cryptox: generate ed25519 key: %w", err)
	}
	return priv, KeyID(pub), nil
}

// KeyID returns a short URL-safe identifier for an Ed25519 public key.
func KeyID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base64.RawURLEncoding.EncodeToString(sum[:12])
}
