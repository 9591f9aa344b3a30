package jwtx

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/cryptox"
)

// KeyManager owns the process's signing keys and the matching verifier.
//
// Keys are ephemeral: they are generated at startup and never written to
// disk, so every access token becomes invalid when the process restarts.
// Refresh tokens are stored server side and survive restarts.
type KeyManager struct {
	Verifier *Verifier
	KeySet   *KeySet

	signers []*Signer
}

// KeyManagerOptions configures NewEphemeralKeyManager.
type KeyManagerOptions struct {
	// Issuer is written to and required in every token.
	Issuer string

	// NumKeys is clamped to [1, 10]. Signing picks one at random.
	NumKeys int

	// Leeway defaults to DefaultLeeway.
	Leeway time.Duration
}

func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: issuer is required")
	}

	n := min(max(opts.NumKeys, 1), 10)
	leeway := opts.Leeway
	if leeway == 0 {
		leeway = DefaultLeeway
	}

	keyset := NewKeySet()
	signers := make([]*Signer, 0, n)
	for i := range n {
		priv, kid, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		s, err := NewSigner(kid, priv)
		if err != nil {
			return nil, err
		}
		if err := keyset.Add(s.PublicJWK()); err != nil {
			return nil, fmt.Errorf("jwtx: publish key %d: %w", i+1, err)
		}
		signers = append(signers, s)
	}

	return &KeyManager{
		Verifier: NewVerifier(keyset, opts.Issuer, leeway),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// Signer returns one of the active signing keys.
func (km *KeyManager) Signer() *Signer {
	if len(km.signers) == 1 {
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int { return len(km.signers) }

// IsReady reports whether tokens can be verified.
func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }
