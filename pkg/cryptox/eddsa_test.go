package cryptox_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	key, kid, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.Len(t, key, ed25519.PrivateKeySize)
	require.Len(t, kid, 16)

	pub := key.Public().(ed25519.PublicKey)
	require.Equal(t, cryptox.KeyID(pub), kid)

	msg := []byte("sign me")
	require.True(t, ed25519.Verify(pub, msg, ed25519.Sign(key, msg)))
}

func TestGenerateEd25519Key_Unique(t *testing.T) {
	_, a, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	_, b, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
