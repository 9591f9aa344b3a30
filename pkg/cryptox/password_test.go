package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
			require.Len(t, strings.Split(hash, "$"), 6)
			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", "", strings.Repeat("x", 10000)} {
		require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch, wrong)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword("pw", tt.hash), ErrMalformedHash)
		})
	}
}

func TestPepperChangesHash(t *testing.T) {
	hash, err := HashPassword("peppered")
	require.NoError(t, err)

	orig := pepper.path
	t.Cleanup(func() { SetPepperPath(orig) })

	SetPepperPath(filepath.Join(t.TempDir(), "other-pepper"))
	require.ErrorIs(t, VerifyPassword("peppered", hash), ErrPasswordMismatch)

	SetPepperPath(orig)
	require.NoError(t, VerifyPassword("peppered", hash))
}

func TestLoadPepper_PersistsToDisk(t *testing.T) {
	orig := pepper.path
	t.Cleanup(func() { SetPepperPath(orig) })

	path := filepath.Join(t.TempDir(), "nested", "pepper")
	SetPepperPath(path)
	require.NoError(t, LoadPepper())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, string(b), 43)

	first, err := pepper.get()
	require.NoError(t, err)

	SetPepperPath(path)
	second, err := pepper.get()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadPepper_EmptyFile(t *testing.T) {
	orig := pepper.path
	t.Cleanup(func() { SetPepperPath(orig) })

	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))
	SetPepperPath(path)
	require.Error(t, LoadPepper())
}

func TestBurnPasswordCheck(t *testing.T) {
	require.NotPanics(t, func() { BurnPasswordCheck("anything") })
	require.NotEmpty(t, dummyHash)
}
