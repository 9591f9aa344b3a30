package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Argon2id parameters. Changing these only affects new hashes; stored hashes
// carry their own parameters.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

// pepperStore holds the server-side secret mixed into every password hash.
// It is read from disk once and created on first use if missing.
type pepperStore struct {
	mu    sync.Mutex
	path  string
	value string
}

var pepper = &pepperStore{path: "pepper"}

// SetPepperPath points the pepper at file. Any cached value is discarded.
func SetPepperPath(file string) {
	pepper.mu.Lock()
	defer pepper.mu.Unlock()
	pepper.path = file
	pepper.value = ""
}

// LoadPepper reads (or creates) the pepper file so that startup fails fast
// when the path is unusable.
func LoadPepper() error {
	_, err := pepper.get()
	return err
}

func (p *pepperStore) get() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value != "" {
		return p.value, nil
	}

	v, err := loadOrCreatePepper(p.path)
	if err != nil {
		return "", err
	}
	p.value = v
	return v, nil
}

func loadOrCreatePepper(path string) (string, error) {
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		v := strings.TrimSpace(string(b))
		if v == "" {
			return "", fmt.Errorf("cryptox: pepper file %q is empty", path)
		}
		return v, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("cryptox: read pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("cryptox: generate pepper: %w", err)
	}
	v := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(v), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return v, nil
}
