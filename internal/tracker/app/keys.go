package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

// InitKeys generates the EdDSA signing keys for this process.
//
// Keys are ephemeral: they live only in memory, so every access token
// issued before a restart stops verifying. Refresh tokens are stored in the
// database and survive, which lets clients recover with a refresh call.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
		Leeway:  jwtx.DefaultLeeway,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"algorithm", jwtx.AlgorithmEdDSA,
		"num_keys", km.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("access tokens issued before this start are no longer valid")

	return km, nil
}
