package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/finance/pkg/cryptox"
	"github.com/aussiebroadwan/finance/pkg/jwtx"
)

// InitSessionKeys loads the session signing key and builds the matching
// verifier.
//
// With FINANCE_SIGNING_KEY_FILE set the key is read from that file, created
// on first start, and sessions survive restarts. Without it a key is
// generated in memory and every session ends when the process exits.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.EdDSAVerifier, error) {
	var (
		pemKey []byte
		err    error
	)

	if cfg.SigningKeyFile != "" {
		pemKey, err = cryptox.LoadOrCreateEd25519Key(cfg.SigningKeyFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("session signing key loaded", "path", cfg.SigningKeyFile)
	} else {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, nil, err
		}
		logger.Warn("using an ephemeral session signing key, sessions end on restart")
	}

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	logger.Info("session signer ready", "alg", signer.Alg(), "kid", signer.KID(), "issuer", cfg.Issuer)
	return signer, jwtx.NewVerifierEdDSA(cfg.Issuer, signer), nil
}
