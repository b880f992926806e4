package cryptox

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Argon2id parameters for new digests. At these settings a verification takes
// a few tens of milliseconds on commodity hardware.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

const argon2Prefix = "$argon2id$"

var (
	ErrPasscodeMismatch = errors.New("cryptox: passcode does not match")
	ErrUnknownDigest    = errors.New("cryptox: unrecognised digest format")
)

// PasscodeHasher produces and checks salted passcode digests. New digests are
// PHC encoded Argon2id with a server side pepper; bcrypt digests written by
// older deployments still verify (without pepper) so accounts keep working.
type PasscodeHasher struct {
	pepper string
}

func NewPasscodeHasher(pepper string) *PasscodeHasher {
	return &PasscodeHasher{pepper: pepper}
}

// Hash returns the PHC encoded Argon2id digest of passcode.
func (h *PasscodeHasher) Hash(passcode string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("cryptox: read salt: %w", err)
	}

	sum := argon2.IDKey([]byte(passcode+h.pepper), salt, iterations, memory, parallelism, keyLength)

	return fmt.Appendf(nil,
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// Verify checks passcode against digest. It returns ErrPasscodeMismatch on a
// wrong passcode and a different error when the digest itself is unusable.
func (h *PasscodeHasher) Verify(passcode string, digest []byte) error {
	switch {
	case bytes.HasPrefix(digest, []byte(argon2Prefix)):
		return h.verifyArgon2(passcode, string(digest))
	case isBcrypt(digest):
		err := bcrypt.CompareHashAndPassword(digest, []byte(passcode))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasscodeMismatch
		}
		return err
	default:
		return ErrUnknownDigest
	}
}

// NeedsRehash reports whether digest was produced by something other than
// the current Argon2id settings.
func NeedsRehash(digest []byte) bool {
	return !bytes.HasPrefix(digest, fmt.Appendf(nil, "$argon2id$v=%d$m=%d,t=%d,p=%d$",
		argon2.Version, memory, iterations, parallelism))
}

func (h *PasscodeHasher) verifyArgon2(passcode, encoded string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return fmt.Errorf("%w: expected 6 parts", ErrUnknownDigest)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return fmt.Errorf("%w: unsupported argon2 version", ErrUnknownDigest)
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %v", ErrUnknownDigest, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrUnknownDigest, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return fmt.Errorf("%w: hash", ErrUnknownDigest)
	}

	got := argon2.IDKey(
		[]byte(passcode+h.pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(want)), // #nosec G115 - bounded by the decoded digest
	)

	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrPasscodeMismatch
}

func isBcrypt(digest []byte) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if bytes.HasPrefix(digest, []byte(p)) {
			return true
		}
	}
	return false
}
