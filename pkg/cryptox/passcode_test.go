package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/finance/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashProducesPHCDigest(t *testing.T) {
	h := cryptox.NewPasscodeHasher("pepper")

	digest, err := h.Hash("0123456789")
	require.NoError(t, err)

	parts := strings.Split(string(digest), "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotContains(t, string(digest), "0123456789")
	require.False(t, cryptox.NeedsRehash(digest))
}

func TestHashUsesUniqueSalts(t *testing.T) {
	h := cryptox.NewPasscodeHasher("pepper")

	a, err := h.Hash("same-code!")
	require.NoError(t, err)
	b, err := h.Hash("same-code!")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, h.Verify("same-code!", a))
	require.NoError(t, h.Verify("same-code!", b))
}

func TestVerify(t *testing.T) {
	h := cryptox.NewPasscodeHasher("pepper")

	tests := []struct {
		name     string
		passcode string
	}{
		{"ascii", "abcdEFGH12"},
		{"symbols", "!@#$%^&*()"},
		{"spaces", "   a  b   "},
		{"non printable", "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09"},
		{"unicode", "пароль🔒密码12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := h.Hash(tt.passcode)
			require.NoError(t, err)
			require.NoError(t, h.Verify(tt.passcode, digest))
			require.ErrorIs(t, h.Verify(tt.passcode+"x", digest), cryptox.ErrPasscodeMismatch)
		})
	}
}

func TestVerifyDependsOnPepper(t *testing.T) {
	digest, err := cryptox.NewPasscodeHasher("pepper-a").Hash("0123456789")
	require.NoError(t, err)

	err = cryptox.NewPasscodeHasher("pepper-b").Verify("0123456789", digest)
	require.ErrorIs(t, err, cryptox.ErrPasscodeMismatch)
}

func TestVerifyLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("0123456789"), bcrypt.MinCost)
	require.NoError(t, err)

	h := cryptox.NewPasscodeHasher("pepper")
	require.NoError(t, h.Verify("0123456789", legacy))
	require.ErrorIs(t, h.Verify("9876543210", legacy), cryptox.ErrPasscodeMismatch)
	require.True(t, cryptox.NeedsRehash(legacy))
}

func TestVerifyRejectsMalformedDigests(t *testing.T) {
	h := cryptox.NewPasscodeHasher("pepper")

	for _, digest := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
	} {
		err := h.Verify("0123456789", []byte(digest))
		require.Error(t, err, "digest %q", digest)
		require.NotErrorIs(t, err, cryptox.ErrPasscodeMismatch, "digest %q", digest)
	}
}
