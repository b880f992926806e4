package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/finance/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *EdDSASigner {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := NewSignerEdDSA(pemKey)
	require.NoError(t, err)
	return s
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA("finance", signer)
	require.True(t, verifier.Ready())

	now := time.Now().UTC()
	token, err := signer.Sign(NewSessionClaims(42, "alice", "sid-1", "finance", time.Hour, now))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "sid-1", claims.SID)

	uid, err := claims.UserID()
	require.NoError(t, err)
	require.EqualValues(t, 42, uid)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	trusted := newTestSigner(t)
	rogue := newTestSigner(t)

	token, err := rogue.Sign(NewSessionClaims(1, "mallory", "sid", "finance", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = NewVerifierEdDSA("finance", trusted).Verify(token)
	require.ErrorIs(t, err, ErrUnknownKID)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := newTestSigner(t)
	token, err := signer.Sign(NewSessionClaims(1, "alice", "sid", "elsewhere", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = NewVerifierEdDSA("finance", signer).Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := newTestSigner(t)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := signer.Sign(NewSessionClaims(1, "alice", "sid", "finance", time.Hour, issued))
	require.NoError(t, err)

	v := NewVerifierEdDSA("finance", signer)
	v.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrExpired)

	v.now = func() time.Time { return issued.Add(-time.Minute) }
	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrNotYetValid)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer := newTestSigner(t)
	now := time.Now()

	honest, err := signer.Sign(NewSessionClaims(1, "alice", "sid", "finance", time.Hour, now))
	require.NoError(t, err)
	forged, err := signer.Sign(NewSessionClaims(2, "bob", "sid", "finance", time.Hour, now))
	require.NoError(t, err)

	// Graft bob's payload onto alice's signature.
	h := strings.Split(honest, ".")
	f := strings.Split(forged, ".")
	tampered := strings.Join([]string{h[0], f[1], h[2]}, ".")

	_, err = NewVerifierEdDSA("finance", signer).Verify(tampered)
	require.Error(t, err)
}

func TestUserIDRejectsBadSubject(t *testing.T) {
	for _, sub := range []string{"", "abc", "0", "-3"} {
		c := Claims{}
		c.Subject = sub
		_, err := c.UserID()
		require.ErrorIs(t, err, ErrInvalidClaim, "subject %q", sub)
	}
}

func TestKeyIDStableForSameKey(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	a, err := NewSignerEdDSA(pemKey)
	require.NoError(t, err)
	b, err := NewSignerEdDSA(pemKey)
	require.NoError(t, err)
	require.Equal(t, a.KID(), b.KID())
}
