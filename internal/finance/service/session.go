package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/pkg/idx"
	"github.com/aussiebroadwan/finance/pkg/jwtx"
	"github.com/aussiebroadwan/finance/pkg/slogx"
)

// Session is what a successful login hands to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
	Username  string
}

// SessionService turns verified credentials into a signed session token.
// Signing out is the client dropping its token.
type SessionService struct {
	Credentials *CredentialService
	Signer      jwtx.Signer
	Issuer      string
	TTL         time.Duration

	Now func() time.Time
}

func (s *SessionService) Login(ctx context.Context, username, passcode string) (Session, error) {
	if err := domain.ValidatePasscode(passcode); err != nil {
		return Session{}, invalidInput(err)
	}

	user, err := s.Credentials.VerifyUser(ctx, username, passcode)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrWrongPasscode) {
			slogx.FromContext(ctx).Info("login failed")
		}
		return Session{}, err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, idx.New().String(), s.Issuer, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	slogx.FromContext(ctx).Info("session issued", slog.Int64("user_id", user.ID), slog.String("sid", claims.SID))
	return Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}
