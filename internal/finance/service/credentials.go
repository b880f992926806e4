package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/finance/internal/finance/domain"
	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/pkg/cryptox"
	"github.com/aussiebroadwan/finance/pkg/slogx"
)

// CredentialService creates, verifies and rotates passcodes. Plaintext
// passcodes only ever exist in memory for the duration of a call.
type CredentialService struct {
	Store  store.Store
	Hasher *cryptox.PasscodeHasher

	dummyOnce   sync.Once
	dummyDigest []byte
}

// CreateUser registers username with passcode and returns the stored user.
// The insert and the read-back run in one transaction.
func (s *CredentialService) CreateUser(ctx context.Context, username, passcode string) (domain.User, error) {
	username, err := domain.NormalizeUsername(username)
	if err != nil {
		return domain.User{}, invalidInput(err)
	}
	if err := domain.ValidatePasscode(passcode); err != nil {
		return domain.User{}, invalidInput(err)
	}

	digest, err := s.Hasher.Hash(passcode)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Users().CreateUser(ctx, username, digest)
		if err != nil {
			return err
		}
		user, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// VerifyUser checks passcode against the stored digest for username. Unknown
// users still pay for one hash so the two failures take the same time.
// Digests in an outdated format are upgraded after a successful match.
func (s *CredentialService) VerifyUser(ctx context.Context, username, passcode string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username, err := domain.NormalizeUsername(username)
	if err != nil {
		_ = s.Hasher.Verify(passcode, s.dummy())
		return domain.User{}, ErrNotFound
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		_ = s.Hasher.Verify(passcode, s.dummy())
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Hasher.Verify(passcode, user.PasscodeHash); err != nil {
		if errors.Is(err, cryptox.ErrPasscodeMismatch) {
			return domain.User{}, ErrWrongPasscode
		}
		l.Error("stored passcode digest unusable", slog.Int64("user_id", user.ID), slog.Any("err", err))
		return domain.User{}, ErrWrongPasscode
	}

	if cryptox.NeedsRehash(user.PasscodeHash) {
		if digest, err := s.upgradeDigest(ctx, user, passcode); err != nil {
			l.Warn("passcode rehash failed", slog.Int64("user_id", user.ID), slog.Any("err", err))
		} else if digest != nil {
			user.PasscodeHash = digest
			l.Info("passcode digest upgraded", slog.Int64("user_id", user.ID))
		}
	}

	return user, nil
}

// ChangePasscode replaces the user's digest. The caller must already hold an
// authenticated session for userID.
func (s *CredentialService) ChangePasscode(ctx context.Context, userID int64, newPasscode string) error {
	if err := domain.ValidatePasscode(newPasscode); err != nil {
		return invalidInput(err)
	}

	digest, err := s.Hasher.Hash(newPasscode)
	if err != nil {
		return err
	}

	err = s.Store.Users().UpdatePasscodeHash(ctx, userID, digest)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("passcode changed", slog.Int64("user_id", userID))
	return nil
}

func (s *CredentialService) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

// upgradeDigest rewrites user's legacy digest from the plaintext that just
// matched it. The write only happens if the stored digest is still the one
// that was verified; a passcode changed in the meantime is left alone and
// the returned digest is nil.
func (s *CredentialService) upgradeDigest(ctx context.Context, user domain.User, passcode string) ([]byte, error) {
	digest, err := s.Hasher.Hash(passcode)
	if err != nil {
		return nil, err
	}

	var upgraded []byte
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if !bytes.Equal(current.PasscodeHash, user.PasscodeHash) {
			return nil
		}
		if err := tx.Users().UpdatePasscodeHash(ctx, user.ID, digest); err != nil {
			return err
		}
		upgraded = digest
		return nil
	})
	return upgraded, err
}

func (s *CredentialService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyDigest, _ = s.Hasher.Hash("0000000000")
	})
	return s.dummyDigest
}
