// Package securestore is the CLI's encrypted key/value facade. Values are
// sealed with AES-GCM under a per-device key before they reach SQLite.
//
// None of the operations return errors: faults are logged and reported as
// false (Set, Delete) or nil (Get), so callers treat storage as best effort.
package securestore

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/cryptox"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
)

type Store struct {
	repo   metadata.Repository
	key    []byte
	logger logging.Logger
	now    func() time.Time
	closer func() error
}

func New(repo metadata.Repository, key []byte, logger logging.Logger) *Store {
	return &Store{repo: repo, key: key, logger: logger, now: time.Now}
}

func (s *Store) Set(ctx context.Context, key, value string) bool {
	if key == "" {
		s.logger.Warn(ctx, "secure store: empty key")
		return false
	}

	plain := []byte(value)
	defer common.WipeByteArray(plain)

	sealed, err := cryptox.Seal(plain, s.key)
	if err != nil {
		s.logger.Error(ctx, "secure store: seal failed", "key", key, "error", err)
		return false
	}

	if err := s.repo.Set(ctx, key, sealed); err != nil {
		s.logger.Error(ctx, "secure store: write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Get returns nil when the key is absent or cannot be read back.
func (s *Store) Get(ctx context.Context, key string) *string {
	sealed, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Error(ctx, "secure store: read failed", "key", key, "error", err)
		return nil
	}
	if sealed == nil {
		return nil
	}

	plain, err := cryptox.Open(sealed, s.key)
	if err != nil {
		s.logger.Error(ctx, "secure store: open failed", "key", key, "error", err)
		return nil
	}

	v := string(plain)
	common.WipeByteArray(plain)
	return &v
}

// Delete returns true when the key is gone afterwards, including when it
// was never stored.
func (s *Store) Delete(ctx context.Context, key string) bool {
	if _, err := s.repo.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "secure store: delete failed", "key", key, "error", err)
		return false
	}
	return true
}

// Fingerprint returns a one-way SHA-256 digest of value salted with the
// current time. Two calls with the same value give different results.
func (s *Store) Fingerprint(value string) string {
	return cryptox.Fingerprint(value, s.now())
}

// Close zeroes the device key and releases the database. The store is
// unusable afterwards.
func (s *Store) Close() error {
	common.WipeByteArray(s.key)
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
