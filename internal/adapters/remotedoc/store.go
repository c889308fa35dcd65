// Package remotedoc implements the versioned document store over a remote
// file backend. Every document is a whole JSON file identified by a logical
// path; writes are compare-and-swap against the backend's version token, so
// a writer can never silently overwrite a revision it has not observed.
package remotedoc

import (
	"context"
	"errors"
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
)

// RetryPolicy bounds how often a conflicting write is retried before the
// conflict is surfaced to the caller.
type RetryPolicy struct {
	// MaxConflictRetries is the number of re-read-and-resubmit attempts after
	// the first conflicting write. Zero means fail on the first conflict.
	MaxConflictRetries int
	// Backoff is the base delay between attempts, scaled linearly.
	Backoff time.Duration
}

// DefaultRetryPolicy retries once, matching the historical behavior of the
// bookkeeping tool this store was extracted from.
var DefaultRetryPolicy = RetryPolicy{
	MaxConflictRetries: 1,
	Backoff:            150 * time.Millisecond,
}

// Store mediates every read and write against the remote backend.
type Store struct {
	backend portsrepo.RemoteBackend
	policy  RetryPolicy
}

// NewStore wraps backend with the given retry policy.
func NewStore(backend portsrepo.RemoteBackend, policy RetryPolicy) *Store {
	if policy.MaxConflictRetries < 0 {
		policy.MaxConflictRetries = 0
	}
	return &Store{backend: backend, policy: policy}
}

var _ portsrepo.DocumentStore = (*Store)(nil)

// Read returns the current content and version token for path. Absence is
// reported as apperrors.ErrNotFound; callers treat that as an empty
// collection, not a failure.
func (s *Store) Read(ctx context.Context, path string) ([]byte, string, error) {
	return s.backend.Get(ctx, path)
}

// Write replaces the document at path. When expectedVersion is empty the
// latest version is fetched first, making the write last-write-wins against
// whatever was current at write time. A version mismatch is retried by
// re-reading the current version and resubmitting the same content, up to
// the policy's budget; a still-conflicting write fails with ErrConflict and
// nothing is committed.
func (s *Store) Write(ctx context.Context, path string, content []byte, message, expectedVersion string) (string, error) {
	version := expectedVersion
	if version == "" {
		v, err := s.latestVersion(ctx, path)
		if err != nil {
			return "", err
		}
		version = v
	}

	for attempt := 0; ; attempt++ {
		newVersion, err := s.backend.Put(ctx, path, content, message, version)
		if err == nil {
			return newVersion, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt >= s.policy.MaxConflictRetries {
			return "", err
		}
		if err := s.wait(ctx, attempt); err != nil {
			return "", err
		}
		v, err := s.latestVersion(ctx, path)
		if err != nil {
			return "", err
		}
		version = v
	}
}

// writeOnce submits exactly one compare-and-swap, with no implicit read and
// no retry. The typed repositories use it so their conflict handling can
// re-apply the caller's transform instead of blindly resubmitting.
func (s *Store) writeOnce(ctx context.Context, path string, content []byte, message, expectedVersion string) (string, error) {
	return s.backend.Put(ctx, path, content, message, expectedVersion)
}

// latestVersion reads the current version token, mapping an absent document
// to the empty token (which the backend treats as a create).
func (s *Store) latestVersion(ctx context.Context, path string) (string, error) {
	_, version, err := s.backend.Get(ctx, path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

func (s *Store) wait(ctx context.Context, attempt int) error {
	if s.policy.Backoff <= 0 {
		return nil
	}
	timer := time.NewTimer(s.policy.Backoff * time.Duration(attempt+1))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
