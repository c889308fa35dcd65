package repositories

import (
	"context"
	"errors"
)

// ErrNoMutation may be returned by a Mutate callback to signal that the
// current document already reflects the desired state. Mutate then succeeds
// without performing a write, which keeps recompute passes idempotent.
var ErrNoMutation = errors.New("no mutation required")

// DocumentStore is the raw whole-document contract over the remote backend:
// read the current revision, or compare-and-swap in a new one. Used directly
// only where typed access is impractical (backup snapshots).
type DocumentStore interface {
	// Read returns the current content and version for path, or
	// apperrors.ErrNotFound when the path is absent.
	Read(ctx context.Context, path string) (content []byte, version string, err error)

	// Write replaces the document. When expectedVersion is empty the store
	// first reads the latest version (last-write-wins against whatever is
	// current at write time). Version mismatches are retried within the
	// store's bounded retry policy before surfacing apperrors.ErrConflict.
	Write(ctx context.Context, path string, content []byte, message, expectedVersion string) (newVersion string, err error)
}

// CollectionRepository provides typed access to one JSON-array document.
// Absence of the document is an empty collection, never an error.
type CollectionRepository[T any] interface {
	// FindAll returns every record plus the version token to use for a
	// subsequent ReplaceAll. An absent document yields an empty slice and an
	// empty version.
	FindAll(ctx context.Context) ([]T, string, error)

	// ReplaceAll writes the full collection against expectedVersion.
	ReplaceAll(ctx context.Context, items []T, message, expectedVersion string) (string, error)

	// Mutate runs one read-transform-write cycle. On a version conflict the
	// transform is re-applied to a fresh read, up to the store's retry
	// budget, so a retried write never resurrects a stale snapshot. The
	// callback may return ErrNoMutation to skip the write.
	Mutate(ctx context.Context, message string, fn func(items []T) ([]T, error)) ([]T, error)
}

// SingletonRepository provides typed access to one JSON-object document,
// with the same absence and conflict semantics as CollectionRepository.
type SingletonRepository[T any] interface {
	Find(ctx context.Context) (T, string, error)
	Save(ctx context.Context, value T, message, expectedVersion string) (string, error)
	Mutate(ctx context.Context, message string, fn func(value T) (T, error)) (T, error)
}
