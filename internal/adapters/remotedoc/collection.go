package remotedoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
)

// Collection gives typed access to one JSON-array document. An absent
// document reads as an empty collection with an empty version token.
type Collection[T any] struct {
	store *Store
	path  string
}

// NewCollection binds a typed collection to a document path.
func NewCollection[T any](store *Store, path string) *Collection[T] {
	return &Collection[T]{store: store, path: path}
}

var _ portsrepo.CollectionRepository[struct{}] = (*Collection[struct{}])(nil)

// FindAll decodes the whole document. NotFound is an empty collection.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, string, error) {
	content, version, err := c.store.Read(ctx, c.path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []T{}, "", nil
		}
		return nil, "", err
	}
	items := []T{}
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", c.path, err)
	}
	return items, version, nil
}

// ReplaceAll writes the full collection against expectedVersion, using the
// store's default conflict retry (re-read version, resubmit same content).
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T, message, expectedVersion string) (string, error) {
	content, err := encodeDocument(c.path, items)
	if err != nil {
		return "", err
	}
	return c.store.Write(ctx, c.path, content, message, expectedVersion)
}

// Mutate runs read-transform-write. A conflicting write is retried by
// re-reading and re-applying fn to the fresh collection, within the store's
// retry budget, so concurrent edits are never resurrected from a stale
// snapshot. fn may return portsrepo.ErrNoMutation to skip the write.
func (c *Collection[T]) Mutate(ctx context.Context, message string, fn func(items []T) ([]T, error)) ([]T, error) {
	for attempt := 0; ; attempt++ {
		items, version, err := c.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		next, err := fn(items)
		if err != nil {
			if errors.Is(err, portsrepo.ErrNoMutation) {
				return items, nil
			}
			return nil, err
		}
		content, err := encodeDocument(c.path, next)
		if err != nil {
			return nil, err
		}
		_, err = c.store.writeOnce(ctx, c.path, content, message, version)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt >= c.store.policy.MaxConflictRetries {
			return nil, err
		}
		if err := c.store.wait(ctx, attempt); err != nil {
			return nil, err
		}
	}
}

// Singleton gives typed access to one JSON-object document. An absent
// document reads as the zero value with an empty version token.
type Singleton[T any] struct {
	store *Store
	path  string
}

// NewSingleton binds a typed singleton to a document path.
func NewSingleton[T any](store *Store, path string) *Singleton[T] {
	return &Singleton[T]{store: store, path: path}
}

var _ portsrepo.SingletonRepository[struct{}] = (*Singleton[struct{}])(nil)

// Find decodes the document, or returns the zero value when absent.
func (s *Singleton[T]) Find(ctx context.Context) (T, string, error) {
	var value T
	content, version, err := s.store.Read(ctx, s.path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return value, "", nil
		}
		return value, "", err
	}
	if err := json.Unmarshal(content, &value); err != nil {
		return value, "", fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return value, version, nil
}

// Save writes the document against expectedVersion.
func (s *Singleton[T]) Save(ctx context.Context, value T, message, expectedVersion string) (string, error) {
	content, err := encodeDocument(s.path, value)
	if err != nil {
		return "", err
	}
	return s.store.Write(ctx, s.path, content, message, expectedVersion)
}

// Mutate runs read-transform-write with transform-aware conflict retry,
// mirroring Collection.Mutate.
func (s *Singleton[T]) Mutate(ctx context.Context, message string, fn func(value T) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		value, version, err := s.Find(ctx)
		if err != nil {
			return zero, err
		}
		next, err := fn(value)
		if err != nil {
			if errors.Is(err, portsrepo.ErrNoMutation) {
				return value, nil
			}
			return zero, err
		}
		content, err := encodeDocument(s.path, next)
		if err != nil {
			return zero, err
		}
		_, err = s.store.writeOnce(ctx, s.path, content, message, version)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt >= s.store.policy.MaxConflictRetries {
			return zero, err
		}
		if err := s.store.wait(ctx, attempt); err != nil {
			return zero, err
		}
	}
}

// encodeDocument pretty-prints so the repository hosting the documents stays
// reviewable file by file.
func encodeDocument(path string, v any) ([]byte, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	return append(content, '\n'), nil
}
