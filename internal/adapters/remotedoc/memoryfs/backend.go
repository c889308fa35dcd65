// Package memoryfs is an in-memory remote backend with the same versioning
// semantics as the real file host: content-addressed version tokens and
// compare-and-swap writes. It backs the test suites and local development.
package memoryfs

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
)

type entry struct {
	content []byte
	version string
}

// Backend stores documents in a mutex-guarded map.
type Backend struct {
	mu    sync.Mutex
	files map[string]entry

	putCount       int
	forceConflicts int
	failNextPut    error
}

// NewBackend returns an empty backend.
func NewBackend() *Backend {
	return &Backend{files: make(map[string]entry)}
}

var _ portsrepo.RemoteBackend = (*Backend)(nil)

// Get returns a copy of the stored content plus its version token.
func (b *Backend) Get(ctx context.Context, path string) ([]byte, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.files[path]
	if !ok {
		return nil, "", fmt.Errorf("get %s: %w", path, apperrors.ErrNotFound)
	}
	content := make([]byte, len(e.content))
	copy(content, e.content)
	return content, e.version, nil
}

// Put performs a compare-and-swap write. An empty version only creates; a
// non-empty version must match the current token exactly.
func (b *Backend) Put(ctx context.Context, path string, content []byte, message, version string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.putCount++
	if b.failNextPut != nil {
		err := b.failNextPut
		b.failNextPut = nil
		return "", err
	}
	if b.forceConflicts > 0 {
		b.forceConflicts--
		return "", fmt.Errorf("put %s: %w", path, apperrors.ErrConflict)
	}

	current, exists := b.files[path]
	if version == "" && exists {
		return "", fmt.Errorf("put %s: file exists: %w", path, apperrors.ErrConflict)
	}
	if version != "" && (!exists || current.version != version) {
		return "", fmt.Errorf("put %s: %w", path, apperrors.ErrConflict)
	}

	stored := make([]byte, len(content))
	copy(stored, content)
	newVersion := hashContent(stored)
	b.files[path] = entry{content: stored, version: newVersion}
	return newVersion, nil
}

// ExternalWrite bypasses the version check, simulating a concurrent writer
// that moved the document to a new revision.
func (b *Backend) ExternalWrite(path string, content []byte) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(content))
	copy(stored, content)
	version := hashContent(stored)
	b.files[path] = entry{content: stored, version: version}
	return version
}

// ForceConflicts makes the next n Puts fail with a conflict without touching
// state, regardless of the version they carry.
func (b *Backend) ForceConflicts(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forceConflicts = n
}

// FailNextPut makes the next Put fail with err.
func (b *Backend) FailNextPut(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNextPut = err
}

// PutCount reports how many Puts were attempted, successful or not.
func (b *Backend) PutCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.putCount
}

func hashContent(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])
}
