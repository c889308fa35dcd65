package remotedoc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc"
	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc/memoryfs"
	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
)

func newTestStore() (*remotedoc.Store, *memoryfs.Backend) {
	backend := memoryfs.NewBackend()
	store := remotedoc.NewStore(backend, remotedoc.RetryPolicy{
		MaxConflictRetries: 1,
		Backoff:            time.Millisecond,
	})
	return store, backend
}

func TestStoreReadWriteRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	version, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)
	require.NotEmpty(t, version)

	content, readVersion, err := store.Read(ctx, "data/notes.json")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(content))
	assert.Equal(t, version, readVersion)
}

func TestStoreReadMissingDocument(t *testing.T) {
	store, _ := newTestStore()

	_, _, err := store.Read(context.Background(), "data/missing.json")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreWriteWithoutVersionOverwritesLatest(t *testing.T) {
	store, backend := newTestStore()
	ctx := context.Background()

	_, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)
	backend.ExternalWrite("data/notes.json", []byte(`["a","b"]`))

	// Empty expected version means last-write-wins against the current
	// revision; the implicit read picks up the external write's token.
	_, err = store.Write(ctx, "data/notes.json", []byte(`["c"]`), "overwrite", "")
	require.NoError(t, err)

	content, _, err := store.Read(ctx, "data/notes.json")
	require.NoError(t, err)
	assert.Equal(t, `["c"]`, string(content))
}

func TestStoreWriteStaleVersionFails(t *testing.T) {
	store, backend := newTestStore()
	ctx := context.Background()

	stale, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)
	backend.ExternalWrite("data/notes.json", []byte(`["a","b"]`))
	backend.ForceConflicts(2)

	// Stale token plus a still-conflicting retry exhausts the budget.
	_, err = store.Write(ctx, "data/notes.json", []byte(`["c"]`), "edit", stale)
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStoreWriteConflictRetrySucceeds(t *testing.T) {
	store, backend := newTestStore()
	ctx := context.Background()

	_, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)

	backend.ForceConflicts(1)
	_, err = store.Write(ctx, "data/notes.json", []byte(`["b"]`), "edit", "")
	require.NoError(t, err)

	content, _, err := store.Read(ctx, "data/notes.json")
	require.NoError(t, err)
	assert.Equal(t, `["b"]`, string(content))
}

func TestStoreWriteConflictExhaustsRetries(t *testing.T) {
	store, backend := newTestStore()
	ctx := context.Background()

	_, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)

	puts := backend.PutCount()
	backend.ForceConflicts(2)
	_, err = store.Write(ctx, "data/notes.json", []byte(`["b"]`), "edit", "")
	require.ErrorIs(t, err, apperrors.ErrConflict)
	// Initial attempt plus exactly one retry.
	assert.Equal(t, puts+2, backend.PutCount())

	content, _, err := store.Read(ctx, "data/notes.json")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(content), "nothing committed on exhausted retries")
}

func TestStoreWriteTransientNotRetried(t *testing.T) {
	store, backend := newTestStore()
	ctx := context.Background()

	_, err := store.Write(ctx, "data/notes.json", []byte(`["a"]`), "create", "")
	require.NoError(t, err)

	puts := backend.PutCount()
	backend.FailNextPut(apperrors.ErrTransient)
	_, err = store.Write(ctx, "data/notes.json", []byte(`["b"]`), "edit", "")
	require.ErrorIs(t, err, apperrors.ErrTransient)
	assert.Equal(t, puts+1, backend.PutCount(), "only conflicts are retried")
}
