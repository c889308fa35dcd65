package repositories

import "context"

// RemoteBackend is the versioned file host backing every document. Each path
// holds a content blob plus an opaque version token (content hash) that
// changes on every successful write.
//
// Implementations map absence to apperrors.ErrNotFound, version mismatch on
// Put to apperrors.ErrConflict, and transport failures to
// apperrors.ErrTransient.
type RemoteBackend interface {
	// Get fetches the current blob and version token for path.
	Get(ctx context.Context, path string) (content []byte, version string, err error)

	// Put replaces the blob at path. An empty version creates the file; a
	// non-empty version must match the backend's current token or the write
	// is rejected with ErrConflict. The message becomes the commit message.
	Put(ctx context.Context, path string, content []byte, message, version string) (newVersion string, err error)
}
