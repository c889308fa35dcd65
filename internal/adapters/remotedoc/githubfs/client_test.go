package githubfs_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakari-app/sahakari_backend/internal/adapters/remotedoc/githubfs"
	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
)

func newTestClient(handler http.HandlerFunc) (*githubfs.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := githubfs.NewClient("coop", "books", "main", "test-token",
		githubfs.WithBaseURL(server.URL),
		githubfs.WithHTTPClient(server.Client()),
	)
	return client, server
}

func TestGetDecodesContentAndSHA(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/coop/books/contents/data/members.json", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		// The API wraps base64 payloads with newlines.
		encoded := base64.StdEncoding.EncodeToString([]byte(`[{"id":1}]`))
		wrapped := encoded[:4] + "\n" + encoded[4:] + "\n"
		json.NewEncoder(w).Encode(map[string]string{
			"content":  wrapped,
			"encoding": "base64",
			"sha":      "abc123",
		})
	})
	defer server.Close()

	content, version, err := client.Get(context.Background(), "data/members.json")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(content))
	assert.Equal(t, "abc123", version)
}

func TestGetMissingFile(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, _, err := client.Get(context.Background(), "data/missing.json")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetServerErrorIsTransient(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, _, err := client.Get(context.Background(), "data/members.json")
	require.ErrorIs(t, err, apperrors.ErrTransient)
}

func TestPutSendsSHAAndReturnsNewVersion(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var req struct {
			Message string `json:"message"`
			Content string `json:"content"`
			Branch  string `json:"branch"`
			SHA     string `json:"sha"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Update members", req.Message)
		assert.Equal(t, "main", req.Branch)
		assert.Equal(t, "oldsha", req.SHA)

		decoded, err := base64.StdEncoding.DecodeString(req.Content)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(decoded))

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"content":{"sha":"newsha"}}`)
	})
	defer server.Close()

	version, err := client.Put(context.Background(), "data/members.json", []byte(`[{"id":1}]`), "Update members", "oldsha")
	require.NoError(t, err)
	assert.Equal(t, "newsha", version)
}

func TestPutCreateOmitsSHA(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, hasSHA := req["sha"]
		assert.False(t, hasSHA, "create must not carry a sha")

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"content":{"sha":"firstsha"}}`)
	})
	defer server.Close()

	version, err := client.Put(context.Background(), "data/members.json", []byte(`[]`), "Create members", "")
	require.NoError(t, err)
	assert.Equal(t, "firstsha", version)
}

func TestPutConflictStatuses(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.Put(context.Background(), "data/members.json", []byte(`[]`), "edit", "stale")
		require.ErrorIs(t, err, apperrors.ErrConflict, "status %d", status)
		server.Close()
	}
}
