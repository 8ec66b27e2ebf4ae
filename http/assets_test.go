package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	dihttp "github.com/fwojciec/docindex/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Serving the dev index
//
// The dev server serves the freshly built index from the cache directory
// under <base>/docfind/ and hands every other request to the site server.

const prefix = "/docs/docfind/"

func newAssetDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"docfind.js":       "export default 1",
		"worker.mjs":       "self.onmessage = null",
		"docfind_bg.wasm":  "\x00asm",
		"documents.json":   "[]",
		"index.bin":        "binary",
		"chunks/part-1.js": "export const a = 1",
		"with space.json":  "{}",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func nextHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Next", "1")
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "next")
	})
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAssetHandler_ServesArtifacts(t *testing.T) {
	t.Parallel()

	h := dihttp.AssetHandler(prefix, newAssetDir(t), nextHandler())

	tests := []struct {
		target      string
		contentType string
		body        string
	}{
		{"/docs/docfind/docfind.js", "text/javascript", "export default 1"},
		{"/docs/docfind/worker.mjs", "text/javascript", "self.onmessage = null"},
		{"/docs/docfind/docfind_bg.wasm", "application/wasm", "\x00asm"},
		{"/docs/docfind/documents.json", "application/json", "[]"},
		{"/docs/docfind/index.bin", "application/octet-stream", "binary"},
		{"/docs/docfind/chunks/part-1.js", "text/javascript", "export const a = 1"},
		{"/docs/docfind/with%20space.json", "application/json", "{}"},
		{"/docs/docfind/docfind.js?v=123", "text/javascript", "export default 1"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, h, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestAssetHandler_MissingArtifactIsEmpty404(t *testing.T) {
	t.Parallel()

	h := dihttp.AssetHandler(prefix, newAssetDir(t), nextHandler())

	for _, target := range []string{
		"/docs/docfind/missing.js",
		"/docs/docfind/",
		"/docs/docfind/chunks",
	} {
		rec := serve(t, h, target)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Empty(t, rec.Body.String(), target)
		assert.Empty(t, rec.Header().Get("X-Next"), target)
	}
}

func TestAssetHandler_UnreadableArtifactIs404(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	dir := newAssetDir(t)
	require.NoError(t, os.Chmod(filepath.Join(dir, "docfind.js"), 0))

	rec := serve(t, dihttp.AssetHandler(prefix, dir, nextHandler()), "/docs/docfind/docfind.js")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAssetHandler_PassesThroughOtherRequests(t *testing.T) {
	t.Parallel()

	h := dihttp.AssetHandler(prefix, newAssetDir(t), nextHandler())

	for _, target := range []string{
		"/",
		"/docs/guide/",
		"/docs/docfind",
		"/docfind/docfind.js",
	} {
		rec := serve(t, h, target)

		assert.Equal(t, http.StatusTeapot, rec.Code, target)
		assert.Equal(t, "next", rec.Body.String(), target)
	}
}

func TestAssetHandler_RejectsTraversal(t *testing.T) {
	t.Parallel()

	// Given a secret next to the asset directory
	root := t.TempDir()
	dir := filepath.Join(root, "docfind")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0644))
	h := dihttp.AssetHandler(prefix, dir, nextHandler())

	// When requests try to climb out of the directory
	for _, target := range []string{
		"/docs/docfind/../secret.txt",
		"/docs/docfind/%2e%2e%2fsecret.txt",
		"/docs/docfind/..%2fsecret.txt",
	} {
		rec := serve(t, h, target)

		// Then they never reach the file system outside it
		assert.NotContains(t, rec.Body.String(), "secret", target)
		assert.Equal(t, http.StatusTeapot, rec.Code, target)
	}
}

func TestAssetHandler_MatchesPrefixWithEscapedCharacters(t *testing.T) {
	t.Parallel()

	// Given a site base containing a space
	h := dihttp.AssetHandler("/my docs/docfind/", newAssetDir(t), nextHandler())

	// When the browser requests an artifact with the base percent-encoded
	rec := serve(t, h, "/my%20docs/docfind/docfind.js")

	// Then the artifact is served
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/javascript", rec.Header().Get("Content-Type"))
	assert.Equal(t, "export default 1", rec.Body.String())
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/javascript", dihttp.ContentType("a/b.js"))
	assert.Equal(t, "application/wasm", dihttp.ContentType("x.wasm"))
	assert.Equal(t, "application/octet-stream", dihttp.ContentType("x.JS"))
	assert.Equal(t, "application/octet-stream", dihttp.ContentType("noext"))
}
