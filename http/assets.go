// Package http serves index artifacts during a dev session.
package http

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Content types for index artifacts, keyed by file extension.
var contentTypes = map[string]string{
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".wasm": "application/wasm",
	".json": "application/json",
}

// ContentType returns the Content-Type served for name.
func ContentType(name string) string {
	if ct, ok := contentTypes[filepath.Ext(name)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AssetHandler serves files from dir for requests whose path starts with
// prefix and passes every other request to next. Requests that would resolve
// outside dir are passed to next as well. Any read failure is a 404 with an
// empty body.
func AssetHandler(prefix, dir string, next http.Handler) http.Handler {
	// Request paths are matched in escaped form so that an encoded "/"
	// in the remainder is not mistaken for a separator.
	escapedPrefix := (&url.URL{Path: prefix}).EscapedPath()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escaped := r.URL.EscapedPath()
		if !strings.HasPrefix(escaped, escapedPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		rel, err := url.PathUnescape(strings.TrimPrefix(escaped, escapedPrefix))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		path, ok := resolve(dir, rel)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", ContentType(path))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// resolve joins rel onto dir and reports whether the result stays inside dir.
func resolve(dir, rel string) (string, bool) {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	r, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
