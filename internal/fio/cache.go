package fio

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// cachePath maps an endpoint path onto its on-disk mirror: the path trimmed
// of surrounding slashes, inner slashes replaced by underscores, suffixed
// ".json".
func cachePath(dir, endpoint string) string {
	slug := strings.Trim(endpoint, "/")
	slug = strings.ReplaceAll(slug, "/", "_")
	return filepath.Join(dir, slug+".json")
}

// readCache returns the cached body for an endpoint when the file is younger
// than ttl. A stale or missing file returns nil; the stale file stays on disk
// until the next successful fetch overwrites it.
func readCache(dir, endpoint string, ttl time.Duration) []byte {
	if dir == "" {
		return nil
	}
	path := cachePath(dir, endpoint)
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if time.Since(info.ModTime()) >= ttl {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}

// writeCache mirrors a response body to disk, pretty-printed. Failures are
// returned so the caller can log them; they never fail the request itself.
func writeCache(dir, endpoint string, body []byte) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pretty := &bytes.Buffer{}
	if err := json.Indent(pretty, body, "", "  "); err != nil {
		// Not JSON, mirror verbatim.
		return os.WriteFile(cachePath(dir, endpoint), body, 0o644)
	}
	return os.WriteFile(cachePath(dir, endpoint), pretty.Bytes(), 0o644)
}
