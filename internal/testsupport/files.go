package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleShelfJSON is a two-book document in the on-disk shelf format.
const SampleShelfJSON = `{
  "collectionOfBooks": [
    {"title": "Dune", "totalPages": 100, "pagesRead": 50, "genreTags": ["Fiction", "SciFi"]},
    {"title": "Hamlet", "totalPages": 200, "pagesRead": 50, "genreTags": ["Drama"]}
  ]
}
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content at path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
