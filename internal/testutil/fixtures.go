package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile создаёт файл name с содержимым body во временной директории теста
// и возвращает его путь.
func WriteFile(t testing.TB, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// MissingPath returns a path inside the test's temp dir that does not exist.
func MissingPath(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
