package testing

import (
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
)

// TestingT is the subset of *testing.T used by MatchesGolden, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "INTERACT_UPDATE_GOLDEN"

// MatchesGolden compares got against the golden file at path. When
// INTERACT_UPDATE_GOLDEN=1 is set, the file is written instead.
func MatchesGolden(t TestingT, path string, got []byte) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create golden dir: %v", err)
			return
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to read golden file: %v", err)
		return
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("golden mismatch: %s (-want +got):\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}
