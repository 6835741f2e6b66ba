package app

import (
	"path/filepath"
	"testing"
)

func TestResolvePathsUsesAppName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	paths, err := ResolvePaths()
	if err != nil {
		t.Fatalf("resolve paths: %v", err)
	}
	if filepath.Base(paths.RootDir) != Name {
		t.Fatalf("expected root dir named %q, got %q", Name, paths.RootDir)
	}
	if filepath.Dir(paths.ConfigFile) != paths.RootDir {
		t.Fatalf("expected config file inside root dir, got %q", paths.ConfigFile)
	}
}
