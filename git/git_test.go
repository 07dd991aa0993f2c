package git

import (
	"os"
	"testing"
)

func TestCollectNonRepo(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "murmur-git-test")
	if err != nil {
		t.Fatalf("failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if info := Collect(tempDir); info != nil {
		t.Errorf("expected nil Info for non-git directory, got: %+v", info)
	}
}

func TestCollectMissingDir(t *testing.T) {
	if info := Collect("/nonexistent/path/for/murmur-tests"); info != nil {
		t.Errorf("expected nil Info for missing directory, got: %+v", info)
	}
}
