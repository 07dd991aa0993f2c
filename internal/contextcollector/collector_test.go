package contextcollector

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var sensitivePattern = regexp.MustCompile(`API_KEY|SECRET|TOKEN|PASSWORD`)

func TestCollectEnvVarsNeverLeaksSensitiveKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-should-never-appear")
	t.Setenv("MY_SECRET_TOKEN", "should-never-appear")
	t.Setenv("EDITOR", "vim")

	for _, ev := range collectEnvVars() {
		if sensitivePattern.MatchString(ev.Key) {
			t.Fatalf("leaked sensitive env key: %s", ev.Key)
		}
	}
}

func TestCollectEnvVarsOnlyAllowList(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("SOME_RANDOM_VAR", "x")

	found := map[string]bool{}
	for _, ev := range collectEnvVars() {
		found[ev.Key] = true
	}
	if !found["EDITOR"] {
		t.Errorf("expected EDITOR in allow-listed output")
	}
	if found["SOME_RANDOM_VAR"] {
		t.Errorf("expected non-allow-listed var to be excluded")
	}
}

func TestDetectProjectGo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	if got := detectProject(dir); got != "go" {
		t.Errorf("expected go, got %q", got)
	}
}

func TestDetectProjectNone(t *testing.T) {
	dir := t.TempDir()
	if got := detectProject(dir); got != "" {
		t.Errorf("expected no project type, got %q", got)
	}
}

func TestDecodeZshExtendedLine(t *testing.T) {
	cmd, ok := decodeZshExtendedLine(": 1700000000:0;git status")
	if !ok || cmd != "git status" {
		t.Fatalf("expected decoded command, got %q ok=%v", cmd, ok)
	}

	cmd, ok = decodeZshExtendedLine("plain command")
	if ok || cmd != "plain command" {
		t.Fatalf("expected unchanged plain line, got %q ok=%v", cmd, ok)
	}
}
