package contextcollector

import (
	"os"
	"strings"

	"murmur/internal/protocol"
)

// allowedEnvVars is the fixed allow-list from spec.md §6.
var allowedEnvVars = []string{
	"EDITOR", "VISUAL", "SHELL", "TERM", "LANG", "VIRTUAL_ENV",
	"CONDA_DEFAULT_ENV", "NODE_ENV", "RUST_LOG", "GOPATH", "CARGO_HOME",
	"NVM_DIR", "PYENV_VERSION", "RBENV_VERSION",
}

// sensitiveSubstrings are substrings that must never appear in a key the
// collector emits, regardless of the allow-list, per spec.md §6/§8-7.
var sensitiveSubstrings = []string{"API_KEY", "SECRET", "TOKEN", "PASSWORD"}

// collectEnvVars reads the allow-listed environment variables, skipping
// any that are unset and defensively re-checking the sensitive-substring
// rule even though the allow-list itself contains none.
func collectEnvVars() []protocol.EnvVar {
	var out []protocol.EnvVar
	for _, key := range allowedEnvVars {
		if isSensitiveKey(key) {
			continue
		}
		if val, ok := os.LookupEnv(key); ok {
			out = append(out, protocol.EnvVar{Key: key, Value: val})
		}
	}
	return out
}

func isSensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, s := range sensitiveSubstrings {
		if strings.Contains(upper, s) {
			return true
		}
	}
	return false
}
