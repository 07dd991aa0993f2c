package contextcollector

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// shellHistoryPath resolves the read-only shell history file location
// for the named shell, per spec.md §6.
func shellHistoryPath(home, shell string) string {
	switch shell {
	case "bash":
		return filepath.Join(home, ".bash_history")
	case "fish":
		return filepath.Join(home, ".local", "share", "fish", "fish_history")
	default: // zsh, and anything unrecognized defaults to zsh's location
		return filepath.Join(home, ".zsh_history")
	}
}

// readShellHistory reads up to limit most-recent commands from the
// shell's history file. A missing or unreadable file yields an empty
// slice, never an error — history collection is best-effort context.
func readShellHistory(home, shell string, limit int) []string {
	if limit <= 0 || home == "" {
		return nil
	}

	path := shellHistoryPath(home, shell)
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	switch shell {
	case "fish":
		lines = parseFishHistory(f, limit)
	default:
		lines = parseLineHistory(f, shell, limit)
	}
	return lines
}

// parseLineHistory handles zsh and bash, both of which are one command
// per physical history entry. zsh's extended history format prefixes
// each entry with ": timestamp:duration;" which is stripped to recover
// the command.
func parseLineHistory(r *os.File, shell string, limit int) []string {
	var all []string
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if shell == "zsh" || shell == "" {
			if decoded, ok := decodeZshExtendedLine(line); ok {
				line = decoded
			}
		}
		all = append(all, line)
	}

	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	// Most-recent-first to match the rest of the context snapshot.
	reverse(all)
	return all
}

// decodeZshExtendedLine decodes the zsh extended-history format
// ": timestamp:duration;command" into the bare command. Lines not in
// that format are returned unchanged.
func decodeZshExtendedLine(line string) (string, bool) {
	if !strings.HasPrefix(line, ": ") {
		return line, false
	}
	idx := strings.Index(line, ";")
	if idx < 0 {
		return line, false
	}
	return line[idx+1:], true
}

// parseFishHistory reads fish's YAML-ish history format line by line,
// picking out "- cmd: ..." entries without a full YAML dependency, since
// fish's own format is a restricted subset we only need to read.
func parseFishHistory(r *os.File, limit int) []string {
	var all []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "- cmd:") {
			continue
		}
		cmd := strings.TrimSpace(strings.TrimPrefix(line, "- cmd:"))
		cmd = unquoteFishCommand(cmd)
		if cmd != "" {
			all = append(all, cmd)
		}
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	reverse(all)
	return all
}

func unquoteFishCommand(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal([]byte(s), &unquoted); err == nil {
			return unquoted
		}
	}
	return s
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
