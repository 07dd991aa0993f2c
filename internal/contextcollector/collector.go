// Package contextcollector gathers the ShellContext snapshot from
// spec.md §4: recent history, git state, detected project type, and an
// allow-listed slice of environment variables.
package contextcollector

import (
	"os"

	"murmur/git"
	"murmur/internal/config"
	"murmur/internal/protocol"
)

// Collector gathers ShellContext snapshots. It is stateless beyond its
// config, and safe to share across connections the same way providers
// are.
type Collector struct {
	cfg config.ContextConfig
}

func New(cfg config.ContextConfig) *Collector {
	return &Collector{cfg: cfg}
}

// Collect builds a ShellContext for (cwd, shell), per spec.md §4.1's
// data-flow: invoked on a cache miss, it reads the shell history file,
// shells out to git, detects the project type from on-disk markers, and
// reads the allow-listed env vars.
func (c *Collector) Collect(cwd, shell string) protocol.ShellContext {
	ctx := protocol.ShellContext{
		Cwd:     cwd,
		Shell:   shell,
		EnvVars: collectEnvVars(),
	}

	if home, err := os.UserHomeDir(); err == nil {
		ctx.History = readShellHistory(home, shell, c.cfg.HistoryLines)
	}

	if c.cfg.GitEnabled {
		if info := git.Collect(cwd); info != nil {
			ctx.Git = &protocol.GitInfo{
				Branch:        info.Branch,
				Dirty:         info.Dirty,
				RecentCommits: info.RecentCommits,
				RepoRoot:      info.RepoRoot,
			}
		}
	}

	if c.cfg.ProjectDetection {
		ctx.Project = detectProject(cwd)
	}

	return ctx
}
