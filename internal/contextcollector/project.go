package contextcollector

import (
	"os"
	"path/filepath"
)

// projectMarkers maps a marker filename (or glob) to the project type it
// indicates, per spec.md §6. Entries are checked in a fixed order so
// that, e.g., a repo with both Cargo.toml and a Makefile resolves to
// rust rather than cpp.
var projectMarkers = []struct {
	name      string
	isGlob    bool
	projectID string
}{
	{"Cargo.toml", false, "rust"},
	{"package.json", false, "node"},
	{"pyproject.toml", false, "python"},
	{"requirements.txt", false, "python"},
	{"go.mod", false, "go"},
	{"Gemfile", false, "ruby"},
	{"pom.xml", false, "java"},
	{"build.gradle", false, "java"},
	{"*.csproj", true, "c_sharp"},
	{"CMakeLists.txt", false, "cpp"},
	{"Makefile", false, "cpp"},
}

// detectProject returns the project type for cwd, or "" if no marker is
// present.
func detectProject(cwd string) string {
	for _, m := range projectMarkers {
		if m.isGlob {
			matches, err := filepath.Glob(filepath.Join(cwd, m.name))
			if err == nil && len(matches) > 0 {
				return m.projectID
			}
			continue
		}
		if _, err := os.Stat(filepath.Join(cwd, m.name)); err == nil {
			return m.projectID
		}
	}
	return ""
}
