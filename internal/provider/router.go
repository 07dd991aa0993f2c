package provider

import "strings"

// RouteClass is one of the three provider chains from spec.md §4.5.
type RouteClass string

const (
	RouteShell RouteClass = "shell"
	RouteCode  RouteClass = "code"
	RouteLocal RouteClass = "local"
)

// codeRuntimePrefixes are editor/runtime invocations that always route
// to the code chain regardless of project type.
var codeRuntimePrefixes = []string{
	"vim ", "nvim ", "python ", "node ", "cargo run", "go run", "npx ",
}

// pagerPrefixes are viewer commands that route to code only when the
// argument looks like a source file.
var pagerPrefixes = []string{"cat ", "less ", "bat "}

// codeFileExtensions trigger the pager+extension rule.
var codeFileExtensions = []string{
	".go", ".rs", ".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".c", ".cpp", ".h", ".rb",
}

// codeTokens are language keywords that, combined with a recognized
// project type, indicate the user is typing code rather than a shell
// command.
var codeTokens = []string{
	"fn ", "def ", "function ", "class ", "import ", "const ", "let ", "pub ", "async ", "struct ",
}

var codeProjectTypes = map[string]bool{
	"rust": true, "node": true, "python": true, "go": true,
}

// Route classifies a request per the ordered rules in spec.md §4.5.
func Route(input string, shellCtx Context) RouteClass {
	trimmed := strings.TrimSpace(input)

	if len(trimmed) < 3 {
		return RouteLocal
	}

	for _, p := range codeRuntimePrefixes {
		if strings.HasPrefix(input, p) {
			return RouteCode
		}
	}

	for _, p := range pagerPrefixes {
		if strings.HasPrefix(input, p) && containsCodeExtension(input) {
			return RouteCode
		}
	}

	if codeProjectTypes[shellCtx.Project] {
		for _, tok := range codeTokens {
			if strings.Contains(input, tok) {
				return RouteCode
			}
		}
	}

	return RouteShell
}

func containsCodeExtension(input string) bool {
	for _, ext := range codeFileExtensions {
		if strings.Contains(input, ext) {
			return true
		}
	}
	return false
}
