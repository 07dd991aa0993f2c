package prefetch

// rules is the static prefix → candidate-continuations table from
// spec.md §4.4. Keys are matched by longest-prefix against the trimmed
// input.
var rules = map[string][]string{
	"git":      {"git status", "git commit", "git push", "git pull", "git log", "git diff"},
	"git c":    {"git commit", "git checkout", "git clone", "git cherry-pick"},
	"cargo":    {"cargo build", "cargo run", "cargo test", "cargo check"},
	"cargo t":  {"cargo test", "cargo test --all"},
	"npm":      {"npm install", "npm run", "npm test", "npm start"},
	"npm r":    {"npm run", "npm run build", "npm run dev", "npm run test"},
	"docker":   {"docker build", "docker compose up", "docker ps", "docker run"},
	"docker c": {"docker compose up", "docker compose down", "docker commit"},
	"kubectl":  {"kubectl get pods", "kubectl apply -f", "kubectl logs", "kubectl describe"},
}
