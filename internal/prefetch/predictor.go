package prefetch

import "strings"

// Predict returns the predicted continuations for input per spec.md
// §4.4: find the longest rules key that is either a prefix of the
// (trimmed) input or equal to it, then keep only candidates that both
// start with input and are strictly longer than it. Unknown inputs
// yield an empty slice.
func Predict(input string) []string {
	trimmed := strings.TrimSpace(input)

	var bestKey string
	for key := range rules {
		if key != trimmed && !strings.HasPrefix(trimmed, key) {
			continue
		}
		if len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return nil
	}

	var out []string
	for _, candidate := range rules[bestKey] {
		if strings.HasPrefix(candidate, trimmed) && len(candidate) > len(trimmed) {
			out = append(out, candidate)
		}
	}
	return out
}
