package prefetch

import "testing"

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestPredictGitCommit(t *testing.T) {
	got := Predict("git commit")
	if contains(got, "git commit") {
		t.Fatalf("expected predictions to exclude the input itself, got %v", got)
	}
}

func TestPredictGitCLongestPrefix(t *testing.T) {
	got := Predict("git c")
	if !contains(got, "git commit") || !contains(got, "git checkout") {
		t.Fatalf("expected git commit and git checkout in %v", got)
	}
}

func TestPredictUnknownIsEmpty(t *testing.T) {
	if got := Predict("zzz"); len(got) != 0 {
		t.Fatalf("expected no predictions for unknown input, got %v", got)
	}
}

func TestPredictInvariants(t *testing.T) {
	inputs := []string{"git", "git c", "cargo t", "npm r", "docker c", "kubectl"}
	for _, in := range inputs {
		for _, p := range Predict(in) {
			if len(p) <= len(in) {
				t.Fatalf("prediction %q not strictly longer than input %q", p, in)
			}
			if p[:len(in)] != in {
				t.Fatalf("prediction %q does not start with input %q", p, in)
			}
		}
	}
}
