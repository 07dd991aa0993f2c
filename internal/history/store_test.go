package history

import "testing"

func TestRecordOrderingAndBound(t *testing.T) {
	s := New(2)
	s.Record("ls", "/a", "zsh", 0)
	s.Record("pwd", "/a", "zsh", 0)
	s.Record("git status", "/a", "zsh", 0)

	if s.Len() != 2 {
		t.Fatalf("expected len bounded to 2, got %d", s.Len())
	}

	all := s.List("", 10)
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Command != "git status" || all[1].Command != "pwd" {
		t.Fatalf("expected reverse insertion order, got %+v", all)
	}
}

func TestListFiltersByCwd(t *testing.T) {
	s := New(10)
	s.Record("a", "/p", "src", 0)
	s.Record("b", "/q", "src", 0)
	s.Record("c", "/p", "src", 0)

	filtered := s.List("/p", 10)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 entries for /p, got %d", len(filtered))
	}
	for _, e := range filtered {
		if e.Cwd != "/p" {
			t.Fatalf("expected only /p entries, got %+v", e)
		}
	}
}

func TestListRespectsLimit(t *testing.T) {
	s := New(10)
	for i := 0; i < 5; i++ {
		s.Record("cmd", "/p", "src", 0)
	}
	if got := s.List("", 2); len(got) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(got))
	}
	if got := s.List("", 0); len(got) != 0 {
		t.Fatalf("expected limit 0 to return no entries, got %d", len(got))
	}
}
