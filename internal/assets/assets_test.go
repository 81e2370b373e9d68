package assets

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadReturnsSameHandle(t *testing.T) {
	s := NewServer[string]("assets")

	a := s.Load("human.glb#Scene0")
	b := s.Load("human.glb#Scene0")
	c := s.Load("tree.glb#Scene0")

	if a == 0 {
		t.Fatal("Load should never return the zero handle")
	}
	if a != b {
		t.Errorf("Same path should give the same handle: %d vs %d", a, b)
	}
	if a == c {
		t.Error("Different paths should give different handles")
	}
	if s.State(a) != StatePending {
		t.Errorf("Expected pending before Resolve, got %v", s.State(a))
	}
	if !s.Pending() {
		t.Error("Pending() should be true before Resolve")
	}
}

func TestResolve(t *testing.T) {
	s := NewServer[string]("assets")
	human := s.Load("human.glb#Scene0")
	broken := s.Load("broken.glb")

	var calls []string
	loader := func(path, label string) (string, error) {
		calls = append(calls, path+"|"+label)
		if filepath.Base(path) == "broken.glb" {
			return "", errors.New("bad file")
		}
		return "model:" + filepath.Base(path), nil
	}

	var reported []string
	failed := s.Resolve(loader, func(path string, err error) {
		reported = append(reported, path)
	})

	if failed != 1 || len(reported) != 1 {
		t.Errorf("Expected one failure, got %d (reported %v)", failed, reported)
	}

	want := filepath.Join("assets", "human.glb") + "|Scene0"
	if calls[0] != want {
		t.Errorf("Loader got %q, want %q", calls[0], want)
	}

	got, ok := s.Get(human)
	if !ok || got != "model:human.glb" {
		t.Errorf("Get(human) = %q, %v", got, ok)
	}

	if _, ok := s.Get(broken); ok {
		t.Error("Get on a failed asset should not succeed")
	}
	if s.State(broken) != StateFailed || s.Err(broken) == nil {
		t.Errorf("Broken asset should be failed with an error, got %v / %v", s.State(broken), s.Err(broken))
	}

	// Failures are not retried.
	calls = nil
	s.Resolve(loader, nil)
	if len(calls) != 0 {
		t.Errorf("Second Resolve should not call the loader, called for %v", calls)
	}
	if s.Pending() {
		t.Error("Nothing should be pending after Resolve")
	}
}

func TestGetUnknownHandle(t *testing.T) {
	s := NewServer[int]("")
	if _, ok := s.Get(0); ok {
		t.Error("Zero handle should never resolve")
	}
	if _, ok := s.Get(42); ok {
		t.Error("Unknown handle should not resolve")
	}
	if s.State(42) != StateMissing {
		t.Errorf("Unknown handle state = %v", s.State(42))
	}
}

func TestUnload(t *testing.T) {
	s := NewServer[int]("")
	h := s.Load("a.glb")
	s.Resolve(func(path, label string) (int, error) { return 7, nil }, nil)

	released := 0
	s.Unload(func(v int) { released += v })

	if released != 7 {
		t.Errorf("Expected release of loaded value, got %d", released)
	}
	if s.State(h) != StateMissing {
		t.Errorf("Handles should be forgotten after Unload, state %v", s.State(h))
	}
}

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		in, file, label string
	}{
		{"human.glb#Scene0", "human.glb", "Scene0"},
		{"tree.glb", "tree.glb", ""},
		{"dir/a#b.glb#Mesh1", "dir/a#b.glb", "Mesh1"},
	}
	for _, tt := range tests {
		file, label := SplitLabel(tt.in)
		if file != tt.file || label != tt.label {
			t.Errorf("SplitLabel(%q) = %q, %q; want %q, %q", tt.in, file, label, tt.file, tt.label)
		}
	}
}
