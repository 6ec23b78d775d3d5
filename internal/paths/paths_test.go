package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/a/b/c", "/a/b/c"},
		{"/a//b/./c/", "/a/b/c"},
		{"/a/b/../c", "/a/c"},
		{"a/b", "a/b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasPathPrefix(t *testing.T) {
	tests := []struct {
		name   string
		target string
		prefix string
		want   bool
	}{
		{"exact match", "/a/bc", "/a/bc", true},
		{"descendant", "/a/bc/d.txt", "/a/bc", true},
		{"deep descendant", "/a/bc/d/e", "/a/bc", true},
		{"textual prefix, different segment", "/a/bcd", "/a/bc", false},
		{"textual prefix descendant", "/a/bcd/e.txt", "/a/bc", false},
		{"unrelated", "/x/y", "/a/bc", false},
		{"prefix longer than target", "/a", "/a/bc", false},
		{"trailing slash on prefix", "/a/bc/d", "/a/bc/", true},
		{"empty prefix, empty target", "", "", true},
		{"empty prefix, nonempty target", "/a", "", false},
		{"root prefix", "/a/bc", "/", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPathPrefix(tt.target, tt.prefix); got != tt.want {
				t.Errorf("HasPathPrefix(%q, %q) = %v, want %v", tt.target, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	if err := os.MkdirAll(real, 0o755); err != nil {
		t.Fatal(err)
	}

	// Existing paths resolve relative segments.
	got := Canonicalize(filepath.Join(dir, "real", "..", "real"))
	want := Canonicalize(real)
	if got != want {
		t.Errorf("Canonicalize = %q, want %q", got, want)
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err == nil {
		if got := Canonicalize(link); got != want {
			t.Errorf("Canonicalize(symlink) = %q, want %q", got, want)
		}
	}

	// Nonexistent paths still come back normalized and absolute.
	missing := Canonicalize(filepath.Join(dir, "nope", "..", "gone"))
	if missing != Normalize(filepath.Join(dir, "gone")) {
		t.Errorf("Canonicalize(missing) = %q", missing)
	}
}

func TestKey(t *testing.T) {
	a := Key("/work/demo")
	b := Key("/work/demo")
	c := Key("/work/other")

	if a != b {
		t.Error("Expected stable keys for equal paths")
	}
	if a == c {
		t.Error("Expected distinct keys for distinct paths")
	}
	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d (%s)", len(a), a)
	}
}
