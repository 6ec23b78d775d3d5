package archive

import (
	"io"
	"strings"
	"testing"

	"depnav/internal/workspace"
)

type stubEntry struct {
	path     string
	dir      bool
	children []workspace.Entry
	content  string
	openErr  error
	readErr  error
}

func (e *stubEntry) Name() string {
	if i := strings.LastIndex(e.path, "/"); i >= 0 {
		return e.path[i+1:]
	}
	return e.path
}

func (e *stubEntry) Path() string                { return e.path }
func (e *stubEntry) IsDir() bool                 { return e.dir }
func (e *stubEntry) Children() []workspace.Entry { return e.children }

func (e *stubEntry) Open() (io.ReadCloser, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	if e.readErr != nil {
		return io.NopCloser(&failingReader{err: e.readErr}), nil
	}
	return io.NopCloser(strings.NewReader(e.content)), nil
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

func dir(path string, children ...workspace.Entry) *stubEntry {
	return &stubEntry{path: path, dir: true, children: children}
}

func file(path, content string) *stubEntry {
	return &stubEntry{path: path, content: content}
}

// tree:
//
//	/a
//	  /a/bc          (dir)
//	    /a/bc/one.txt
//	  /a/bcd         (dir)
//	    /a/bcd/two.txt
//	    /a/bcd/deep  (dir)
//	      /a/bcd/deep/three.txt
//	  /a/readme.md
func sampleTree() *stubEntry {
	return dir("/a",
		dir("/a/bc", file("/a/bc/one.txt", "one")),
		dir("/a/bcd",
			file("/a/bcd/two.txt", "two"),
			dir("/a/bcd/deep", file("/a/bcd/deep/three.txt", "three")),
		),
		file("/a/readme.md", "readme"),
	)
}

func TestFindChildren(t *testing.T) {
	root := sampleTree()

	tests := []struct {
		name   string
		target string
		want   []string
		ok     bool
	}{
		{"root itself", "/a", []string{"/a/bc", "/a/bcd", "/a/readme.md"}, true},
		{"direct child dir", "/a/bc", []string{"/a/bc/one.txt"}, true},
		{"sibling sharing textual prefix", "/a/bcd", []string{"/a/bcd/two.txt", "/a/bcd/deep"}, true},
		{"nested dir", "/a/bcd/deep", []string{"/a/bcd/deep/three.txt"}, true},
		{"not in tree", "/a/zz", nil, false},
		{"outside root", "/b", nil, false},
		{"partial segment never matches", "/a/b", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children, ok := FindChildren(root, tt.target)
			if ok != tt.ok {
				t.Fatalf("FindChildren(%s) ok = %v, want %v", tt.target, ok, tt.ok)
			}
			if len(children) != len(tt.want) {
				t.Fatalf("FindChildren(%s) returned %d children, want %d", tt.target, len(children), len(tt.want))
			}
			for i, child := range children {
				if child.Path() != tt.want[i] {
					t.Errorf("child[%d] = %s, want %s", i, child.Path(), tt.want[i])
				}
			}
		})
	}
}

func TestFindChildrenDoesNotCrossSegmentBoundary(t *testing.T) {
	// A target under /a/bcd must never descend into the sibling /a/bc
	// even though "/a/bc" is a textual prefix of "/a/bcd/...".
	root := dir("/a",
		dir("/a/bc", dir("/a/bc/d", file("/a/bc/d/decoy.txt", "decoy"))),
		dir("/a/bcd", file("/a/bcd/real.txt", "real")),
	)

	children, ok := FindChildren(root, "/a/bcd")
	if !ok {
		t.Fatal("Expected /a/bcd to resolve")
	}
	if len(children) != 1 || children[0].Path() != "/a/bcd/real.txt" {
		t.Errorf("Unexpected children: %+v", children)
	}
}

func TestFindFile(t *testing.T) {
	root := sampleTree()

	tests := []struct {
		name   string
		target string
		ok     bool
	}{
		{"top-level file", "/a/readme.md", true},
		{"nested file", "/a/bcd/deep/three.txt", true},
		{"file in prefix sibling", "/a/bc/one.txt", true},
		{"directory is not a file", "/a/bcd", false},
		{"missing", "/a/bcd/four.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := FindFile(root, tt.target)
			if ok != tt.ok {
				t.Fatalf("FindFile(%s) ok = %v, want %v", tt.target, ok, tt.ok)
			}
			if ok && entry.Path() != tt.target {
				t.Errorf("FindFile(%s) = %s", tt.target, entry.Path())
			}
		})
	}
}

func TestFindFileOutsideTree(t *testing.T) {
	root := sampleTree()
	if _, ok := FindFile(root, "/elsewhere/file.txt"); ok {
		t.Error("Expected miss for a target outside the tree")
	}
}
