// Package archive walks the raw resource tree of a package root and
// extracts entry content. It operates purely on the workspace entry
// interface; the concrete zip-backed model lives in internal/project.
package archive

import (
	"depnav/internal/paths"
	"depnav/internal/workspace"
)

// FindChildren locates the directory at target within dir's subtree and
// returns its immediate children: no descendants, no ancestors. ok is
// false when target is not under dir.
//
// Prefix matching is path-segment aware, so a sibling directory whose name
// is a textual prefix of the target ("/a/bc" vs "/a/bcd") never matches.
func FindChildren(dir workspace.Entry, target string) ([]workspace.Entry, bool) {
	if dir.Path() == target {
		return dir.Children(), true
	}
	if !paths.HasPathPrefix(target, dir.Path()) {
		return nil, false
	}
	for _, child := range dir.Children() {
		if child.Path() == target {
			return child.Children(), true
		}
		if child.IsDir() && paths.HasPathPrefix(target, child.Path()) {
			if children, ok := FindChildren(child, target); ok {
				return children, true
			}
		}
	}
	return nil, false
}

// FindFile locates the file leaf at target within dir's subtree. Same
// recursive shape as FindChildren, returning the matched leaf instead of
// its children.
func FindFile(dir workspace.Entry, target string) (workspace.Entry, bool) {
	if !paths.HasPathPrefix(target, dir.Path()) {
		return nil, false
	}
	for _, child := range dir.Children() {
		if !child.IsDir() && child.Path() == target {
			return child, true
		}
		if child.IsDir() {
			if file, ok := FindFile(child, target); ok {
				return file, true
			}
		}
	}
	return nil, false
}
