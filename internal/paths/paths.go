// Package paths provides the portable path helpers used across the
// navigator. All paths exchanged with clients use forward slashes.
package paths

import (
	"encoding/hex"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Normalize converts a path to its portable slash-separated form and
// collapses redundant segments.
func Normalize(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

// Canonicalize resolves symlinks and relative segments to a normalized
// absolute path, matching how roots are indexed. Paths that do not exist
// on disk are normalized as-is so stale queries still compare textually.
func Canonicalize(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return Normalize(p)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return Normalize(abs)
		}
		return Normalize(abs)
	}
	return Normalize(resolved)
}

// HasPathPrefix reports whether target is prefix itself or lies underneath
// it, matching on path-segment boundaries. Unlike a plain string prefix
// check, "/a/bc" is not treated as a prefix of "/a/bcd".
func HasPathPrefix(target, prefix string) bool {
	if prefix == "" {
		return target == ""
	}
	if target == prefix {
		return true
	}
	return strings.HasPrefix(target, strings.TrimSuffix(prefix, "/")+"/")
}

// Base returns the final segment of a portable path.
func Base(p string) string {
	return path.Base(p)
}

// Join joins portable path segments.
func Join(segments ...string) string {
	return path.Join(segments...)
}

// Key returns a short stable hex key for a canonical path, used as the
// registry identifier for projects and roots.
func Key(canonical string) string {
	sum := blake2b.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:8])
}
