package nav

import (
	"depnav/internal/workspace"
)

// ResolveRoot maps a (module-qualified) canonical path to the concrete
// package root backing it.
//
// Without a module name the project's direct lookup is authoritative.
// With one, the path is canonicalized and every root of the project is
// scanned for a canonical-path and module-name match: module-path entries
// can expose the same physical archive under multiple module names, so
// path alone is ambiguous. First match wins. No match is a NotFound
// outcome, not an error; callers decide whether that is empty data or a
// stale query.
func ResolveRoot(project workspace.Project, rootPath, moduleName string) (workspace.PackageRoot, bool) {
	if moduleName == "" {
		return project.PackageRoot(rootPath)
	}
	canonical := project.Canonicalize(rootPath)
	for _, root := range project.AllPackageRoots() {
		if root.Path() != "" && root.Path() == canonical && root.ModuleName() == moduleName {
			return root, true
		}
	}
	return nil, false
}
