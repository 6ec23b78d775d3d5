// Package workspace defines the read-only project-model capability the
// navigator is given. The concrete model (internal/project) may be mutated
// by background indexing at any time; consumers treat every lookup as a
// possibly-stale snapshot and tolerate vanished resources.
package workspace

import "io"

// EntryKind classifies a raw classpath entry.
type EntryKind int

const (
	// EntrySource is a source folder; container listings drop these.
	EntrySource EntryKind = iota + 1
	// EntryLibrary is a plain library entry (jar or class folder).
	EntryLibrary
	// EntryModule is a module-path entry.
	EntryModule
	// EntryOutput is a compiled-output folder.
	EntryOutput
)

// ClasspathEntry is one raw classpath entry of a project.
type ClasspathEntry struct {
	Path string
	Kind EntryKind
}

// ContainerInfo describes a resolved classpath container.
type ContainerInfo struct {
	Description string
	Path        string
}

// Workspace resolves project identity. Projects are found by
// workspace-root containment of the query URI, never by name.
type Workspace interface {
	// FindProjectByURI returns the project whose root contains uri,
	// or nil when no registered project does.
	FindProjectByURI(uri string) Project

	// ResolveClassFile resolves a class-file locator (the uri attached
	// to class-file nodes) back to the class file, or nil.
	ResolveClassFile(locator string) ClassFile
}

// Project is the classpath view of one project.
type Project interface {
	URI() string

	// RawClasspathEntries lists the project's raw classpath entries.
	RawClasspathEntries() []ClasspathEntry

	// ResolveContainer resolves a raw entry to its container
	// description. ok is false when the container can no longer
	// resolve (stale classpath state; callers skip the entry).
	ResolveContainer(entryPath string) (ContainerInfo, bool)

	// FindPackageRoots lists the package roots a raw entry contributes.
	FindPackageRoots(entryPath string) []PackageRoot

	// AllPackageRoots lists every root of the project, direct and
	// transitive.
	AllPackageRoots() []PackageRoot

	// PackageRoot looks a root up directly by its canonical path.
	PackageRoot(rootPath string) (PackageRoot, bool)

	// Canonicalize normalizes a path per the project's indexing rules
	// so differently-expressed inputs compare equal.
	Canonicalize(path string) string
}

// PackageRoot is the concrete backing store for packages and classes:
// a directory of compiled output or an archive.
type PackageRoot interface {
	Name() string
	Path() string

	// ModuleName returns the module name when the root is a
	// module-path root, "" otherwise.
	ModuleName() string

	// Packages lists every package fragment of the root (flat dotted
	// names, the default package included).
	Packages() []Package

	// Package looks a fragment up by its dotted name.
	Package(name string) (Package, bool)

	// Resources lists the root's top-level raw (non-source) resources:
	// the parts of an archive not modeled as packages or classes.
	Resources() []Entry

	IsArchive() bool
}

// Package is one package fragment.
type Package interface {
	// Name is the dotted package name; "" for the default package.
	Name() string
	Path() string
	IsDefault() bool

	// HasChildren reports whether the fragment holds any class files.
	HasChildren() bool

	// ClassFiles lists the fragment's class files, nested types
	// included; resolvers filter those out.
	ClassFiles() []ClassFile
}

// ClassFile is one class-file leaf.
type ClassFile interface {
	Name() string
	Path() string

	// URI is the resolvable locator clients use to open the class file.
	URI() string

	// AttachedSource returns the attached source text, "" when the
	// root has no attachment or the attachment lacks this type.
	AttachedSource() (string, error)
}

// Entry is a raw resource inside an archive or output folder: a file or a
// directory not modeled as a package or class.
type Entry interface {
	Name() string
	Path() string
	IsDir() bool

	// Children lists the immediate children of a directory entry.
	Children() []Entry

	// Open returns the entry's byte stream. Directories fail.
	Open() (io.ReadCloser, error)
}
