package nav

import (
	"errors"
	"io"
	"strings"

	"depnav/internal/workspace"
)

// Fakes over the workspace capability interfaces. They model just enough
// classpath state for the resolver tests.

type fakeWorkspace struct {
	projects   map[string]*fakeProject
	classFiles map[string]workspace.ClassFile
}

func (w *fakeWorkspace) FindProjectByURI(uri string) workspace.Project {
	if p, ok := w.projects[uri]; ok {
		return p
	}
	return nil
}

func (w *fakeWorkspace) ResolveClassFile(locator string) workspace.ClassFile {
	if cf, ok := w.classFiles[locator]; ok {
		return cf
	}
	return nil
}

type fakeProject struct {
	uri          string
	entries      []workspace.ClasspathEntry
	containers   map[string]workspace.ContainerInfo
	rootsByEntry map[string][]workspace.PackageRoot
	allRoots     []workspace.PackageRoot
	directRoots  map[string]workspace.PackageRoot
}

func (p *fakeProject) URI() string { return p.uri }

func (p *fakeProject) RawClasspathEntries() []workspace.ClasspathEntry { return p.entries }

func (p *fakeProject) ResolveContainer(entryPath string) (workspace.ContainerInfo, bool) {
	info, ok := p.containers[entryPath]
	return info, ok
}

func (p *fakeProject) FindPackageRoots(entryPath string) []workspace.PackageRoot {
	return p.rootsByEntry[entryPath]
}

func (p *fakeProject) AllPackageRoots() []workspace.PackageRoot { return p.allRoots }

func (p *fakeProject) PackageRoot(rootPath string) (workspace.PackageRoot, bool) {
	root, ok := p.directRoots[rootPath]
	return root, ok
}

func (p *fakeProject) Canonicalize(path string) string { return path }

type fakeRoot struct {
	name      string
	path      string
	module    string
	archive   bool
	packages  []workspace.Package
	resources []workspace.Entry
}

func (r *fakeRoot) Name() string       { return r.name }
func (r *fakeRoot) Path() string       { return r.path }
func (r *fakeRoot) ModuleName() string { return r.module }
func (r *fakeRoot) IsArchive() bool    { return r.archive }

func (r *fakeRoot) Packages() []workspace.Package { return r.packages }

func (r *fakeRoot) Package(name string) (workspace.Package, bool) {
	for _, p := range r.packages {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

func (r *fakeRoot) Resources() []workspace.Entry { return r.resources }

type fakePackage struct {
	name    string
	path    string
	classes []workspace.ClassFile
}

func (p *fakePackage) Name() string      { return p.name }
func (p *fakePackage) Path() string      { return p.path }
func (p *fakePackage) IsDefault() bool   { return p.name == "" }
func (p *fakePackage) HasChildren() bool { return len(p.classes) > 0 }

func (p *fakePackage) ClassFiles() []workspace.ClassFile { return p.classes }

type fakeClassFile struct {
	name   string
	path   string
	uri    string
	source string
	srcErr error
}

func (c *fakeClassFile) Name() string { return c.name }
func (c *fakeClassFile) Path() string { return c.path }
func (c *fakeClassFile) URI() string  { return c.uri }

func (c *fakeClassFile) AttachedSource() (string, error) { return c.source, c.srcErr }

type fakeEntry struct {
	name     string
	path     string
	dir      bool
	children []workspace.Entry
	content  string
	openErr  error
}

func (e *fakeEntry) Name() string                { return e.name }
func (e *fakeEntry) Path() string                { return e.path }
func (e *fakeEntry) IsDir() bool                 { return e.dir }
func (e *fakeEntry) Children() []workspace.Entry { return e.children }

func (e *fakeEntry) Open() (io.ReadCloser, error) {
	if e.dir {
		return nil, errors.New("is a directory")
	}
	if e.openErr != nil {
		return nil, e.openErr
	}
	return io.NopCloser(strings.NewReader(e.content)), nil
}

func dirEntry(path string, children ...workspace.Entry) *fakeEntry {
	return &fakeEntry{name: base(path), path: path, dir: true, children: children}
}

func fileEntry(path, content string) *fakeEntry {
	return &fakeEntry{name: base(path), path: path, content: content}
}

func base(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
