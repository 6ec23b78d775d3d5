package project

import (
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"depnav/internal/workspace"
)

// packageRoot is the in-memory form of one backing store: an archive or a
// compiled-output directory. Roots are rebuilt on every query; nothing
// here survives the query that produced it.
type packageRoot struct {
	name       string
	path       string // canonical portable path
	moduleName string
	archive    bool
	project    *Project

	packages  []*pkgFragment
	byName    map[string]*pkgFragment
	resources []workspace.Entry

	attachment sourceLookup
}

func newPackageRoot(name, canonicalPath string, archive bool, p *Project) *packageRoot {
	return &packageRoot{
		name:       name,
		path:       canonicalPath,
		archive:    archive,
		project:    p,
		byName:     map[string]*pkgFragment{},
		attachment: noAttachment{},
	}
}

func (r *packageRoot) Name() string       { return r.name }
func (r *packageRoot) Path() string       { return r.path }
func (r *packageRoot) ModuleName() string { return r.moduleName }
func (r *packageRoot) IsArchive() bool    { return r.archive }

func (r *packageRoot) Packages() []workspace.Package {
	out := make([]workspace.Package, len(r.packages))
	for i, p := range r.packages {
		out[i] = p
	}
	return out
}

func (r *packageRoot) Package(name string) (workspace.Package, bool) {
	p, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return p, true
}

func (r *packageRoot) Resources() []workspace.Entry {
	return r.resources
}

// ensurePackage returns the fragment for a dotted name, creating it and
// every ancestor fragment on first sight. Intermediate fragments with no
// class files stay in the model; resolvers filter empty ones out.
func (r *packageRoot) ensurePackage(dotted string) *pkgFragment {
	if p, ok := r.byName[dotted]; ok {
		return p
	}
	if dotted != "" {
		if idx := strings.LastIndex(dotted, "."); idx >= 0 {
			r.ensurePackage(dotted[:idx])
		} else {
			r.ensurePackage("")
		}
	}
	p := &pkgFragment{name: dotted, root: r}
	r.byName[dotted] = p
	r.packages = append(r.packages, p)
	return p
}

// sortContent fixes a deterministic model order after loading.
func (r *packageRoot) sortContent() {
	sort.Slice(r.packages, func(i, j int) bool { return r.packages[i].name < r.packages[j].name })
	for _, p := range r.packages {
		sort.Slice(p.classFiles, func(i, j int) bool { return p.classFiles[i].name < p.classFiles[j].name })
	}
}

// pkgFragment is one package fragment: a dotted name plus its class files.
type pkgFragment struct {
	name       string // dotted; "" is the default package
	root       *packageRoot
	classFiles []*classFile
}

func (p *pkgFragment) Name() string      { return p.name }
func (p *pkgFragment) IsDefault() bool   { return p.name == "" }
func (p *pkgFragment) HasChildren() bool { return len(p.classFiles) > 0 }

func (p *pkgFragment) Path() string {
	if p.name == "" {
		return p.root.path
	}
	return p.root.path + "/" + strings.ReplaceAll(p.name, ".", "/")
}

func (p *pkgFragment) ClassFiles() []workspace.ClassFile {
	out := make([]workspace.ClassFile, len(p.classFiles))
	for i, cf := range p.classFiles {
		out[i] = cf
	}
	return out
}

func (p *pkgFragment) addClassFile(name string) {
	p.classFiles = append(p.classFiles, &classFile{name: name, pkg: p})
}

// classFile is one class-file leaf of a fragment.
type classFile struct {
	name string // "Foo.class"
	pkg  *pkgFragment
}

func (c *classFile) Name() string { return c.name }

func (c *classFile) Path() string {
	return c.pkg.Path() + "/" + c.name
}

func (c *classFile) URI() string {
	return classFileURI(c.pkg.root.project.URI(), c.pkg.root.path, c.pkg.root.moduleName, c.pkg.name, c.name)
}

// AttachedSource maps the class file to its .java counterpart inside the
// root's source attachment. Nested types share the source of their
// enclosing top-level type.
func (c *classFile) AttachedSource() (string, error) {
	typeName := strings.TrimSuffix(c.name, ".class")
	if idx := strings.Index(typeName, "$"); idx >= 0 {
		typeName = typeName[:idx]
	}
	rel := typeName + ".java"
	if c.pkg.name != "" {
		rel = strings.ReplaceAll(c.pkg.name, ".", "/") + "/" + rel
	}
	content, ok, err := c.pkg.root.attachment.lookup(rel)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return content, nil
}

// resourceEntry is a raw resource: a file or directory not modeled as a
// package or class. Directory entries carry their children; file entries
// carry an opener that acquires the backing stream fresh on every call.
type resourceEntry struct {
	name     string
	path     string
	dir      bool
	children []workspace.Entry
	open     func() (io.ReadCloser, error)
}

func (e *resourceEntry) Name() string                 { return e.name }
func (e *resourceEntry) Path() string                 { return e.path }
func (e *resourceEntry) IsDir() bool                  { return e.dir }
func (e *resourceEntry) Children() []workspace.Entry  { return e.children }
func (e *resourceEntry) Open() (io.ReadCloser, error) { return e.open() }

// resourceTree accumulates raw resources into a directory tree keyed by
// portable path.
type resourceTree struct {
	prefix string // path prefix of the tree, e.g. "" for archives
	dirs   map[string]*resourceEntry
	tops   []workspace.Entry
}

func newResourceTree(prefix string) *resourceTree {
	return &resourceTree{prefix: prefix, dirs: map[string]*resourceEntry{}}
}

// addFile inserts a file at a slash-separated relative path, creating
// ancestor directories as needed.
func (t *resourceTree) addFile(rel string, open func() (io.ReadCloser, error)) {
	entry := &resourceEntry{
		name: path.Base(rel),
		path: t.prefix + "/" + rel,
		open: open,
	}
	t.attach(path.Dir(rel), entry)
}

// addDir ensures a directory node exists for a relative path.
func (t *resourceTree) addDir(rel string) *resourceEntry {
	rel = strings.TrimSuffix(rel, "/")
	if rel == "." || rel == "" {
		return nil
	}
	if d, ok := t.dirs[rel]; ok {
		return d
	}
	d := &resourceEntry{
		name: path.Base(rel),
		path: t.prefix + "/" + rel,
		dir:  true,
		open: func() (io.ReadCloser, error) { return nil, os.ErrInvalid },
	}
	t.dirs[rel] = d
	t.attach(path.Dir(rel), d)
	return d
}

func (t *resourceTree) attach(parentRel string, entry *resourceEntry) {
	if parentRel == "." || parentRel == "" {
		t.tops = append(t.tops, entry)
		return
	}
	parent := t.addDir(parentRel)
	parent.children = append(parent.children, entry)
}

func (t *resourceTree) topLevel() []workspace.Entry {
	return t.tops
}
