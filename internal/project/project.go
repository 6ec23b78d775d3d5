package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"depnav/internal/logging"
	"depnav/internal/paths"
	"depnav/internal/workspace"
)

// Project is the classpath view of one descriptor-backed project. Package
// roots are rebuilt from the current on-disk state on every call; the
// Project holds no resolved trees between queries.
type Project struct {
	name   string
	root   string // canonical portable path of the project root dir
	uri    string
	desc   *Descriptor
	logger *logging.Logger
}

// Load builds a Project from its descriptor file. The project root is the
// descriptor's directory.
func Load(descriptorPath string, logger *logging.Logger) (*Project, error) {
	desc, err := LoadDescriptor(descriptorPath)
	if err != nil {
		return nil, err
	}
	root := paths.Canonicalize(filepath.Dir(descriptorPath))
	return &Project{
		name:   desc.Name,
		root:   root,
		uri:    "file://" + root,
		desc:   desc,
		logger: logger,
	}, nil
}

func (p *Project) Name() string { return p.name }
func (p *Project) URI() string  { return p.uri }
func (p *Project) Root() string { return p.root }

// RawClasspathEntries lists source folders and container entries. Each
// container contributes exactly one raw entry carrying its path.
func (p *Project) RawClasspathEntries() []workspace.ClasspathEntry {
	var entries []workspace.ClasspathEntry
	for _, src := range p.desc.Sources {
		entries = append(entries, workspace.ClasspathEntry{Path: src, Kind: workspace.EntrySource})
	}
	for _, c := range p.desc.Containers {
		entries = append(entries, workspace.ClasspathEntry{Path: c.Path, Kind: workspace.EntryLibrary})
	}
	return entries
}

// ResolveContainer resolves a raw entry path to its container description.
func (p *Project) ResolveContainer(entryPath string) (workspace.ContainerInfo, bool) {
	for _, c := range p.desc.Containers {
		if c.Path == entryPath {
			return workspace.ContainerInfo{Description: c.Description, Path: c.Path}, true
		}
	}
	return workspace.ContainerInfo{}, false
}

// FindPackageRoots builds the package roots contributed by one raw entry.
// Entries whose backing store can no longer load are skipped after
// logging; a stale classpath never faults a listing.
func (p *Project) FindPackageRoots(entryPath string) []workspace.PackageRoot {
	for _, c := range p.desc.Containers {
		if c.Path != entryPath {
			continue
		}
		return p.buildRoots(c.Entries)
	}
	return nil
}

// AllPackageRoots builds every root of the project, direct and transitive.
func (p *Project) AllPackageRoots() []workspace.PackageRoot {
	var all []workspace.PackageRoot
	for _, c := range p.desc.Containers {
		all = append(all, p.buildRoots(c.Entries)...)
	}
	return all
}

// PackageRoot looks a root up directly by canonical path, ignoring module
// identity; the first path match wins.
func (p *Project) PackageRoot(rootPath string) (workspace.PackageRoot, bool) {
	canonical := p.Canonicalize(rootPath)
	for _, root := range p.AllPackageRoots() {
		if root.Path() == canonical {
			return root, true
		}
	}
	return nil, false
}

// Canonicalize normalizes a path per the project's indexing rules:
// relative paths are anchored at the project root, symlinks resolved.
func (p *Project) Canonicalize(anyPath string) string {
	if anyPath == "" {
		return ""
	}
	if !filepath.IsAbs(filepath.FromSlash(anyPath)) {
		return paths.Canonicalize(filepath.Join(filepath.FromSlash(p.root), filepath.FromSlash(anyPath)))
	}
	return paths.Canonicalize(anyPath)
}

// findRoot resolves a (rootPath, moduleName) pair the same way the
// navigator does, for locator round trips.
func (p *Project) findRoot(rootPath, moduleName string) (workspace.PackageRoot, bool) {
	if moduleName == "" {
		return p.PackageRoot(rootPath)
	}
	canonical := p.Canonicalize(rootPath)
	for _, root := range p.AllPackageRoots() {
		if root.Path() == canonical && root.ModuleName() == moduleName {
			return root, true
		}
	}
	return nil, false
}

func (p *Project) buildRoots(decls []EntryDecl) []workspace.PackageRoot {
	var roots []workspace.PackageRoot
	for _, decl := range decls {
		root, err := p.buildRoot(decl)
		if err != nil {
			p.logger.Warn("Skipping unloadable package root", map[string]any{
				"project": p.name,
				"entry":   decl.Path,
				"error":   err.Error(),
			})
			continue
		}
		roots = append(roots, root)
	}
	return roots
}

func (p *Project) buildRoot(decl EntryDecl) (workspace.PackageRoot, error) {
	onDisk := p.resolveOnDisk(decl.Path)
	canonical := p.Canonicalize(decl.Path)
	if strings.HasSuffix(decl.Path, ".jar") || strings.HasSuffix(decl.Path, ".zip") {
		return loadJarRoot(onDisk, canonical, decl, p)
	}
	if decl.Kind == EntryKindModule {
		return nil, fmt.Errorf("module entry %s must be an archive", decl.Path)
	}
	return loadDirRoot(onDisk, canonical, decl, p)
}

// resolveOnDisk returns the OS form of a descriptor path for opening.
func (p *Project) resolveOnDisk(rel string) string {
	osPath := filepath.FromSlash(rel)
	if filepath.IsAbs(osPath) {
		return osPath
	}
	return filepath.Join(filepath.FromSlash(p.root), osPath)
}
