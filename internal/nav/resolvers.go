package nav

import (
	"context"
	"strings"

	"depnav/internal/archive"
	"depnav/internal/errors"
	"depnav/internal/model"
	"depnav/internal/workspace"
)

// The resolvers below share one shape: missing project or missing
// intermediate resource is legitimately nothing here and yields an empty
// result; only a supplied rootPath that resolves to no root is an error.

// resolveContainers enumerates the project's classpath containers: every
// raw classpath entry except source folders, resolved to its container
// description. Entries whose container no longer resolves are skipped;
// stale classpath state is tolerated.
func (n *Navigator) resolveContainers(ctx context.Context, q *model.Query) ([]model.Node, error) {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return nil, nil
	}

	var nodes []model.Node
	for _, entry := range project.RawClasspathEntries() {
		if entry.Kind == workspace.EntrySource {
			continue
		}
		info, ok := project.ResolveContainer(entry.Path)
		if !ok {
			continue
		}
		nodes = append(nodes, model.Node{
			Name: info.Description,
			Path: info.Path,
			Kind: model.KindContainer,
		})
	}
	return nodes, nil
}

// resolveRoots lists the package roots contributed by the container whose
// path matches the query. Module-path roots carry their module name so
// later root lookups can disambiguate.
func (n *Navigator) resolveRoots(ctx context.Context, q *model.Query) ([]model.Node, error) {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return nil, nil
	}

	for _, entry := range project.RawClasspathEntries() {
		if entry.Path != q.Path {
			continue
		}
		var nodes []model.Node
		for _, root := range project.FindPackageRoots(entry.Path) {
			nodes = append(nodes, model.Node{
				Name:       root.Name(),
				Path:       root.Path(),
				Kind:       model.KindJar,
				ModuleName: root.ModuleName(),
			})
		}
		return nodes, nil
	}
	return nil, nil
}

// resolvePackages lists a root's content: its non-empty packages plus its
// top-level raw resources. Children of the default (unnamed) package are
// surfaced directly, one level deep, since the unnamed package is not a
// meaningful display node.
func (n *Navigator) resolvePackages(ctx context.Context, q *model.Query) ([]model.Node, error) {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return nil, nil
	}
	root, err := requireRoot(project, q)
	if err != nil {
		return nil, err
	}

	var nodes []model.Node
	for _, pkg := range root.Packages() {
		if !pkg.HasChildren() {
			continue
		}
		if pkg.IsDefault() {
			for _, cf := range pkg.ClassFiles() {
				nodes = append(nodes, classFileNode(cf, false))
			}
			continue
		}
		nodes = append(nodes, model.Node{
			Name: pkg.Name(),
			Path: pkg.Path(),
			Kind: model.KindPackage,
		})
	}
	for _, res := range root.Resources() {
		nodes = append(nodes, resourceNode(res))
	}
	return nodes, nil
}

// resolveClassFiles lists the class files of the package named by the
// query path, excluding nested types (names carrying the synthetic
// nesting marker) and attaching a resolvable locator to each.
func (n *Navigator) resolveClassFiles(ctx context.Context, q *model.Query) ([]model.Node, error) {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return nil, nil
	}
	root, err := requireRoot(project, q)
	if err != nil {
		return nil, err
	}

	pkg, ok := root.Package(q.Path)
	if !ok {
		return nil, nil
	}
	var nodes []model.Node
	for _, cf := range pkg.ClassFiles() {
		if strings.Contains(cf.Name(), "$") {
			continue
		}
		nodes = append(nodes, classFileNode(cf, true))
	}
	return nodes, nil
}

// resolveFolderChildren descends the root's raw resource tree to the
// directory named by the query path and returns its immediate children.
// Cancellation is polled between top-level resources; a canceled call is
// a distinguishable interrupt, not a data error.
func (n *Navigator) resolveFolderChildren(ctx context.Context, q *model.Query) ([]model.Node, error) {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return nil, nil
	}
	root, err := requireRoot(project, q)
	if err != nil {
		return nil, err
	}

	for _, res := range root.Resources() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(errors.Canceled, "folder resolution canceled", ctxErr)
		}
		if !res.IsDir() {
			continue
		}
		if children, ok := archive.FindChildren(res, q.Path); ok {
			nodes := make([]model.Node, 0, len(children))
			for _, child := range children {
				nodes = append(nodes, resourceNode(child))
			}
			return nodes, nil
		}
	}
	return nil, nil
}

// requireRoot resolves the query's root and turns a miss into the
// structured RootNotFound error: a rootPath was supplied, so resolving to
// nothing means the client's view of the classpath is stale.
func requireRoot(project workspace.Project, q *model.Query) (workspace.PackageRoot, error) {
	root, ok := ResolveRoot(project, q.RootPath, q.ModuleName)
	if !ok {
		return nil, errors.Newf(errors.RootNotFound, "no package root found for %s", q.RootPath)
	}
	return root, nil
}

// classFileNode converts a class file to a node. Listings scoped to a
// package carry the file path; default-package children surfaced through a
// package listing do not.
func classFileNode(cf workspace.ClassFile, withPath bool) model.Node {
	node := model.Node{
		Name: cf.Name(),
		Kind: model.KindClassFile,
		URI:  cf.URI(),
	}
	if withPath {
		node.Path = cf.Path()
	}
	return node
}

// resourceNode converts a raw resource entry to a folder or file node.
func resourceNode(entry workspace.Entry) model.Node {
	kind := model.KindFile
	if entry.IsDir() {
		kind = model.KindFolder
	}
	return model.Node{
		Name: entry.Name(),
		Path: entry.Path(),
		Kind: kind,
	}
}
