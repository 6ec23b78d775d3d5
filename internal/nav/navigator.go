// Package nav implements the dependency-tree query core: kind-dispatched
// child resolution, root lookup, archive descent, and content extraction.
// Every query is resolved fresh against the current model state; nothing
// is cached between calls and results are never mutated after construction.
package nav

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"depnav/internal/archive"
	"depnav/internal/errors"
	"depnav/internal/logging"
	"depnav/internal/model"
	"depnav/internal/workspace"
)

type resolverFunc func(ctx context.Context, q *model.Query) ([]model.Node, error)

// Navigator answers child and content queries against an injected
// read-only workspace model.
type Navigator struct {
	ws        workspace.Workspace
	logger    *logging.Logger
	resolvers map[model.NodeKind]resolverFunc
}

// New creates a Navigator over the given workspace model.
func New(ws workspace.Workspace, logger *logging.Logger) *Navigator {
	n := &Navigator{ws: ws, logger: logger}
	n.resolvers = map[model.NodeKind]resolverFunc{
		model.KindContainer: n.resolveContainers,
		model.KindJar:       n.resolveRoots,
		model.KindPackage:   n.resolvePackages,
		model.KindClassFile: n.resolveClassFiles,
		model.KindFolder:    n.resolveFolderChildren,
	}
	return n
}

// GetChildren returns the child nodes for the given node kind and query,
// sorted by (kind rank, name) ascending. A zero kind or nil query is a
// no-op and yields an empty list. An unrecognized kind is a hard error:
// valid kinds with no data return empty, so a table miss means the client
// and server disagree about the protocol.
func (n *Navigator) GetChildren(ctx context.Context, kind model.NodeKind, query *model.Query) ([]model.Node, error) {
	if kind == 0 || query == nil {
		return []model.Node{}, nil
	}

	requestID := uuid.NewString()
	n.logger.Debug("Resolving classpath children", map[string]any{
		"requestId": requestID,
		"kind":      kind.String(),
		"project":   query.ProjectURI,
		"path":      query.Path,
	})

	resolver, ok := n.resolvers[kind]
	if !ok {
		err := errors.Newf(errors.UnknownNodeKind, "unknown classpath item type: %s", kind)
		n.logger.Error("Classpath query failed", map[string]any{
			"requestId": requestID,
			"error":     err.Error(),
		})
		return nil, err
	}

	nodes, err := resolver(ctx, query)
	if err != nil {
		n.logger.Error("Classpath query failed", map[string]any{
			"requestId": requestID,
			"kind":      kind.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	sortNodes(nodes)
	if nodes == nil {
		nodes = []model.Node{}
	}
	return nodes, nil
}

// GetChildrenArgs is the loosely-typed entrypoint used by command
// transports: args[0] is the node kind, args[1] the query descriptor.
// An undersized argument list is a no-op, not an error.
func (n *Navigator) GetChildrenArgs(ctx context.Context, args []any) ([]model.Node, error) {
	if len(args) < 2 {
		return []model.Node{}, nil
	}
	kind, err := model.DecodeKind(args[0])
	if err != nil {
		return nil, errors.Wrap(errors.UnknownNodeKind, "undecodable node kind", err)
	}
	query, err := model.DecodeQuery(args[1])
	if err != nil {
		return nil, err
	}
	return n.GetChildren(ctx, kind, query)
}

// GetSource returns the textual content behind a node. Without a root
// path the query path is a plain class-file locator and the attached
// source is returned; otherwise the content comes out of the root's
// archive. Content misses and read failures are non-fatal for a tree
// browser: they are logged and surface as the empty string.
func (n *Navigator) GetSource(ctx context.Context, query *model.Query) string {
	if query == nil {
		return ""
	}
	if query.RootPath == "" {
		cf := n.ws.ResolveClassFile(query.Path)
		if cf == nil {
			return ""
		}
		content, err := cf.AttachedSource()
		if err != nil {
			n.logger.Warn("Failed to get attached source", map[string]any{
				"classFile": query.Path,
				"error":     err.Error(),
			})
			return ""
		}
		if strings.TrimSpace(content) == "" {
			return ""
		}
		return content
	}
	return n.archiveFileContent(query)
}

// GetSourceArgs is the loosely-typed entrypoint: args[0] is the query.
func (n *Navigator) GetSourceArgs(ctx context.Context, args []any) string {
	if len(args) < 1 {
		return ""
	}
	query, err := model.DecodeQuery(args[0])
	if err != nil {
		return ""
	}
	return n.GetSource(ctx, query)
}

// archiveFileContent extracts the content of an archive entry named by the
// query path, scoped to the query's root.
func (n *Navigator) archiveFileContent(q *model.Query) string {
	project := n.ws.FindProjectByURI(q.ProjectURI)
	if project == nil {
		return ""
	}
	root, ok := ResolveRoot(project, q.RootPath, q.ModuleName)
	if !ok {
		n.logger.Warn("No package root found for content query", map[string]any{
			"rootPath": q.RootPath,
			"module":   q.ModuleName,
		})
		return ""
	}
	if !root.IsArchive() {
		return ""
	}

	for _, res := range root.Resources() {
		if !res.IsDir() {
			if res.Path() == q.Path {
				return archive.ReadContent(res, n.logger)
			}
			continue
		}
		if file, found := archive.FindFile(res, q.Path); found {
			return archive.ReadContent(file, n.logger)
		}
	}
	return ""
}

// sortNodes imposes the total order tree clients rely on for stable
// rendering: kind rank first, name second, both ascending.
func sortNodes(nodes []model.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Kind != nodes[j].Kind {
			return nodes[i].Kind.Rank() < nodes[j].Kind.Rank()
		}
		return nodes[i].Name < nodes[j].Name
	})
}
