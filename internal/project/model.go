package project

import (
	"depnav/internal/logging"
	"depnav/internal/workspace"
)

// Locator maps a project URI to the descriptor backing it, by
// workspace-root containment. The sqlite registry implements this.
type Locator interface {
	// DescriptorFor returns the descriptor path of the project whose
	// root contains uri; ok is false when no registered root does.
	DescriptorFor(uri string) (string, bool)
}

// Model is the workspace capability handed to the navigator. Projects are
// loaded fresh per lookup; the model never caches a resolved project.
type Model struct {
	locator Locator
	logger  *logging.Logger
}

// NewModel creates a workspace model over a project locator.
func NewModel(locator Locator, logger *logging.Logger) *Model {
	return &Model{locator: locator, logger: logger}
}

// FindProjectByURI resolves the project containing uri. A missing or
// unloadable project is "no data" for the navigator, never a failure.
func (m *Model) FindProjectByURI(uri string) workspace.Project {
	descriptorPath, ok := m.locator.DescriptorFor(uri)
	if !ok {
		return nil
	}
	p, err := Load(descriptorPath, m.logger)
	if err != nil {
		m.logger.Warn("Failed to load project", map[string]any{
			"uri":        uri,
			"descriptor": descriptorPath,
			"error":      err.Error(),
		})
		return nil
	}
	return p
}

// ResolveClassFile resolves a class-file locator back to its class file.
func (m *Model) ResolveClassFile(locator string) workspace.ClassFile {
	ref, err := parseClassFileURI(locator)
	if err != nil {
		m.logger.Debug("Unresolvable class-file locator", map[string]any{
			"locator": locator,
			"error":   err.Error(),
		})
		return nil
	}
	proj := m.FindProjectByURI(ref.ProjectURI)
	if proj == nil {
		return nil
	}
	p, ok := proj.(*Project)
	if !ok {
		return nil
	}
	root, ok := p.findRoot(ref.RootPath, ref.ModuleName)
	if !ok {
		return nil
	}
	pkg, ok := root.Package(ref.Package)
	if !ok {
		return nil
	}
	for _, cf := range pkg.ClassFiles() {
		if cf.Name() == ref.FileName {
			return cf
		}
	}
	return nil
}
