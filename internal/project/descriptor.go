// Package project implements the concrete workspace model behind the
// navigator's capability interfaces: descriptor-driven projects whose
// package roots are built from compiled-output folders and jars.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DescriptorFile is the default filename for project descriptors.
const DescriptorFile = "project.toml"

// Descriptor describes one project: its source folders and the classpath
// containers contributing its dependencies.
type Descriptor struct {
	// Version is the schema version
	Version int `toml:"version" yaml:"version"`

	// Name is the human-readable project name
	Name string `toml:"name" yaml:"name"`

	// Sources are repo-relative source folders; they appear as raw
	// classpath entries but never in container listings
	Sources []string `toml:"sources,omitempty" yaml:"sources,omitempty"`

	// Containers are the resolved classpath containers
	Containers []ContainerDecl `toml:"container,omitempty" yaml:"containers,omitempty"`
}

// ContainerDecl declares a classpath container: a named, resolved group of
// entries presented as one collapsible tree node.
type ContainerDecl struct {
	// Path is the portable container identifier clients pass back
	Path string `toml:"path" yaml:"path"`

	// Description is the display label
	Description string `toml:"description" yaml:"description"`

	// Entries are the package roots the container contributes
	Entries []EntryDecl `toml:"entry,omitempty" yaml:"entries,omitempty"`
}

// EntryDecl declares one package root backing store.
type EntryDecl struct {
	// Path is the jar or directory path, relative to the project root
	Path string `toml:"path" yaml:"path"`

	// Kind is "library", "module" or "output"; defaults to "library"
	Kind string `toml:"kind,omitempty" yaml:"kind,omitempty"`

	// ModuleName overrides module-name detection for module entries
	ModuleName string `toml:"moduleName,omitempty" yaml:"moduleName,omitempty"`

	// SourceAttachment is a source directory or source jar holding the
	// .java counterparts of this root's class files
	SourceAttachment string `toml:"sourceAttachment,omitempty" yaml:"sourceAttachment,omitempty"`
}

// Entry kinds accepted in descriptors.
const (
	EntryKindLibrary = "library"
	EntryKindModule  = "module"
	EntryKindOutput  = "output"
)

// LoadDescriptor parses a project descriptor. The format is chosen by
// extension: .toml, .yaml or .yml.
func LoadDescriptor(filePath string) (*Descriptor, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}

	var desc Descriptor
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		if err := toml.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("failed to parse project descriptor: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("failed to parse project descriptor: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported descriptor format: %s", filepath.Ext(filePath))
	}

	if desc.Version < 1 {
		desc.Version = 1
	}
	if err := desc.validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (d *Descriptor) validate() error {
	if d.Name == "" {
		return fmt.Errorf("project descriptor: name is required")
	}
	for _, c := range d.Containers {
		if c.Path == "" {
			return fmt.Errorf("project descriptor: container path is required")
		}
		for _, e := range c.Entries {
			switch e.Kind {
			case "", EntryKindLibrary, EntryKindModule, EntryKindOutput:
			default:
				return fmt.Errorf("project descriptor: unknown entry kind %q", e.Kind)
			}
			if e.Path == "" {
				return fmt.Errorf("project descriptor: entry path is required in container %s", c.Path)
			}
		}
	}
	return nil
}
