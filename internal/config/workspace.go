package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WorkspaceFileName is the optional pre-registration file under the
// workspace home. Projects listed there are merged into the registry at
// startup, so a checked-in workspace can be shared without running
// register per project.
const WorkspaceFileName = "workspace.toml"

// WorkspaceFile is the parsed workspace.toml.
type WorkspaceFile struct {
	Version  int                `toml:"version"`
	Projects []WorkspaceProject `toml:"project"`
}

// WorkspaceProject pre-registers one project.
type WorkspaceProject struct {
	// Root is the project root directory
	Root string `toml:"root"`

	// Descriptor is the descriptor path; defaults to <root>/project.toml
	Descriptor string `toml:"descriptor,omitempty"`
}

// LoadWorkspaceFile parses <home>/workspace.toml. A missing file is not an
// error; it returns an empty workspace.
func LoadWorkspaceFile(home string) (*WorkspaceFile, error) {
	filePath := filepath.Join(home, WorkspaceFileName)
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &WorkspaceFile{Version: 1}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", WorkspaceFileName, err)
	}

	var wf WorkspaceFile
	if err := toml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", WorkspaceFileName, err)
	}
	if wf.Version < 1 {
		wf.Version = 1
	}
	for i, p := range wf.Projects {
		if p.Root == "" {
			return nil, fmt.Errorf("%s: project %d has no root", WorkspaceFileName, i)
		}
		if p.Descriptor == "" {
			wf.Projects[i].Descriptor = filepath.Join(p.Root, "project.toml")
		}
	}
	return &wf, nil
}
