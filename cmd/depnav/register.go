package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"depnav/internal/project"
)

var registerCmd = &cobra.Command{
	Use:   "register <project-root-or-descriptor>",
	Short: "Register a project in the workspace registry",
	Long: `Registers a project so tree and source queries can resolve it by URI.
The argument is either a project root directory containing project.toml
(or project.yaml) or a descriptor file path.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	descriptorPath, err := resolveDescriptor(args[0])
	if err != nil {
		return err
	}

	// Fail fast on an unparseable descriptor instead of registering it.
	if _, err := project.LoadDescriptor(descriptorPath); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	rec, err := e.db.RegisterProject(filepath.Dir(descriptorPath), descriptorPath)
	if err != nil {
		return fmt.Errorf("failed to register project: %w", err)
	}
	fmt.Printf("Registered %s (%s)\n", rec.URI, rec.Key)
	return nil
}

func resolveDescriptor(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return arg, nil
	}
	for _, name := range []string{"project.toml", "project.yaml", "project.yml"} {
		candidate := filepath.Join(arg, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no project descriptor found under %s", arg)
}
