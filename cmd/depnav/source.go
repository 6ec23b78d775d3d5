package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"depnav/internal/model"
)

var sourceFlags struct {
	project    string
	path       string
	rootPath   string
	moduleName string
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Print the textual content behind a classpath node",
	Long: `Prints the source attached to a class file (when --root is omitted the
path is treated as a class-file locator) or the content of an archive
entry scoped to --root. Unavailable content prints as empty output.`,
	RunE: runSource,
}

func init() {
	sourceCmd.Flags().StringVarP(&sourceFlags.project, "project", "p", "", "Project URI or root path")
	sourceCmd.Flags().StringVar(&sourceFlags.path, "path", "", "Class-file locator or archive entry path (required)")
	sourceCmd.Flags().StringVar(&sourceFlags.rootPath, "root", "", "Canonical path of the backing package root")
	sourceCmd.Flags().StringVar(&sourceFlags.moduleName, "module", "", "Module name disambiguating the root")
	_ = sourceCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(sourceCmd)
}

func runSource(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	query := &model.Query{
		ProjectURI: projectURI(sourceFlags.project),
		Path:       sourceFlags.path,
		RootPath:   sourceFlags.rootPath,
		ModuleName: sourceFlags.moduleName,
	}
	fmt.Print(e.navigator.GetSource(cmd.Context(), query))
	return nil
}
