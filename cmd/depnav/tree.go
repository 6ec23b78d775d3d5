package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"depnav/internal/model"
)

var treeFlags struct {
	project    string
	kind       string
	path       string
	rootPath   string
	moduleName string
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "List the children of a classpath node",
	Long: `Resolves the child nodes of one dependency-tree node. The kind names the
tree level being expanded: container, jar, package, classfile or folder.
Results are sorted by (kind, name) and printed as JSON or indented lines.`,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeFlags.project, "project", "p", "", "Project URI or root path (required)")
	treeCmd.Flags().StringVarP(&treeFlags.kind, "kind", "k", "", "Node kind to expand (required)")
	treeCmd.Flags().StringVar(&treeFlags.path, "path", "", "Node path (container path, package name, or archive path)")
	treeCmd.Flags().StringVar(&treeFlags.rootPath, "root", "", "Canonical path of the backing package root")
	treeCmd.Flags().StringVar(&treeFlags.moduleName, "module", "", "Module name disambiguating the root")
	_ = treeCmd.MarkFlagRequired("project")
	_ = treeCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseNodeKind(treeFlags.kind)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	query := &model.Query{
		ProjectURI: projectURI(treeFlags.project),
		Path:       treeFlags.path,
		RootPath:   treeFlags.rootPath,
		ModuleName: treeFlags.moduleName,
	}
	nodes, err := e.navigator.GetChildren(cmd.Context(), kind, query)
	if err != nil {
		return err
	}

	out, err := formatNodes(nodes, OutputFormat(outputFlag))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// projectURI accepts either a file URI or a bare root path.
func projectURI(arg string) string {
	if len(arg) > 0 && arg[0] == '/' {
		return "file://" + arg
	}
	return arg
}
