package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List registered projects",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	records, err := e.db.ListProjects()
	if err != nil {
		return err
	}

	if OutputFormat(outputFlag) == FormatJSON {
		out, err := formatJSON(records)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No projects registered.")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  (%s)\n", rec.Key, rec.RootPath, rec.DescriptorPath)
	}
	return nil
}
