package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"depnav/internal/model"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// formatNodes renders a node list in the requested format.
func formatNodes(nodes []model.Node, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(nodes)
	case FormatHuman:
		return formatNodesHuman(nodes), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats any response as indented JSON
func formatJSON(resp any) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatNodesHuman(nodes []model.Node) string {
	if len(nodes) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "%-10s %s", n.Kind, n.Name)
		if n.ModuleName != "" {
			fmt.Fprintf(&b, "  [module %s]", n.ModuleName)
		}
		if n.Path != "" {
			fmt.Fprintf(&b, "  %s", n.Path)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
