// Package model defines the node and query value types exchanged with
// dependency-tree clients. Nodes are immutable after construction and are
// recomputed on every query; nothing in this package caches or mutates.
package model

import (
	"encoding/json"
	"fmt"
)

// NodeKind is the closed set of tree node types. Declaration order is the
// sort rank: containers sort before jars, jars before packages, and so on.
type NodeKind int

const (
	KindContainer NodeKind = iota + 1
	KindJar
	KindPackage
	KindClassFile
	KindFolder
	KindFile
)

// Rank returns the sort rank of the kind. Lower ranks sort first.
func (k NodeKind) Rank() int {
	return int(k)
}

// Valid reports whether k is one of the declared kinds.
func (k NodeKind) Valid() bool {
	return k >= KindContainer && k <= KindFile
}

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindJar:
		return "jar"
	case KindPackage:
		return "package"
	case KindClassFile:
		return "classfile"
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// ParseNodeKind converts a kind name (as accepted on the CLI) to a NodeKind.
func ParseNodeKind(s string) (NodeKind, error) {
	switch s {
	case "container":
		return KindContainer, nil
	case "jar":
		return KindJar, nil
	case "package":
		return KindPackage, nil
	case "classfile":
		return KindClassFile, nil
	case "folder":
		return KindFolder, nil
	case "file":
		return KindFile, nil
	default:
		return 0, fmt.Errorf("unknown node kind: %q", s)
	}
}

// Node is one entry of the dependency tree.
//
// Path is a portable slash-separated identifier; clients pass it back
// verbatim in follow-up queries. It may be empty for class-file leaves
// reached through a package listing. URI is set only on class-file nodes
// so clients can open or decompile them. ModuleName is set only on jar
// nodes that are module-path roots.
type Node struct {
	Name       string   `json:"name"`
	Path       string   `json:"path,omitempty"`
	Kind       NodeKind `json:"kind"`
	URI        string   `json:"uri,omitempty"`
	ModuleName string   `json:"moduleName,omitempty"`
}

// Query describes the node being expanded or read.
//
// RootPath is the canonical path of the package root the query is scoped
// to; it is empty only for container-level and whole-project queries.
// ModuleName disambiguates when multiple roots share RootPath (the same
// physical jar exposed under different module names).
type Query struct {
	ProjectURI string `json:"projectUri"`
	Path       string `json:"path,omitempty"`
	RootPath   string `json:"rootPath,omitempty"`
	ModuleName string `json:"moduleName,omitempty"`
}

// DecodeQuery converts a loosely-typed argument (as arriving from a JSON
// transport) into a Query via a JSON round trip.
func DecodeQuery(arg any) (*Query, error) {
	data, err := json.Marshal(arg)
	if err != nil {
		return nil, fmt.Errorf("encode query argument: %w", err)
	}
	var q Query
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode query argument: %w", err)
	}
	return &q, nil
}

// DecodeKind converts a loosely-typed argument into a NodeKind. It accepts
// both the wire integer and the string form.
func DecodeKind(arg any) (NodeKind, error) {
	switch v := arg.(type) {
	case float64:
		return NodeKind(int(v)), nil
	case int:
		return NodeKind(v), nil
	case NodeKind:
		return v, nil
	case string:
		return ParseNodeKind(v)
	default:
		data, err := json.Marshal(arg)
		if err != nil {
			return 0, fmt.Errorf("encode kind argument: %w", err)
		}
		var k int
		if err := json.Unmarshal(data, &k); err != nil {
			return 0, fmt.Errorf("decode kind argument: %w", err)
		}
		return NodeKind(k), nil
	}
}
