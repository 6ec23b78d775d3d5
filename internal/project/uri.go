package project

import (
	"fmt"
	"net/url"
	"strings"
)

// Class-file locators let clients open a class file from a bare node,
// carrying everything a later rootPath-less getSource query needs.
//
// Shape: depnav://contents/<ClassName.class>?project=U&root=R[&module=M][&package=P]
const locatorScheme = "depnav"

// classFileURI builds the resolvable locator attached to class-file nodes.
func classFileURI(projectURI, rootPath, moduleName, pkgName, fileName string) string {
	q := url.Values{}
	q.Set("project", projectURI)
	q.Set("root", rootPath)
	if moduleName != "" {
		q.Set("module", moduleName)
	}
	if pkgName != "" {
		q.Set("package", pkgName)
	}
	u := url.URL{
		Scheme:   locatorScheme,
		Host:     "contents",
		Path:     "/" + fileName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// classFileRef is a parsed class-file locator.
type classFileRef struct {
	ProjectURI string
	RootPath   string
	ModuleName string
	Package    string
	FileName   string
}

// parseClassFileURI inverts classFileURI.
func parseClassFileURI(locator string) (*classFileRef, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, fmt.Errorf("malformed class-file locator: %w", err)
	}
	if u.Scheme != locatorScheme || u.Host != "contents" {
		return nil, fmt.Errorf("not a class-file locator: %s", locator)
	}
	q := u.Query()
	ref := &classFileRef{
		ProjectURI: q.Get("project"),
		RootPath:   q.Get("root"),
		ModuleName: q.Get("module"),
		Package:    q.Get("package"),
		FileName:   strings.TrimPrefix(u.Path, "/"),
	}
	if ref.ProjectURI == "" || ref.RootPath == "" || ref.FileName == "" {
		return nil, fmt.Errorf("incomplete class-file locator: %s", locator)
	}
	return ref, nil
}
