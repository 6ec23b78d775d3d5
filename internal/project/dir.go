package project

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// loadDirRoot builds a package root from a compiled-output directory.
// Same classification as archives: .class files become fragments, the
// rest becomes the raw resource tree. A directory that has vanished since
// the descriptor was written yields an empty root rather than an error;
// the model is always a possibly-stale snapshot.
func loadDirRoot(absPath, canonicalPath string, decl EntryDecl, p *Project) (*packageRoot, error) {
	root := newPackageRoot(path.Base(canonicalPath), canonicalPath, false, p)
	tree := newResourceTree(canonicalPath)

	walkErr := filepath.WalkDir(absPath, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			if fullPath == absPath {
				return nil
			}
			return fs.SkipDir
		}
		rel, relErr := filepath.Rel(absPath, fullPath)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// Package directories are modeled through their class
			// files; only resource directories get tree nodes.
			return nil
		}
		if strings.HasSuffix(rel, ".class") {
			pkgDir := path.Dir(rel)
			dotted := ""
			if pkgDir != "." {
				dotted = strings.ReplaceAll(pkgDir, "/", ".")
			}
			root.ensurePackage(dotted).addClassFile(path.Base(rel))
			return nil
		}
		tree.addFile(rel, fileOpener(fullPath))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	root.resources = tree.topLevel()
	root.sortContent()

	if decl.Kind == EntryKindModule && decl.ModuleName != "" {
		root.moduleName = decl.ModuleName
	}
	if decl.SourceAttachment != "" {
		root.attachment = newAttachment(p.resolveOnDisk(decl.SourceAttachment))
	}
	return root, nil
}

// fileOpener acquires the on-disk file fresh per read.
func fileOpener(fullPath string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return os.Open(fullPath)
	}
}
