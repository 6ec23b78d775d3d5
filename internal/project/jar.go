package project

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/klauspost/compress/zip"

	"depnav/internal/paths"
	"depnav/internal/workspace"
)

const manifestPath = "META-INF/MANIFEST.MF"

// loadJarRoot builds a package root from an archive: .class entries become
// package fragments and class files, everything else lands in the raw
// resource tree. The zip is opened only to read the directory; entry
// content is re-acquired per read so no handle outlives the load.
func loadJarRoot(absPath, canonicalPath string, decl EntryDecl, p *Project) (*packageRoot, error) {
	zr, err := zip.OpenReader(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", absPath, err)
	}
	defer func() { _ = zr.Close() }()

	root := newPackageRoot(path.Base(canonicalPath), canonicalPath, true, p)
	tree := newResourceTree("")

	for _, f := range zr.File {
		name := path.Clean(strings.TrimSuffix(f.Name, "/"))
		if name == "." || name == "" {
			continue
		}
		if f.FileInfo().IsDir() {
			tree.addDir(name)
			continue
		}
		if strings.HasSuffix(name, ".class") {
			pkgDir := path.Dir(name)
			dotted := ""
			if pkgDir != "." {
				dotted = strings.ReplaceAll(pkgDir, "/", ".")
			}
			root.ensurePackage(dotted).addClassFile(path.Base(name))
			continue
		}
		tree.addFile(name, zipOpener(absPath, f.Name))
	}

	root.resources = tree.topLevel()
	root.sortContent()

	if decl.Kind == EntryKindModule {
		root.moduleName = jarModuleName(absPath, decl, root)
	}
	if decl.SourceAttachment != "" {
		root.attachment = newAttachment(p.resolveOnDisk(decl.SourceAttachment))
	}
	return root, nil
}

// zipOpener returns a scoped opener for one archive entry: each call opens
// the archive fresh and the returned stream releases both the entry and
// the archive on Close.
func zipOpener(jarPath, entryName string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		zr, err := zip.OpenReader(jarPath)
		if err != nil {
			return nil, err
		}
		for _, f := range zr.File {
			if f.Name == entryName {
				rc, err := f.Open()
				if err != nil {
					_ = zr.Close()
					return nil, err
				}
				return &scopedEntry{entry: rc, archive: zr}, nil
			}
		}
		_ = zr.Close()
		return nil, fmt.Errorf("entry %s vanished from %s", entryName, jarPath)
	}
}

// scopedEntry ties an open archive entry to the archive handle behind it.
type scopedEntry struct {
	entry   io.ReadCloser
	archive *zip.ReadCloser
}

func (s *scopedEntry) Read(p []byte) (int, error) { return s.entry.Read(p) }

func (s *scopedEntry) Close() error {
	entryErr := s.entry.Close()
	archiveErr := s.archive.Close()
	if entryErr != nil {
		return entryErr
	}
	return archiveErr
}

// jarModuleName resolves the module name of a module-path root: an
// explicit descriptor name wins, then the manifest's Automatic-Module-Name,
// then the automatic-module derivation from the file name.
func jarModuleName(absPath string, decl EntryDecl, root *packageRoot) string {
	if decl.ModuleName != "" {
		return decl.ModuleName
	}
	if name := manifestModuleName(root); name != "" {
		return name
	}
	return deriveAutomaticModuleName(path.Base(absPath))
}

// manifestModuleName reads Automatic-Module-Name out of the jar manifest,
// honoring manifest 72-byte line continuations.
func manifestModuleName(root *packageRoot) string {
	manifest, ok := findEntry(root.resources, "/"+manifestPath)
	if !ok {
		return ""
	}
	stream, err := manifest.Open()
	if err != nil {
		return ""
	}
	defer func() { _ = stream.Close() }()

	var lines []string
	scanner := bufio.NewScanner(stream)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, " ") && len(lines) > 0 {
			lines[len(lines)-1] += strings.TrimPrefix(line, " ")
			continue
		}
		lines = append(lines, line)
	}
	for _, line := range lines {
		if value, ok := strings.CutPrefix(line, "Automatic-Module-Name:"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// findEntry searches a raw resource tree for the entry at target.
func findEntry(entries []workspace.Entry, target string) (workspace.Entry, bool) {
	for _, e := range entries {
		if e.Path() == target {
			return e, true
		}
		if e.IsDir() && paths.HasPathPrefix(target, e.Path()) {
			if found, ok := findEntry(e.Children(), target); ok {
				return found, true
			}
		}
	}
	return nil, false
}

var (
	versionSuffix   = regexp.MustCompile(`-(\d+(\.|$))`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// deriveAutomaticModuleName applies the automatic-module naming rules to a
// jar file name: drop the extension and any trailing version, then map
// non-alphanumeric runs to single dots.
func deriveAutomaticModuleName(fileName string) string {
	name := strings.TrimSuffix(fileName, ".jar")
	if loc := versionSuffix.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	mapped := nonAlphanumeric.ReplaceAllString(name, ".")
	return strings.Trim(mapped, ".")
}
