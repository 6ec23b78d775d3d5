package project

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// sourceLookup resolves a package-relative .java path inside a source
// attachment. ok is false when the attachment lacks the file.
type sourceLookup interface {
	lookup(rel string) (content string, ok bool, err error)
}

// newAttachment picks the lookup strategy by attachment shape: a source
// jar or a source directory.
func newAttachment(absPath string) sourceLookup {
	if strings.HasSuffix(absPath, ".jar") || strings.HasSuffix(absPath, ".zip") {
		return jarAttachment{path: absPath}
	}
	return dirAttachment{root: absPath}
}

type noAttachment struct{}

func (noAttachment) lookup(string) (string, bool, error) { return "", false, nil }

type dirAttachment struct {
	root string
}

func (a dirAttachment) lookup(rel string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(a.root, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

type jarAttachment struct {
	path string
}

func (a jarAttachment) lookup(rel string) (string, bool, error) {
	zr, err := zip.OpenReader(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name != rel {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", false, err
		}
		data, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return "", false, err
		}
		if closeErr != nil {
			return "", false, closeErr
		}
		return string(data), true, nil
	}
	return "", false, nil
}
