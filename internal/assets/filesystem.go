package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves styles and templates from a directory on disk.
// The directory mirrors the bundle layout: styles/*.css and templates/*.html
// under a single root.
type FilesystemLoader struct {
	root string
}

// NewFilesystemLoader opens root as an asset directory. Returns
// ErrInvalidBasePath when root is missing, unreadable, or not a directory.
func NewFilesystemLoader(root string) (*FilesystemLoader, error) {
	resolved, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}
	return &FilesystemLoader{root: resolved}, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)

// LoadStyle reads {root}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.read(name, filepath.Join("styles", name+".css"), ErrStyleNotFound)
}

// LoadTemplate reads {root}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.read(name, filepath.Join("templates", name+".html"), ErrTemplateNotFound)
}

// resolveRoot normalizes root to an absolute, symlink-free directory path
// and verifies it is readable. Resolving symlinks up front keeps the
// containment check in read comparing real paths on both sides.
func resolveRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return "", fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return "", fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return abs, nil
}

// read validates name, resolves relPath under the root, and returns the file
// content. A missing file maps to notFound; other failures keep their class.
func (f *FilesystemLoader) read(name, relPath string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.root, relPath)
	if err := f.contained(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- contained under the asset root
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// contained verifies that path, after resolving symlinks, still sits below
// the asset root. Name validation cannot catch a symlink planted inside the
// directory pointing elsewhere; this check does.
func (f *FilesystemLoader) contained(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// EvalSymlinks fails on missing files; keep the unresolved path then,
	// the read reports not-found either way.
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	if !strings.HasPrefix(abs, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes the asset root", ErrPathTraversal, filepath.Base(path))
	}
	return nil
}
