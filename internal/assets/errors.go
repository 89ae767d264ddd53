package assets

import "errors"

// Errors reported by the asset loaders. The loaders wrap these with the
// asset name, so callers match the class with errors.Is while the message
// keeps the specifics.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names carrying separators or dots before
	// any filesystem access happens.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath means the directory handed to NewFilesystemLoader
	// is missing, unreadable, or not a directory at all.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead covers I/O failures on asset files that do exist.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal means a resolved path landed outside the asset root,
	// typically via a symlink planted inside the asset directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrHighlightCSS means the syntax-highlighting stylesheet could not be
	// generated from the chroma style.
	ErrHighlightCSS = errors.New("failed to generate highlight stylesheet")
)
