package assets

// AssetLoader is the lookup contract shared by the embedded bundle, the
// filesystem loader, and the resolver layering the two. Names are bare
// identifiers; each implementation supplies directory and extension.
type AssetLoader interface {
	// LoadStyle returns the CSS registered under name. A miss reports
	// ErrStyleNotFound, a malformed name ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the HTML layout registered under name. A miss
	// reports ErrTemplateNotFound, a malformed name ErrInvalidAssetName.
	LoadTemplate(name string) (string, error)
}
