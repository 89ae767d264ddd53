// Package assets provides the bundled CSS styles and HTML layout templates
// used to assemble renderable documents.
//
// # Loaders
//
// Three AssetLoader implementations cover the lookup paths:
//
//	EmbeddedLoader    - the compiled-in bundle (styles github/default,
//	                    templates document/chrome)
//	FilesystemLoader  - a user-supplied directory mirroring the bundle layout
//	AssetResolver     - directory first, bundle as fallback
//
// AssetResolver is what the converter uses when an asset directory is
// configured: users override individual styles or templates by dropping a
// same-named file into the directory, and everything else keeps coming from
// the bundle.
//
// # Layout
//
// Both the bundle and a custom directory organize assets by kind:
//
//	<root>/
//	├── styles/
//	│   └── <name>.css
//	└── templates/
//	    └── <name>.html
//
// The syntax-highlighting stylesheet is not a file: it is generated once per
// process from the chroma style matching the converter's class-based
// highlighted output. See HighlightCSS.
//
// # Security
//
// Asset names must be bare identifiers; ValidateAssetName rejects separators
// and dots before any lookup. FilesystemLoader additionally resolves
// symlinks and refuses paths landing outside its root.
package assets
