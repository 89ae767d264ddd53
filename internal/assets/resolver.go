package assets

import "errors"

// AssetResolver layers a user-supplied asset directory over the bundle.
// Lookups try the directory first and fall back to the bundled copy when the
// directory does not carry the asset, so users override individual files
// without replicating the whole set.
type AssetResolver struct {
	custom   AssetLoader // nil when no directory is configured
	embedded AssetLoader
}

// NewAssetResolver builds a resolver over dir. An empty dir yields a
// resolver serving the bundle alone; a non-empty dir must pass
// NewFilesystemLoader validation.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}

	if dir != "" {
		custom, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

var _ AssetLoader = (*AssetResolver)(nil)

// LoadStyle returns the stylesheet from the custom directory when present
// there, otherwise from the bundle. Validation and I/O errors on the custom
// side are returned as-is; only a plain miss falls through.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		css, err := r.custom.LoadStyle(name)
		if err == nil || !errors.Is(err, ErrStyleNotFound) {
			return css, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// LoadTemplate returns the layout template, custom directory first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	if r.custom != nil {
		tmpl, err := r.custom.LoadTemplate(name)
		if err == nil || !errors.Is(err, ErrTemplateNotFound) {
			return tmpl, err
		}
	}
	return r.embedded.LoadTemplate(name)
}
