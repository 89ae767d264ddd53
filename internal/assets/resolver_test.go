package assets

// Notes:
// - the resolver prefers a user directory and falls back to the bundle only
//   on a plain miss; validation errors surface without fallback so a typo is
//   never papered over by a bundled asset
// - an empty directory argument means bundle-only service

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewAssetResolver - Construction
// ---------------------------------------------------------------------------

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty dir serves the bundle alone", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.custom != nil {
			t.Error("resolver with empty dir should have no custom loader")
		}

		css, err := resolver.LoadStyle(StyleGithub)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", StyleGithub, err)
		}
		if css == "" {
			t.Errorf("LoadStyle(%q) returned empty stylesheet", StyleGithub)
		}
	})

	t.Run("valid dir installs a custom loader", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if resolver.custom == nil {
			t.Error("resolver with a valid dir should have a custom loader")
		}
	})

	t.Run("invalid dir fails construction", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver("/no/such/asset/dir"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver(bad dir) error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssetResolver - Directory-First Lookup with Bundle Fallback
// ---------------------------------------------------------------------------

func TestAssetResolverStyleFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	const customCSS = "h2 { font-variant: small-caps }"
	writeAsset(t, dir, "styles", "sepia.css", customCSS)

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("directory style wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("sepia")
		if err != nil {
			t.Fatalf("LoadStyle(\"sepia\") error = %v", err)
		}
		if got != customCSS {
			t.Errorf("LoadStyle(\"sepia\") = %q, want %q", got, customCSS)
		}
	})

	t.Run("bundled style fills the miss", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle(StyleDefault)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", StyleDefault, err)
		}
		if got == "" {
			t.Errorf("LoadStyle(%q) returned empty stylesheet", StyleDefault)
		}
	})

	t.Run("miss on both sides reports ErrStyleNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadStyle("nowhere"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(\"nowhere\") error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestAssetResolverOverridesBundledStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	const override = "/* replaces the bundled github stylesheet */"
	writeAsset(t, dir, "styles", StyleGithub+".css", override)

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	got, err := resolver.LoadStyle(StyleGithub)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", StyleGithub, err)
	}
	if got != override {
		t.Errorf("LoadStyle(%q) = %q, want the directory override", StyleGithub, got)
	}
}

func TestAssetResolverTemplateFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	const customDoc = "<html><body>{{.Body}}</body></html>"
	writeAsset(t, dir, "templates", TemplateDocument+".html", customDoc)

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("directory template wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(TemplateDocument)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", TemplateDocument, err)
		}
		if got != customDoc {
			t.Errorf("LoadTemplate(%q) = %q, want %q", TemplateDocument, got, customDoc)
		}
	})

	t.Run("bundled template fills the miss", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(TemplateChrome)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", TemplateChrome, err)
		}
		if got == "" {
			t.Errorf("LoadTemplate(%q) returned empty layout", TemplateChrome)
		}
	})

	t.Run("miss on both sides reports ErrTemplateNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadTemplate("nowhere"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(\"nowhere\") error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestAssetResolverValidationSkipsFallback(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := resolver.LoadStyle("../github"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(\"../github\") error = %v, want ErrInvalidAssetName", err)
	}
	if _, err := resolver.LoadTemplate("../document"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(\"../document\") error = %v, want ErrInvalidAssetName", err)
	}
}
