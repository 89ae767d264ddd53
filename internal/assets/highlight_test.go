package assets

import (
	"strings"
	"testing"
)

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS()
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if css == "" {
		t.Fatal("HighlightCSS() returned empty stylesheet")
	}

	// The stylesheet must target the class names emitted by the class-based
	// chroma formatter, otherwise fenced code blocks render unstyled.
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() should contain .chroma selectors, got:\n%s", css)
	}
	if !strings.Contains(css, "color:") {
		t.Error("HighlightCSS() should contain color declarations")
	}
}

func TestHighlightCSS_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := HighlightCSS()
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	second, err := HighlightCSS()
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}

	if first != second {
		t.Error("HighlightCSS() should return identical CSS across calls")
	}
}
