// Package pipeline implements the document assembly stages between raw
// Markdown and the render engine:
//
//   - Markdown to HTML conversion via goldmark (GitHub flavor, optional
//     emoji shortcodes, class-based syntax highlighting)
//   - Relative image reference qualification against the source directory
//   - Binding styles and fragments into complete HTML documents
//
// PDF generation is handled separately by the root mdpdf package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// document structure and content, while rendering handles page layout,
// margins, and browser lifecycle concerns.
package pipeline
