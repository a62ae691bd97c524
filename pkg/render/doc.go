// Package render turns raw document content into display-ready markup.
//
// It provides the two post-processing steps a loaded document can go through:
// syntax highlighting (via chroma) and HTML line wrapping. Pipeline combines
// them into a core.Formatter selected by core.Config.
package render
