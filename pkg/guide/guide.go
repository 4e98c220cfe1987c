// Package guide provides per-section authoring guidance for tech spec
// documents. Guides are Markdown files with YAML frontmatter describing which
// section they cover; built-in guides can be shadowed by user-supplied ones.
package guide

// Guide is one discovered guidance document.
type Guide struct {
	Name        string // Section key from frontmatter
	Description string // One-line summary for listings
	Path        string // Source path, empty for built-in guides
	Content     string // Markdown body, frontmatter stripped
}

// Metadata is the YAML frontmatter of a guide file.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
