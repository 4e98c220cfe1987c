// Package render assembles a tech spec document from supplied section content.
// Section templates live on an embedded filesystem and may be overridden per
// section from user template directories.
package render

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/specforge/specforge/pkg/document"
	"github.com/specforge/specforge/pkg/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SectionData is the data handed to each section template.
type SectionData struct {
	Section schema.Section
	Content *document.Content
}

// Renderer renders documents from the embedded section templates.
type Renderer struct {
	templates *template.Template
	parseErr  error
}

// NewRenderer creates a renderer backed by the embedded templates.
func NewRenderer() *Renderer {
	return newRenderer(templateFS, nil)
}

// NewRendererWithOverrides creates a renderer with per-section template
// overrides. Overrides are keyed by template path (e.g. templates/risk.tmpl).
func NewRendererWithOverrides(overrides map[string]string) *Renderer {
	return newRenderer(templateFS, overrides)
}

func newRenderer(fsys fs.FS, overrides map[string]string) *Renderer {
	r := &Renderer{}
	r.templates, r.parseErr = parseTemplates(fsys, overrides)
	return r
}

// Render produces the final Markdown document. Mandatory sections appear in
// the fixed schema order; optional sections without content are omitted
// entirely. If any mandatory section has no content, Render fails with
// MissingRequiredSectionError and produces no output.
func (r *Renderer) Render(content *document.Content) (string, error) {
	if r.parseErr != nil {
		return "", errors.Wrap(r.parseErr, "failed to initialize templates")
	}
	if content == nil {
		return "", errors.New("no content supplied")
	}

	if missing := content.MissingRequired(); len(missing) > 0 {
		return "", &MissingRequiredSectionError{Keys: missing}
	}

	var parts []string
	for _, section := range schema.Sections() {
		if !content.Has(section.Key) {
			continue
		}

		rendered, err := r.renderSection(section, content)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimRight(rendered, "\n"))
	}

	return strings.Join(parts, "\n\n") + "\n", nil
}

func (r *Renderer) renderSection(section schema.Section, content *document.Content) (string, error) {
	name := templatePath(section.Key)
	if r.templates.Lookup(name) == nil {
		return "", errors.Errorf("template %s not found", name)
	}

	var buf strings.Builder
	data := SectionData{Section: section, Content: content}
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}

	return buf.String(), nil
}

func templatePath(key string) string {
	return "templates/" + key + ".tmpl"
}

func parseTemplates(fsys fs.FS, overrides map[string]string) (*template.Template, error) {
	paths, err := collectTemplatePaths(fsys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect template paths")
	}

	templates := template.New("templates")
	var selfRef *template.Template
	templates = templates.Funcs(template.FuncMap{
		"include": func(templateName string, data any) (string, error) {
			var buf strings.Builder
			err := selfRef.ExecuteTemplate(&buf, templateName, data)
			return buf.String(), err
		},
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
		"qualityAttributeNames": func() []string {
			return schema.QualityAttributeNames
		},
	})
	selfRef = templates

	for _, path := range paths {
		content := ""
		if override, ok := overrides[path]; ok {
			content = override
		} else {
			raw, err := fs.ReadFile(fsys, path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read template file %s", path)
			}
			content = string(raw)
		}

		if _, err := templates.New(path).Parse(content); err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", path)
		}
	}

	return templates, nil
}

func collectTemplatePaths(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
