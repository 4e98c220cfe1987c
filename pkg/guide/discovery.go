package guide

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

//go:embed guides/*.md
var builtinFS embed.FS

// Discovery finds guidance documents from built-in and user directories.
type Discovery struct {
	guideDirs []string
}

// Option is a function that configures a Discovery.
type Option func(*Discovery) error

// WithGuideDirs sets custom guide directories.
func WithGuideDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.guideDirs = dirs
		return nil
	}
}

// WithDefaultDirs initializes with the default guide directories.
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.guideDirs = []string{
			"./.specforge/guides",                          // Repo-local (highest precedence)
			filepath.Join(homeDir, ".specforge", "guides"), // User-global
		}
		return nil
	}
}

// NewDiscovery creates a new guide discovery instance.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		if err := WithDefaultDirs()(d); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(d); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// DiscoverGuides returns all available guides keyed by name. User directories
// shadow built-in guides of the same name; earlier directories win.
func (d *Discovery) DiscoverGuides() (map[string]*Guide, error) {
	guides := make(map[string]*Guide)

	for _, dir := range d.guideDirs {
		d.discoverGuidesFromDir(dir, guides)
	}

	entries, err := builtinFS.ReadDir("guides")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read built-in guides")
	}
	for _, entry := range entries {
		content, err := fs.ReadFile(builtinFS, "guides/"+entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read built-in guide %q", entry.Name())
		}
		guide, err := parseGuide(content)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid built-in guide %q", entry.Name())
		}
		if _, exists := guides[guide.Name]; !exists {
			guides[guide.Name] = guide
		}
	}

	return guides, nil
}

// discoverGuidesFromDir loads guides from a user directory. Unreadable or
// malformed files are skipped.
func (d *Discovery) discoverGuidesFromDir(dir string, guides map[string]*Guide) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		guide, err := parseGuide(content)
		if err != nil {
			continue
		}

		if _, exists := guides[guide.Name]; !exists {
			guide.Path = path
			guides[guide.Name] = guide
		}
	}
}

// GetGuide returns a specific guide by name.
func (d *Discovery) GetGuide(name string) (*Guide, error) {
	guides, err := d.DiscoverGuides()
	if err != nil {
		return nil, err
	}

	guide, exists := guides[name]
	if !exists {
		return nil, errors.Errorf("guide '%s' not found", name)
	}

	return guide, nil
}

// ListGuideNames returns the names of all available guides, sorted.
func (d *Discovery) ListGuideNames() ([]string, error) {
	guides, err := d.DiscoverGuides()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(guides))
	for name := range guides {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// parseGuide parses a guide file: YAML frontmatter plus Markdown body.
func parseGuide(content []byte) (*Guide, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("guide name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("guide description is required in frontmatter")
	}

	return &Guide{
		Name:        name,
		Description: description,
		Content:     extractBodyContent(string(content)),
	}, nil
}

// extractBodyContent removes YAML frontmatter and returns the body.
func extractBodyContent(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
