package render

import (
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/specforge/specforge/pkg/schema"
)

// Verify parses a rendered document and checks that every mandatory section
// heading appears exactly once and that all schema headings appear in the
// fixed schema order.
func Verify(doc string) error {
	source := []byte(doc)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var headings []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 2 {
			headings = append(headings, string(n.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to walk document")
	}

	counts := make(map[string]int)
	for _, h := range headings {
		counts[h]++
	}

	for _, section := range schema.Sections() {
		if section.Required && counts[section.Title] != 1 {
			return errors.Errorf("section heading %q appears %d times, expected exactly once", section.Title, counts[section.Title])
		}
		if !section.Required && counts[section.Title] > 1 {
			return errors.Errorf("section heading %q appears %d times, expected at most once", section.Title, counts[section.Title])
		}
	}

	// Check relative order of the schema headings that are present.
	pos := 0
	ordered := schema.Sections()
	for _, h := range headings {
		idx := -1
		for i := pos; i < len(ordered); i++ {
			if ordered[i].Title == h {
				idx = i
				break
			}
		}
		if idx == -1 {
			// Either a non-schema heading or one seen out of order.
			for i := 0; i < pos; i++ {
				if ordered[i].Title == h {
					return errors.Errorf("section heading %q appears out of order", h)
				}
			}
			continue
		}
		pos = idx + 1
	}

	return nil
}
