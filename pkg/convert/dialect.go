package convert

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect maps each recognized construct to its target token set. Adding an
// output dialect means providing another Dialect value; the converter itself
// never changes.
type Dialect struct {
	// Name identifies the dialect in CLI flags and logs.
	Name string

	// Heading formats a heading of the given level (1-6).
	Heading func(level int, text string) string
	// UnorderedItem formats a bullet item at the given depth (1-based).
	UnorderedItem func(depth int, text string) string
	// OrderedItem formats a numbered item at the given depth (1-based).
	OrderedItem func(depth int, text string) string
	// TableHeader formats the cells of a table header row.
	TableHeader func(cells []string) string
	// TableRow formats the cells of a table data row.
	TableRow func(cells []string) string
	// CodeFenceOpen formats the opening fence, lang may be empty.
	CodeFenceOpen func(lang string) string
	// CodeFenceClose formats the closing fence.
	CodeFenceClose func() string
	// Blockquote formats a quoted line.
	Blockquote func(text string) string
	// Inline rewrites inline constructs (bold, code spans, links) in prose.
	Inline func(text string) string
}

var (
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

// Wiki is the Jira/Confluence-style wiki markup dialect.
var Wiki = Dialect{
	Name: "wiki",
	Heading: func(level int, text string) string {
		return fmt.Sprintf("h%d. %s", level, text)
	},
	UnorderedItem: func(depth int, text string) string {
		return strings.Repeat("*", depth) + " " + text
	},
	OrderedItem: func(depth int, text string) string {
		return strings.Repeat("#", depth) + " " + text
	},
	TableHeader: func(cells []string) string {
		return "||" + strings.Join(cells, "||") + "||"
	},
	TableRow: func(cells []string) string {
		return "|" + strings.Join(cells, "|") + "|"
	},
	CodeFenceOpen: func(lang string) string {
		if lang == "" {
			return "{code}"
		}
		return "{code:" + lang + "}"
	},
	CodeFenceClose: func() string {
		return "{code}"
	},
	Blockquote: func(text string) string {
		return "bq. " + text
	},
	Inline: func(text string) string {
		text = codeSpanRe.ReplaceAllString(text, "{{$1}}")
		text = boldRe.ReplaceAllString(text, "*$1*")
		text = linkRe.ReplaceAllString(text, "[$1|$2]")
		return text
	},
}
