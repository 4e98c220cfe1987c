// Package convert rewrites Markdown into another lightweight markup dialect.
// The conversion is a deterministic line-by-line substitution: each source
// construct maps 1:1 to a target token, so no grammar parsing is required.
// Lines that match no rule pass through unchanged.
package convert

import (
	"regexp"
	"strings"
)

// Stats counts the constructs rewritten during one conversion. Unknown is the
// number of lines that looked structural but matched no rule and were passed
// through unchanged.
type Stats struct {
	Headings   int
	ListItems  int
	TableRows  int
	CodeFences int
	Quotes     int
	Unknown    int
}

// Converter converts Markdown text into a target dialect.
type Converter struct {
	dialect Dialect
}

// NewConverter creates a converter targeting the given dialect.
func NewConverter(dialect Dialect) *Converter {
	return &Converter{dialect: dialect}
}

// NewWikiConverter creates a converter targeting wiki markup.
func NewWikiConverter() *Converter {
	return NewConverter(Wiki)
}

var (
	headingRe   = regexp.MustCompile(`^(#+)\s+(.*)$`)
	unorderedRe = regexp.MustCompile(`^(\s*)([-*+])\s+(.*)$`)
	orderedRe   = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.*)$`)
	fenceRe     = regexp.MustCompile("^```\\s*([A-Za-z0-9+_-]*)\\s*$")
	quoteRe     = regexp.MustCompile(`^>\s?(.*)$`)
	tableRowRe  = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	separatorRe = regexp.MustCompile(`^\s*\|(\s*:?-+:?\s*\|)+\s*$`)
)

// Convert rewrites the input and reports what it did. Conversion never fails:
// unrecognized constructs pass through unchanged, best effort.
func (c *Converter) Convert(input string) (string, Stats) {
	var stats Stats
	lines := strings.Split(input, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if inFence {
			if fenceRe.MatchString(line) {
				out = append(out, c.dialect.CodeFenceClose())
				stats.CodeFences++
				inFence = false
			} else {
				// Fence content passes through untouched.
				out = append(out, line)
			}
			continue
		}

		switch {
		case fenceRe.MatchString(line):
			lang := fenceRe.FindStringSubmatch(line)[1]
			out = append(out, c.dialect.CodeFenceOpen(lang))
			stats.CodeFences++
			inFence = true

		case headingRe.MatchString(line):
			m := headingRe.FindStringSubmatch(line)
			level := len(m[1])
			if level > 6 {
				out = append(out, line)
				stats.Unknown++
				continue
			}
			out = append(out, c.dialect.Heading(level, c.dialect.Inline(m[2])))
			stats.Headings++

		case separatorRe.MatchString(line):
			// Header separator rows carry no content in the target dialect.

		case tableRowRe.MatchString(line):
			cells := splitCells(line)
			if i+1 < len(lines) && separatorRe.MatchString(lines[i+1]) {
				out = append(out, c.dialect.TableHeader(cells))
			} else {
				out = append(out, c.dialect.TableRow(cells))
			}
			stats.TableRows++

		case unorderedRe.MatchString(line):
			m := unorderedRe.FindStringSubmatch(line)
			out = append(out, c.dialect.UnorderedItem(listDepth(m[1]), c.dialect.Inline(m[3])))
			stats.ListItems++

		case orderedRe.MatchString(line):
			m := orderedRe.FindStringSubmatch(line)
			out = append(out, c.dialect.OrderedItem(listDepth(m[1]), c.dialect.Inline(m[3])))
			stats.ListItems++

		case quoteRe.MatchString(line):
			m := quoteRe.FindStringSubmatch(line)
			out = append(out, c.dialect.Blockquote(c.dialect.Inline(m[1])))
			stats.Quotes++

		case looksStructural(line):
			out = append(out, line)
			stats.Unknown++

		default:
			out = append(out, c.dialect.Inline(line))
		}
	}

	return strings.Join(out, "\n"), stats
}

// listDepth maps leading indentation to a 1-based nesting depth. Two spaces
// (or one tab) per level, the common Markdown convention.
func listDepth(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 2
		} else {
			width++
		}
	}
	return width/2 + 1
}

// splitCells extracts trimmed cell values from a Markdown table row.
func splitCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// looksStructural reports whether an unmatched line starts with a marker that
// suggests markup rather than prose. Such lines are counted so callers can
// warn about best-effort pass-through.
func looksStructural(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return false
	}
	// An opening pipe without a closing one is a malformed table row.
	if strings.HasPrefix(trimmed, "|") {
		return true
	}
	// A bare fence marker with trailing junk (e.g. ````) is not a rule match.
	if strings.HasPrefix(trimmed, "```") {
		return true
	}
	return false
}
