// Package schema defines the fixed section schema of a tech spec document.
// A document is an ordered sequence of named sections; the order is fixed and
// optional sections may be omitted but never reordered.
package schema

import (
	"github.com/pkg/errors"
)

// Kind describes the shape of a section's content.
type Kind string

const (
	// KindFreeText is unstructured prose.
	KindFreeText Kind = "free_text"
	// KindKeyValue is a set of key-value pairs rendered as a metadata table.
	KindKeyValue Kind = "key_value"
	// KindList is a bullet or numbered list of statements.
	KindList Kind = "list"
	// KindTable is a table with a fixed column set.
	KindTable Kind = "table"
	// KindStructured is a section with its own sub-object shape
	// (API endpoints, schema changes, implementation phases).
	KindStructured Kind = "structured"
)

// Section describes one entry of the document schema.
type Section struct {
	// Key identifies the section in answer files and template names.
	Key string
	// Title is the heading emitted for the section.
	Title string
	// Kind describes the content shape.
	Kind Kind
	// Required sections must be supplied; rendering fails without them.
	Required bool
}

// Section keys, in document order.
const (
	KeyMetadata            = "metadata"
	KeyProblemStatement    = "problem_statement"
	KeyGoal                = "goal"
	KeyProposedSolution    = "proposed_solution"
	KeyChanges             = "changes"
	KeyArchitectureDiagram = "architecture_diagrams"
	KeySchemaSpecification = "schema_specification"
	KeyAPISpecification    = "api_specification"
	KeyUIFlow              = "ui_flow"
	KeyRisk                = "risk"
	KeySecurityPrivacy     = "security_privacy"
	KeyAlternatives        = "alternatives"
	KeyImplementationPlan  = "implementation_plan"
	KeyMetrics             = "metrics"
	KeyQualityAttributes   = "quality_attributes"
	KeyFollowUp            = "follow_up"
)

// sections is the single source of truth for section order and requirement.
// The renderer iterates this list exactly once.
var sections = []Section{
	{Key: KeyMetadata, Title: "Metadata", Kind: KindKeyValue, Required: true},
	{Key: KeyProblemStatement, Title: "Problem Statement", Kind: KindFreeText, Required: true},
	{Key: KeyGoal, Title: "Goal", Kind: KindList, Required: true},
	{Key: KeyProposedSolution, Title: "Proposed Solution", Kind: KindFreeText, Required: true},
	{Key: KeyChanges, Title: "Changes", Kind: KindList, Required: true},
	{Key: KeyArchitectureDiagram, Title: "Architecture Diagrams", Kind: KindFreeText, Required: false},
	{Key: KeySchemaSpecification, Title: "Schema Specification", Kind: KindStructured, Required: false},
	{Key: KeyAPISpecification, Title: "API Specification", Kind: KindStructured, Required: false},
	{Key: KeyUIFlow, Title: "UI Flow", Kind: KindStructured, Required: false},
	{Key: KeyRisk, Title: "Risk", Kind: KindTable, Required: true},
	{Key: KeySecurityPrivacy, Title: "Security/Privacy", Kind: KindFreeText, Required: false},
	{Key: KeyAlternatives, Title: "Alternatives", Kind: KindTable, Required: true},
	{Key: KeyImplementationPlan, Title: "Implementation Plan", Kind: KindStructured, Required: true},
	{Key: KeyMetrics, Title: "Metrics", Kind: KindTable, Required: true},
	{Key: KeyQualityAttributes, Title: "Quality Attributes", Kind: KindTable, Required: true},
	{Key: KeyFollowUp, Title: "Follow Up", Kind: KindTable, Required: true},
}

// QualityAttributeNames is the fixed set of quality attributes, in table order.
var QualityAttributeNames = []string{
	"security",
	"capacity",
	"compatibility",
	"reliability",
	"scalability",
	"maintainability",
	"usability",
}

// Sections returns the schema in document order. The returned slice is a copy.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Lookup returns the section descriptor for key.
func Lookup(key string) (Section, error) {
	for _, s := range sections {
		if s.Key == key {
			return s, nil
		}
	}
	return Section{}, errors.Errorf("unknown section key %q", key)
}

// IsKnown reports whether key names a schema section.
func IsKnown(key string) bool {
	_, err := Lookup(key)
	return err == nil
}

// RequiredKeys returns the keys of all mandatory sections, in document order.
func RequiredKeys() []string {
	var keys []string
	for _, s := range sections {
		if s.Required {
			keys = append(keys, s.Key)
		}
	}
	return keys
}
