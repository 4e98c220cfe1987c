// Package document defines the content model for a tech spec document: the
// typed content of each section, keyed by the section keys of pkg/schema.
package document

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/pkg/schema"
)

// Metadata holds the document header fields.
type Metadata struct {
	Date      string           `yaml:"date"`
	Owner     string           `yaml:"owner"`
	Version   string           `yaml:"version"`
	Changelog []ChangelogEntry `yaml:"changelog,omitempty"`
}

// ChangelogEntry is one revision record in the metadata table.
type ChangelogEntry struct {
	Version     string `yaml:"version"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// RiskRow is one row of the risk table.
type RiskRow struct {
	Risk       string `yaml:"risk"`
	Likelihood string `yaml:"likelihood"`
	Impact     string `yaml:"impact"`
	Mitigation string `yaml:"mitigation"`
}

// AlternativeRow is one considered-and-rejected option.
type AlternativeRow struct {
	Option string `yaml:"option"`
	Pros   string `yaml:"pros"`
	Cons   string `yaml:"cons"`
	Reason string `yaml:"reason"`
}

// Phase is one ordered phase of the implementation plan.
type Phase struct {
	Name         string   `yaml:"name"`
	Tasks        []string `yaml:"tasks"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// MetricRow is one row of the metrics table.
type MetricRow struct {
	Definition string `yaml:"definition"`
	KPI        string `yaml:"kpi"`
	Notes      string `yaml:"notes,omitempty"`
}

// QualityAttribute describes one of the seven fixed quality attributes.
type QualityAttribute struct {
	Definition string `yaml:"definition"`
	Metric     string `yaml:"metric"`
	Notes      string `yaml:"notes,omitempty"`
}

// FollowUpRow is one deferred task.
type FollowUpRow struct {
	Task        string `yaml:"task"`
	Description string `yaml:"description"`
	Estimate    string `yaml:"estimate,omitempty"`
	Link        string `yaml:"link,omitempty"`
	Date        string `yaml:"date,omitempty"`
}

// Endpoint is one API endpoint block.
type Endpoint struct {
	Method   string `yaml:"method"`
	Path     string `yaml:"path"`
	Auth     string `yaml:"auth,omitempty"`
	Request  string `yaml:"request,omitempty"`
	Response string `yaml:"response,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

// SchemaChange is one row of the schema change table.
type SchemaChange struct {
	Table       string `yaml:"table"`
	Change      string `yaml:"change"`
	Description string `yaml:"description,omitempty"`
}

// SchemaSpec holds the data-model change section.
type SchemaSpec struct {
	DDL     []string       `yaml:"ddl,omitempty"`
	Changes []SchemaChange `yaml:"changes,omitempty"`
}

// UIFlow holds the UI flow section.
type UIFlow struct {
	Steps   []string `yaml:"steps"`
	Screens []string `yaml:"screens,omitempty"`
}

// Content is the full set of supplied section content, keyed by the schema's
// section keys via YAML tags. Zero-valued sections count as absent.
type Content struct {
	Metadata             *Metadata                   `yaml:"metadata"`
	ProblemStatement     string                      `yaml:"problem_statement"`
	Goal                 []string                    `yaml:"goal"`
	ProposedSolution     string                      `yaml:"proposed_solution"`
	Changes              []string                    `yaml:"changes"`
	ArchitectureDiagrams string                      `yaml:"architecture_diagrams,omitempty"`
	SchemaSpecification  *SchemaSpec                 `yaml:"schema_specification,omitempty"`
	APISpecification     []Endpoint                  `yaml:"api_specification,omitempty"`
	UIFlow               *UIFlow                     `yaml:"ui_flow,omitempty"`
	Risk                 []RiskRow                   `yaml:"risk"`
	SecurityPrivacy      string                      `yaml:"security_privacy,omitempty"`
	Alternatives         []AlternativeRow            `yaml:"alternatives"`
	ImplementationPlan   []Phase                     `yaml:"implementation_plan"`
	Metrics              []MetricRow                 `yaml:"metrics"`
	QualityAttributes    map[string]QualityAttribute `yaml:"quality_attributes"`
	FollowUp             []FollowUpRow               `yaml:"follow_up"`
}

// Has reports whether content was supplied for the given section key.
func (c *Content) Has(key string) bool {
	switch key {
	case schema.KeyMetadata:
		return c.Metadata != nil
	case schema.KeyProblemStatement:
		return c.ProblemStatement != ""
	case schema.KeyGoal:
		return len(c.Goal) > 0
	case schema.KeyProposedSolution:
		return c.ProposedSolution != ""
	case schema.KeyChanges:
		return len(c.Changes) > 0
	case schema.KeyArchitectureDiagram:
		return c.ArchitectureDiagrams != ""
	case schema.KeySchemaSpecification:
		return c.SchemaSpecification != nil
	case schema.KeyAPISpecification:
		return len(c.APISpecification) > 0
	case schema.KeyUIFlow:
		return c.UIFlow != nil
	case schema.KeyRisk:
		return len(c.Risk) > 0
	case schema.KeySecurityPrivacy:
		return c.SecurityPrivacy != ""
	case schema.KeyAlternatives:
		return len(c.Alternatives) > 0
	case schema.KeyImplementationPlan:
		return len(c.ImplementationPlan) > 0
	case schema.KeyMetrics:
		return len(c.Metrics) > 0
	case schema.KeyQualityAttributes:
		return len(c.QualityAttributes) > 0
	case schema.KeyFollowUp:
		return len(c.FollowUp) > 0
	}
	return false
}

// MissingRequired returns the keys of mandatory sections with no content, in
// document order.
func (c *Content) MissingRequired() []string {
	var missing []string
	for _, key := range schema.RequiredKeys() {
		if !c.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// Parse decodes an answers YAML document into Content. Unknown top-level keys
// are rejected so typos in section names surface immediately.
func Parse(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, errors.Wrap(err, "failed to parse answers file")
	}

	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err == nil {
		for key := range keys {
			if !schema.IsKnown(key) {
				return nil, errors.Errorf("unknown section key %q in answers file", key)
			}
		}
	}

	return &content, nil
}

// Load reads and parses an answers file from disk.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read answers file %q", path)
	}
	return Parse(data)
}

// Validate checks the structured sections for internal consistency. All
// problems are collected and reported together.
func (c *Content) Validate() error {
	var result *multierror.Error

	for name := range c.QualityAttributes {
		if !isQualityAttribute(name) {
			result = multierror.Append(result, errors.Errorf("unknown quality attribute %q", name))
		}
	}

	for i, ep := range c.APISpecification {
		if ep.Method == "" || ep.Path == "" {
			result = multierror.Append(result, errors.Errorf("api endpoint %d: method and path are required", i+1))
		}
	}

	for i, phase := range c.ImplementationPlan {
		if phase.Name == "" {
			result = multierror.Append(result, errors.Errorf("implementation phase %d: name is required", i+1))
		}
		if len(phase.Tasks) == 0 {
			result = multierror.Append(result, errors.Errorf("implementation phase %d (%s): at least one task is required", i+1, phase.Name))
		}
	}

	if c.UIFlow != nil && len(c.UIFlow.Steps) == 0 {
		result = multierror.Append(result, errors.New("ui_flow: at least one step is required"))
	}

	return result.ErrorOrNil()
}

func isQualityAttribute(name string) bool {
	for _, known := range schema.QualityAttributeNames {
		if name == known {
			return true
		}
	}
	return false
}
