package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/pkg/document"
	"github.com/specforge/specforge/pkg/schema"
)

// mandatoryContent returns content covering every mandatory section and
// nothing else.
func mandatoryContent() *document.Content {
	return &document.Content{
		Metadata: &document.Metadata{
			Date:    "2026-08-20",
			Owner:   "alice",
			Version: "1.0",
			Changelog: []document.ChangelogEntry{
				{Version: "1.0", Date: "2026-08-20", Description: "Initial draft"},
			},
		},
		ProblemStatement: "Users cannot track shipments.",
		Goal:             []string{"Reduce shipment-status tickets by 50%"},
		ProposedSolution: "Add a tracking page backed by the carrier API.",
		Changes:          []string{"New /tracking page", "New webhook consumer"},
		Risk: []document.RiskRow{
			{Risk: "Carrier rate limits", Likelihood: "medium", Impact: "high", Mitigation: "Cache for 5m"},
		},
		Alternatives: []document.AlternativeRow{
			{Option: "Email-only updates", Pros: "No UI work", Cons: "Not on demand", Reason: "Does not address the complaint"},
		},
		ImplementationPlan: []document.Phase{
			{Name: "Backend", Tasks: []string{"Webhook consumer", "Status store"}},
			{Name: "Frontend", Tasks: []string{"Tracking page"}, Dependencies: []string{"Backend"}},
		},
		Metrics: []document.MetricRow{
			{Definition: "tickets per week", KPI: "-50%", Notes: "support dashboard"},
		},
		QualityAttributes: map[string]document.QualityAttribute{
			"security":        {Definition: "no PII in URLs", Metric: "audit"},
			"capacity":        {Definition: "10k lookups/day", Metric: "p99 < 300ms"},
			"compatibility":   {Definition: "supported browsers", Metric: "CI matrix"},
			"reliability":     {Definition: "page availability", Metric: "99.9%"},
			"scalability":     {Definition: "linear with volume", Metric: "load test"},
			"maintainability": {Definition: "single owner team", Metric: "review SLO"},
			"usability":       {Definition: "no login needed", Metric: "task success"},
		},
		FollowUp: []document.FollowUpRow{
			{Task: "Push notifications", Description: "Notify on transitions", Estimate: "1w", Link: "TICKET-123", Date: "2026-10-01"},
		},
	}
}

func TestRender_MandatoryHeadingsOnceInOrder(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	lastIndex := -1
	for _, key := range schema.RequiredKeys() {
		section, err := schema.Lookup(key)
		require.NoError(t, err)

		heading := "## " + section.Title
		assert.Equal(t, 1, strings.Count(output, heading+"\n"), "heading %q", heading)

		idx := strings.Index(output, heading)
		assert.Greater(t, idx, lastIndex, "heading %q out of order", heading)
		lastIndex = idx
	}
}

func TestRender_MandatoryOnlyOmitsOptional(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	assert.NotContains(t, output, "## Architecture Diagrams")
	assert.NotContains(t, output, "## Schema Specification")
	assert.NotContains(t, output, "## API Specification")
	assert.NotContains(t, output, "## UI Flow")
	assert.NotContains(t, output, "## Security/Privacy")
}

func TestRender_MissingRequiredSection(t *testing.T) {
	content := mandatoryContent()
	content.Risk = nil
	content.Metrics = nil

	output, err := NewRenderer().Render(content)
	require.Error(t, err)
	assert.Empty(t, output)

	assert.True(t, IsMissingRequiredSection(err))
	missingErr := err.(*MissingRequiredSectionError)
	assert.Equal(t, []string{schema.KeyRisk, schema.KeyMetrics}, missingErr.Keys)
	assert.Contains(t, err.Error(), "risk")
	assert.Contains(t, err.Error(), "metrics")
}

func TestRender_NilContent(t *testing.T) {
	_, err := NewRenderer().Render(nil)
	assert.Error(t, err)
}

func TestRender_OptionalSectionsAtFixedPosition(t *testing.T) {
	content := mandatoryContent()
	content.ArchitectureDiagrams = "See the component diagram."
	content.SecurityPrivacy = "No new PII is collected."
	content.APISpecification = []document.Endpoint{
		{Method: "GET", Path: "/v1/tracking/{id}", Auth: "session", Response: `{"status": "in_transit"}`},
	}

	output, err := NewRenderer().Render(content)
	require.NoError(t, err)

	// Architecture Diagrams sits between Changes and Risk.
	changes := strings.Index(output, "## Changes")
	arch := strings.Index(output, "## Architecture Diagrams")
	api := strings.Index(output, "## API Specification")
	risk := strings.Index(output, "## Risk")
	security := strings.Index(output, "## Security/Privacy")
	alternatives := strings.Index(output, "## Alternatives")

	assert.Greater(t, arch, changes)
	assert.Greater(t, api, arch)
	assert.Greater(t, risk, api)
	assert.Greater(t, security, risk)
	assert.Greater(t, alternatives, security)

	assert.Contains(t, output, "### GET /v1/tracking/{id}")
	assert.Contains(t, output, "Auth: session")
}

func TestRender_SectionContent(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	assert.Contains(t, output, "| Date | 2026-08-20 |")
	assert.Contains(t, output, "- Reduce shipment-status tickets by 50%")
	assert.Contains(t, output, "| Carrier rate limits | medium | high | Cache for 5m |")
	assert.Contains(t, output, "### Phase 1: Backend")
	assert.Contains(t, output, "### Phase 2: Frontend")
	assert.Contains(t, output, "Dependencies: Backend")
	assert.Contains(t, output, "| security | no PII in URLs | audit |")
	assert.Contains(t, output, "| Push notifications | Notify on transitions | 1w | TICKET-123 | 2026-10-01 |")
}

func TestRender_QualityAttributesFixedRowOrder(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	lastIndex := -1
	for _, name := range schema.QualityAttributeNames {
		idx := strings.Index(output, "| "+name+" |")
		require.GreaterOrEqual(t, idx, 0, "attribute %s missing", name)
		assert.Greater(t, idx, lastIndex, "attribute %s out of order", name)
		lastIndex = idx
	}
}

func TestRender_EndsWithSingleNewline(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(output, "\n"))
	assert.False(t, strings.HasSuffix(output, "\n\n"))
}

func TestRenderWithOverrides(t *testing.T) {
	overrides := map[string]string{
		"templates/risk.tmpl": "## {{.Section.Title}}\n\nRisk count: {{len .Content.Risk}}\n",
	}

	output, err := NewRendererWithOverrides(overrides).Render(mandatoryContent())
	require.NoError(t, err)

	assert.Contains(t, output, "Risk count: 1")
	assert.NotContains(t, output, "| Carrier rate limits |")
}

func TestRenderWithOverrides_BadTemplate(t *testing.T) {
	overrides := map[string]string{
		"templates/risk.tmpl": "{{.Unclosed",
	}

	_, err := NewRendererWithOverrides(overrides).Render(mandatoryContent())
	assert.Error(t, err)
}
