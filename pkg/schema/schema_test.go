package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_FixedOrder(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 16)

	expectedKeys := []string{
		KeyMetadata,
		KeyProblemStatement,
		KeyGoal,
		KeyProposedSolution,
		KeyChanges,
		KeyArchitectureDiagram,
		KeySchemaSpecification,
		KeyAPISpecification,
		KeyUIFlow,
		KeyRisk,
		KeySecurityPrivacy,
		KeyAlternatives,
		KeyImplementationPlan,
		KeyMetrics,
		KeyQualityAttributes,
		KeyFollowUp,
	}

	for i, key := range expectedKeys {
		assert.Equal(t, key, sections[i].Key)
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	first := Sections()
	first[0].Title = "mutated"

	second := Sections()
	assert.Equal(t, "Metadata", second[0].Title)
}

func TestLookup(t *testing.T) {
	section, err := Lookup(KeyRisk)
	require.NoError(t, err)
	assert.Equal(t, "Risk", section.Title)
	assert.True(t, section.Required)
	assert.Equal(t, KindTable, section.Kind)

	_, err = Lookup("not_a_section")
	assert.Error(t, err)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(KeyMetadata))
	assert.False(t, IsKnown("metadata_v2"))
}

func TestRequiredKeys(t *testing.T) {
	required := RequiredKeys()
	assert.Equal(t, []string{
		KeyMetadata,
		KeyProblemStatement,
		KeyGoal,
		KeyProposedSolution,
		KeyChanges,
		KeyRisk,
		KeyAlternatives,
		KeyImplementationPlan,
		KeyMetrics,
		KeyQualityAttributes,
		KeyFollowUp,
	}, required)
}

func TestOptionalSections(t *testing.T) {
	optional := map[string]bool{
		KeyArchitectureDiagram: true,
		KeySchemaSpecification: true,
		KeyAPISpecification:    true,
		KeyUIFlow:              true,
		KeySecurityPrivacy:     true,
	}

	for _, s := range Sections() {
		assert.Equal(t, !optional[s.Key], s.Required, "section %s", s.Key)
	}
}

func TestQualityAttributeNames(t *testing.T) {
	assert.Equal(t, []string{
		"security",
		"capacity",
		"compatibility",
		"reliability",
		"scalability",
		"maintainability",
		"usability",
	}, QualityAttributeNames)
}
