package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RenderedDocumentPasses(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	assert.NoError(t, Verify(output))
}

func TestVerify_MissingMandatoryHeading(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	broken := strings.Replace(output, "## Risk", "## Risks", 1)
	err = Verify(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Risk")
}

func TestVerify_DuplicateHeading(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	err = Verify(output + "\n## Goal\n\nduplicate\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Goal")
}

func TestVerify_OutOfOrderHeading(t *testing.T) {
	doc := "## Goal\n\ntext\n\n## Metadata\n\ntext\n"
	err := Verify(doc)
	assert.Error(t, err)
}

func TestVerify_IgnoresNonSchemaHeadings(t *testing.T) {
	output, err := NewRenderer().Render(mandatoryContent())
	require.NoError(t, err)

	// Sub-headings like Phase blocks and custom h2s are not schema sections.
	assert.NoError(t, Verify(output+"\n## Appendix\n\nextra\n"))
}
