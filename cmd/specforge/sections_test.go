package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsListOutput_Table(t *testing.T) {
	var buf bytes.Buffer
	output := NewSectionsListOutput(SectionsTableFormat)
	require.NoError(t, output.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "metadata")
	assert.Contains(t, out, "Problem Statement")
	assert.Contains(t, out, "follow_up")
}

func TestSectionsListOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	output := NewSectionsListOutput(SectionsJSONFormat)
	require.NoError(t, output.Render(&buf))

	var decoded struct {
		Sections []SectionOutput `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Sections, 16)

	assert.Equal(t, "metadata", decoded.Sections[0].Key)
	assert.True(t, decoded.Sections[0].Required)
	assert.Equal(t, "architecture_diagrams", decoded.Sections[5].Key)
	assert.False(t, decoded.Sections[5].Required)
	assert.Equal(t, "follow_up", decoded.Sections[15].Key)
}
