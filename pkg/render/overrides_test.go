package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideLoader_LoadOverrides(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "risk.tmpl"),
		[]byte("## {{.Section.Title}}\n\ncustom risk\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "notes.txt"),
		[]byte("not a template"), 0o644))

	loader, err := NewOverrideLoader(WithTemplateDirs(tempDir))
	require.NoError(t, err)

	overrides, err := loader.LoadOverrides(context.Background())
	require.NoError(t, err)

	require.Len(t, overrides, 1)
	assert.Contains(t, overrides["templates/risk.tmpl"], "custom risk")
}

func TestOverrideLoader_DirPrecedence(t *testing.T) {
	repoDir := t.TempDir()
	homeDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(repoDir, "goal.tmpl"), []byte("repo version"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, "goal.tmpl"), []byte("home version"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, "risk.tmpl"), []byte("home risk"), 0o644))

	loader, err := NewOverrideLoader(WithTemplateDirs(repoDir, homeDir))
	require.NoError(t, err)

	overrides, err := loader.LoadOverrides(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "repo version", overrides["templates/goal.tmpl"])
	assert.Equal(t, "home risk", overrides["templates/risk.tmpl"])
}

func TestOverrideLoader_UnknownSectionKey(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, "not_a_section.tmpl"), []byte("x"), 0o644))

	loader, err := NewOverrideLoader(WithTemplateDirs(tempDir))
	require.NoError(t, err)

	_, err = loader.LoadOverrides(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_section.tmpl")
}

func TestOverrideLoader_MissingDirIsIgnored(t *testing.T) {
	loader, err := NewOverrideLoader(WithTemplateDirs(filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, err)

	overrides, err := loader.LoadOverrides(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestNewOverrideLoader_NoDirs(t *testing.T) {
	_, err := NewOverrideLoader(WithTemplateDirs())
	assert.Error(t, err)
}
