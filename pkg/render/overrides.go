package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/specforge/specforge/pkg/logger"
	"github.com/specforge/specforge/pkg/schema"
)

// OverrideLoader discovers per-section template overrides on disk.
type OverrideLoader struct {
	templateDirs []string
}

// OverrideLoaderOption is a function that configures an OverrideLoader.
type OverrideLoaderOption func(*OverrideLoader) error

// WithTemplateDirs sets custom template override directories.
func WithTemplateDirs(dirs ...string) OverrideLoaderOption {
	return func(ol *OverrideLoader) error {
		if len(dirs) == 0 {
			return errors.New("at least one template directory must be specified")
		}
		ol.templateDirs = dirs
		return nil
	}
}

// WithDefaultTemplateDirs resets to the default override directories.
func WithDefaultTemplateDirs() OverrideLoaderOption {
	return func(ol *OverrideLoader) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		ol.templateDirs = []string{
			"./.specforge/templates", // Repo-specific (higher precedence)
			filepath.Join(homeDir, ".specforge/templates"), // User home directory
		}
		return nil
	}
}

// NewOverrideLoader creates an override loader with optional configuration.
func NewOverrideLoader(opts ...OverrideLoaderOption) (*OverrideLoader, error) {
	ol := &OverrideLoader{}

	if len(opts) == 0 {
		if err := WithDefaultTemplateDirs()(ol); err != nil {
			return nil, errors.Wrap(err, "failed to apply default template directories")
		}
		return ol, nil
	}

	for _, opt := range opts {
		if err := opt(ol); err != nil {
			return nil, errors.Wrap(err, "failed to apply override loader option")
		}
	}

	if len(ol.templateDirs) == 0 {
		if err := WithDefaultTemplateDirs()(ol); err != nil {
			return nil, errors.Wrap(err, "failed to apply default template directories")
		}
	}

	return ol, nil
}

// LoadOverrides reads section template overrides from the configured
// directories. Earlier directories take precedence. File names must be
// <section-key>.tmpl for a known section key.
func (ol *OverrideLoader) LoadOverrides(ctx context.Context) (map[string]string, error) {
	overrides := make(map[string]string)

	for _, dir := range ol.templateDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Directory might not exist, continue
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
				continue
			}

			key := strings.TrimSuffix(entry.Name(), ".tmpl")
			if !schema.IsKnown(key) {
				return nil, errors.Errorf("template override %q does not match any section key", entry.Name())
			}

			path := templatePath(key)
			if _, exists := overrides[path]; exists {
				continue
			}

			fullPath := filepath.Join(dir, entry.Name())
			content, err := os.ReadFile(fullPath)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read template override %q", fullPath)
			}

			logger.G(ctx).WithField("template", fullPath).Debug("Loaded template override")
			overrides[path] = string(content)
		}
	}

	return overrides, nil
}
