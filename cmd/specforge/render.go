package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/convert"
	"github.com/specforge/specforge/pkg/document"
	"github.com/specforge/specforge/pkg/logger"
	"github.com/specforge/specforge/pkg/presenter"
	"github.com/specforge/specforge/pkg/render"
	"github.com/specforge/specforge/pkg/schema"
)

// RenderConfig holds configuration for the render command
type RenderConfig struct {
	Output      string
	Format      string
	Verify      bool
	NoOverrides bool
}

// NewRenderConfig creates a new RenderConfig with default values
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format: "markdown",
	}
}

// Validate validates the RenderConfig and returns an error if invalid
func (c *RenderConfig) Validate() error {
	switch c.Format {
	case "markdown", "wiki":
		return nil
	}
	return errors.Errorf("invalid format %q, must be markdown or wiki", c.Format)
}

var renderCmd = &cobra.Command{
	Use:   "render <answers.yaml>",
	Short: "Render a tech spec document from an answers file",
	Long: `Render assembles a tech spec document from a YAML answers file.
Mandatory sections must be present; optional sections without content
are omitted. Use --format wiki to emit wiki markup instead of Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config := getRenderConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			return err
		}

		output, stats, err := runRender(cmd, args[0], config)
		if err != nil {
			presenter.Error(err, "render failed")
			return err
		}

		if config.Output == "" {
			cmd.OutOrStdout().Write([]byte(output))
			return nil
		}

		if err := os.WriteFile(config.Output, []byte(output), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write output file %q", config.Output)
		}

		logger.G(ctx).WithField("path", config.Output).Debug("Wrote rendered document")
		presenter.Success("Rendered " + config.Output)
		presenter.Stats(stats)
		return nil
	},
}

func runRender(cmd *cobra.Command, answersPath string, config *RenderConfig) (string, *presenter.RenderStats, error) {
	ctx := cmd.Context()

	content, err := document.Load(answersPath)
	if err != nil {
		return "", nil, err
	}
	if err := content.Validate(); err != nil {
		return "", nil, errors.Wrap(err, "invalid answers file")
	}

	renderer := render.NewRenderer()
	if !config.NoOverrides {
		loader, err := render.NewOverrideLoader()
		if err != nil {
			return "", nil, err
		}
		overrides, err := loader.LoadOverrides(ctx)
		if err != nil {
			return "", nil, err
		}
		if len(overrides) > 0 {
			renderer = render.NewRendererWithOverrides(overrides)
		}
	}

	output, err := renderer.Render(content)
	if err != nil {
		return "", nil, err
	}

	if config.Verify {
		if err := render.Verify(output); err != nil {
			return "", nil, errors.Wrap(err, "rendered document failed verification")
		}
	}

	stats := &presenter.RenderStats{}
	for _, section := range schema.Sections() {
		if content.Has(section.Key) {
			stats.SectionsRendered++
		} else {
			stats.SectionsSkipped++
		}
	}

	if config.Format == "wiki" {
		converter := convert.NewWikiConverter()
		converted, convStats := converter.Convert(output)
		output = converted
		stats.ConverterWarnings = convStats.Unknown
	}

	return output, stats, nil
}

func getRenderConfigFromFlags(cmd *cobra.Command) *RenderConfig {
	config := NewRenderConfig()
	config.Output, _ = cmd.Flags().GetString("output")
	config.Format, _ = cmd.Flags().GetString("format")
	config.Verify, _ = cmd.Flags().GetBool("verify")
	config.NoOverrides, _ = cmd.Flags().GetBool("no-overrides")
	return config
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	renderCmd.Flags().String("format", "markdown", "Output format (markdown or wiki)")
	renderCmd.Flags().Bool("verify", false, "Verify section headings and order after rendering")
	renderCmd.Flags().Bool("no-overrides", false, "Ignore user template overrides")
}
