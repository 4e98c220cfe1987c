package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/convert"
	"github.com/specforge/specforge/pkg/presenter"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert Markdown to wiki markup",
	Long: `Convert rewrites a Markdown document into wiki markup for pasting
into a wiki system. Reads from the given file, or stdin when no file
is provided. Unrecognized constructs pass through unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input []byte
		var err error

		if len(args) == 1 {
			input, err = os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read input file %q", args[0])
			}
		} else {
			input, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "failed to read stdin")
			}
		}

		converter := convert.NewWikiConverter()
		output, stats := converter.Convert(string(input))

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			cmd.OutOrStdout().Write([]byte(output))
		} else {
			if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
				return errors.Wrapf(err, "failed to write output file %q", outputPath)
			}
			presenter.Success("Converted to " + outputPath)
		}

		if stats.Unknown > 0 {
			presenter.Stats(&presenter.RenderStats{ConverterWarnings: stats.Unknown})
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Write wiki markup to a file instead of stdout")
}
