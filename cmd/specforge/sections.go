package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/schema"
)

// SectionsOutputFormat selects table or JSON output for the sections listing
type SectionsOutputFormat int

const (
	SectionsTableFormat SectionsOutputFormat = iota
	SectionsJSONFormat
)

// SectionOutput is one row of the sections listing
type SectionOutput struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

// SectionsListOutput holds the full listing in document order
type SectionsListOutput struct {
	Sections []SectionOutput
	Format   SectionsOutputFormat
}

// NewSectionsListOutput builds the listing from the schema
func NewSectionsListOutput(format SectionsOutputFormat) *SectionsListOutput {
	sections := schema.Sections()
	output := &SectionsListOutput{
		Sections: make([]SectionOutput, 0, len(sections)),
		Format:   format,
	}

	for _, s := range sections {
		output.Sections = append(output.Sections, SectionOutput{
			Key:      s.Key,
			Title:    s.Title,
			Kind:     string(s.Kind),
			Required: s.Required,
		})
	}

	return output
}

// Render writes the listing to w in the selected format
func (o *SectionsListOutput) Render(w io.Writer) error {
	if o.Format == SectionsJSONFormat {
		return o.renderJSON(w)
	}
	return o.renderTable(w)
}

func (o *SectionsListOutput) renderJSON(w io.Writer) error {
	type jsonOutput struct {
		Sections []SectionOutput `json:"sections"`
	}

	jsonData, err := json.MarshalIndent(jsonOutput{Sections: o.Sections}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error generating JSON output")
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func (o *SectionsListOutput) renderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Key\tTitle\tKind\tRequired")
	fmt.Fprintln(tw, "---\t-----\t----\t--------")

	for _, s := range o.Sections {
		required := "no"
		if s.Required {
			required = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Key, s.Title, s.Kind, required)
	}

	return tw.Flush()
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the document section schema",
	Long: `Sections lists the fixed section schema of a tech spec document in
document order, with each section's key, title, content kind, and
whether it is mandatory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := SectionsTableFormat
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			format = SectionsJSONFormat
		}

		return NewSectionsListOutput(format).Render(cmd.OutOrStdout())
	},
}

func init() {
	sectionsCmd.Flags().Bool("json", false, "Output in JSON format")
}
