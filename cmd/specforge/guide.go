package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide [section]",
	Short: "Show authoring guidance for a document section",
	Long: `Guide prints the authoring guidance for a section of the tech spec
document. Without an argument it lists all available guides. Guides in
./.specforge/guides or ~/.specforge/guides shadow the built-in ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		discovery, err := guide.NewDiscovery()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return listGuides(cmd, discovery)
		}

		g, err := discovery.GetGuide(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), g.Content)
		return nil
	},
}

func listGuides(cmd *cobra.Command, discovery *guide.Discovery) error {
	guides, err := discovery.DiscoverGuides()
	if err != nil {
		return err
	}

	names, err := discovery.ListGuideNames()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Section\tDescription")
	fmt.Fprintln(tw, "-------\t-----------")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, guides[name].Description)
	}
	return tw.Flush()
}
