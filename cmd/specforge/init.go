package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/presenter"
)

const starterAnswers = `# Tech spec answers file. Fill in each section, then run:
#   specforge render <this file>
# Optional sections are commented out; uncomment the ones that apply.

metadata:
  date: ""
  owner: ""
  version: "0.1"
  changelog:
    - version: "0.1"
      date: ""
      description: "Initial draft"

problem_statement: ""

goal:
  - ""

proposed_solution: ""

changes:
  - ""

# architecture_diagrams: ""

# schema_specification:
#   ddl:
#     - ""
#   changes:
#     - table: ""
#       change: ""
#       description: ""

# api_specification:
#   - method: GET
#     path: /v1/example
#     auth: ""
#     request: ""
#     response: ""

# ui_flow:
#   steps:
#     - ""
#   screens:
#     - ""

risk:
  - risk: ""
    likelihood: ""
    impact: ""
    mitigation: ""

# security_privacy: ""

alternatives:
  - option: ""
    pros: ""
    cons: ""
    reason: ""

implementation_plan:
  - name: ""
    tasks:
      - ""

metrics:
  - definition: ""
    kpi: ""
    notes: ""

quality_attributes:
  security: {definition: "", metric: "", notes: ""}
  capacity: {definition: "", metric: "", notes: ""}
  compatibility: {definition: "", metric: "", notes: ""}
  reliability: {definition: "", metric: "", notes: ""}
  scalability: {definition: "", metric: "", notes: ""}
  maintainability: {definition: "", metric: "", notes: ""}
  usability: {definition: "", metric: "", notes: ""}

follow_up:
  - task: ""
    description: ""
    estimate: ""
    link: ""
    date: ""
`

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a starter answers file",
	Long: `Init writes a starter answers YAML with every section stubbed out.
Defaults to spec-answers.yaml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "spec-answers.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			answer := presenter.Prompt("File "+path+" already exists, overwrite?", "y", "N")
			if answer != "y" && answer != "Y" {
				presenter.Info("Aborted")
				return nil
			}
		}

		if err := os.WriteFile(path, []byte(starterAnswers), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %q", path)
		}

		presenter.Success("Created " + path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file without asking")
}
