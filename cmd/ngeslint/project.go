package main

import (
	"github.com/spf13/cobra"

	"github.com/angular-eslint/schematics/eslint"
	"github.com/angular-eslint/schematics/schematic"
	"github.com/angular-eslint/schematics/tree"
)

var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Add ESLint to a single project",
	Long: `Add ESLint to a single project.

Adds a lint target pointing at the ESLint builder, creates the project's
.eslintrc.json extending the workspace level one, and removes any leftover
tslint.json. The workspace level config is created first if missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func runProject(cmd *cobra.Command, args []string) error {
	t := tree.NewDirTree(projectDir)
	name := args[0]

	rules := []schematic.Rule{}

	// Never clobber an existing workspace level config on a per-project run.
	if !t.Exists(tree.Join("", eslint.ConfigFileName)) {
		rules = append(rules, schematic.CreateRootESLintConfig(name))
	}
	rules = append(rules, schematic.AddESLintToProject(name, targetName))

	return schematic.Chain(rules...)(cmd.Context(), t)
}
