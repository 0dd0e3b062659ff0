package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angular-eslint/schematics/schematic"
	"github.com/angular-eslint/schematics/tree"
	"github.com/angular-eslint/schematics/workspace"
)

var targetName string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Add ESLint to every project in the workspace",
	Long: `Add ESLint to every project in the workspace.

This creates the workspace level .eslintrc.json, then for each project adds a
lint target pointing at the ESLint builder, creates the project's own
.eslintrc.json extending the workspace one, and removes any leftover
tslint.json.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	t := tree.NewDirTree(projectDir)

	cfg, err := loadWorkspace(t)
	if err != nil {
		return err
	}

	names := cfg.ProjectNames()

	// The root config takes its selector prefix from the implicit root level
	// project when the workspace has one.
	rootProject := ""
	for _, name := range names {
		proj, err := cfg.Project(name)
		if err != nil {
			return err
		}
		if proj.IsRootProject() {
			rootProject = name
			break
		}
	}

	rules := []schematic.Rule{schematic.CreateRootESLintConfig(rootProject)}
	for _, name := range names {
		rules = append(rules, schematic.AddESLintToProject(name, targetName))
	}

	return schematic.Chain(rules...)(cmd.Context(), t)
}

func loadWorkspace(t tree.Tree) (*workspace.Config, error) {
	path := workspace.Locate(t)
	if path == "" {
		return nil, fmt.Errorf("no workspace configuration file found in %s", projectDir)
	}

	doc, err := schematic.ReadJSON(t, path)
	if err != nil {
		return nil, err
	}

	return workspace.FromDocument(doc)
}

func init() {
	initCmd.Flags().StringVarP(&targetName, "target", "t", "eslint", "name of the lint target to create")
	projectCmd.Flags().StringVarP(&targetName, "target", "t", "eslint", "name of the lint target to create")
}
