package eslint

import (
	"github.com/angular-eslint/schematics/internal/sliceutil"
	"github.com/angular-eslint/schematics/sequencedmap"
	"github.com/angular-eslint/schematics/workspace"
)

// CreateRootConfig builds the workspace-level ESLint configuration. Project
// directories are ignored here and governed by their own per-project configs.
// When prefix is empty no selector naming rules are emitted.
func CreateRootConfig(prefix string) *Config {
	rules := sequencedmap.New[string, any]()
	if prefix != "" {
		addSelectorRules(rules, prefix)
	}

	return &Config{
		Root:           true,
		IgnorePatterns: []string{"projects/**/*"},
		Overrides: []Override{
			{
				Files: []string{"*.ts"},
				ParserOptions: &ParserOptions{
					Project:              []string{"tsconfig.json", "e2e/tsconfig.json"},
					CreateDefaultProgram: true,
				},
				Extends: []string{ExtendsRecommended, ExtendsProcessInlineTemplates},
				Rules:   rules,
			},
			{
				Files:   []string{"*.html"},
				Extends: []string{ExtendsTemplateRecommended},
				Rules:   sequencedmap.New[string, any](),
			},
		},
	}
}

// CreateProjectConfig builds the ESLint configuration for a project directory.
// It extends the workspace root config through a relative path and narrows the
// TypeScript project references to the project's own tsconfig files. Unlike the
// root config a selector prefix is required here.
func CreateProjectConfig(projectRoot, projectType, prefix string) *Config {
	rules := sequencedmap.New[string, any]()
	addSelectorRules(rules, prefix)

	return &Config{
		Extends:        workspace.OffsetFromRoot(projectRoot) + ConfigFileName,
		IgnorePatterns: []string{"!**/*"},
		Overrides: []Override{
			{
				Files: []string{"*.ts"},
				ParserOptions: &ParserOptions{
					Project:              ProjectReferences(projectRoot, projectType),
					CreateDefaultProgram: true,
				},
				Rules: rules,
			},
			{
				Files: []string{"*.html"},
				Rules: sequencedmap.New[string, any](),
			},
		},
	}
}

// ProjectReferences returns the TypeScript project reference files appropriate
// to the project type: applications carry an e2e tsconfig, libraries do not.
func ProjectReferences(projectRoot, projectType string) []string {
	refs := []string{"tsconfig.app.json", "tsconfig.spec.json", "e2e/tsconfig.json"}
	if projectType == workspace.ProjectTypeLibrary {
		refs = []string{"tsconfig.lib.json", "tsconfig.spec.json"}
	}

	return sliceutil.Map(refs, func(ref string) string {
		return projectRoot + "/" + ref
	})
}

type selectorStyle struct {
	Type   string `json:"type"`
	Prefix string `json:"prefix"`
	Style  string `json:"style"`
}

// addSelectorRules emits the selector naming rules for the given component
// prefix: directives are camelCase attributes, components kebab-case elements.
func addSelectorRules(rules *sequencedmap.Map[string, any], prefix string) {
	rules.Set("@angular-eslint/directive-selector", []any{
		"error",
		selectorStyle{Type: "attribute", Prefix: camelCase(prefix), Style: "camelCase"},
	})
	rules.Set("@angular-eslint/component-selector", []any{
		"error",
		selectorStyle{Type: "element", Prefix: prefix, Style: "kebab-case"},
	})
}
