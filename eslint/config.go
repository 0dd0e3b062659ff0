// Package eslint builds the ESLint configuration objects the schematics write
// into a workspace.
package eslint

import (
	"github.com/angular-eslint/schematics/sequencedmap"
)

// ConfigFileName is the file the generated configurations are written to,
// at the workspace root and inside each project directory.
const ConfigFileName = ".eslintrc.json"

// Rule sets the generated configurations extend.
const (
	ExtendsRecommended            = "plugin:@angular-eslint/recommended"
	ExtendsProcessInlineTemplates = "plugin:@angular-eslint/template/process-inline-templates"
	ExtendsTemplateRecommended    = "plugin:@angular-eslint/template/recommended"
)

// Config is an ESLint configuration document.
type Config struct {
	Root           bool       `json:"root,omitempty"`
	Extends        string     `json:"extends,omitempty"`
	IgnorePatterns []string   `json:"ignorePatterns,omitempty"`
	Overrides      []Override `json:"overrides"`
}

// Override scopes a block of configuration to a set of file patterns.
type Override struct {
	Files         []string                       `json:"files"`
	ParserOptions *ParserOptions                 `json:"parserOptions,omitempty"`
	Extends       []string                       `json:"extends,omitempty"`
	Rules         *sequencedmap.Map[string, any] `json:"rules"`
}

// ParserOptions configure the TypeScript parser for an override block.
type ParserOptions struct {
	Project              []string `json:"project"`
	CreateDefaultProgram bool     `json:"createDefaultProgram,omitempty"`
}
