// Package workspace reads and mutates Angular CLI workspace configuration documents.
//
// The workspace file is treated as an untrusted JSON document: typed views are
// extracted for the handful of fields the schematics need, while the underlying
// ordered document keeps every field the Angular CLI put there, so a
// read-modify-write cycle never drops configuration this package does not model.
package workspace

import (
	"fmt"

	"github.com/angular-eslint/schematics/errors"
	"github.com/angular-eslint/schematics/sequencedmap"
	"github.com/angular-eslint/schematics/tree"
)

const (
	// ErrMalformed is returned when the workspace document does not have the expected shape.
	ErrMalformed = errors.Error("malformed workspace configuration")
	// ErrProjectNotFound is returned when a named project is absent from the workspace.
	ErrProjectNotFound = errors.Error("project not found in workspace")
)

// Project types the Angular CLI distinguishes between.
const (
	ProjectTypeApplication = "application"
	ProjectTypeLibrary     = "library"
)

// configPaths are the candidate workspace configuration files, in lookup order.
var configPaths = []string{"/workspace.json", "/angular.json", "/.angular.json"}

// Locate returns the path of the first workspace configuration file present in
// the tree, or the empty string when none exists.
func Locate(t tree.Tree) string {
	for _, p := range configPaths {
		if t.Exists(p) {
			return p
		}
	}
	return ""
}

// Config is a typed view over a parsed workspace document.
type Config struct {
	doc *sequencedmap.Map[string, any]
}

// FromDocument wraps a parsed workspace document. The document must be a JSON object.
func FromDocument(v any) (*Config, error) {
	doc, ok := v.(*sequencedmap.Map[string, any])
	if !ok {
		return nil, ErrMalformed.Wrapf("expected an object at the document root, got %T", v)
	}
	return &Config{doc: doc}, nil
}

// Document returns the underlying document, including any mutations made through the view.
func (c *Config) Document() any {
	return c.doc
}

func (c *Config) projects() *sequencedmap.Map[string, any] {
	projects, _ := c.doc.GetOrZero("projects").(*sequencedmap.Map[string, any])
	return projects
}

// ProjectNames returns the names of every project in the workspace, in document order.
func (c *Config) ProjectNames() []string {
	names := []string{}
	for name := range c.projects().Keys() {
		names = append(names, name)
	}
	return names
}

// Project returns the typed view of the named project.
func (c *Config) Project(name string) (*Project, error) {
	raw, ok := c.projects().Get(name)
	if !ok {
		return nil, ErrProjectNotFound.Wrapf("%q", name)
	}

	doc, ok := raw.(*sequencedmap.Map[string, any])
	if !ok {
		return nil, ErrMalformed.Wrapf("project %q is not an object", name)
	}

	str := func(key string) string {
		s, _ := doc.GetOrZero(key).(string)
		return s
	}

	return &Project{
		Name:        name,
		Root:        str("root"),
		SourceRoot:  str("sourceRoot"),
		ProjectType: str("projectType"),
		Prefix:      str("prefix"),
		doc:         doc,
	}, nil
}

// SetProjectTarget writes target under the named project's targets mapping
// (the "targets" key when the document uses it, "architect" otherwise),
// replacing any existing entry of that name. The mapping's keys are re-sorted
// lexicographically to keep generated documents diff-friendly.
func (c *Config) SetProjectTarget(project, targetName string, target LintTarget) error {
	proj, err := c.Project(project)
	if err != nil {
		return err
	}

	key := "architect"
	if proj.doc.Has("targets") {
		key = "targets"
	}

	targets, ok := proj.doc.GetOrZero(key).(*sequencedmap.Map[string, any])
	if !ok {
		targets = sequencedmap.New[string, any]()
	}

	targets.Set(targetName, target)
	proj.doc.Set(key, sequencedmap.SortByKeys(targets))

	return nil
}

// Project is the typed view of one workspace project.
type Project struct {
	Name        string
	Root        string
	SourceRoot  string
	ProjectType string
	Prefix      string

	doc *sequencedmap.Map[string, any]
}

// Target returns the project's target config under the given name, if present.
func (p *Project) Target(name string) (any, bool) {
	for _, key := range []string{"targets", "architect"} {
		if targets, ok := p.doc.GetOrZero(key).(*sequencedmap.Map[string, any]); ok {
			if t, ok := targets.Get(name); ok {
				return t, true
			}
		}
	}
	return nil, false
}

// IsRootProject reports whether this is the implicit root-level Angular CLI
// project, whose files live under src/ rather than a project directory.
func (p *Project) IsRootProject() bool {
	return p.Root == ""
}

// LintTarget is the target entry pointing a project at the ESLint builder.
type LintTarget struct {
	Builder string            `json:"builder"`
	Options LintTargetOptions `json:"options"`
}

// LintTargetOptions are the options the lint target passes to the builder.
type LintTargetOptions struct {
	LintFilePatterns []string `json:"lintFilePatterns"`
}

// DefaultBuilder is the ESLint builder the generated lint targets point at.
const DefaultBuilder = "@angular-eslint/builder:lint"

// PatternRoot returns the directory lint file patterns are rooted at: src for
// the implicit root-level project, the project's own root otherwise.
func PatternRoot(projectRoot string) string {
	if projectRoot == "" {
		return "src"
	}
	return projectRoot
}

// NewLintTarget builds a lint target covering the TypeScript and template files
// under the given pattern root.
func NewLintTarget(patternRoot string) LintTarget {
	return LintTarget{
		Builder: DefaultBuilder,
		Options: LintTargetOptions{
			LintFilePatterns: []string{
				fmt.Sprintf("%s/**/*.ts", patternRoot),
				fmt.Sprintf("%s/**/*.html", patternRoot),
			},
		},
	}
}
