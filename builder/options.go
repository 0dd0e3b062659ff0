// Package builder describes the options of an ESLint build target and
// validates them against the target's published JSON Schema.
package builder

import (
	"github.com/angular-eslint/schematics/pointer"
)

// FormatStylish is the output formatter applied when none is configured.
const FormatStylish = "stylish"

// Options are the options an ESLint build target accepts, mirroring schema.json.
type Options struct {
	ESLintConfig     string   `json:"eslintConfig,omitempty"`
	Fix              bool     `json:"fix,omitempty"`
	Cache            bool     `json:"cache,omitempty"`
	CacheLocation    string   `json:"cacheLocation,omitempty"`
	Force            bool     `json:"force,omitempty"`
	Quiet            bool     `json:"quiet,omitempty"`
	MaxWarnings      *int     `json:"maxWarnings,omitempty"`
	Silent           bool     `json:"silent,omitempty"`
	LintFilePatterns []string `json:"lintFilePatterns"`
	Format           string   `json:"format,omitempty"`
	IgnorePath       string   `json:"ignorePath,omitempty"`
}

// DefaultOptions returns options for the given lint file patterns with the
// external builder's defaults applied: stylish output and no warning limit.
func DefaultOptions(patterns ...string) Options {
	return Options{
		LintFilePatterns: patterns,
		Format:           FormatStylish,
		MaxWarnings:      pointer.From(-1),
	}
}

// EffectiveFormat returns the configured output formatter, falling back to stylish.
func (o Options) EffectiveFormat() string {
	if o.Format == "" {
		return FormatStylish
	}
	return o.Format
}

// EffectiveMaxWarnings returns the configured warning limit, -1 (no limit) when unset.
func (o Options) EffectiveMaxWarnings() int {
	if o.MaxWarnings == nil {
		return -1
	}
	return *o.MaxWarnings
}
