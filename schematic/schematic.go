// Package schematic provides the rules that wire ESLint into an Angular CLI
// workspace: lint targets in the workspace configuration, a root level ESLint
// config, per project configs and TSLint cleanup.
//
// A rule is one scaffolding step. Rules run synchronously against the tree the
// runner passes in; a rule either completes, leaving its changes in the tree,
// or fails with an error that aborts the run.
package schematic

import (
	"context"

	"github.com/angular-eslint/schematics/tree"
	"github.com/rs/zerolog"
)

// Rule is a single scaffolding step applied to a virtual file tree.
type Rule func(ctx context.Context, t tree.Tree) error

// Chain runs the given rules in order against the same tree, stopping at the
// first failure.
func Chain(rules ...Rule) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		for _, rule := range rules {
			if err := rule(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}
}

type contextKey string

func (c contextKey) String() string {
	return "schematic-context-key-" + string(c)
}

const loggerContextKey = contextKey("logger")

// ContextWithLogger returns a context carrying the logger rules report through.
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger carried by ctx, or a no-op logger when
// none was attached.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(zerolog.Logger)
	if !ok {
		return zerolog.Nop()
	}
	return logger
}
