package schematic

import (
	"context"

	"github.com/angular-eslint/schematics/errors"
	"github.com/angular-eslint/schematics/eslint"
	"github.com/angular-eslint/schematics/json"
	"github.com/angular-eslint/schematics/tree"
	"github.com/angular-eslint/schematics/workspace"
)

const tslintConfigFileName = "tslint.json"

// readWorkspace locates and parses the workspace configuration file.
func readWorkspace(t tree.Tree) (*workspace.Config, string, error) {
	path := workspace.Locate(t)
	if path == "" {
		return nil, "", ErrNotFound.Wrapf("no workspace configuration file found")
	}

	doc, err := ReadJSON(t, path)
	if err != nil {
		return nil, "", err
	}

	cfg, err := workspace.FromDocument(doc)
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// AddLintTargetToProject returns a rule that points the named target of the
// given project at the ESLint builder, overwriting any existing entry of that
// name. Lint file patterns are rooted at src for the implicit root level
// project and at the project's own root otherwise.
func AddLintTargetToProject(project, targetName string) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		path := workspace.Locate(t)
		if path == "" {
			return ErrNotFound.Wrapf("no workspace configuration file found")
		}

		return UpdateJSON(path, func(ctx context.Context, doc any) (any, error) {
			cfg, err := workspace.FromDocument(doc)
			if err != nil {
				return nil, err
			}

			proj, err := cfg.Project(project)
			if err != nil {
				return nil, err
			}

			target := workspace.NewLintTarget(workspace.PatternRoot(proj.Root))
			if err := cfg.SetProjectTarget(project, targetName, target); err != nil {
				return nil, err
			}

			logger := LoggerFromContext(ctx)
			logger.Info().
				Str("project", project).
				Str("target", targetName).
				Msg("added lint target")

			return cfg.Document(), nil
		})(ctx, t)
	}
}

// CreateRootESLintConfig returns a rule that creates or updates the workspace
// level .eslintrc.json, taking the selector prefix from the named project when
// a project of that name exists.
func CreateRootESLintConfig(project string) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		prefix := ""

		cfg, _, err := readWorkspace(t)
		switch {
		case err == nil:
			proj, perr := cfg.Project(project)
			if perr == nil {
				prefix = proj.Prefix
			} else if !errors.Is(perr, workspace.ErrProjectNotFound) {
				return perr
			}
		case !errors.Is(err, ErrNotFound):
			return err
		}

		return writeESLintConfig(ctx, t, tree.Join("", eslint.ConfigFileName), eslint.CreateRootConfig(prefix))
	}
}

// CreateESLintConfigForProject returns a rule that creates or updates the
// project's .eslintrc.json. The implicit root level project is skipped: its
// files are governed by the workspace level config.
func CreateESLintConfigForProject(project string) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		cfg, _, err := readWorkspace(t)
		if err != nil {
			return err
		}

		proj, err := cfg.Project(project)
		if err != nil {
			return err
		}

		if proj.IsRootProject() {
			return nil
		}

		config := eslint.CreateProjectConfig(proj.Root, proj.ProjectType, proj.Prefix)

		return writeESLintConfig(ctx, t, tree.Join(proj.Root, eslint.ConfigFileName), config)
	}
}

// RemoveTSLintConfigForProject returns a rule that deletes a project's
// pre-existing tslint.json, a no-op when none exists.
func RemoveTSLintConfigForProject(project string) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		cfg, _, err := readWorkspace(t)
		if err != nil {
			return err
		}

		proj, err := cfg.Project(project)
		if err != nil {
			return err
		}

		path := tree.Join(proj.Root, tslintConfigFileName)
		if !t.Exists(path) {
			return nil
		}

		logger := LoggerFromContext(ctx)
		logger.Info().
			Str("project", project).
			Str("path", path).
			Msg("removed tslint config")

		return t.Delete(path)
	}
}

// AddESLintToProject returns the full per-project chain: lint target, project
// config and TSLint cleanup.
func AddESLintToProject(project, targetName string) Rule {
	return Chain(
		AddLintTargetToProject(project, targetName),
		CreateESLintConfigForProject(project),
		RemoveTSLintConfigForProject(project),
	)
}

func writeESLintConfig(ctx context.Context, t tree.Tree, path string, config *eslint.Config) error {
	data, err := json.Serialize(config)
	if err != nil {
		return err
	}

	if err := t.Write(path, data); err != nil {
		return err
	}

	logger := LoggerFromContext(ctx)
	logger.Info().
		Str("path", path).
		Msg("wrote eslint config")

	return nil
}
