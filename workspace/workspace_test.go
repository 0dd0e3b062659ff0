package workspace_test

import (
	"testing"

	"github.com/angular-eslint/schematics/errors"
	"github.com/angular-eslint/schematics/json"
	"github.com/angular-eslint/schematics/tree"
	"github.com/angular-eslint/schematics/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T, data string) *workspace.Config {
	t.Helper()

	doc, err := json.Parse([]byte(data))
	require.NoError(t, err)

	cfg, err := workspace.FromDocument(doc)
	require.NoError(t, err)

	return cfg
}

func TestLocate_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{
			name:     "workspace.json wins over angular.json",
			files:    []string{"/workspace.json", "/angular.json"},
			expected: "/workspace.json",
		},
		{
			name:     "angular.json wins over .angular.json",
			files:    []string{"/angular.json", "/.angular.json"},
			expected: "/angular.json",
		},
		{
			name:     "hidden config as last resort",
			files:    []string{"/.angular.json"},
			expected: "/.angular.json",
		},
		{
			name:     "no candidate present",
			files:    []string{"/package.json"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mt := tree.NewMemTree()
			for _, f := range tt.files {
				require.NoError(t, mt.Write(f, []byte(`{}`)))
			}
			assert.Equal(t, tt.expected, workspace.Locate(mt))
		})
	}
}

func TestConfig_Project_Success(t *testing.T) {
	t.Parallel()
	cfg := parseConfig(t, `{
  "version": 1,
  "projects": {
    "app": {
      "root": "",
      "sourceRoot": "src",
      "projectType": "application",
      "prefix": "app"
    },
    "ui-kit": {
      "root": "projects/ui-kit",
      "projectType": "library",
      "prefix": "ui"
    }
  }
}`)

	assert.Equal(t, []string{"app", "ui-kit"}, cfg.ProjectNames())

	app, err := cfg.Project("app")
	require.NoError(t, err)
	assert.Equal(t, "", app.Root)
	assert.Equal(t, "src", app.SourceRoot)
	assert.Equal(t, workspace.ProjectTypeApplication, app.ProjectType)
	assert.Equal(t, "app", app.Prefix)
	assert.True(t, app.IsRootProject())

	lib, err := cfg.Project("ui-kit")
	require.NoError(t, err)
	assert.Equal(t, "projects/ui-kit", lib.Root)
	assert.Equal(t, workspace.ProjectTypeLibrary, lib.ProjectType)
	assert.False(t, lib.IsRootProject())
}

func TestConfig_Project_NotFound_Error(t *testing.T) {
	t.Parallel()
	cfg := parseConfig(t, `{"projects": {}}`)

	_, err := cfg.Project("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, workspace.ErrProjectNotFound))
	assert.Contains(t, err.Error(), "ghost")
}

func TestFromDocument_Malformed_Error(t *testing.T) {
	t.Parallel()
	_, err := workspace.FromDocument([]any{"not", "an", "object"})
	assert.True(t, errors.Is(err, workspace.ErrMalformed))
}

func TestConfig_SetProjectTarget_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		document     string
		targetName   string
		expectedJSON string
	}{
		{
			name: "adds to existing architect mapping and sorts keys",
			document: `{
  "projects": {
    "app": {
      "root": "",
      "architect": {
        "test": {"builder": "@angular-devkit/build-angular:karma"},
        "build": {"builder": "@angular-devkit/build-angular:browser"}
      }
    }
  }
}`,
			targetName: "eslint",
			expectedJSON: `{
  "projects": {
    "app": {
      "root": "",
      "architect": {
        "build": {
          "builder": "@angular-devkit/build-angular:browser"
        },
        "eslint": {
          "builder": "@angular-eslint/builder:lint",
          "options": {
            "lintFilePatterns": [
              "src/**/*.ts",
              "src/**/*.html"
            ]
          }
        },
        "test": {
          "builder": "@angular-devkit/build-angular:karma"
        }
      }
    }
  }
}
`,
		},
		{
			name: "prefers targets when the document uses it",
			document: `{
  "projects": {
    "lib": {
      "root": "libs/lib",
      "targets": {}
    }
  }
}`,
			targetName: "lint",
			expectedJSON: `{
  "projects": {
    "lib": {
      "root": "libs/lib",
      "targets": {
        "lint": {
          "builder": "@angular-eslint/builder:lint",
          "options": {
            "lintFilePatterns": [
              "libs/lib/**/*.ts",
              "libs/lib/**/*.html"
            ]
          }
        }
      }
    }
  }
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := parseConfig(t, tt.document)

			name := cfg.ProjectNames()[0]
			proj, err := cfg.Project(name)
			require.NoError(t, err)

			target := workspace.NewLintTarget(workspace.PatternRoot(proj.Root))
			require.NoError(t, cfg.SetProjectTarget(name, tt.targetName, target))

			data, err := json.Serialize(cfg.Document())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedJSON, string(data))
		})
	}
}

func TestConfig_SetProjectTarget_OverwritesExisting_Success(t *testing.T) {
	t.Parallel()
	cfg := parseConfig(t, `{
  "projects": {
    "app": {
      "root": "",
      "architect": {
        "lint": {"builder": "@angular-devkit/build-angular:tslint"}
      }
    }
  }
}`)

	require.NoError(t, cfg.SetProjectTarget("app", "lint", workspace.NewLintTarget("src")))

	proj, err := cfg.Project("app")
	require.NoError(t, err)

	raw, ok := proj.Target("lint")
	require.True(t, ok)
	target, ok := raw.(workspace.LintTarget)
	require.True(t, ok)
	assert.Equal(t, workspace.DefaultBuilder, target.Builder)
}

func TestPatternRoot_Success(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "src", workspace.PatternRoot(""))
	assert.Equal(t, "libs/foo", workspace.PatternRoot("libs/foo"))
}

func TestNewLintTarget_Success(t *testing.T) {
	t.Parallel()
	target := workspace.NewLintTarget("libs/foo")

	assert.Equal(t, workspace.DefaultBuilder, target.Builder)
	assert.Equal(t, []string{"libs/foo/**/*.ts", "libs/foo/**/*.html"}, target.Options.LintFilePatterns)
}

func TestOffsetFromRoot_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		root     string
		expected string
	}{
		{
			name:     "empty root",
			root:     "",
			expected: "../",
		},
		{
			name:     "two segment root",
			root:     "a/b",
			expected: "../../../",
		},
		{
			name:     "single segment root",
			root:     "projects",
			expected: "../../",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, workspace.OffsetFromRoot(tt.root))
		})
	}
}
