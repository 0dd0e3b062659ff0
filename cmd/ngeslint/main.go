package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/angular-eslint/schematics/schematic"
)

var (
	version = "dev"
	commit  = "none"
)

// getVersionInfo returns version information, prioritizing ldflags values over build info.
func getVersionInfo() (string, string) {
	if version != "dev" || commit != "none" {
		return version, commit
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}

	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	vcsCommit := commit
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" {
			vcsCommit = setting.Value
			if len(vcsCommit) > 7 {
				vcsCommit = vcsCommit[:7]
			}
		}
	}

	return moduleVersion, vcsCommit
}

var (
	projectDir string
	logLevel   string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "ngeslint",
	Short: "Wire ESLint into an Angular CLI workspace",
	Long: `Scaffolding for ESLint in Angular CLI workspaces.

This CLI edits the workspace configuration file (angular.json, workspace.json
or .angular.json) and the ESLint configuration files next to it:

- Add an ESLint lint target to every project, or to a single one
- Create the workspace level .eslintrc.json and one per project
- Remove leftover tslint.json files
- Validate lint target options against the builder's JSON Schema
- Query any JSON configuration file with a JSONPath expression

All edits preserve the key order and the fields of the original documents.`,
	Version:           version,
	PersistentPreRunE: setupLogging,
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	if quiet {
		cmd.SetContext(schematic.ContextWithLogger(cmd.Context(), zerolog.Nop()))
		return nil
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cmd.SetContext(schematic.ContextWithLogger(cmd.Context(), logger))

	return nil
}

func init() {
	currentVersion, currentCommit := getVersionInfo()

	rootCmd.Version = currentVersion
	rootCmd.SetVersionTemplate(`{{printf "%s" .Version}}` + "\nBuild: " + currentCommit + "\n")

	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "d", ".", "workspace root directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all log output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(checkOptionsCmd)
	rootCmd.AddCommand(queryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
