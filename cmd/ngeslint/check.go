package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/angular-eslint/schematics/builder"
	"github.com/angular-eslint/schematics/tree"
)

var listMatches bool

var checkOptionsCmd = &cobra.Command{
	Use:   "check-options <file>",
	Short: "Validate lint target options against the builder's JSON Schema",
	Long: `Validate lint target options against the builder's JSON Schema.

The file holds the "options" object of an ESLint lint target, as found in the
workspace configuration. Comments are tolerated. With --list-matches, the lint
file patterns are also expanded against the workspace directory and every
matched file is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckOptions,
}

func runCheckOptions(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return err
	}
	data = jsonc.ToJSON(data)

	if errs := builder.ValidateOptions(data); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "%d schema violations:\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
		return fmt.Errorf("options failed schema validation")
	}

	var options builder.Options
	if err := json.Unmarshal(data, &options); err != nil {
		return err
	}

	fmt.Printf("options are valid: format=%s maxWarnings=%d\n",
		options.EffectiveFormat(), options.EffectiveMaxWarnings())

	if !listMatches {
		return nil
	}

	matched, err := builder.ExpandPatterns(tree.NewDirTree(projectDir), options.LintFilePatterns)
	if err != nil {
		return err
	}

	fmt.Printf("%d files matched:\n", len(matched))
	for _, f := range matched {
		fmt.Printf("  %s\n", f)
	}

	return nil
}

func init() {
	checkOptionsCmd.Flags().BoolVar(&listMatches, "list-matches", false, "expand lint file patterns and list matched files")
}
