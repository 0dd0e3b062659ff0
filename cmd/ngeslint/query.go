package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <expression>",
	Short: "Query a JSON configuration file with a JSONPath expression",
	Long: `Query a JSON configuration file with a JSONPath expression (RFC 9535).

Useful for inspecting workspace and ESLint configuration files, e.g.:

  ngeslint query angular.json '$.projects.*.architect.eslint.options.lintFilePatterns'

Comments in the file are tolerated. Each result is printed as a YAML document.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func runQuery(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return err
	}

	path, err := jsonpath.NewPath(args[1])
	if err != nil {
		return fmt.Errorf("invalid jsonpath expression: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	results := path.Query(&root)
	for _, node := range results {
		out, err := yaml.Marshal(node)
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", out)
	}

	fmt.Fprintf(os.Stderr, "%d results\n", len(results))

	return nil
}
