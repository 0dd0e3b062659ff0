package builder

import (
	"strings"

	"github.com/angular-eslint/schematics/tree"
	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns resolves lint file patterns against the tree's recursive file
// listing, returning the workspace-relative paths of every file matched by at
// least one pattern. Each file appears at most once, in listing order.
func ExpandPatterns(t tree.Tree, patterns []string) ([]string, error) {
	matched := []string{}

	for _, f := range tree.ListFiles(t, "", true) {
		rel := strings.TrimPrefix(f, "/")

		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, rel)
				break
			}
		}
	}

	return matched, nil
}
