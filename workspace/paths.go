package workspace

import (
	"strings"

	"github.com/angular-eslint/schematics/tree"
)

// OffsetFromRoot returns the ../ sequence that reaches the workspace root from
// the given project directory: one ../ per segment of the normalized path, the
// empty leading segment included, so "" yields "../" and "a/b" yields "../../../".
func OffsetFromRoot(root string) string {
	parts := strings.Split(tree.Normalize(root), "/")

	var sb strings.Builder
	for range parts {
		sb.WriteString("../")
	}

	return sb.String()
}
