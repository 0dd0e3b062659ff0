package tree

import (
	"path"
	"strings"
)

// Normalize cleans p into the rooted form tree paths use. The empty path stays
// empty; anything else gains a leading slash and loses redundant separators.
func Normalize(p string) string {
	if p == "" {
		return ""
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p)
}

// Join joins the given path segments and normalizes the result.
func Join(parts ...string) string {
	return Normalize(path.Join(parts...))
}
