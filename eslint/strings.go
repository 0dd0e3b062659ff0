package eslint

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// camelCase converts a kebab-case or snake_case prefix to camelCase, the form
// attribute selectors use.
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return s
	}

	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		sb.WriteString(titleCaser.String(part))
	}

	return sb.String()
}
