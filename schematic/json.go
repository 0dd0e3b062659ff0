package schematic

import (
	"context"

	"github.com/angular-eslint/schematics/errors"
	"github.com/angular-eslint/schematics/json"
	"github.com/angular-eslint/schematics/sequencedmap"
	"github.com/angular-eslint/schematics/tree"
)

const (
	// ErrNotFound is returned when a file or project a rule needs does not exist in the tree.
	ErrNotFound = errors.Error("not found")
	// ErrParse is returned when a JSON document in the tree cannot be parsed after comment stripping.
	ErrParse = errors.Error("failed to parse json")
)

// ReadJSON reads and parses the JSON document at path, tolerating // and /* */
// comments. A missing file yields ErrNotFound, unparsable content ErrParse
// carrying the offending path and the parser's message.
func ReadJSON(t tree.Tree, path string) (any, error) {
	if !t.Exists(path) {
		return nil, ErrNotFound.Wrapf("%s does not exist in the tree", path)
	}

	data, err := t.Read(path)
	if err != nil {
		return nil, ErrNotFound.Wrap(err)
	}

	v, err := json.Parse(data)
	if err != nil {
		return nil, ErrParse.Wrapf("%s: %v", path, err)
	}

	return v, nil
}

// UpdateJSON returns a rule that rewrites the JSON document at path with the
// result of fn. A missing document is created by applying fn to an empty
// object; an existing one is parsed and overwritten. Output is always two
// space indented with a trailing newline.
func UpdateJSON(path string, fn func(ctx context.Context, doc any) (any, error)) Rule {
	return func(ctx context.Context, t tree.Tree) error {
		doc := any(sequencedmap.New[string, any]())

		if t.Exists(path) {
			parsed, err := ReadJSON(t, path)
			if err != nil {
				return err
			}
			doc = parsed
		}

		updated, err := fn(ctx, doc)
		if err != nil {
			return err
		}

		data, err := json.Serialize(updated)
		if err != nil {
			return err
		}

		return t.Write(path, data)
	}
}
