package builder

import (
	"bytes"
	"fmt"
	"strings"

	_ "embed"

	"github.com/angular-eslint/schematics/errors"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidOptions is returned for every violation of the target options schema.
const ErrInvalidOptions = errors.Error("invalid eslint target options")

//go:embed schema.json
var schemaJSON string

var (
	optionsValidator *jsValidator.Schema
	defaultPrinter   = message.NewPrinter(language.English)
)

func init() {
	schema, err := jsValidator.UnmarshalJSON(bytes.NewReader([]byte(schemaJSON)))
	if err != nil {
		panic(err)
	}

	c := jsValidator.NewCompiler()
	if err := c.AddResource("builder/schema.json", schema); err != nil {
		panic(err)
	}

	optionsValidator, err = c.Compile("builder/schema.json")
	if err != nil {
		panic(err)
	}
}

// ValidateOptions checks the given JSON document against the target options
// schema, returning one error per root cause.
func ValidateOptions(data []byte) []error {
	v, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []error{ErrInvalidOptions.Wrap(err)}
	}

	err = optionsValidator.Validate(v)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if errors.As(err, &validationErr) {
		return rootCauses(validationErr)
	}

	return []error{ErrInvalidOptions.Wrap(err)}
}

func rootCauses(err *jsValidator.ValidationError) []error {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		return []error{ErrInvalidOptions.Wrap(
			fmt.Errorf("at %s: %s", location, err.ErrorKind.LocalizedString(defaultPrinter)),
		)}
	}

	errs := []error{}
	for _, cause := range err.Causes {
		errs = append(errs, rootCauses(cause)...)
	}

	return errs
}
