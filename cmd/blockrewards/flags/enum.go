package flags

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// EnumValue is a cli.Generic holding one of a fixed set of lower case values.
type EnumValue struct {
	Enum     []string
	selected string
}

// Set accepts value, ignoring case, only when it is one of Enum.
func (e *EnumValue) Set(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, allowed := range e.Enum {
		if allowed == v {
			e.selected = v
			return nil
		}
	}
	return errors.Errorf("%q is not one of %s", value, strings.Join(e.Enum, ", "))
}

// String returns the selected value.
func (e *EnumValue) String() string {
	return e.selected
}

// NewEnumFlag returns a generic flag restricted to allowed values. The first allowed value is the default.
func NewEnumFlag(name, usage string, allowed ...string) *cli.GenericFlag {
	if len(allowed) == 0 {
		panic("enum flag " + name + " needs at least one value")
	}
	return &cli.GenericFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s Supports: %s. (default: %q)", usage, strings.Join(allowed, ", "), allowed[0]),
		Value: &EnumValue{Enum: allowed, selected: allowed[0]},
	}
}
