package registry

import (
	"fmt"

	"github.com/FTOD/zexp/internal/model"
)

// DuplicateProviderError reports a variable name declared by more than one
// section. Detection is symmetric: the order the sections registered in does
// not matter.
type DuplicateProviderError struct {
	Variable string
	First    string
	Second   string
}

func (e *DuplicateProviderError) Error() string {
	return fmt.Sprintf("variable %q is provided by both section %q and section %q",
		e.Variable, e.First, e.Second)
}

// UnknownVariableError reports a lookup for a variable no section provides.
type UnknownVariableError struct {
	Variable string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("variable %q is not provided by any section", e.Variable)
}

// MissingBindingSourceError reports a declared variable whose section has no
// option to bind its value from.
type MissingBindingSourceError struct {
	Variable string
	Section  string
}

func (e *MissingBindingSourceError) Error() string {
	return fmt.Sprintf("section %q declares variable %q but has no option %q to bind it from",
		e.Section, e.Variable, model.OptionKey(e.Variable))
}
