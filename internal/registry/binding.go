package registry

import "github.com/FTOD/zexp/internal/model"

// Binding pairs one declared variable with the value(s) its section
// supplies. A list-valued binding means the section runs once per element;
// all list-valued bindings across the document combine via cross product.
type Binding struct {
	Variable string
	Section  string
	Hidden   bool
	Value    model.Value
}

// BindSection derives one Binding per declared variable, in declaration
// order. The value is looked up under model.OptionKey(variable); a missing
// option is a fatal configuration error. Hidden variables bind exactly like
// visible ones but are excluded from template substitution downstream.
func BindSection(sec *model.Section) ([]Binding, error) {
	bindings := make([]Binding, 0, len(sec.ProvidedVars))
	for _, decl := range sec.ProvidedVars {
		value, ok := sec.Options[model.OptionKey(decl.Name)]
		if !ok {
			return nil, &MissingBindingSourceError{Variable: decl.Name, Section: sec.Name}
		}
		bindings = append(bindings, Binding{
			Variable: decl.Name,
			Section:  sec.Name,
			Hidden:   decl.Hidden,
			Value:    value,
		})
	}
	return bindings, nil
}
