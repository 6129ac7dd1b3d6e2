package registry

import "github.com/FTOD/zexp/internal/model"

// provider records the section owning a variable and its visibility.
type provider struct {
	section string
	hidden  bool
}

// Registry is the variable-provider table for one resolution pass. It is
// built once by calling Register per section in document order, and is
// read-only afterwards.
type Registry struct {
	providers map[string]provider
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{providers: make(map[string]provider)}
}

// Register records the section as the provider of every variable it
// declares. A variable already owned by another section is a fatal
// configuration error.
func (r *Registry) Register(sectionName string, providedVars []model.VarDecl) error {
	for _, decl := range providedVars {
		if existing, taken := r.providers[decl.Name]; taken {
			return &DuplicateProviderError{
				Variable: decl.Name,
				First:    existing.section,
				Second:   sectionName,
			}
		}
		r.providers[decl.Name] = provider{section: sectionName, hidden: decl.Hidden}
	}
	return nil
}

// ResolveProvider returns the name of the section providing the variable.
func (r *Registry) ResolveProvider(variableName string) (string, error) {
	p, ok := r.providers[variableName]
	if !ok {
		return "", &UnknownVariableError{Variable: variableName}
	}
	return p.section, nil
}

// Lookup returns the providing section and visibility of a variable. ok is
// false when no section provides it.
func (r *Registry) Lookup(variableName string) (section string, hidden bool, ok bool) {
	p, found := r.providers[variableName]
	if !found {
		return "", false, false
	}
	return p.section, p.hidden, true
}
