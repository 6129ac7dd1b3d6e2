package model

import (
	"fmt"
	"strings"
)

// VarDecl is one entry of a PROVIDED_VARS list. Names written with a `$`
// prefix are visible substitution variables; bare names are hidden metadata
// variables such as TASK_NAME.
type VarDecl struct {
	Name   string // variable name without the $ prefix
	Hidden bool
}

// ParseVarDecl interprets one raw PROVIDED_VARS entry.
func ParseVarDecl(raw string) (VarDecl, error) {
	if raw == "" {
		return VarDecl{}, fmt.Errorf("empty PROVIDED_VARS entry")
	}
	if strings.HasPrefix(raw, "$") {
		name := raw[1:]
		if name == "" {
			return VarDecl{}, fmt.Errorf("PROVIDED_VARS entry %q has no variable name after '$'", raw)
		}
		return VarDecl{Name: name}, nil
	}
	return VarDecl{Name: raw, Hidden: true}, nil
}

// OptionKey maps a declared variable name to the section option key its
// value is bound from: the name minus any leading `$`, looked up verbatim.
func OptionKey(varName string) string {
	return strings.TrimPrefix(varName, "$")
}

// Section is one loader section of the document: a named group of options
// contributed by one sub-tool of the experiment, plus the ordered list of
// variables the section promises to provide.
type Section struct {
	Name         string
	ProvidedVars []VarDecl
	Options      map[string]Value
}

// Document is the already-materialized experiment script: the command
// template plus the loader sections in document order. Sections are
// immutable once the engine starts a resolution pass.
type Document struct {
	Command  string
	Sections []*Section
}

// Validate checks the structural invariants that hold for every format:
// a non-empty command template, unique section names, and at least one
// provided variable per section.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Command) == "" {
		return fmt.Errorf("document has no %s template", KeyCMD)
	}
	seen := make(map[string]struct{}, len(d.Sections))
	for _, sec := range d.Sections {
		if sec.Name == "" {
			return fmt.Errorf("document contains a section without a name")
		}
		if _, dup := seen[sec.Name]; dup {
			return fmt.Errorf("section %q is declared more than once", sec.Name)
		}
		seen[sec.Name] = struct{}{}
		if len(sec.ProvidedVars) == 0 {
			return fmt.Errorf("section %q has no %s declaration", sec.Name, KeyProvidedVars)
		}
	}
	return nil
}
