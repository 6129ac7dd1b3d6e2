package template

import (
	"fmt"
	"strings"

	"github.com/FTOD/zexp/internal/expand"
	"github.com/FTOD/zexp/internal/registry"
)

// UnboundPlaceholderError reports a template placeholder with no visible
// binding: the variable is hidden, or no section provides it at all.
type UnboundPlaceholderError struct {
	Name string
	// Section is the providing section when the variable exists but is
	// hidden; empty when no section provides the variable.
	Section string
}

func (e *UnboundPlaceholderError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("placeholder $%s refers to the hidden variable %q provided by section %q",
			e.Name, e.Name, e.Section)
	}
	return fmt.Sprintf("placeholder $%s is not provided by any section", e.Name)
}

// part is one template fragment: either literal text or a placeholder name.
type part struct {
	text        string
	placeholder bool
}

// Template is a parsed command template.
type Template struct {
	raw   string
	parts []part
}

// Parse splits raw into literal fragments and placeholders. A placeholder is
// `$` followed by a letter or underscore, extending over letters, digits and
// underscores. Parse never fails: unrecognized `$` characters stay literal.
func Parse(raw string) *Template {
	t := &Template{raw: raw}
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			t.parts = append(t.parts, part{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(raw); {
		if raw[i] == '$' && i+1 < len(raw) && isNameStart(raw[i+1]) {
			flush()
			end := i + 1
			for end < len(raw) && isNameByte(raw[end]) {
				end++
			}
			t.parts = append(t.parts, part{text: raw[i+1 : end], placeholder: true})
			i = end
			continue
		}
		literal.WriteByte(raw[i])
		i++
	}
	flush()
	return t
}

// Raw returns the template text as written.
func (t *Template) Raw() string { return t.raw }

// Placeholders returns the distinct placeholder names in order of first
// appearance.
func (t *Template) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, p := range t.parts {
		if !p.placeholder {
			continue
		}
		if _, dup := seen[p.text]; dup {
			continue
		}
		seen[p.text] = struct{}{}
		names = append(names, p.text)
	}
	return names
}

// Validate checks that every placeholder traces to a visible provider in the
// registry, without substituting anything. It lets a resolution pass fail
// fast before any command is emitted.
func (t *Template) Validate(reg *registry.Registry) error {
	for _, name := range t.Placeholders() {
		if err := resolveVisible(name, reg); err != nil {
			return err
		}
	}
	return nil
}

// Substitute renders the template against one concrete run. Every
// placeholder must resolve via reg to a visible variable bound in the run;
// literal fragments copy through verbatim. The result is a flat command
// string with no quoting applied.
func (t *Template) Substitute(run expand.Run, reg *registry.Registry) (string, error) {
	var out strings.Builder
	for _, p := range t.parts {
		if !p.placeholder {
			out.WriteString(p.text)
			continue
		}
		if err := resolveVisible(p.text, reg); err != nil {
			return "", err
		}
		value, bound := run.Values[p.text]
		if !bound {
			return "", &UnboundPlaceholderError{Name: p.text}
		}
		out.WriteString(value)
	}
	return out.String(), nil
}

func resolveVisible(name string, reg *registry.Registry) error {
	section, hidden, ok := reg.Lookup(name)
	if !ok {
		return &UnboundPlaceholderError{Name: name}
	}
	if hidden {
		return &UnboundPlaceholderError{Name: name, Section: section}
	}
	return nil
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}
