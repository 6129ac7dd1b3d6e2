package loader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/model"
)

// YAML loads experiment scripts written in YAML: a root CMD key plus one
// mapping per loader section.
type YAML struct{}

// NewYAML creates the YAML script loader.
func NewYAML() *YAML {
	return &YAML{}
}

// Load parses one YAML script into the document model. The script is walked
// through yaml.Node so section order matches the document, which plain map
// decoding would lose.
func (l *YAML) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML script %s: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML script %s: %w", path, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("YAML script %s is empty", path)
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML script %s must be a mapping at the top level", path)
	}

	doc := &model.Document{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]

		if rk, reserved := model.LookupReserved(keyNode.Value); reserved && rk == model.KeyCMD {
			if valueNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s must be a string", model.KeyCMD)
			}
			doc.Command = valueNode.Value
			continue
		}

		section, err := l.decodeSection(keyNode.Value, valueNode)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	logger.Debug("YAML script loaded", "path", path, "sections", len(doc.Sections))
	return doc, nil
}

func (l *YAML) decodeSection(name string, node *yaml.Node) (*model.Section, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("section %q must be a mapping", name)
	}

	section := &model.Section{Name: name, Options: make(map[string]model.Value)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if rk, reserved := model.LookupReserved(keyNode.Value); reserved && rk == model.KeyProvidedVars {
			var rawVars []string
			if err := valueNode.Decode(&rawVars); err != nil {
				return nil, fmt.Errorf("section %q: %s must be a list of strings: %w",
					name, model.KeyProvidedVars, err)
			}
			decls, err := parseProvidedVars(name, rawVars)
			if err != nil {
				return nil, err
			}
			section.ProvidedVars = decls
			continue
		}

		value, err := nodeValue(valueNode)
		if err != nil {
			return nil, fmt.Errorf("section %q, option %q: %w", name, keyNode.Value, err)
		}
		section.Options[keyNode.Value] = value
	}

	if section.ProvidedVars == nil {
		return nil, fmt.Errorf("section %q has no %s declaration", name, model.KeyProvidedVars)
	}
	return section, nil
}

// nodeValue converts a YAML value node into a scalar or list value. Scalars
// keep their source spelling, so numbers and booleans stringify naturally.
func nodeValue(node *yaml.Node) (model.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return model.ScalarValue(node.Value), nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, elem := range node.Content {
			if elem.Kind != yaml.ScalarNode {
				return model.Value{}, fmt.Errorf("list elements must be scalars")
			}
			items = append(items, elem.Value)
		}
		return model.ListValue(items...), nil
	}
	return model.Value{}, fmt.Errorf("option values must be scalars or lists of scalars")
}
