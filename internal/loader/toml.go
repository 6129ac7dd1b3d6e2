package loader

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/model"
)

// TOML loads experiment scripts written in TOML: a root CMD key plus one
// table per loader section. This is the script surface the original
// experiment tooling used.
type TOML struct{}

// NewTOML creates the TOML script loader.
func NewTOML() *TOML {
	return &TOML{}
}

// Load parses one TOML script into the document model. Section order follows
// the key order of the file, which toml.MetaData preserves.
func (l *TOML) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	var raw map[string]any
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML script %s: %w", path, err)
	}

	doc := &model.Document{}
	for _, key := range meta.Keys() {
		if len(key) != 1 {
			continue // nested keys are handled with their section
		}
		name := key[0]
		if rk, reserved := model.LookupReserved(name); reserved && rk == model.KeyCMD {
			command, ok := raw[name].(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a string", model.KeyCMD)
			}
			doc.Command = command
			continue
		}

		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("top-level key %q must be a section table", name)
		}
		section, err := l.decodeSection(name, table)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	logger.Debug("TOML script loaded", "path", path, "sections", len(doc.Sections))
	return doc, nil
}

func (l *TOML) decodeSection(name string, table map[string]any) (*model.Section, error) {
	rawProvided, ok := table[model.KeyProvidedVars.String()]
	if !ok {
		return nil, fmt.Errorf("section %q has no %s declaration", name, model.KeyProvidedVars)
	}
	rawVars, err := anyStringList(rawProvided)
	if err != nil {
		return nil, fmt.Errorf("section %q: %s %w", name, model.KeyProvidedVars, err)
	}
	providedVars, err := parseProvidedVars(name, rawVars)
	if err != nil {
		return nil, err
	}

	options := make(map[string]model.Value, len(table)-1)
	for key, rawValue := range table {
		if rk, reserved := model.LookupReserved(key); reserved && rk == model.KeyProvidedVars {
			continue
		}
		value, err := anyValue(rawValue)
		if err != nil {
			return nil, fmt.Errorf("section %q, option %q: %w", name, key, err)
		}
		options[key] = value
	}

	return &model.Section{Name: name, ProvidedVars: providedVars, Options: options}, nil
}

// anyValue converts a decoded TOML value into a scalar or list value.
func anyValue(raw any) (model.Value, error) {
	if items, isList := raw.([]any); isList {
		scalars := make([]string, 0, len(items))
		for _, item := range items {
			s, err := anyScalar(item)
			if err != nil {
				return model.Value{}, err
			}
			scalars = append(scalars, s)
		}
		return model.ListValue(scalars...), nil
	}
	s, err := anyScalar(raw)
	if err != nil {
		return model.Value{}, err
	}
	return model.ScalarValue(s), nil
}

func anyScalar(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return fmt.Sprintf("%t", v), nil
	case int64:
		return fmt.Sprintf("%d", v), nil
	case float64:
		return fmt.Sprintf("%g", v), nil
	}
	return "", fmt.Errorf("value of type %T cannot be bound as a scalar", raw)
}

func anyStringList(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list of strings")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("must be a list of strings")
		}
		out = append(out, s)
	}
	return out, nil
}
