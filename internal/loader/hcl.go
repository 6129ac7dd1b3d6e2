package loader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/model"
)

// HCL loads experiment scripts written in HCL:
//
//	CMD = "$otawa_app $tacle_exec $tacle_entry_point $otawa_opts"
//
//	loader "OTAWA" {
//	  PROVIDED_VARS = ["$otawa_app", "$otawa_opts"]
//	  otawa_app  = "/opt/otawa/bin/owcet"
//	  otawa_opts = ["--log INFO", "--log DEBUG"]
//	}
type HCL struct{}

// NewHCL creates the HCL script loader.
func NewHCL() *HCL {
	return &HCL{}
}

var hclRootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: model.KeyCMD.String(), Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "loader", LabelNames: []string{"name"}},
	},
}

// Load parses one HCL script into the document model. Loader blocks become
// sections in document order.
func (l *HCL) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL script %s: %w", path, diags)
	}

	content, diags := file.Body.Content(hclRootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL script %s: %w", path, diags)
	}

	command, err := attrString(content.Attributes[model.KeyCMD.String()])
	if err != nil {
		return nil, err
	}

	doc := &model.Document{Command: command}
	for _, block := range content.Blocks {
		section, err := l.decodeSection(block)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	logger.Debug("HCL script loaded", "path", path, "sections", len(doc.Sections))
	return doc, nil
}

func (l *HCL) decodeSection(block *hcl.Block) (*model.Section, error) {
	name := block.Labels[0]
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("section %q: %w", name, diags)
	}

	providedAttr, ok := attrs[model.KeyProvidedVars.String()]
	if !ok {
		return nil, fmt.Errorf("section %q has no %s declaration", name, model.KeyProvidedVars)
	}

	rawVars, err := attrStringList(providedAttr)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", name, err)
	}
	providedVars, err := parseProvidedVars(name, rawVars)
	if err != nil {
		return nil, err
	}

	options := make(map[string]model.Value, len(attrs)-1)
	for key, attr := range attrs {
		if rk, reserved := model.LookupReserved(key); reserved && rk == model.KeyProvidedVars {
			continue
		}
		value, err := attrValue(attr)
		if err != nil {
			return nil, fmt.Errorf("section %q, option %q: %w", name, key, err)
		}
		options[key] = value
	}

	return &model.Section{Name: name, ProvidedVars: providedVars, Options: options}, nil
}

// attrValue converts any attribute into a scalar or list value. Numbers and
// booleans are stringified.
func attrValue(attr *hcl.Attribute) (model.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return model.Value{}, diags
	}
	if val.Type().IsTupleType() || val.Type().IsListType() || val.Type().IsSetType() {
		var items []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, err := ctyString(elem)
			if err != nil {
				return model.Value{}, err
			}
			items = append(items, s)
		}
		return model.ListValue(items...), nil
	}
	s, err := ctyString(val)
	if err != nil {
		return model.Value{}, err
	}
	return model.ScalarValue(s), nil
}

func attrString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	return ctyString(val)
}

func attrStringList(attr *hcl.Attribute) ([]string, error) {
	value, err := attrValue(attr)
	if err != nil {
		return nil, err
	}
	if !value.IsList() {
		return nil, fmt.Errorf("attribute %q must be a list of strings", attr.Name)
	}
	return value.List(), nil
}

func ctyString(val cty.Value) (string, error) {
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot represent %s value as a string: %w", val.Type().FriendlyName(), err)
	}
	if converted.IsNull() {
		return "", fmt.Errorf("null value cannot be bound")
	}
	return converted.AsString(), nil
}
