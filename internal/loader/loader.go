package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FTOD/zexp/internal/model"
)

// Loader is the interface for a format-specific script loader.
type Loader interface {
	// Load reads one script file and translates it into the document model.
	Load(ctx context.Context, path string) (*model.Document, error)
}

// Extensions lists the file extensions with a registered loader.
func Extensions() []string {
	return []string{".hcl", ".toml", ".yaml", ".yml"}
}

// ForFormat returns the loader for an explicit format name.
func ForFormat(format string) (Loader, error) {
	switch strings.ToLower(format) {
	case "hcl":
		return NewHCL(), nil
	case "toml":
		return NewTOML(), nil
	case "yaml":
		return NewYAML(), nil
	}
	return nil, fmt.Errorf("unsupported script format %q (expected 'hcl', 'toml' or 'yaml')", format)
}

// ForPath picks a loader from the file extension.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return NewHCL(), nil
	case ".toml":
		return NewTOML(), nil
	case ".yaml", ".yml":
		return NewYAML(), nil
	}
	return nil, fmt.Errorf("no loader for script %q (supported extensions: %s)",
		path, strings.Join(Extensions(), ", "))
}

// parseProvidedVars interprets a raw PROVIDED_VARS string list.
func parseProvidedVars(section string, raw []string) ([]model.VarDecl, error) {
	decls := make([]model.VarDecl, 0, len(raw))
	for _, entry := range raw {
		decl, err := model.ParseVarDecl(entry)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", section, err)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}
