// Package model defines the format-agnostic experiment document: the command
// template string, the loader sections with their provided-variable
// declarations and option values, and the closed set of reserved keys.
//
// The document is the single input of the resolution engine. Concrete
// loaders for HCL, TOML and YAML scripts live in internal/loader.
package model
