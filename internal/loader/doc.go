// Package loader materializes experiment scripts into the format-agnostic
// document model. Three formats are supported: HCL (the primary surface),
// TOML and YAML. All loaders produce identical documents for equivalent
// scripts; the engine never sees the source format.
package loader
