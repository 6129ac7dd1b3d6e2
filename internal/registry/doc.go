// Package registry owns the variable-provider table for one resolution pass.
//
// Each loader section registers the variables it provides, in document
// order. The registry rejects a variable declared by more than one section
// (TASK_NAME included) and answers provider lookups during template
// substitution. The package also derives the concrete value binding for each
// declared variable from its section's options.
package registry
