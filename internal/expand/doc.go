// Package expand turns a binding set into its matrix of concrete runs: the
// cross product of every list-valued binding, with scalar bindings
// replicated unchanged into each run.
//
// Expansion is deterministic. Lists combine in declaration order across
// sections and the last declared list varies fastest, so the same document
// always yields the same run sequence. Runs are generated on demand and not
// retained.
package expand
