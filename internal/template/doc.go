// Package template parses the command template into literal fragments and
// $name placeholder references, and substitutes one concrete run into it.
//
// This is deliberately not a general templating language: there are no
// conditionals, loops or escapes. A `$` that does not start a variable name
// passes through as literal text.
package template
