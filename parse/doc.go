// Package parse reads truth tables into [kmap.Table] values.
//
// [Parse] handles the plain text form: a header line of single-character
// variable names followed by one row per line, each a 0/1 per variable
// plus a trailing 0/1 outcome.  [ParseYAML] handles the equivalent YAML
// document.  Rows may come in any order; [Strict] additionally requires a
// complete table.
package parse
