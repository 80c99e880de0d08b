// Package dialect maps a dialect tag ("JSON", "JSONC", "JSON5", or the
// unspecified superset) to the fixed set of capability bits that gate what
// the parser accepts.
package dialect
