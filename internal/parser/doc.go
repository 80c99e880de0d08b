// Package parser is a direct recursive-descent parser for JSON-family
// source. Each production only ever builds a node from the restricted
// JSON-family universe, and checks the active dialect's capability record
// before accepting a feature — there is no separate conversion pass from
// a general-purpose JS AST, since the grammar itself only ever reaches
// JSON-family shapes.
package parser
