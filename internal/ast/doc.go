// Package ast defines the JSON-family AST node universe: the restricted
// set of node kinds a dialect-gated parse can ever produce, the
// token/comment types attached to a Program, a binary-search token store,
// a tree walker, and a static visitor-keys table.
//
// The node universe intentionally has no counterpart to a general
// JavaScript AST's statements, declarations, classes, or JSX:
// JSON-family source is always exactly one expression.
package ast
