// Package lexer scans JSON-family source text into a flat token stream.
// It is deliberately narrower than a general JavaScript lexer: the token
// set covers only what the JSON-family grammar can ever need — there is
// no keyword table for statements, no JSX mode, no template
// interpolation scanning.
package lexer
