// Package jsoneslint is the public entry point: ParseForESLint produces a
// JSON-family AST plus traversal metadata, and GetStaticJSONValue (via
// internal/evaluator) materializes that AST to a runtime value.
package jsoneslint

import (
	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/dialect"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/evaluator"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/parser"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/perror"
)

// Services mirrors the external contract's {isJSON: true} marker,
// letting an ESLint-style consumer recognize a JSON-family parse result
// without inspecting the AST.
type Services struct {
	IsJSON bool
}

// Result bundles a successful parse: the AST, the static visitor-keys
// map consumers use to traverse it, a token store for positional
// lookups, and the services marker.
type Result struct {
	AST         *ast.JSONProgram
	VisitorKeys map[string][]string
	Services    Services
	TokenStore  *ast.TokenStore
}

// ParseForESLint parses code under the dialect opts.JSONSyntax selects,
// returning a lossless JSON-family AST. On any dialect violation or
// grammar error it returns a *perror.ParseError carrying a location in
// code's own coordinates — there is no synthetic-wrapper offset to
// correct for, since this parser walks JSON-family source directly
// rather than through a general-purpose expression parser.
func ParseForESLint(code string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = NewBuilder().MustBuild()
	}
	ctx := dialect.ContextFor(opts.JSONSyntax)

	res, perr := parser.New(code, ctx).Parse()
	if perr != nil {
		return nil, perr
	}

	if !ctx.Comments && len(res.Comments) > 0 {
		first := res.Comments[0]
		return nil, perror.At(perror.UnexpectedComment, "Unexpected comment", first.Loc.Start.Line, first.Loc.Start.Column, first.Range[0])
	}

	res.Program.Comments = res.Comments
	res.Program.Tokens = res.Tokens

	return &Result{
		AST:         res.Program,
		VisitorKeys: ast.VisitorKeys,
		Services:    Services{IsJSON: true},
		TokenStore:  ast.NewTokenStore(res.Tokens),
	}, nil
}

// GetStaticJSONValue materializes node to a runtime value. It is
// re-exported here so callers depend only on this package.
func GetStaticJSONValue(node ast.Node) (any, error) {
	v, perr := evaluator.GetStaticJSONValue(node)
	if perr != nil {
		return nil, perr
	}
	return v, nil
}
