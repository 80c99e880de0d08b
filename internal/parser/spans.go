package parser

import (
	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/lexer"
)

// spans.go collects the handful of ways a node's [start, end) byte range
// and line/column location get built up from the tokens and child nodes
// a production has on hand. Every parse* function ends by calling one of
// these rather than poking at BaseNode fields directly.

// spanToken sets base's span to exactly tok's own range, for single-token
// nodes (identifiers, most literals).
func spanToken(base *ast.BaseNode, nodeType string, tok lexer.Token) {
	spanTokenToToken(base, nodeType, tok, tok)
}

// spanTokenToToken sets base's span to [start.Pos, end.End), for nodes
// delimited by two tokens it owns directly (object/array braces).
func spanTokenToToken(base *ast.BaseNode, nodeType string, start, end lexer.Token) {
	base.NodeType = nodeType
	base.Start = start.Pos
	base.EndPos = end.End
	base.Rng = &ast.Range{start.Pos, end.End}
	base.Loc = &ast.SourceLocation{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   endPosition(end),
	}
}

// spanTokenToNode sets base's span to [start.Pos, end.End()), where end
// is a child node whose own span is already computed (unary expressions,
// the program/statement wrapper).
func spanTokenToNode(base *ast.BaseNode, nodeType string, start lexer.Token, end ast.Node) {
	base.NodeType = nodeType
	base.Start = start.Pos
	base.EndPos = end.End()
	base.Rng = &ast.Range{start.Pos, end.End()}
	base.Loc = &ast.SourceLocation{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   end.SourceLoc().End,
	}
}

// spanNodeToNode sets base's span to cover [start.Pos(), end.End()), for
// nodes delimited by two already-built children (binary expressions,
// properties).
func spanNodeToNode(base *ast.BaseNode, nodeType string, start, end ast.Node) {
	base.NodeType = nodeType
	base.Start = start.Pos()
	base.EndPos = end.End()
	base.Rng = &ast.Range{start.Pos(), end.End()}
	base.Loc = &ast.SourceLocation{
		Start: start.SourceLoc().Start,
		End:   end.SourceLoc().End,
	}
}
