package parser

import (
	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/dialect"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/lexer"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/perror"
)

// Parser consumes tokens from a lexer.Scanner and produces a *ast.JSONProgram
// that conforms to the active dialect's capability record.
type Parser struct {
	source string
	scanner *lexer.Scanner
	ctx     dialect.Context

	cur lexer.Token

	tokens   []*ast.Token
	comments []*ast.Comment
}

// New creates a Parser over source, gated by ctx.
func New(source string, ctx dialect.Context) *Parser {
	return &Parser{source: source, scanner: lexer.New(source).Scanner(), ctx: ctx}
}

// advance loads the next non-comment token into p.cur, recording every
// token (and, separately, every comment) it passes over. regexAllowed is
// forwarded to the scanner: true when the parser is about to expect an
// operand, false when it expects an infix operator or punctuation.
func (p *Parser) advance(regexAllowed bool) {
	for {
		tok := p.scanner.Next(regexAllowed)
		if tok.Type == lexer.COMMENT {
			p.comments = append(p.comments, commentFromToken(tok))
			continue
		}
		p.cur = tok
		if tok.Type != lexer.EOF {
			p.tokens = append(p.tokens, astTokenFromToken(tok))
		}
		return
	}
}

func commentFromToken(tok lexer.Token) *ast.Comment {
	typ := "Line"
	if len(tok.Literal) >= 2 && tok.Literal[1] == '*' {
		typ = "Block"
	}
	value := tok.Literal
	switch {
	case typ == "Line" && len(value) >= 2:
		value = value[2:]
	case typ == "Block" && len(value) >= 4:
		value = value[2 : len(value)-2]
	}
	return &ast.Comment{
		Type:  typ,
		Value: value,
		Range: &ast.Range{tok.Pos, tok.End},
		Loc:   locFor(tok),
	}
}

func astTokenFromToken(tok lexer.Token) *ast.Token {
	return &ast.Token{
		Type:  tok.Type.String(),
		Value: tok.Literal,
		Range: &ast.Range{tok.Pos, tok.End},
		Loc:   locFor(tok),
	}
}

func locFor(tok lexer.Token) *ast.SourceLocation {
	start := ast.Position{Line: tok.Line, Column: tok.Column}
	end := endPosition(tok)
	return &ast.SourceLocation{Start: start, End: end}
}

// endPosition derives a token's end line/column by scanning its own
// literal text for embedded newlines (template literals, block comments
// and strings with line-continuation escapes can span lines).
func endPosition(tok lexer.Token) ast.Position {
	line, col := tok.Line, tok.Column
	for _, r := range tok.Literal {
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return ast.Position{Line: line, Column: col}
}

func (p *Parser) unexpectedCurrent() *perror.ParseError {
	if p.cur.Type == lexer.EOF {
		return perror.At(perror.UnexpectedToken, "Unexpected end of input", p.cur.Line, p.cur.Column, p.cur.Pos)
	}
	return perror.UnexpectedTokenAt(p.cur.Literal, p.cur.Line, p.cur.Column, p.cur.Pos)
}

func (p *Parser) invalidForDialect(feature string) *perror.ParseError {
	return perror.InvalidForDialectAt(feature, p.cur.Line, p.cur.Column, p.cur.Pos)
}

// unexpectedNode builds an UnexpectedToken error pointing at node, used
// when a grammatically valid primary turns out to be the wrong shape for
// its position (e.g. a string where a numeric form is required).
func (p *Parser) unexpectedNode(node ast.Node) *perror.ParseError {
	loc := node.SourceLoc()
	text := node.Type()
	if rng := node.SourceRange(); rng != nil && rng[0] >= 0 && rng[1] <= len(p.source) && rng[0] <= rng[1] {
		text = p.source[rng[0]:rng[1]]
	}
	return perror.UnexpectedTokenAt(text, loc.Start.Line, loc.Start.Column, node.Pos())
}

// Result bundles a successful parse's program with its raw token/comment
// lists, letting the driver (pkg/jsoneslint) apply the comments-dialect
// check and build the final TokenStore.
type Result struct {
	Program  *ast.JSONProgram
	Tokens   []*ast.Token
	Comments []*ast.Comment
}

// Parse scans and parses the whole source, returning the program wrapped
// around its single expression, or the first dialect/grammar violation
// encountered — it fails fast rather than collecting every error.
func (p *Parser) Parse() (*Result, *perror.ParseError) {
	p.advance(true)

	if p.cur.Type == lexer.EOF {
		return nil, perror.At(perror.EmptyInput, "Expected a JSON value but found nothing", 1, 0, 0)
	}

	startTok := p.cur
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != lexer.EOF {
		return nil, perror.UnexpectedTokenAt(p.cur.Literal, p.cur.Line, p.cur.Column, p.cur.Pos)
	}

	stmt := &ast.JSONExpressionStatement{Expression: expr}
	expr.SetParent(stmt)
	spanTokenToNode(&stmt.BaseNode, "JSONExpressionStatement", startTok, expr)

	program := &ast.JSONProgram{Body: []*ast.JSONExpressionStatement{stmt}}
	stmt.SetParent(program)
	spanTokenToNode(&program.BaseNode, "JSONProgram", startTok, expr)

	return &Result{Program: program, Tokens: p.tokens, Comments: p.comments}, nil
}
