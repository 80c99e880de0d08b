package parser

import (
	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/lexer"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/perror"
)

// Every parse* function below follows one convention: by the time it
// returns, p.cur already holds the token immediately following whatever
// it just built. Callers never need to advance past a child's own last
// token — only past punctuation (colons, commas, braces) they consume
// themselves.

// parseExpression parses a single JSON-family value. Binary arithmetic
// only exists under the unrestricted default dialect; every other
// dialect bottoms out at a signed primary.
func (p *Parser) parseExpression() (ast.Node, *perror.ParseError) {
	if p.ctx.AllowsBinaryExpressions() {
		return p.parseAdditive()
	}
	return p.parseUnary()
}

func (p *Parser) parseAdditive() (ast.Node, *perror.ParseError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := p.cur.Type.String()
		p.advance(true)
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left, err = p.combineBinary(left, op, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Node, *perror.ParseError) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.PERCENT {
		op := p.cur.Type.String()
		p.advance(true)
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left, err = p.combineBinary(left, op, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parsePower binds tighter than * / % and is right-associative: "2**3**2"
// is "2**(3**2)".
func (p *Parser) parsePower() (ast.Node, *perror.ParseError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.POWER {
		p.advance(true)
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return p.combineBinary(left, "**", right)
	}
	return left, nil
}

func (p *Parser) combineBinary(left ast.Node, op string, right ast.Node) (ast.Node, *perror.ParseError) {
	if !ast.IsNumericForm(left) {
		return nil, p.unexpectedNode(left)
	}
	if !ast.IsNumericForm(right) {
		return nil, p.unexpectedNode(right)
	}
	node := &ast.JSONBinaryExpression{Operator: op, Left: left, Right: right}
	left.SetParent(node)
	right.SetParent(node)
	spanNodeToNode(&node.BaseNode, "JSONBinaryExpression", left, right)
	return node, nil
}

// parseUnary handles an optional leading sign before a primary. "+"
// requires plusSigns; a gap between the sign and its operand requires
// spacedSigns.
func (p *Parser) parseUnary() (ast.Node, *perror.ParseError) {
	if p.cur.Type != lexer.PLUS && p.cur.Type != lexer.MINUS {
		return p.parsePrimary()
	}

	opTok := p.cur
	op := "-"
	if opTok.Type == lexer.PLUS {
		op = "+"
		if !p.ctx.PlusSigns {
			return nil, p.invalidForDialect("plusSigns")
		}
	}
	p.advance(true)
	if opTok.End != p.cur.Pos && !p.ctx.SpacedSigns {
		return nil, p.invalidForDialect("spacedSigns")
	}

	arg, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !ast.IsNumericForm(arg) {
		return nil, p.unexpectedNode(arg)
	}

	node := &ast.JSONUnaryExpression{Operator: op, Argument: arg}
	arg.SetParent(node)
	spanTokenToNode(&node.BaseNode, "JSONUnaryExpression", opTok, arg)
	return node, nil
}

func (p *Parser) parsePrimary() (ast.Node, *perror.ParseError) {
	switch p.cur.Type {
	case lexer.LBRACE:
		return p.parseObject()
	case lexer.LBRACK:
		return p.parseArray()
	case lexer.STRING:
		return p.parseStringLiteral(true)
	case lexer.NUMBER:
		return p.parseNumberLiteral()
	case lexer.BIGINT:
		return p.parseBigIntLiteral()
	case lexer.REGEXP:
		return p.parseRegExpLiteral()
	case lexer.TEMPLATE:
		return p.parseTemplateLiteral()
	case lexer.IDENT:
		return p.parseIdentifierExpression()
	default:
		return nil, p.unexpectedCurrent()
	}
}

func (p *Parser) parseObject() (ast.Node, *perror.ParseError) {
	open := p.cur
	obj := &ast.JSONObjectExpression{}
	p.advance(true)

	if p.cur.Type == lexer.RBRACE {
		close := p.cur
		p.advance(false)
		spanTokenToToken(&obj.BaseNode, "JSONObjectExpression", open, close)
		return obj, nil
	}

	for {
		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}
		prop.SetParent(obj)
		obj.Properties = append(obj.Properties, prop)

		switch p.cur.Type {
		case lexer.COMMA:
			commaTok := p.cur
			p.advance(true)
			if p.cur.Type == lexer.RBRACE {
				if !p.ctx.TrailingCommas {
					return nil, perror.UnexpectedTokenAt(",", commaTok.Line, commaTok.Column, commaTok.Pos)
				}
				close := p.cur
				p.advance(false)
				spanTokenToToken(&obj.BaseNode, "JSONObjectExpression", open, close)
				return obj, nil
			}
		case lexer.RBRACE:
			close := p.cur
			p.advance(false)
			spanTokenToToken(&obj.BaseNode, "JSONObjectExpression", open, close)
			return obj, nil
		default:
			return nil, p.unexpectedCurrent()
		}
	}
}

func (p *Parser) parseProperty() (*ast.JSONProperty, *perror.ParseError) {
	key, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.COLON {
		return nil, p.unexpectedCurrent()
	}
	p.advance(true)

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	prop := &ast.JSONProperty{Key: key, Value: value, Kind: "init"}
	key.SetParent(prop)
	value.SetParent(prop)
	spanNodeToNode(&prop.BaseNode, "JSONProperty", key, value)
	return prop, nil
}

// parsePropertyKey accepts a string literal (always), a number literal
// (if numberProperties), or a bare identifier (if unquoteProperties).
func (p *Parser) parsePropertyKey() (ast.Node, *perror.ParseError) {
	switch p.cur.Type {
	case lexer.STRING:
		return p.parseStringLiteral(false)
	case lexer.NUMBER:
		if !p.ctx.NumberProperties {
			return nil, p.invalidForDialect("numberProperties")
		}
		return p.parseNumberLiteral()
	case lexer.IDENT:
		if !p.ctx.UnquoteProperties {
			return nil, p.invalidForDialect("unquoteProperties")
		}
		tok := p.cur
		ident := &ast.JSONIdentifier{Name: tok.Literal, IsExpression: false}
		spanToken(&ident.BaseNode, "JSONIdentifier", tok)
		p.advance(false)
		return ident, nil
	default:
		return nil, p.unexpectedCurrent()
	}
}

func (p *Parser) parseArray() (ast.Node, *perror.ParseError) {
	open := p.cur
	arr := &ast.JSONArrayExpression{}
	p.advance(true)

	if p.cur.Type == lexer.RBRACK {
		close := p.cur
		p.advance(false)
		spanTokenToToken(&arr.BaseNode, "JSONArrayExpression", open, close)
		return arr, nil
	}

	for {
		if p.cur.Type == lexer.COMMA {
			if !p.ctx.SparseArrays {
				return nil, p.invalidForDialect("sparseArrays")
			}
			arr.Elements = append(arr.Elements, nil)
			p.advance(true)
			if p.cur.Type == lexer.RBRACK {
				close := p.cur
				p.advance(false)
				spanTokenToToken(&arr.BaseNode, "JSONArrayExpression", open, close)
				return arr, nil
			}
			continue
		}

		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		el.SetParent(arr)
		arr.Elements = append(arr.Elements, el)

		switch p.cur.Type {
		case lexer.COMMA:
			commaTok := p.cur
			p.advance(true)
			if p.cur.Type == lexer.RBRACK {
				if !p.ctx.TrailingCommas {
					return nil, perror.UnexpectedTokenAt(",", commaTok.Line, commaTok.Column, commaTok.Pos)
				}
				close := p.cur
				p.advance(false)
				spanTokenToToken(&arr.BaseNode, "JSONArrayExpression", open, close)
				return arr, nil
			}
		case lexer.RBRACK:
			close := p.cur
			p.advance(false)
			spanTokenToToken(&arr.BaseNode, "JSONArrayExpression", open, close)
			return arr, nil
		default:
			return nil, p.unexpectedCurrent()
		}
	}
}

// parseIdentifierExpression accepts the handful of bare words legal as a
// JSON-family value: true/false/null as keyword literals, Infinity/NaN/
// undefined as identifiers gated by their own capability bit. Anything
// else is only legal as a property key, never here.
func (p *Parser) parseIdentifierExpression() (ast.Node, *perror.ParseError) {
	tok := p.cur
	switch tok.Literal {
	case "true", "false":
		lit := &ast.JSONLiteral{Kind: ast.LiteralKeyword, Raw: tok.Literal, Value: tok.Literal == "true", IsExpression: true}
		spanToken(&lit.BaseNode, "JSONLiteral", tok)
		p.advance(false)
		return lit, nil
	case "null":
		lit := &ast.JSONLiteral{Kind: ast.LiteralKeyword, Raw: tok.Literal, Value: nil, IsExpression: true}
		spanToken(&lit.BaseNode, "JSONLiteral", tok)
		p.advance(false)
		return lit, nil
	case "undefined":
		if !p.ctx.UndefinedKeywords {
			return nil, p.invalidForDialect("undefinedKeywords")
		}
		return p.identifierToken(tok)
	case "Infinity":
		if !p.ctx.Infinities {
			return nil, p.invalidForDialect("infinities")
		}
		return p.identifierToken(tok)
	case "NaN":
		if !p.ctx.NaNs {
			return nil, p.invalidForDialect("nans")
		}
		return p.identifierToken(tok)
	default:
		return nil, p.unexpectedCurrent()
	}
}

func (p *Parser) identifierToken(tok lexer.Token) (ast.Node, *perror.ParseError) {
	ident := &ast.JSONIdentifier{Name: tok.Literal, IsExpression: true}
	spanToken(&ident.BaseNode, "JSONIdentifier", tok)
	p.advance(false)
	return ident, nil
}
