package parser

import (
	"strconv"
	"strings"

	"github.com/kdy1/go-jsonc-eslint-parser/internal/ast"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/lexer"
	"github.com/kdy1/go-jsonc-eslint-parser/internal/perror"
)

// parseNumberLiteral validates and builds a JSONNumberLiteral. The
// scanner already accepted the broadest possible numeric form
// (scanNumber in internal/lexer/scan.go); dialect legality is entirely
// this function's job.
func (p *Parser) parseNumberLiteral() (*ast.JSONLiteral, *perror.ParseError) {
	tok := p.cur
	raw := tok.Literal

	hex, leadingZero, leadingDot, trailingDot := classifyNumber(raw)
	if (hex || leadingZero) && !p.ctx.InvalidJSONNumbers {
		return nil, perror.InvalidForDialectAt("invalidJsonNumbers", tok.Line, tok.Column, tok.Pos)
	}
	if (leadingDot || trailingDot) && !p.ctx.LeadingOrTrailingDecimalPoints {
		return nil, perror.InvalidForDialectAt("leadingOrTrailingDecimalPoints", tok.Line, tok.Column, tok.Pos)
	}

	value, perr := decodeNumberValue(raw, hex, tok)
	if perr != nil {
		return nil, perr
	}

	lit := &ast.JSONLiteral{Kind: ast.LiteralNumber, Raw: raw, Value: value, IsExpression: true}
	spanToken(&lit.BaseNode, "JSONLiteral", tok)
	p.advance(false)
	return lit, nil
}

// classifyNumber reports the strict-JSON-incompatible shapes a raw
// number token may take, so the caller can check them against the
// matching capability bit.
func classifyNumber(raw string) (hex, leadingZero, leadingDot, trailingDot bool) {
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		return true, false, false, false
	}
	leadingDot = strings.HasPrefix(raw, ".")
	trailingDot = strings.HasSuffix(raw, ".")
	leadingZero = len(raw) > 1 && raw[0] == '0' && raw[1] != '.' && raw[1] != 'e' && raw[1] != 'E'
	return false, leadingZero, leadingDot, trailingDot
}

func decodeNumberValue(raw string, hex bool, tok lexer.Token) (float64, *perror.ParseError) {
	if hex {
		n, err := strconv.ParseUint(raw[2:], 16, 64)
		if err != nil {
			return 0, perror.UnexpectedTokenAt(raw, tok.Line, tok.Column, tok.Pos)
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, perror.UnexpectedTokenAt(raw, tok.Line, tok.Column, tok.Pos)
	}
	return v, nil
}

// parseBigIntLiteral strips the trailing "n" marker; the evaluator (not
// here) is responsible for actually constructing an arbitrary-precision
// integer from BigIntText, falling back to the raw text on failure.
func (p *Parser) parseBigIntLiteral() (*ast.JSONLiteral, *perror.ParseError) {
	tok := p.cur
	if !p.ctx.BigIntLiterals {
		return nil, p.invalidForDialect("bigintLiterals")
	}
	text := strings.TrimSuffix(tok.Literal, "n")
	lit := &ast.JSONLiteral{Kind: ast.LiteralBigInt, Raw: tok.Literal, BigIntText: text, IsExpression: true}
	spanToken(&lit.BaseNode, "JSONLiteral", tok)
	p.advance(false)
	return lit, nil
}

// parseStringLiteral validates and builds a JSONStringLiteral. isExpression
// distinguishes a value-position string (true) from a property-key string
// (false).
func (p *Parser) parseStringLiteral(isExpression bool) (*ast.JSONLiteral, *perror.ParseError) {
	tok := p.cur
	raw := tok.Literal

	if len(raw) > 0 && raw[0] == '\'' && !p.ctx.SingleQuotes {
		return nil, perror.InvalidForDialectAt("singleQuotes", tok.Line, tok.Column, tok.Pos)
	}
	if lexer.IsMultilineStringLiteral(raw) && !p.ctx.MultilineStrings {
		return nil, perror.InvalidForDialectAt("multilineStrings", tok.Line, tok.Column, tok.Pos)
	}

	value, perr := decodeQuotedText(raw, tok)
	if perr != nil {
		return nil, perr
	}

	lit := &ast.JSONLiteral{Kind: ast.LiteralString, Raw: raw, Value: value, IsExpression: isExpression}
	spanToken(&lit.BaseNode, "JSONLiteral", tok)
	p.advance(false)
	return lit, nil
}

// parseRegExpLiteral splits "/pattern/flags" into its two halves; actual
// regex construction (and its fallback on unsupported flags) happens in
// the evaluator.
func (p *Parser) parseRegExpLiteral() (*ast.JSONLiteral, *perror.ParseError) {
	tok := p.cur
	if !p.ctx.RegExpLiterals {
		return nil, p.invalidForDialect("regExpLiterals")
	}
	pattern, flags, perr := splitRegExp(tok)
	if perr != nil {
		return nil, perr
	}
	lit := &ast.JSONLiteral{
		Kind:         ast.LiteralRegExp,
		Raw:          tok.Literal,
		Regex:        &ast.RegExpValue{Pattern: pattern, Flags: flags},
		IsExpression: true,
	}
	spanToken(&lit.BaseNode, "JSONLiteral", tok)
	p.advance(false)
	return lit, nil
}

func splitRegExp(tok lexer.Token) (pattern, flags string, _ *perror.ParseError) {
	raw := tok.Literal
	last := strings.LastIndexByte(raw, '/')
	if last <= 0 {
		return "", "", perror.UnexpectedTokenAt(raw, tok.Line, tok.Column, tok.Pos)
	}
	return raw[1:last], raw[last+1:], nil
}

// parseTemplateLiteral builds the sole quasi a JSONTemplateLiteral may
// carry; substitutions ("${...}") are rejected outright since this node
// kind never embeds expressions.
func (p *Parser) parseTemplateLiteral() (*ast.JSONTemplateLiteral, *perror.ParseError) {
	tok := p.cur
	if !p.ctx.TemplateLiterals {
		return nil, p.invalidForDialect("templateLiterals")
	}
	raw := tok.Literal
	if len(raw) < 2 {
		return nil, perror.UnexpectedTokenAt(raw, tok.Line, tok.Column, tok.Pos)
	}
	if idx := strings.Index(raw, "${"); idx >= 0 {
		return nil, perror.UnexpectedTokenAt("${", tok.Line, tok.Column, tok.Pos+idx)
	}

	cooked, perr := decodeQuotedText(raw, tok)
	if perr != nil {
		return nil, perr
	}

	quasi := &ast.JSONTemplateElement{Tail: true, Cooked: cooked, Raw: raw[1 : len(raw)-1]}
	spanToken(&quasi.BaseNode, "JSONTemplateElement", tok)

	tmpl := &ast.JSONTemplateLiteral{Quasis: []*ast.JSONTemplateElement{quasi}}
	quasi.SetParent(tmpl)
	spanToken(&tmpl.BaseNode, "JSONTemplateLiteral", tok)

	p.advance(false)
	return tmpl, nil
}

// decodeQuotedText strips the opening/closing delimiter byte (quote or
// backtick — the body is delimiter-agnostic) and resolves JS string
// escapes.
func decodeQuotedText(raw string, tok lexer.Token) (string, *perror.ParseError) {
	if len(raw) < 2 {
		return "", perror.UnexpectedTokenAt(raw, tok.Line, tok.Column, tok.Pos)
	}
	body := raw[1 : len(raw)-1]

	var b strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			break
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '0':
			b.WriteByte(0)
			i++
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
			i++ // line-continuation escape: dropped from the cooked value
		case 'x':
			if i+2 < len(body) {
				if n, err := strconv.ParseUint(body[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(n))
					i += 3
					continue
				}
			}
			b.WriteByte('x')
			i++
		case 'u':
			if i+4 < len(body) {
				if n, err := strconv.ParseUint(body[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(n))
					i += 5
					continue
				}
			}
			b.WriteByte('u')
			i++
		default:
			b.WriteByte(body[i])
			i++
		}
	}
	return b.String(), nil
}
