package dialect

import "strings"

// Context is the capability record gating what syntax a dialect permits.
type Context struct {
	TrailingCommas                 bool
	Comments                       bool
	PlusSigns                      bool
	SpacedSigns                    bool
	LeadingOrTrailingDecimalPoints bool
	Infinities                     bool
	NaNs                           bool
	InvalidJSONNumbers             bool
	MultilineStrings               bool
	UnquoteProperties              bool
	SingleQuotes                   bool
	NumberProperties               bool
	UndefinedKeywords              bool
	SparseArrays                   bool
	RegExpLiterals                 bool
	TemplateLiterals               bool
	BigIntLiterals                 bool
}

// JSON is strict JSON: every capability is false.
var JSON = Context{}

// JSONC permits comments and trailing commas, nothing else.
var JSONC = Context{
	TrailingCommas: true,
	Comments:       true,
}

// JSON5 permits the first eleven ES5-inspired relaxations; regex/template/
// bigint/number-property forms stay off.
var JSON5 = Context{
	TrailingCommas:                 true,
	Comments:                       true,
	PlusSigns:                      true,
	SpacedSigns:                    true,
	LeadingOrTrailingDecimalPoints: true,
	Infinities:                     true,
	NaNs:                           true,
	InvalidJSONNumbers:             true,
	MultilineStrings:               true,
	UnquoteProperties:              true,
	SingleQuotes:                   true,
}

// Default is the unrestricted superset used when no dialect tag is given:
// every capability is true, including forms JSON5 itself excludes (regex,
// templates, bigint, sparse arrays, undefined, number property keys); binary
// arithmetic is gated on this preset as a whole (AllowsBinaryExpressions).
var Default = Context{
	TrailingCommas:                 true,
	Comments:                       true,
	PlusSigns:                      true,
	SpacedSigns:                    true,
	LeadingOrTrailingDecimalPoints: true,
	Infinities:                     true,
	NaNs:                           true,
	InvalidJSONNumbers:             true,
	MultilineStrings:               true,
	UnquoteProperties:              true,
	SingleQuotes:                   true,
	NumberProperties:               true,
	UndefinedKeywords:              true,
	SparseArrays:                   true,
	RegExpLiterals:                 true,
	TemplateLiterals:               true,
	BigIntLiterals:                 true,
}

// ContextFor returns the capability record for a dialect tag. Matching is
// case-insensitive; an unknown or empty tag yields Default.
func ContextFor(tag string) Context {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "JSON":
		return JSON
	case "JSONC":
		return JSONC
	case "JSON5":
		return JSON5
	default:
		return Default
	}
}

// AllowsBinaryExpressions reports whether computed arithmetic forms
// (JSONBinaryExpression) are permitted — only under the unrestricted
// default dialect. None of the three named presets opt in, so this is
// synthesized from whether every relaxation the default grants is
// present, rather than from a dedicated capability bit.
func (c Context) AllowsBinaryExpressions() bool {
	return c == Default
}
