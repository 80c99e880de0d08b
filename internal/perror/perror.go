package perror

import "fmt"

// Kind identifies the taxonomy of errors this package can raise.
type Kind int

const (
	// EmptyInput is raised when the source contains no JSON expression at all.
	EmptyInput Kind = iota
	// UnexpectedToken is raised when a token appears where the grammar does
	// not allow it (includes the offending text, e.g. "," or "...").
	UnexpectedToken
	// UnexpectedComment is raised when a comment is present but the active
	// dialect does not permit comments.
	UnexpectedComment
	// UnexpectedExtraArgument names the case of more than one top-level
	// value. The parser does not raise it: extra top-level content is
	// reported as UnexpectedToken at the first extra token.
	UnexpectedExtraArgument
	// InvalidForDialect is raised when a syntactic feature is used but the
	// active dialect's capability record does not grant it.
	InvalidForDialect
	// IllegalArgument is raised by the static evaluator on a malformed or
	// hand-built AST it cannot make sense of.
	IllegalArgument
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedComment:
		return "UnexpectedComment"
	case UnexpectedExtraArgument:
		return "UnexpectedExtraArgument"
	case InvalidForDialect:
		return "InvalidForDialect"
	case IllegalArgument:
		return "IllegalArgument"
	default:
		return "Unknown"
	}
}

// ParseError is a location-carrying error produced by the parser or the
// static evaluator. It implements the standard error interface and
// exposes the {message, lineNumber, column, index} shape an ESLint-style
// consumer expects of a thrown parse error.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int // 1-based
	Column  int // 0-based
	Index   int // byte offset into the original source
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

// At builds a ParseError of the given kind at the given source position.
func At(kind Kind, message string, line, column, index int) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Line:    line,
		Column:  column,
		Index:   index,
	}
}

// UnexpectedTokenAt builds an UnexpectedToken error naming the offending
// token text.
func UnexpectedTokenAt(text string, line, column, index int) *ParseError {
	return At(UnexpectedToken, fmt.Sprintf("Unexpected token %s", text), line, column, index)
}

// InvalidForDialectAt builds an InvalidForDialect error naming the feature
// the active dialect rejects.
func InvalidForDialectAt(feature string, line, column, index int) *ParseError {
	return At(InvalidForDialect, fmt.Sprintf("%s is not allowed in this dialect", feature), line, column, index)
}
