package lexer

// Lexer owns a Scanner for a single source string. It exists as a small
// wrapper so a caller that only needs to construct a scanner over source
// text doesn't have to reach past this package's exported surface.
type Lexer struct {
	scanner *Scanner
}

// New creates a Lexer over source.
func New(source string) *Lexer {
	return &Lexer{scanner: NewScanner(source)}
}

// Scanner exposes the underlying Scanner for callers (the parser) that
// need fine-grained control over regex-context scanning.
func (l *Lexer) Scanner() *Scanner {
	return l.scanner
}
