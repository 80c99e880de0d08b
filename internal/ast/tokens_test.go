package ast

import "testing"

func tok(typ, value string, start, end int) *Token {
	return &Token{Type: typ, Value: value, Range: &Range{start, end}}
}

func TestTokenStoreGetFirstLastToken(t *testing.T) {
	// {"a": 1}
	tokens := []*Token{
		tok("Punctuator", "{", 0, 1),
		tok("String", `"a"`, 1, 4),
		tok("Punctuator", ":", 4, 5),
		tok("Numeric", "1", 6, 7),
		tok("Punctuator", "}", 7, 8),
	}
	store := NewTokenStore(tokens)

	obj := &JSONObjectExpression{}
	obj.Rng = &Range{0, 8}
	obj.Start, obj.EndPos = 0, 8

	first := store.GetFirstToken(obj)
	if first == nil || first.Value != "{" {
		t.Fatalf("GetFirstToken = %+v, want {", first)
	}
	last := store.GetLastToken(obj)
	if last == nil || last.Value != "}" {
		t.Fatalf("GetLastToken = %+v, want }", last)
	}
}

func TestTokenStoreGetTokenBeforeAfter(t *testing.T) {
	tokens := []*Token{
		tok("Punctuator", "{", 0, 1),
		tok("String", `"a"`, 1, 4),
		tok("Punctuator", ":", 4, 5),
		tok("Numeric", "1", 6, 7),
		tok("Punctuator", "}", 7, 8),
	}
	store := NewTokenStore(tokens)

	mid := &JSONLiteral{}
	mid.Start, mid.EndPos = 6, 7
	mid.Rng = &Range{6, 7}

	before := store.GetTokenBefore(mid)
	if before == nil || before.Value != ":" {
		t.Fatalf("GetTokenBefore = %+v, want :", before)
	}
	after := store.GetTokenAfter(mid)
	if after == nil || after.Value != "}" {
		t.Fatalf("GetTokenAfter = %+v, want }", after)
	}
}

func TestTokenStorePredicateFiltering(t *testing.T) {
	tokens := []*Token{
		tok("Punctuator", "{", 0, 1),
		tok("String", `"a"`, 1, 4),
		tok("Punctuator", ":", 4, 5),
		tok("Numeric", "1", 6, 7),
		tok("Punctuator", "}", 7, 8),
	}
	store := NewTokenStore(tokens)

	obj := &JSONObjectExpression{}
	obj.Start, obj.EndPos = 0, 8
	obj.Rng = &Range{0, 8}

	onlyNumeric := func(tk *Token) bool { return tk.Type == "Numeric" }
	got := store.GetFirstToken(obj, onlyNumeric)
	if got == nil || got.Value != "1" {
		t.Fatalf("GetFirstToken with predicate = %+v, want 1", got)
	}
}

func TestTokenStoreGetTokensReturnsAll(t *testing.T) {
	tokens := []*Token{tok("Punctuator", "{", 0, 1), tok("Punctuator", "}", 1, 2)}
	store := NewTokenStore(tokens)
	if got := store.GetTokens(); len(got) != 2 {
		t.Fatalf("GetTokens() returned %d tokens, want 2", len(got))
	}
}
