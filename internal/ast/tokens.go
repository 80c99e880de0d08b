package ast

import "sort"

// Token is a single lexical token attached to a Program, in source order.
type Token struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range *Range          `json:"range"`
	Loc   *SourceLocation `json:"loc"`
}

// Comment is a single comment attached to a Program, in source order.
// Type is "Line" or "Block".
type Comment struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range *Range          `json:"range"`
	Loc   *SourceLocation `json:"loc"`
}

// Predicate filters candidate tokens during a TokenStore lookup.
type Predicate func(*Token) bool

// TokenStore is a read-only, random-access view over a Program's ordered
// tokens. Lookups binary-search on token start offset and then walk
// outward from the anchor, evaluating the predicate sequentially.
type TokenStore struct {
	tokens []*Token
}

// NewTokenStore builds a TokenStore over tokens, which must already be in
// source order.
func NewTokenStore(tokens []*Token) *TokenStore {
	return &TokenStore{tokens: tokens}
}

// GetTokens returns every token, in source order.
func (s *TokenStore) GetTokens() []*Token {
	return s.tokens
}

func (s *TokenStore) indexAtOrAfter(offset int) int {
	return sort.Search(len(s.tokens), func(i int) bool {
		return s.tokens[i].Range[0] >= offset
	})
}

// GetFirstToken returns the first token within node's range satisfying
// every predicate, or nil if none matches.
func (s *TokenStore) GetFirstToken(node Node, predicates ...Predicate) *Token {
	i := s.indexAtOrAfter(node.Pos())
	for ; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		if tok.Range[0] >= node.End() {
			return nil
		}
		if matchesAll(tok, predicates) {
			return tok
		}
	}
	return nil
}

// GetLastToken returns the last token within node's range satisfying
// every predicate, or nil if none matches.
func (s *TokenStore) GetLastToken(node Node, predicates ...Predicate) *Token {
	i := s.indexAtOrAfter(node.End()) - 1
	for ; i >= 0; i-- {
		tok := s.tokens[i]
		if tok.Range[0] < node.Pos() {
			return nil
		}
		if matchesAll(tok, predicates) {
			return tok
		}
	}
	return nil
}

// GetTokenBefore returns the nearest token before node's start satisfying
// every predicate, or nil if none matches.
func (s *TokenStore) GetTokenBefore(node Node, predicates ...Predicate) *Token {
	i := s.indexAtOrAfter(node.Pos()) - 1
	for ; i >= 0; i-- {
		tok := s.tokens[i]
		if matchesAll(tok, predicates) {
			return tok
		}
	}
	return nil
}

// GetTokenAfter returns the nearest token after node's end satisfying
// every predicate, or nil if none matches.
func (s *TokenStore) GetTokenAfter(node Node, predicates ...Predicate) *Token {
	i := s.indexAtOrAfter(node.End())
	for ; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		if tok.Range[0] >= node.End() && matchesAll(tok, predicates) {
			return tok
		}
	}
	return nil
}

func matchesAll(tok *Token, predicates []Predicate) bool {
	for _, p := range predicates {
		if p != nil && !p(tok) {
			return false
		}
	}
	return true
}
