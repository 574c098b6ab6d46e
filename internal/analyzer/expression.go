package analyzer

import (
	"fmt"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/symbol"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
)

// CheckExpression verifies that every identifier in tokens is declared.
// It stops at the first undeclared identifier and returns an error wrapping
// apperr.ErrUndeclared whose Subject is that identifier.
// Operators and parentheses are not checked.
func CheckExpression(tokens []token.Token, table *symbol.Table) error {
	for _, tok := range tokens {
		if tok.Type == token.ID && !table.IsDeclared(tok.Value) {
			return apperr.NewSubjectWrap(fmt.Sprintf("variable %q was not declared", tok.Value), tok.Value, apperr.ErrUndeclared)
		}
	}
	return nil
}

// Undeclared lists every undeclared identifier in tokens, once each, in order
// of first appearance.
func Undeclared(tokens []token.Token, table *symbol.Table) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.Type != token.ID || table.IsDeclared(tok.Value) {
			continue
		}
		if _, ok := seen[tok.Value]; ok {
			continue
		}
		seen[tok.Value] = struct{}{}
		names = append(names, tok.Value)
	}
	return names
}
