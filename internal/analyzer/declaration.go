package analyzer

import (
	"fmt"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/symbol"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
)

// minDeclarationTokens covers `<base> <id> <literal> ;` plus EOF.
const minDeclarationTokens = 5

// Declaration is an accepted `<base> <name> <value>;` statement.
type Declaration struct {
	Name  string      `json:"name"`
	Base  symbol.Base `json:"base"`
	Value string      `json:"value"`
}

// ValidateDeclaration checks tokens against the declaration grammar and, on
// success, records the variable in table.
//
// The returned error wraps one of apperr.ErrGrammar, apperr.ErrDuplicate or
// apperr.ErrInvalidValue. The table is only modified when the error is nil.
// Tokens after the semicolon are ignored.
func ValidateDeclaration(tokens []token.Token, table *symbol.Table) (Declaration, error) {
	if len(tokens) < minDeclarationTokens ||
		!tokens[0].Type.IsBase() ||
		tokens[1].Type != token.ID ||
		!tokens[2].Type.IsNumber() ||
		tokens[3].Type != token.SEMICOLON {
		return Declaration{}, apperr.NewValidationWrap("expected `<bin|oct|hex> <name> <value>;`", apperr.ErrGrammar)
	}

	base, _ := symbol.BaseFromToken(tokens[0].Type)
	decl := Declaration{
		Name:  tokens[1].Value,
		Base:  base,
		Value: tokens[2].Value,
	}

	if table.IsDeclared(decl.Name) {
		return decl, apperr.NewSubjectWrap(fmt.Sprintf("variable %q already declared", decl.Name), decl.Name, apperr.ErrDuplicate)
	}

	// The literal's token kind only says which alphabet matched first;
	// the declared base decides.
	if !base.Valid(decl.Value) {
		return decl, apperr.NewSubjectWrap(
			fmt.Sprintf("value %q is not valid for type %s", decl.Value, base), decl.Value, apperr.ErrInvalidValue)
	}

	if err := table.Declare(decl.Name, base); err != nil {
		return decl, err
	}

	return decl, nil
}
